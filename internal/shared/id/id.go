// Package id mints the identifiers used for windows, desktops and requests.
//
// Ids are a kind prefix joined to a ULID, e.g. win_01J9Z3K6Q8Y2WQ0F7M4C7X9T1B.
// The ULID half sorts by creation time and comes from a monotonic reader, so
// ids minted in the same millisecond still increase. Window ids are never
// reused within a process.
package id

import (
	"crypto/rand"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind is the prefix naming what an id refers to
type Kind string

const (
	KindWindow  Kind = "win"
	KindDesktop Kind = "desk"
	KindRequest Kind = "req"
)

// WindowID identifies an open window
type WindowID string

// DesktopID identifies a virtual desktop
type DesktopID string

// RequestID identifies an API request or a trace span
type RequestID string

func (id WindowID) String() string  { return string(id) }
func (id DesktopID) String() string { return string(id) }
func (id RequestID) String() string { return string(id) }

// ErrMalformed is returned for ids without a kind prefix or a valid ULID
var ErrMalformed = errors.New("malformed id")

// Source mints prefixed ids. It is safe for concurrent use.
type Source struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

// NewSource returns a source backed by crypto/rand
func NewSource() *Source {
	return &Source{entropy: ulid.Monotonic(rand.Reader, 0), now: time.Now}
}

// NewSourceWith returns a source with fixed entropy and clock
func NewSourceWith(entropy io.Reader, now func() time.Time) *Source {
	return &Source{entropy: entropy, now: now}
}

// Next mints an id of the given kind
func (s *Source) Next(kind Kind) string {
	s.mu.Lock()
	u := ulid.MustNew(ulid.Timestamp(s.now()), s.entropy)
	s.mu.Unlock()
	return string(kind) + "_" + u.String()
}

var (
	shared     *Source
	sharedOnce sync.Once
)

func source() *Source {
	sharedOnce.Do(func() { shared = NewSource() })
	return shared
}

// NewWindowID mints a window id
func NewWindowID() WindowID {
	return WindowID(source().Next(KindWindow))
}

// NewDesktopID mints a desktop id
func NewDesktopID() DesktopID {
	return DesktopID(source().Next(KindDesktop))
}

// NewRequestID mints a request id
func NewRequestID() RequestID {
	return RequestID(source().Next(KindRequest))
}

// Split separates an id into its kind and ULID
func Split(s string) (Kind, ulid.ULID, error) {
	prefix, rest, ok := strings.Cut(s, "_")
	if !ok || prefix == "" {
		return "", ulid.ULID{}, ErrMalformed
	}
	u, err := ulid.ParseStrict(rest)
	if err != nil {
		return "", ulid.ULID{}, ErrMalformed
	}
	return Kind(prefix), u, nil
}

// Created returns when an id was minted, to millisecond precision
func Created(s string) (time.Time, error) {
	_, u, err := Split(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}
