package window

import (
	"time"

	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/geometry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// Default limits used when configuration leaves them unset
const (
	DefaultMinWidth          = 400
	DefaultMinHeight         = 300
	DefaultAnimationDuration = 200 * time.Millisecond
	MinTransparency          = 0.1
	MaxTransparency          = 1.0
)

// Config holds window registry behaviour
type Config struct {
	MinSize           types.WindowSize
	DefaultSize       types.WindowSize
	Cascade           geometry.CascadeConfig
	AnimationDuration time.Duration
}

// DefaultConfig returns the stock registry configuration
func DefaultConfig() Config {
	return Config{
		MinSize:           types.WindowSize{Width: DefaultMinWidth, Height: DefaultMinHeight},
		DefaultSize:       types.WindowSize{Width: DefaultMinWidth, Height: DefaultMinHeight},
		Cascade:           geometry.DefaultCascade(),
		AnimationDuration: DefaultAnimationDuration,
	}
}

// minSizeFor returns the floor for an app, honouring a per-app override
func (c Config) minSizeFor(app types.AppDefinition) types.WindowSize {
	if app.MinSize != nil && !app.MinSize.IsZero() {
		return *app.MinSize
	}
	return c.MinSize
}
