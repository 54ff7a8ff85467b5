package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArbiterRaiseIsMonotonic(t *testing.T) {
	a := NewArbiter()

	z1 := a.Raise("a")
	z2 := a.Raise("b")
	z3 := a.Raise("a")

	assert.Less(t, z1, z2)
	assert.Less(t, z2, z3)
	assert.Equal(t, z3, a.Top())
	assert.Equal(t, "a", a.Active())

	z4 := a.Reserve()
	assert.Greater(t, z4, z3)
	assert.Equal(t, "a", a.Active())
}

func TestArbiterRelease(t *testing.T) {
	a := NewArbiter()
	a.Raise("a")

	assert.False(t, a.Release("b"))
	assert.Equal(t, "a", a.Active())

	assert.True(t, a.Release("a"))
	assert.Equal(t, "", a.Active())
	assert.False(t, a.Release("a"))

	a.Raise("c")
	a.ReleaseAll()
	assert.Equal(t, "", a.Active())
}

func TestTaskbarClick(t *testing.T) {
	tests := []struct {
		name      string
		instances []Candidate
		active    string
		want      Decision
	}{
		{
			name: "no instances opens",
			want: Decision{Action: ActionOpen},
		},
		{
			name:      "single active instance minimizes",
			instances: []Candidate{{ID: "w1", ZIndex: 3}},
			active:    "w1",
			want:      Decision{Action: ActionMinimize, WindowID: "w1"},
		},
		{
			name:      "single inactive instance focuses",
			instances: []Candidate{{ID: "w1", ZIndex: 3}},
			active:    "other",
			want:      Decision{Action: ActionFocus, WindowID: "w1"},
		},
		{
			name:      "single minimized instance focuses",
			instances: []Candidate{{ID: "w1", ZIndex: 3, Minimized: true}},
			active:    "w1",
			want:      Decision{Action: ActionFocus, WindowID: "w1"},
		},
		{
			name:      "many with active visible minimizes it",
			instances: []Candidate{{ID: "w1", ZIndex: 9}, {ID: "w2", ZIndex: 4}},
			active:    "w2",
			want:      Decision{Action: ActionMinimize, WindowID: "w2"},
		},
		{
			name:      "many without active focuses highest",
			instances: []Candidate{{ID: "w1", ZIndex: 2}, {ID: "w2", ZIndex: 7, Minimized: true}, {ID: "w3", ZIndex: 5}},
			active:    "",
			want:      Decision{Action: ActionFocus, WindowID: "w2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TaskbarClick(tt.instances, tt.active))
		})
	}
}

func TestCycleNext(t *testing.T) {
	windows := []Candidate{
		{ID: "a", ZIndex: 5},
		{ID: "b", ZIndex: 2},
		{ID: "c", ZIndex: 1, Minimized: true},
		{ID: "d", ZIndex: 7},
	}

	next, ok := CycleNext(windows, "d")
	assert.True(t, ok)
	assert.Equal(t, "b", next)

	_, ok = CycleNext([]Candidate{{ID: "a", ZIndex: 1}}, "a")
	assert.False(t, ok)

	_, ok = CycleNext(nil, "")
	assert.False(t, ok)
}

func TestTop(t *testing.T) {
	_, ok := Top(nil)
	assert.False(t, ok)

	top, ok := Top([]Candidate{{ID: "a", ZIndex: 1}, {ID: "b", ZIndex: 3}, {ID: "c", ZIndex: 2}})
	assert.True(t, ok)
	assert.Equal(t, "b", top.ID)
}
