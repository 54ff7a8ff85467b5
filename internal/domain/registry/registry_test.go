package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

func TestDefaultManagerHasBuiltins(t *testing.T) {
	m := NewDefaultManager()

	apps := m.List(nil)
	require.Len(t, apps, 10)
	assert.Equal(t, "copilot", apps[0].ID)

	calc, ok := m.Get("calculator")
	require.True(t, ok)
	assert.Equal(t, types.WindowSize{Width: 400, Height: 600}, calc.DefaultSize)
	assert.Equal(t, "CalculatorApp", calc.Renderer)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestListByCategory(t *testing.T) {
	m := NewDefaultManager()

	system := "system"
	for _, app := range m.List(&system) {
		assert.Equal(t, "system", app.Category)
	}
	assert.Contains(t, m.Categories(), "utilities")
	assert.NotEmpty(t, m.Pinned())
}

func TestRegisterValidates(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name    string
		app     types.AppDefinition
		wantErr bool
	}{
		{"valid", types.AppDefinition{ID: "paint", Category: "creative"}, false},
		{"missing id", types.AppDefinition{Title: "x"}, true},
		{"unsafe id", types.AppDefinition{ID: "../etc"}, true},
		{"bad category", types.AppDefinition{ID: "a", Category: "two words"}, true},
		{"negative size", types.AppDefinition{ID: "b", DefaultSize: types.WindowSize{Width: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.Register(tt.app)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	paint, ok := m.Get("paint")
	require.True(t, ok)
	assert.Equal(t, "paint", paint.Title)
}

func TestRegisterReplaces(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(types.AppDefinition{ID: "paint", Title: "Paint"}))
	require.NoError(t, m.Register(types.AppDefinition{ID: "paint", Title: "Paint 2"}))

	assert.Len(t, m.List(nil), 1)
	app, _ := m.Get("paint")
	assert.Equal(t, "Paint 2", app.Title)
	assert.Equal(t, 1, m.Stats().TotalApps)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSeederLoadsYAMLAndTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "paint.yaml", `
id: paint
title: Paint
default_size:
  width: 800
  height: 600
min_size:
  width: 300
  height: 200
renderer: PaintApp
category: creative
`)
	writeFile(t, dir, "games/bundle.yml", `
apps:
  - id: chess
    title: Chess
    renderer: ChessApp
  - id: mines
    title: Mines
    renderer: MinesApp
`)
	writeFile(t, dir, "nested/deep/clock.toml", `
id = "clock"
title = "Clock"
renderer = "ClockApp"
pinned = true

[default_size]
width = 420
height = 320
`)
	writeFile(t, dir, "readme.md", "not a catalogue file")

	m := NewManager()
	result, err := NewSeeder(m, dir, "", nil).SeedApps()
	require.NoError(t, err)

	assert.Equal(t, 3, result.Files)
	assert.Equal(t, 4, result.Loaded)
	assert.Equal(t, 0, result.Failed)

	paint, ok := m.Get("paint")
	require.True(t, ok)
	require.NotNil(t, paint.MinSize)
	assert.Equal(t, types.WindowSize{Width: 300, Height: 200}, *paint.MinSize)

	clock, ok := m.Get("clock")
	require.True(t, ok)
	assert.True(t, clock.Pinned)
	assert.Equal(t, types.WindowSize{Width: 420, Height: 320}, clock.DefaultSize)

	assert.True(t, m.Exists("chess"))
	assert.True(t, m.Exists("mines"))
}

func TestSeederSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yaml", "id: [unterminated")
	writeFile(t, dir, "empty.toml", "")
	writeFile(t, dir, "bad.yaml", "id: \"no spaces allowed\"")
	writeFile(t, dir, "good.yaml", "id: good\ntitle: Good")

	m := NewManager()
	result, err := NewSeeder(m, dir, "", nil).SeedApps()
	require.NoError(t, err)

	assert.Equal(t, 4, result.Files)
	assert.Equal(t, 1, result.Loaded)
	assert.Equal(t, 3, result.Failed)
	assert.True(t, m.Exists("good"))
}

func TestSeederMissingDirectory(t *testing.T) {
	m := NewManager()
	result, err := NewSeeder(m, filepath.Join(t.TempDir(), "absent"), "", nil).SeedApps()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Files)
}

func TestLoadFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.json", `{"id":"x"}`)

	_, err := LoadFile(filepath.Join(dir, "app.json"))
	assert.Error(t, err)
}
