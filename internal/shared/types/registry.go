package types

// AppDefinition describes a launchable application. Definitions are immutable
// once the catalogue is seeded.
type AppDefinition struct {
	ID            string      `json:"id" yaml:"id" toml:"id"`
	Title         string      `json:"title" yaml:"title" toml:"title"`
	Icon          string      `json:"icon" yaml:"icon" toml:"icon"`
	DefaultSize   WindowSize  `json:"default_size" yaml:"default_size" toml:"default_size"`
	MinSize       *WindowSize `json:"min_size,omitempty" yaml:"min_size,omitempty" toml:"min_size,omitempty"`
	Renderer      string      `json:"renderer" yaml:"renderer" toml:"renderer"`
	Category      string      `json:"category" yaml:"category" toml:"category"`
	Pinned        bool        `json:"pinned" yaml:"pinned" toml:"pinned"`
	MultiInstance bool        `json:"multi_instance" yaml:"multi_instance" toml:"multi_instance"`
}

// MountSpec is what the shell needs to mount an application body
type MountSpec struct {
	WindowID string `json:"window_id"`
	AppID    string `json:"app_id"`
	Renderer string `json:"renderer"`
	IsActive bool   `json:"is_active"`
}

// RegistryStats contains catalogue statistics
type RegistryStats struct {
	TotalApps  int            `json:"total_apps"`
	Pinned     int            `json:"pinned"`
	Categories map[string]int `json:"categories"`
}
