package registry

import "github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"

func size(w, h int) types.WindowSize {
	return types.WindowSize{Width: w, Height: h}
}

// Builtins returns the stock applications shipped with the shell
func Builtins() []types.AppDefinition {
	return []types.AppDefinition{
		{ID: "copilot", Title: "Copilot", Icon: "message-square", DefaultSize: size(500, 600), Renderer: "ChatApp", Category: "productivity", Pinned: true},
		{ID: "explorer", Title: "File Explorer", Icon: "folder", DefaultSize: size(800, 500), Renderer: "FileExplorerApp", Category: "system", Pinned: true, MultiInstance: true},
		{ID: "studio", Title: "Studio", Icon: "image", DefaultSize: size(900, 700), Renderer: "StudioApp", Category: "creative", Pinned: true},
		{ID: "voice", Title: "Voice", Icon: "mic", DefaultSize: size(400, 500), Renderer: "VoiceApp", Category: "productivity"},
		{ID: "settings", Title: "Settings", Icon: "settings", DefaultSize: size(900, 650), Renderer: "SettingsApp", Category: "system", Pinned: true},
		{ID: "calculator", Title: "Calculator", Icon: "calculator", DefaultSize: size(400, 600), Renderer: "CalculatorApp", Category: "utilities", MultiInstance: true},
		{ID: "notepad", Title: "Notepad", Icon: "file-text", DefaultSize: size(600, 500), Renderer: "NotepadApp", Category: "utilities", MultiInstance: true},
		{ID: "terminal", Title: "Terminal", Icon: "terminal", DefaultSize: size(700, 500), Renderer: "TerminalApp", Category: "system", Pinned: true, MultiInstance: true},
		{ID: "store", Title: "Store", Icon: "store", DefaultSize: size(900, 700), Renderer: "StoreApp", Category: "system"},
		{ID: "weather", Title: "Weather", Icon: "cloud", DefaultSize: size(500, 600), Renderer: "WeatherApp", Category: "utilities"},
	}
}
