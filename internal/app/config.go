package app

import "sticky-notes/internal/logger"

const (
	AppName    = "Sticky Notes"
	AppID      = "com.stickynotes.desktop"
	AppVersion = "1.0.0"
)

type Config struct {
	NotesFile        string
	WindowConfigFile string
	Title            string
	Log              logger.Config
}

func DefaultConfig() Config {
	return Config{
		NotesFile:        "sticky_notes_data.json",
		WindowConfigFile: "window_config.json",
		Title:            AppName,
		Log:              logger.DefaultConfig(),
	}
}
