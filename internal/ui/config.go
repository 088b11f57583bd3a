package ui

import "github.com/kateleext/textfusion/internal/highlight"

// Config holds the settings read from the environment at start-up
type Config struct {
	Dev      bool   // TEXTFUSION_DEV=1: write a debug log
	Language string // TEXTFUSION_LANG: chroma lexer for the left pane
	Style    string // TEXTFUSION_STYLE: chroma style name
}

// DebugLogFile is where the debug log goes in dev builds
const DebugLogFile = "textfusion-debug.log"

// ConfigFromEnv builds a Config using getenv, normally os.Getenv
func ConfigFromEnv(getenv func(string) string) Config {
	style := getenv("TEXTFUSION_STYLE")
	if style == "" {
		style = highlight.DefaultStyle
	}
	return Config{
		Dev:      getenv("TEXTFUSION_DEV") == "1",
		Language: getenv("TEXTFUSION_LANG"),
		Style:    style,
	}
}
