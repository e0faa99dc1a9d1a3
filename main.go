// Package main provides the entry point for the TF Editor application.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"tfeditor/internal/app"
	"tfeditor/internal/editor"
	"tfeditor/internal/version"
	"tfeditor/ui/mainwindow"
	"tfeditor/ui/prefs"
)

const appID = "io.github.tfeditor"

func main() {
	verbose := flag.Bool("v", false, "Log editor interactions")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s", version.String())

	setupLogging(*verbose)

	fyneApp := fyneapp.NewWithID(appID)
	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Handle command line arguments, falling back to the last preset
	presetPath := flag.Arg(0)
	if presetPath == "" {
		presetPath = appPrefs.LastPreset()
	}
	if presetPath != "" {
		if _, err := os.Stat(presetPath); err != nil {
			log.Printf("Skipping preset %s: %v", presetPath, err)
		} else {
			win.OpenPreset(presetPath)
		}
	}

	win.ShowAndRun()
}

// setupLogging routes library logs to stderr. Only warnings are shown unless
// verbose is set.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	editor.SetLogger(logger)
	app.SetLogger(logger)
}
