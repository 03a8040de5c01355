package main

import (
	"fmt"
	"log"
	"os"

	"nearby/cmd"
	"nearby/internal/db"
	"nearby/internal/location"
	"nearby/internal/places"
	"nearby/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file.
	logFile, err := tea.LogToFile(config.LogPath, "nearby")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if config.APIKey == "" {
		fmt.Fprintln(os.Stderr, "ℹ  No GOOGLE_API_KEY set; searches will fail until one is configured")
	}
	client := places.NewClient(places.Config{
		APIKey:  config.APIKey,
		BaseURL: config.BaseURL,
	})

	var locator location.Provider
	if config.HasFixedLocation {
		locator = location.NewStatic(config.Coordinates(), true)
	} else {
		locator = location.NewIPLookup(config.LocationURL, config.LocationGranted)
	}

	// Detect terminal capabilities
	termCaps := ui.DetectTerminalCapabilities()

	// Open database
	database, err := db.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	log.Printf("starting version=%s db=%s fixed_location=%t", version, config.DBPath, config.HasFixedLocation)

	app := ui.New(ui.Config{
		DB:       database,
		Places:   client,
		Locator:  locator,
		TermCaps: termCaps,
		Category: config.Category,
		Radius:   config.Radius,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
