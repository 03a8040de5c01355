package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"nearby/internal/location"
	"nearby/internal/model"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	APIKey      string
	BaseURL     string
	LocationURL string
	DBPath      string
	LogPath     string

	// Fixed search center from -lat/-lng. Skips location lookup.
	Latitude         float64
	Longitude        float64
	HasFixedLocation bool
	LocationGranted  bool

	Category model.Category
	Radius   int

	Setup       bool
	ShowVersion bool
}

// Coordinates returns the fixed search center.
func (c *Config) Coordinates() model.Coordinates {
	return model.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	// Load .env files first so env-based defaults work with flag parsing.
	// Variables already set in the environment win.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	config, err := parseArgs(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		return nil, err
	}
	if config.ShowVersion {
		fmt.Printf("nearby %s\n", version)
		os.Exit(0)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultDir := filepath.Join(home, ".nearby")

	var configDir string
	if config.DBPath == "" {
		configDir = defaultDir
		config.DBPath = filepath.Join(configDir, "nearby.db")
	} else {
		configDir = filepath.Dir(config.DBPath)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	if config.LogPath == "" {
		config.LogPath = filepath.Join(configDir, "nearby.log")
	}

	settings, err := loadOnboardingSettings(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load onboarding settings: %w", err)
	}

	if shouldRunOnboarding(settings, config.Setup) {
		settings, err = runOnboarding(configDir, config.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to run onboarding: %w", err)
		}
	}

	if config.APIKey == "" {
		secureKey, err := loadSecureAPIKey(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load secure API key: %w", err)
		}
		config.APIKey = secureKey
	}

	// Coordinates passed explicitly count as consent.
	config.LocationGranted = settings.LocationGranted || config.HasFixedLocation

	return config, nil
}

// parseArgs reads flags and their environment fallbacks. It does no I/O
// beyond writing usage errors to output.
func parseArgs(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	config := &Config{}
	fs := flag.NewFlagSet("nearby", flag.ContinueOnError)
	fs.SetOutput(output)

	var lat, lng, category string
	fs.StringVar(&config.APIKey, "key", "", "Google Places API key (or set GOOGLE_API_KEY env var)")
	fs.StringVar(&config.BaseURL, "base-url", "", "Places API base URL (or set PLACES_BASE_URL env var)")
	fs.StringVar(&config.DBPath, "db", "", "Path to SQLite database file (default: ~/.nearby/nearby.db)")
	fs.StringVar(&config.LogPath, "log", "", "Path to log file (default: next to the database)")
	fs.StringVar(&lat, "lat", "", "Fixed latitude to search around (or set NEARBY_LAT)")
	fs.StringVar(&lng, "lng", "", "Fixed longitude to search around (or set NEARBY_LNG)")
	fs.StringVar(&category, "category", "", "Initial category: "+categoryList())
	fs.IntVar(&config.Radius, "radius", 0, "Initial search radius in meters (1000-20000)")
	fs.BoolVar(&config.Setup, "setup", false, "Run the setup prompts again")
	fs.BoolVar(&config.ShowVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if config.APIKey == "" {
		config.APIKey = getenv("GOOGLE_API_KEY")
	}
	config.APIKey = strings.TrimSpace(config.APIKey)
	if config.BaseURL == "" {
		config.BaseURL = getenv("PLACES_BASE_URL")
	}
	config.LocationURL = getenv("NEARBY_LOCATE_URL")
	if config.LocationURL == "" {
		config.LocationURL = location.DefaultIPLookupURL
	}
	if lat == "" {
		lat = getenv("NEARBY_LAT")
	}
	if lng == "" {
		lng = getenv("NEARBY_LNG")
	}

	if err := config.setCoordinates(lat, lng); err != nil {
		return nil, err
	}

	if category != "" {
		c := model.Category(strings.ToLower(strings.TrimSpace(category)))
		if !c.Valid() {
			return nil, fmt.Errorf("unknown category %q (want one of %s)", category, categoryList())
		}
		config.Category = c
	}
	if config.Radius < 0 {
		return nil, fmt.Errorf("radius must be positive, got %d", config.Radius)
	}
	if config.Radius > 0 {
		config.Radius = model.ClampRadius(config.Radius)
	}

	return config, nil
}

func (c *Config) setCoordinates(lat, lng string) error {
	if lat == "" && lng == "" {
		return nil
	}
	if lat == "" || lng == "" {
		return errors.New("latitude and longitude must be given together")
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil || math.IsNaN(la) || la < -90 || la > 90 {
		return fmt.Errorf("invalid latitude %q", lat)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil || math.IsNaN(lo) || lo < -180 || lo > 180 {
		return fmt.Errorf("invalid longitude %q", lng)
	}
	c.Latitude = la
	c.Longitude = lo
	c.HasFixedLocation = true
	return nil
}

func categoryList() string {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
