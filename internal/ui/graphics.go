package ui

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"nearby/internal/model"
	"nearby/internal/places"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qeesung/image2ascii/convert"
)

// TerminalCapabilities describes how rich the photo preview can be.
type TerminalCapabilities struct {
	TrueColor      bool
	SupportsKitty  bool
	SupportsITerm2 bool
}

// DetectTerminalCapabilities inspects the environment of the running terminal.
func DetectTerminalCapabilities() TerminalCapabilities {
	term := os.Getenv("TERM")
	colorTerm := os.Getenv("COLORTERM")

	return TerminalCapabilities{
		TrueColor:      colorTerm == "truecolor" || colorTerm == "24bit",
		SupportsKitty:  strings.Contains(term, "kitty") || os.Getenv("KITTY_WINDOW_ID") != "",
		SupportsITerm2: os.Getenv("TERM_PROGRAM") == "iTerm.app",
	}
}

// Colored reports whether ANSI colored art should be used.
func (c TerminalCapabilities) Colored() bool {
	return c.TrueColor || c.SupportsKitty || c.SupportsITerm2
}

// RenderPhoto renders a place photo as ASCII art sized for the detail panel.
func RenderPhoto(img image.Image, caps TerminalCapabilities, targetWidth, targetHeight int) string {
	converter := convert.NewImageConverter()

	opts := convert.DefaultOptions
	opts.FixedWidth = targetWidth
	opts.FixedHeight = targetHeight
	opts.FitScreen = false
	opts.Colored = caps.Colored()
	opts.Ratio = 0.5 // terminal cells are about twice as tall as wide

	return converter.Image2ASCIIString(img, &opts)
}

// loadPhotoCmd downloads a photo URL and renders it. The places client only
// builds the URL, the download happens here.
func loadPhotoCmd(client *http.Client, photoURL, ref string, caps TerminalCapabilities, width, height int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		img, err := fetchImage(ctx, client, photoURL)
		if err != nil {
			log.Printf("ui: photo %s: %v", ref, err)
			return model.PhotoLoadedMsg{Reference: ref, Err: err}
		}
		return model.PhotoLoadedMsg{Reference: ref, Art: RenderPhoto(img, caps, width, height)}
	}
}

func fetchImage(ctx context.Context, client *http.Client, photoURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("photo request failed: %w", places.RedactError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo request returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}
	return img, nil
}
