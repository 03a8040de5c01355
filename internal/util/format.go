package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"nearby/internal/model"
)

// FormatDate formats a timestamp for display.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Local().Format("Jan 02, 2006")
}

// FormatDateHuman formats a timestamp with humanized relative display.
// "Today", "Yesterday", "3d ago", "Jan 15", "Jan 15 '24"
func FormatDateHuman(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	t = t.Local()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateDay := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	days := int(today.Sub(dateDay).Hours() / 24)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("%dd ago", days)
	case t.Year() == now.Year():
		return t.Format("Jan 02")
	default:
		return t.Format("Jan 02 '06")
	}
}

// FormatRating formats a 1-5 rating as "4.5 ★", or a dash if nil.
func FormatRating(rating *float64) string {
	if rating == nil {
		return "—"
	}
	return formatRatingNumber(*rating) + " ★"
}

// FormatRatingStars formats a 1-5 rating as stars (e.g., "★★★★☆").
func FormatRatingStars(rating *float64) string {
	if rating == nil {
		return "—"
	}
	stars := int(math.Round(*rating))
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
}

func formatRatingNumber(v float64) string {
	// Keep one decimal at most, but avoid trailing .0 for whole values.
	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s
}

// FormatRadius formats meters as kilometers: "5 km", "1.5 km".
func FormatRadius(meters int) string {
	km := float64(meters) / 1000
	return strings.TrimSuffix(strconv.FormatFloat(km, 'f', 1, 64), ".0") + " km"
}

// FormatDistance formats a distance in meters: "850 m", "1.2 km", "14 km".
func FormatDistance(meters float64) string {
	switch {
	case meters < 0:
		return "—"
	case meters < 1000:
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	case meters < 10000:
		return fmt.Sprintf("%.1f km", meters/1000)
	default:
		return fmt.Sprintf("%d km", int(math.Round(meters/1000)))
	}
}

// FormatCoordinates formats coordinates with hemisphere letters.
func FormatCoordinates(c model.Coordinates) string {
	ns := "N"
	if c.Latitude < 0 {
		ns = "S"
	}
	ew := "E"
	if c.Longitude < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.4f°%s %.4f°%s", math.Abs(c.Latitude), ns, math.Abs(c.Longitude), ew)
}

// FormatDuration formats a request duration compactly: "120ms", "1.4s".
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
