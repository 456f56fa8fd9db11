package styling

import (
	"fmt"

	"github.com/pcaisse/vic/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Text        DrawStyling
	Status      DrawStyling
	CommandLine DrawStyling
	Error       DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"text", &stylesheet.Text, c.Text},
		{"status", &stylesheet.Status, c.Status},
		{"command-line", &stylesheet.CommandLine, c.CommandLine},
		{"error", &stylesheet.Error, c.Error},
	} {
		style, err := StyleFromConfig(entry.source)
		if err != nil {
			return nil, fmt.Errorf("invalid '%s' styling: %w", entry.name, err)
		}
		*entry.target = style
	}

	return &stylesheet, nil
}
