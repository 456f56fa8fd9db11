package styling

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pcaisse/vic/internal/config"
)

func TestLighten(t *testing.T) {
	grey := colorful.Color{
		R: float64(0x80) / 255.0,
		G: float64(0x80) / 255.0,
		B: float64(0x80) / 255.0,
	}

	t.Run("0% -> no change", func(t *testing.T) {
		result := lightenColorfulColor(grey, 0)
		if !result.AlmostEqualRgb(grey) {
			t.Errorf("%s instead of %s", result.Hex(), grey.Hex())
		}
	})

	t.Run("100% -> white", func(t *testing.T) {
		white := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
		result := lightenColorfulColor(grey, 100)
		if !result.AlmostEqualRgb(white) {
			t.Errorf("%s instead of %s", result.Hex(), white.Hex())
		}
	})

	t.Run("50% -> 50% lighter", func(t *testing.T) {
		expected := colorful.Color{
			R: float64(0xc0) / 255.0,
			G: float64(0xc0) / 255.0,
			B: float64(0xc0) / 255.0,
		}
		result := lightenColorfulColor(grey, 50)
		if !result.AlmostEqualRgb(expected) {
			t.Errorf("%s instead of %s", result.Hex(), expected.Hex())
		}
	})

	t.Run("75% lighter <=> 50% lighter then 50% lighter again", func(t *testing.T) {
		a := lightenColorfulColor(grey, 75)
		b := lightenColorfulColor(lightenColorfulColor(grey, 50), 50)
		if !a.AlmostEqualRgb(b) {
			t.Errorf("%s != %s (dist: %f)", a.Hex(), b.Hex(), a.DistanceRgb(b))
		}
	})
}

func TestDarken(t *testing.T) {
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}

	t.Run("100% -> black", func(t *testing.T) {
		black := colorful.Color{}
		result := darkenColorfulColor(grey, 100)
		if !result.AlmostEqualRgb(black) {
			t.Errorf("%s instead of %s", result.Hex(), black.Hex())
		}
	})

	t.Run("0% -> no change", func(t *testing.T) {
		result := darkenColorfulColor(grey, 0)
		if !result.AlmostEqualRgb(grey) {
			t.Errorf("%s instead of %s", result.Hex(), grey.Hex())
		}
	})
}

func TestStyleFromHex(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := StyleFromHex("#ff0000", "#000")
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		fg, bg, _ := s.AsTcell().Decompose()
		if fg != tcell.NewHexColor(0xff0000) {
			t.Errorf("unexpected fg %v", fg)
		}
		if bg != tcell.NewHexColor(0x000000) {
			t.Errorf("unexpected bg %v", bg)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		if _, err := StyleFromHex("red", "#000000"); err == nil {
			t.Error("no error on invalid fg")
		}
		if _, err := StyleFromHex("#000000", ""); err == nil {
			t.Error("no error on invalid bg")
		}
	})
}

func TestStyleModifiers(t *testing.T) {
	s, err := StyleFromConfig(config.Styling{Fg: "#808080", Bg: "#808080", Style: &config.FontStyle{Italic: true}})
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}

	_, _, attrs := s.AsTcell().Decompose()
	if attrs&tcell.AttrItalic == 0 || attrs&tcell.AttrBold != 0 {
		t.Error("unexpected attributes from config:", s.ToString())
	}

	_, _, attrs = s.Bolded().AsTcell().Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("bolded style not bold")
	}
	_, _, attrs = s.AsTcell().Decompose()
	if attrs&tcell.AttrBold != 0 {
		t.Error("bolding modified the original")
	}

	fg, _, _ := s.DefaultEmphasized().AsTcell().Decompose()
	r, _, _ := fg.RGB()
	if r >= 0x80 {
		t.Errorf("emphasized color not darker (r=%d)", r)
	}
	fg, _, _ = s.DefaultDimmed().AsTcell().Decompose()
	r, _, _ = fg.RGB()
	if r <= 0x80 {
		t.Errorf("dimmed color not lighter (r=%d)", r)
	}
}

func TestNewStylesheetFromConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, theme := range []config.ColorschemeType{config.Dark, config.Light} {
			stylesheet, err := NewStylesheetFromConfig(config.Default(theme).Stylesheet)
			if err != nil {
				t.Fatal("unexpected error on defaults:", err.Error())
			}
			if stylesheet.Text == nil || stylesheet.Status == nil || stylesheet.CommandLine == nil || stylesheet.Error == nil {
				t.Error("stylesheet incomplete:", stylesheet)
			}
		}
	})
	t.Run("invalid color", func(t *testing.T) {
		c := config.Default(config.Dark).Stylesheet
		c.Error.Fg = "#nothex"
		if _, err := NewStylesheetFromConfig(c); err == nil {
			t.Error("no error on invalid color")
		}
	})
}
