package config

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Text:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Status:      Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			CommandLine: Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Error:       Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		}
	}
	return Stylesheet{
		Text:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Status:      Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		CommandLine: Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Error:       Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
	}
}
