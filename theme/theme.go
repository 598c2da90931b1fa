// Package theme holds the light and dark style tables for the page.
package theme

import "strings"

// Mode is the theme flag.
type Mode bool

const (
	Light Mode = false
	Dark  Mode = true
)

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	return !m
}

// IsDark reports whether m is the dark theme.
func (m Mode) IsDark() bool {
	return bool(m)
}

func (m Mode) String() string {
	if m {
		return "dark"
	}
	return "light"
}

// ParseMode accepts "light" or "dark", case-insensitively. Anything else is
// Light.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "dark") {
		return Dark
	}
	return Light
}

// Classes is the set of utility classes that vary with the theme.
type Classes struct {
	Bg            string
	Text          string
	TextSecondary string
	CardBg        string
	CardHover     string
	NavBg         string
	SectionBg     string
	Border        string
	Input         string
	FooterBg      string
	// Track is the unfilled part of a skill bar.
	Track string
	// BadgeFill colors the rotating badge text.
	BadgeFill string
	// Button is the primary call-to-action.
	Button string
	// Dots is the hero grid-pattern dot color.
	Dots string
}

var light = Classes{
	Bg:            "bg-gradient-to-br from-amber-50 via-orange-50 to-red-50",
	Text:          "text-gray-800",
	TextSecondary: "text-gray-600",
	CardBg:        "bg-white/80",
	CardHover:     "hover:bg-white",
	NavBg:         "bg-white/90",
	SectionBg:     "bg-white/50",
	Border:        "border-gray-200",
	Input:         "bg-white/80 border-gray-200 text-gray-800 placeholder-gray-500",
	FooterBg:      "bg-white/80 border-gray-200",
	Track:         "bg-gray-200",
	BadgeFill:     "fill-gray-800",
	Button:        "bg-gray-800 hover:bg-gray-900 text-white",
	Dots:          "rgba(0,0,0,0.3)",
}

var dark = Classes{
	Bg:            "bg-gradient-to-br from-gray-900 via-gray-800 to-gray-900",
	Text:          "text-white",
	TextSecondary: "text-gray-300",
	CardBg:        "bg-gray-800/80",
	CardHover:     "hover:bg-gray-700",
	NavBg:         "bg-gray-900/90",
	SectionBg:     "bg-gray-800/50",
	Border:        "border-gray-700",
	Input:         "bg-gray-800/80 border-gray-600 text-white placeholder-gray-400",
	FooterBg:      "bg-gray-900/80 border-gray-700",
	Track:         "bg-gray-700",
	BadgeFill:     "fill-white",
	Button:        "bg-white text-gray-900 hover:bg-gray-100",
	Dots:          "rgba(255,255,255,0.3)",
}

// ClassesFor looks up the style table for m.
func ClassesFor(m Mode) Classes {
	if m {
		return dark
	}
	return light
}
