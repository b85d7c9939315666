package style

import (
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	Literal  string // command keywords
	Argument string // <placeholders> and typed values
	Selected string // highlighted suggestion in the console
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
	"contrast",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success:  "10",  // bright green
		Warning:  "11",  // bright yellow
		Error:    "9",   // bright red
		Info:     "14",  // bright cyan
		Muted:    "245", // medium gray
		Header:   "bold",
		Literal:  "15",  // white
		Argument: "12",  // bright blue
		Selected: "13",  // bright magenta
	},
	"default-light": {
		Success:  "28",  // dark green
		Warning:  "130", // dark orange
		Error:    "124", // dark red
		Info:     "27",  // dark blue
		Muted:    "243", // medium-dark gray
		Header:   "bold",
		Literal:  "235", // near black
		Argument: "25",  // navy
		Selected: "90",  // dark magenta
	},

	// Mono relies on weight and gray levels only.
	"mono-dark": {
		Success:  "252",
		Warning:  "250",
		Error:    "255",
		Info:     "248",
		Muted:    "240",
		Header:   "bold",
		Literal:  "255",
		Argument: "246",
		Selected: "bold",
	},
	"mono-light": {
		Success:  "236",
		Warning:  "238",
		Error:    "232",
		Info:     "240",
		Muted:    "247",
		Header:   "bold",
		Literal:  "232",
		Argument: "242",
		Selected: "bold",
	},

	"ocean-dark": {
		Success:  "43",  // sea green
		Warning:  "222", // sand
		Error:    "203", // coral
		Info:     "81",  // sky
		Muted:    "67",  // slate
		Header:   "bold",
		Literal:  "159", // foam
		Argument: "39",  // deep sky
		Selected: "123", // aqua
	},
	"ocean-light": {
		Success:  "29",
		Warning:  "136",
		Error:    "160",
		Info:     "24",
		Muted:    "66",
		Header:   "bold",
		Literal:  "23",
		Argument: "31",
		Selected: "25",
	},

	"contrast-dark": {
		Success:  "46",
		Warning:  "226",
		Error:    "196",
		Info:     "51",
		Muted:    "250",
		Header:   "bold",
		Literal:  "231",
		Argument: "45",
		Selected: "201",
	},
	"contrast-light": {
		Success:  "22",
		Warning:  "94",
		Error:    "88",
		Info:     "18",
		Muted:    "238",
		Header:   "bold",
		Literal:  "16",
		Argument: "19",
		Selected: "53",
	},
}

// colorConfigKeys maps config key names to setters.
var colorConfigKeys = map[string]func(*ColorConfig, string){
	"color_success": func(c *ColorConfig, v string) { c.Success = v },
	"color_warning": func(c *ColorConfig, v string) { c.Warning = v },
	"color_error":   func(c *ColorConfig, v string) { c.Error = v },
	"color_info":    func(c *ColorConfig, v string) { c.Info = v },
	"color_muted":   func(c *ColorConfig, v string) { c.Muted = v },
	"color_header":  func(c *ColorConfig, v string) { c.Header = v },
}

// ThemeNames returns every accepted theme name: the bases followed by
// each explicit variant, sorted.
func ThemeNames() []string {
	variants := make([]string, 0, len(Themes))
	for name := range Themes {
		variants = append(variants, name)
	}
	slices.Sort(variants)
	return append(slices.Clone(BaseThemeNames), variants...)
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name
// based on the terminal background. Suffixed names are returned as-is.
func ResolveThemeName(name string) string {
	return resolveThemeName(name, IsDarkBackground)
}

func resolveThemeName(name string, dark func() bool) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if dark() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (BRIG_COLOR_*)
// 2. Config value
// 3. Theme value (from the theme key)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	return loadColorConfig(cfg, os.Getenv, IsDarkBackground)
}

func loadColorConfig(cfg map[string]string, getenv func(string) string, dark func() bool) ColorConfig {
	themeName := resolveThemeName("default", dark)
	if name := cfg["theme"]; name != "" {
		themeName = resolveThemeName(name, dark)
	}

	result, ok := Themes[themeName]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, set := range colorConfigKeys {
		if v := getenv("BRIG_" + strings.ToUpper(key)); v != "" {
			set(&result, v)
			continue
		}
		if v := cfg[key]; v != "" {
			set(&result, v)
		}
	}

	return result
}
