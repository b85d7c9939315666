package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

var ErrInvalidValue = usage.NewDynamic2Type("config_invalid_value", usage.CategorySemantic, func(key, reason any) string {
	return "Invalid value for " + key.(string) + ": " + reason.(string)
})

// Validate rejects values the application could not use for key.
// Keys without a known format accept anything.
func Validate(key, value string) error {
	switch key {
	case "theme":
		if _, ok := style.Themes[value]; ok || slices.Contains(style.BaseThemeNames, value) {
			return nil
		}
		return ErrInvalidValue.Create(key, "unknown theme "+strconv.Quote(value))
	case "color":
		return oneOf(key, value, "auto", "always", "never")
	case "display_time":
		return oneOf(key, value, "12h", "24h")
	case "log_level":
		return oneOf(key, value, "debug", "info", "warn", "error")
	case "enable_log":
		if _, err := strconv.ParseBool(value); err != nil {
			return ErrInvalidValue.Create(key, "expected true or false")
		}
	case "suggestion_limit", "history_size":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return ErrInvalidValue.Create(key, "expected a positive number")
		}
	case "color_success", "color_warning", "color_error", "color_info", "color_muted", "color_header":
		if key == "color_header" && value == "bold" {
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 255 {
			return ErrInvalidValue.Create(key, "expected an ANSI color 0-255")
		}
	}
	return nil
}

func oneOf(key, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return ErrInvalidValue.Create(key, "expected one of "+strings.Join(allowed, ", "))
}
