// Package format renders timestamps and world ticks for history and query output.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/footprint-tools/brig/internal/domain"
)

// Layout holds the Go time layouts derived from display_date and display_time.
type Layout struct {
	Date      string
	DateShort string
	Time      string
	TimeFull  string
}

// DefaultLayout is used when nothing is configured.
var DefaultLayout = NewLayout("", "")

// FromConfig builds a Layout from a config getter.
func FromConfig(get func(string) (string, bool)) Layout {
	date, _ := get("display_date")
	clock, _ := get("display_time")
	return NewLayout(date, clock)
}

// NewLayout resolves the display_date and display_time settings.
func NewLayout(displayDate, displayTime string) Layout {
	if displayDate == "" {
		displayDate = "Jan 02"
	}

	l := Layout{}

	switch displayDate {
	case "mm/dd/yyyy":
		l.Date, l.DateShort = "01/02/2006", "01/02"
	case "yyyy-mm-dd":
		l.Date, l.DateShort = "2006-01-02", "01-02"
	case "dd/mm/yyyy":
		l.Date, l.DateShort = "02/01/2006", "02/01"
	default:
		// A custom Go layout; the short form drops the year.
		l.Date, l.DateShort = displayDate, stripYear(displayDate)
	}

	if displayTime == "12h" {
		l.Time, l.TimeFull = "3:04 PM", "3:04:05 PM"
	} else {
		l.Time, l.TimeFull = "15:04", "15:04:05"
	}

	return l
}

func stripYear(layout string) string {
	short := layout
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		return "Jan 02"
	}
	return short
}

// DateTime formats date and time, e.g. "23/01/2024 15:04".
func (l Layout) DateTime(t time.Time) string {
	return t.Format(l.Date) + " " + t.Format(l.Time)
}

// DateTimeShort formats without the year, e.g. "23/01 15:04".
func (l Layout) DateTimeShort(t time.Time) string {
	return t.Format(l.DateShort) + " " + t.Format(l.Time)
}

// Full includes seconds.
func (l Layout) Full(t time.Time) string {
	return t.Format(l.Date) + " " + t.Format(l.TimeFull)
}

// Relative describes how long before now t happened.
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < 0:
		return "just now"
	case d < time.Minute:
		return fmt.Sprintf("%ds ago", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// Ticks renders a day time as a wall clock. Tick 0 is 06:00.
func Ticks(ticks int64) string {
	of := ticks % domain.TicksPerDay
	if of < 0 {
		of += domain.TicksPerDay
	}
	minutes := (of*1440/domain.TicksPerDay + 6*60) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
