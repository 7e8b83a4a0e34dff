package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

type Colors struct {
	Header  func(format string, a ...interface{}) string
	Product func(format string, a ...interface{}) string
	Amount  func(format string, a ...interface{}) string
	Pass    func(format string, a ...interface{}) string
	Fail    func(format string, a ...interface{}) string
	Muted   func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		return &Colors{
			Header:  noColor,
			Product: noColor,
			Amount:  noColor,
			Pass:    noColor,
			Fail:    noColor,
			Muted:   noColor,
		}
	}

	return &Colors{
		Header:  color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Product: color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Amount:  color.New(color.FgGreen).SprintfFunc(),
		Pass:    color.New(color.FgGreen, color.Bold).SprintfFunc(),
		Fail:    color.New(color.FgRed, color.Bold).SprintfFunc(),
		Muted:   color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
