package render

import (
	"github.com/fatih/color"
)

// FormatError formats a command failure for stderr
func FormatError(err error) string {
	return color.New(color.FgRed).Sprint("Error: ") + err.Error()
}

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}
