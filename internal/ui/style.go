package ui

import (
	"strconv"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// Days formats a working-day count without trailing zeros (3, 2.5, 0.25).
func Days(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// CriticalMarker returns the ⚡ marker for critical-path tasks, or a space so
// table columns stay aligned.
func CriticalMarker(critical bool) string {
	if critical {
		return BoldYellow("⚡")
	}
	return " "
}

// SlackLabel renders a slack value: dimmed zero for critical tasks, yellow
// day count otherwise.
func SlackLabel(slack float64, critical bool) string {
	if critical {
		return Dim("0")
	}
	return Yellow(Days(slack))
}
