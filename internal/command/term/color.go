package term

import (
	"github.com/fatih/color"
)

var (
	GreenHighlight   = color.New(color.FgGreen).SprintFunc()
	RedHighlight     = color.New(color.FgRed).SprintFunc()
	MagentaHighlight = color.New(color.FgMagenta).SprintFunc()

	Highlight = MagentaHighlight
)

// ColoredParamStatus returns "yes" in green if a parameter is supplied,
// otherwise "no" in red.
func ColoredParamStatus(supplied bool) string {
	if supplied {
		return GreenHighlight("yes")
	}

	return RedHighlight("no")
}
