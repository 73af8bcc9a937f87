package grid

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// widthCond measures display columns independently of the user's locale so
// a render is reproducible across terminals. Box-drawing glyphs are East
// Asian "ambiguous" and would otherwise count as two columns under CJK
// locales.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// DisplayWidth returns the number of terminal columns s occupies. ANSI escape
// sequences are not counted.
func DisplayWidth(s string) int {
	return displayWidth(ansi.Strip(s))
}

func displayWidth(s string) int {
	return widthCond.StringWidth(s)
}

// padRight left-justifies s in a field of the given width using spaces.
func padRight(s string, width int) string {
	w := displayWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
