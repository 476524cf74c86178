package prompter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Segment is one styled run of text. AttributedString is built from a
// sequence of these rather than a single Style, since a rendered prompt
// line typically mixes a plain marker, a styled message, and a
// differently styled echoed answer, assembled fresh each frame.
type Segment struct {
	Text  string
	Style lipgloss.Style
}

// Plain returns an unstyled segment.
func Plain(text string) Segment { return Segment{Text: text} }

// Styled returns a segment rendered with st.
func Styled(text string, st lipgloss.Style) Segment { return Segment{Text: text, Style: st} }

// AttributedString is an ordered sequence of styled segments forming one
// logical line of a prompt frame. Width is measured in terminal cells,
// accounting for wide (e.g. CJK) runes, via go-runewidth.
type AttributedString struct {
	Segments []Segment
}

// NewAttributedString concatenates segments into a single AttributedString.
func NewAttributedString(segs ...Segment) AttributedString {
	return AttributedString{Segments: segs}
}

// runeDisplayWidth returns the cell width of s, wide-character aware.
func runeDisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Width returns the total cell width of the string, ignoring ANSI styling.
func (a AttributedString) Width() int {
	w := 0
	for _, s := range a.Segments {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

// PlainText returns the string's text with no styling applied.
func (a AttributedString) PlainText() string {
	var b strings.Builder
	for _, s := range a.Segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Render returns the ANSI-styled rendering of the string.
func (a AttributedString) Render() string {
	var b strings.Builder
	for _, s := range a.Segments {
		b.WriteString(s.Style.Render(s.Text))
	}
	return b.String()
}
