package prompter

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

// testTerm is a small fixed-grid terminal model that understands the CSI
// subset Display actually emits (cursor motion and erase-to-end-of-line),
// used to assert on the visible screen contents after a Render.
type testTerm struct {
	contents []rune
	width    int
	height   int
	cursorX  int
	cursorY  int
}

var csiRE = regexp.MustCompile(`^\x1b\[(\d*)([ABCDK])`)

func newTestTerm(w, h int) *testTerm {
	return &testTerm{contents: make([]rune, w*h), width: w, height: h}
}

func (t *testTerm) Write(p []byte) (int, error) {
	total := len(p)
	for len(p) > 0 {
		if m := csiRE.FindSubmatch(p); m != nil {
			n := 1
			if len(m[1]) > 0 {
				v, err := strconv.Atoi(string(m[1]))
				if err != nil {
					return -1, err
				}
				n = v
			}
			switch m[2][0] {
			case 'A':
				t.cursorY -= n
			case 'B':
				t.cursorY += n
			case 'C':
				t.cursorX += n
			case 'D':
				t.cursorX -= n
			case 'K':
				for x := t.cursorX; x < t.width; x++ {
					t.contents[t.pos(x, t.cursorY)] = 0
				}
			}
			p = p[len(m[0]):]
			continue
		}
		if p[0] == '\r' {
			t.cursorX = 0
			p = p[1:]
			continue
		}
		if p[0] == '\n' {
			t.cursorY++
			t.cursorX = 0
			p = p[1:]
			continue
		}
		r, size := utf8.DecodeRune(p)
		if t.cursorX < t.width && t.cursorY < t.height {
			t.contents[t.pos(t.cursorX, t.cursorY)] = r
		}
		t.cursorX++
		p = p[size:]
	}
	return total, nil
}

func (t *testTerm) pos(x, y int) int { return y*t.width + x }

func (t *testTerm) line(y int) string {
	var b strings.Builder
	for x := 0; x < t.width; x++ {
		r := t.contents[t.pos(x, y)]
		if r == 0 {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// String renders the full grid, trailing blanks trimmed per line, for use
// as a datadriven expected-output block.
func (t *testTerm) String() string {
	var b strings.Builder
	for y := 0; y < t.height; y++ {
		b.WriteString(t.line(y))
		b.WriteByte('\n')
	}
	return b.String()
}

func lineOf(s string) AttributedString {
	return NewAttributedString(Plain(s))
}

func TestDisplayRendersLines(t *testing.T) {
	term := newTestTerm(40, 5)
	d := NewDisplay(term, 40, 5)

	d.Render(Frame{Lines: []AttributedString{lineOf("? pick a fruit"), lineOf("> apple")}})

	require.Equal(t, "? pick a fruit", term.line(0))
	require.Equal(t, "> apple", term.line(1))
}

func TestDisplayIdempotentOnUnchangedFrame(t *testing.T) {
	term := newTestTerm(40, 5)
	d := NewDisplay(term, 40, 5)

	f := Frame{Lines: []AttributedString{lineOf("? name"), lineOf("> alice")}}
	d.Render(f)
	snapshot := term.line(0) + "|" + term.line(1)

	d.Render(f)
	after := term.line(0) + "|" + term.line(1)

	require.Equal(t, snapshot, after, "re-rendering an unchanged frame should not alter the screen")
}

func TestDisplayRewritesOnlyChangedLine(t *testing.T) {
	term := newTestTerm(40, 5)
	d := NewDisplay(term, 40, 5)

	d.Render(Frame{Lines: []AttributedString{lineOf("? name"), lineOf("> a")}})
	d.Render(Frame{Lines: []AttributedString{lineOf("? name"), lineOf("> ab")}})

	require.Equal(t, "? name", term.line(0), "unchanged line should not be altered")
	require.Equal(t, "> ab", term.line(1))
}

func TestDisplaySetSizeForcesFullRedraw(t *testing.T) {
	term := newTestTerm(40, 5)
	d := NewDisplay(term, 40, 5)
	d.Render(Frame{Lines: []AttributedString{lineOf("one")}})

	d.SetSize(80, 10)
	require.Nil(t, d.prev, "SetSize with a new size should clear the diff state")
}

func TestDisplayClearsShorterFrame(t *testing.T) {
	term := newTestTerm(40, 5)
	d := NewDisplay(term, 40, 5)

	d.Render(Frame{Lines: []AttributedString{lineOf("first"), lineOf("second")}})
	d.Render(Frame{Lines: []AttributedString{lineOf("first")}})

	require.Equal(t, "", term.line(1), "stale second line should be erased")
}

func TestPlainWidthHandlesWideRunes(t *testing.T) {
	a := NewAttributedString(Plain("ab"), Plain("你好"))
	require.Equal(t, 6, a.Width()) // 2 ASCII + 2*2 wide
}
