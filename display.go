package prompter

import (
	"bytes"
	"io"
	"strconv"
)

// Display is a cell-grid differential renderer: it diffs a whole
// multi-line frame (header + prompt body) produced fresh by an executor
// each iteration against what it last wrote, and emits only the cursor
// moves and line rewrites needed to reconcile the two. All cursor motion
// is relative, never reliant on terminal line-wrap behavior.
type Display struct {
	out    io.Writer
	width  int
	height int

	prev []string // previous frame's rendered (styled) lines
	// cursorX/cursorY track where the real terminal cursor sits, so moves
	// can be emitted as minimal relative sequences.
	cursorX, cursorY int
	outbuf           bytes.Buffer
}

// NewDisplay creates a renderer targeting out, sized width x height.
func NewDisplay(out io.Writer, width, height int) *Display {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return &Display{out: out, width: width, height: height}
}

// SetSize updates the known terminal size. A size change forces a full
// redraw on the next Render, since a shrinking or widening terminal
// invalidates any assumptions the previous diff made about line layout.
func (d *Display) SetSize(width, height int) {
	if width == d.width && height == d.height {
		return
	}
	d.width, d.height = width, height
	d.prev = nil
}

// Frame is one rendered screen state: a sequence of lines and the intended
// cursor position within them.
type Frame struct {
	Lines     []AttributedString
	CursorRow int
	CursorCol int
}

// Render diffs f against the previously rendered frame and writes the
// minimal sequence of cursor moves, erase-to-EOL, and text needed to
// transform the terminal's visible contents into f, then positions the
// cursor at f.CursorRow/f.CursorCol. Rendering the same frame twice in
// succession emits no line writes on the second call.
func (d *Display) Render(f Frame) {
	rendered := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		rendered[i] = l.Render()
	}

	n := len(rendered)
	if n < len(d.prev) {
		n = len(d.prev)
	}

	for row := 0; row < n; row++ {
		var want string
		if row < len(rendered) {
			want = rendered[row]
		}
		var had string
		hadLine := row < len(d.prev)
		if hadLine {
			had = d.prev[row]
		}

		if hadLine && had == want && row < len(rendered) {
			continue
		}
		if !hadLine && want == "" {
			continue
		}

		d.moveCursor(0, row)
		if row >= len(rendered) {
			d.eraseLine()
			continue
		}
		d.eraseLine()
		d.outbuf.WriteString(want)
		d.cursorX = clampWidth(plainWidth(f.Lines[row]), d.width)
	}

	d.prev = rendered

	d.moveCursor(f.CursorCol, f.CursorRow)
	d.flush()
}

// Clear forces a full redraw on the next Render, discarding any memory of
// the previous frame. Rows of the previous frame beyond the next frame's
// length are then not erased.
func (d *Display) Clear() {
	d.prev = nil
}

// FinalNewline terminates the display after the run completes, moving to
// column zero of the line below the cursor. Writing "\r\n" rather than a
// bare "\n" returns to column zero even in raw mode, where the terminal
// does not translate "\n" into a carriage return plus line feed.
func (d *Display) FinalNewline() {
	d.outbuf.WriteString("\r\n")
	d.flush()
}

func plainWidth(a AttributedString) int {
	return a.Width()
}

func clampWidth(w, max int) int {
	if w > max {
		return max
	}
	return w
}

func (d *Display) flush() {
	debugf("display", "out", d.outbuf.String())
	_, _ = io.Copy(d.out, &d.outbuf)
	d.outbuf.Reset()
}

func (d *Display) eraseLine() {
	d.outbuf.WriteString("\x1b[K")
}

// moveCursor emits the minimal relative-motion escape sequences to move
// the tracked cursor position to (x, y).
func (d *Display) moveCursor(x, y int) {
	const (
		csi             = "\x1b["
		moveUpSuffix    = "A"
		moveDownSuffix  = "B"
		moveRightSuffix = "C"
		moveLeftSuffix  = "D"
	)

	if y < d.cursorY {
		if up := d.cursorY - y; up == 1 {
			d.outbuf.WriteString(csi + moveUpSuffix)
		} else if up > 1 {
			d.outbuf.WriteString(csi + strconv.Itoa(up) + moveUpSuffix)
		}
	}
	if y > d.cursorY {
		if down := y - d.cursorY; down == 1 {
			d.outbuf.WriteString(csi + moveDownSuffix)
		} else if down > 1 {
			d.outbuf.WriteString(csi + strconv.Itoa(down) + moveDownSuffix)
		}
	}
	if x < d.cursorX {
		if left := d.cursorX - x; left == 1 {
			d.outbuf.WriteString(csi + moveLeftSuffix)
		} else if left > 1 {
			d.outbuf.WriteString(csi + strconv.Itoa(left) + moveLeftSuffix)
		}
	}
	if x > d.cursorX {
		if right := x - d.cursorX; right == 1 {
			d.outbuf.WriteString(csi + moveRightSuffix)
		} else if right > 1 {
			d.outbuf.WriteString(csi + strconv.Itoa(right) + moveRightSuffix)
		}
	}

	d.cursorX, d.cursorY = x, y
}
