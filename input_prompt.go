package prompter

// runInput implements a single-line editable buffer. State is a rune
// slice and a column cursor; DELETE/BACKSPACE/LEFT/RIGHT/BEGINNING_OF_LINE/
// END_OF_LINE mutate it directly, and the buffer is re-rendered into a
// fresh AttributedString every frame by the differential renderer.
func runInput(p *Prompt, header []AttributedString, e *env) (*Result, error) {
	km := newInputKeyMap()
	br := NewBindingReader(e.reader, km)

	var buf []rune
	pos := 0
	var errMsg string
	tabUsed := false

	render := func() {
		display := applyMask(buf, p.Mask)
		base := messageLine(e.cfg, p.Message, "")
		echoCol := base.Width() + 1
		line := NewAttributedString(append(append([]Segment{}, base.Segments...), Plain(" "+string(display)))...)
		body := []AttributedString{line}
		if errMsg != "" {
			body = append(body, errorLine(e.cfg, errMsg))
		}
		cols, rows := e.size()
		e.disp.SetSize(cols, rows)
		cursorCol := echoCol + pos
		e.disp.Render(buildFrame(header, body, 0, cursorCol))
	}

	for {
		render()
		op, r, err := br.Next()
		if err != nil {
			return nil, &IOError{Op: "read", Err: err}
		}

		switch op {
		case OpInsert:
			if r == '\t' {
				continue
			}
			buf = append(buf[:pos], append([]rune{r}, buf[pos:]...)...)
			pos++
			errMsg = ""

		case OpBackspace:
			if pos > 0 {
				buf = append(buf[:pos-1], buf[pos:]...)
				pos--
			}

		case OpDelete:
			if pos < len(buf) {
				buf = append(buf[:pos], buf[pos+1:]...)
			}

		case OpLeft:
			if pos > 0 {
				pos--
			}

		case OpRight:
			if pos < len(buf) {
				pos++
			}

		case OpBeginningOfLine:
			pos = 0

		case OpEndOfLine:
			pos = len(buf)

		case OpUp:
			if e.hist != nil {
				if s, ok := e.hist.Previous(string(buf)); ok {
					buf = []rune(s)
					pos = len(buf)
				}
			}

		case OpDown:
			if e.hist != nil {
				if s, ok := e.hist.Next(string(buf)); ok {
					buf = []rune(s)
					pos = len(buf)
				}
			}

		case OpSelectCandidate:
			if len(buf) == 0 && !tabUsed && p.DefaultValue != "" {
				buf = []rune(p.DefaultValue)
				pos = len(buf)
			}
			tabUsed = true

		case OpExit:
			value := string(buf)
			if value == "" && p.DefaultValue != "" {
				value = p.DefaultValue
			}
			if p.Validate != nil {
				if verr := p.Validate(value); verr != nil {
					errMsg = verr.Error()
					continue
				}
			}
			if e.hist != nil {
				e.hist.Add(value)
			}
			return &Result{Name: p.Name, Kind: KindInput, Input: value}, nil

		case OpEscape:
			return nil, nil

		case OpCancel:
			return nil, ErrCancelled

		case OpNomatch:
			// Unbound control sequence: ignored, re-render unchanged.
		}
	}
}

func applyMask(buf []rune, mask rune) []rune {
	if mask == 0 {
		return buf
	}
	out := make([]rune, len(buf))
	for i := range out {
		out[i] = mask
	}
	return out
}
