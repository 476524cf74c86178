package prompter

// runConfirm implements a two-option yes/no toggle: the active option is
// highlighted, LEFT/RIGHT flips the boolean, ENTER commits it.
func runConfirm(p *Prompt, header []AttributedString, e *env) (*Result, error) {
	km := newConfirmKeyMap()
	br := NewBindingReader(e.reader, km)

	value := p.ConfirmDefault

	for {
		cols, rows := e.size()
		e.disp.SetSize(cols, rows)

		yes, no := "Yes", "No"
		var yesSeg, noSeg Segment
		if value {
			yesSeg = Styled(yes, e.cfg.StyleResolver(StyleKeySelected))
			noSeg = Styled(no, e.cfg.StyleResolver(StyleKeyDisabled))
		} else {
			yesSeg = Styled(yes, e.cfg.StyleResolver(StyleKeyDisabled))
			noSeg = Styled(no, e.cfg.StyleResolver(StyleKeySelected))
		}
		base := messageLine(e.cfg, p.Message, "")
		line := NewAttributedString(append(append([]Segment{}, base.Segments...),
			Plain(" "), yesSeg, Plain(" / "), noSeg)...)

		e.disp.Render(buildFrame(header, []AttributedString{line}, 0, line.Width()))

		op, _, err := br.Next()
		if err != nil {
			return nil, &IOError{Op: "read", Err: err}
		}

		switch op {
		case OpLeft, OpRight:
			value = !value
		case OpExit:
			return &Result{Name: p.Name, Kind: KindConfirm, Confirm: value}, nil
		case OpEscape:
			return nil, nil
		case OpCancel:
			return nil, ErrCancelled
		case OpInsert, OpNomatch:
		}
	}
}
