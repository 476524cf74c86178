package prompter

import "fmt"

// runList walks a selectable-item grid: arrow navigation, optional
// multi-column layout, single-column pagination, and shortcut-key jumps.
// Cursor-movement primitives are shared with Checkbox via gridnav.go.
func runList(p *Prompt, header []AttributedString, e *env) (*Result, error) {
	items := p.items()
	keys := itemKeys(p)

	if firstSelectable(items) == -1 {
		return &Result{Name: p.Name, Kind: KindList, List: ""}, nil
	}

	km := newGridKeyMap()
	br := NewBindingReader(e.reader, km)

	cursor := firstSelectable(items)
	win := window{}

	for {
		cols, rows := e.size()
		e.disp.SetSize(cols, rows)
		available := rows - len(header) - 1
		if available < 1 {
			available = 1
		}
		layout := computeLayout(items, maxKeyWidth(keys), cols, available)

		var body []AttributedString
		body = append(body, messageLine(e.cfg, p.Message, ""))

		var cursorRow int
		if layout.columns == 1 {
			win = computeWindow(win, cursor, len(items), available)
			for i := win.First; i < win.Last; i++ {
				body = append(body, renderItemRow(e.cfg, items[i], keys[i], i == cursor))
				if i == cursor {
					cursorRow = len(body) - 1
				}
			}
		} else {
			colWidth := (cols - (layout.columns-1)*columnMargin) / layout.columns
			if colWidth < 1 {
				colWidth = 1
			}
			for row := 0; row < layout.rows; row++ {
				var segs []Segment
				for col := 0; col < layout.columns; col++ {
					i := layout.index(row, col)
					if i >= len(items) {
						continue
					}
					cell := renderItemRow(e.cfg, items[i], keys[i], i == cursor)
					if col > 0 {
						segs = append(segs, Plain(spaces(columnMargin)))
					}
					segs = append(segs, padSegments(cell, colWidth)...)
					if i == cursor {
						cursorRow = len(body)
					}
				}
				body = append(body, NewAttributedString(segs...))
			}
		}

		e.disp.Render(buildFrame(header, body, cursorRow, 0))

		op, r, err := br.Next()
		if err != nil {
			return nil, &IOError{Op: "read", Err: err}
		}

		switch op {
		case OpForwardOneLine:
			cursor = nextSelectable(items, cursor)
		case OpBackwardOneLine:
			cursor = prevSelectable(items, cursor)
		case OpForwardOneColumn:
			if layout.columns > 1 {
				cursor = columnStep(items, layout, cursor, 1)
			}
		case OpBackwardOneColumn:
			if layout.columns > 1 {
				cursor = columnStep(items, layout, cursor, -1)
			}
		case OpInsert:
			if j := matchShortcut(items, keys, r); j != -1 {
				cursor = j
			}
		case OpExit:
			return &Result{Name: p.Name, Kind: KindList, List: items[cursor].Name}, nil
		case OpEscape:
			return nil, nil
		case OpCancel:
			return nil, ErrCancelled
		case OpNomatch:
		}
	}
}

func itemKeys(p *Prompt) []rune {
	items := p.items()
	keys := make([]rune, len(items))
	for i := range items {
		keys[i] = p.itemKey(i)
	}
	return keys
}

func maxKeyWidth(keys []rune) int {
	for _, k := range keys {
		if k != 0 {
			return 4 // "(k) "
		}
	}
	return 0
}

// renderItemRow renders one List/Checkbox row: selected-selectable,
// unselected-selectable, disabled, or separator. Checkbox passes a
// non-empty checkGlyph to insert between the cursor indicator and the
// text; List passes "".
func renderItemRow(cfg Config, it Item, key rune, selected bool) AttributedString {
	return renderItemRowChecked(cfg, it, key, selected, "")
}

func renderItemRowChecked(cfg Config, it Item, key rune, selected bool, checkGlyph string) AttributedString {
	indicatorWidth := runeDisplayWidth(cfg.Indicator)

	if !it.Selectable && !it.Disabled {
		// Separator: just padding plus disabled-styled text, no cursor
		// indicator slot and no key prefix.
		return NewAttributedString(
			Plain(spaces(indicatorWidth)),
			Styled(it.Text, cfg.StyleResolver(StyleKeyDisabled)),
		)
	}

	var segs []Segment
	if selected {
		segs = append(segs, Styled(cfg.Indicator, cfg.StyleResolver(StyleKeyCursor)))
	} else {
		segs = append(segs, Plain(spaces(indicatorWidth)))
	}
	segs = append(segs, Plain(" "))

	if checkGlyph != "" {
		boxStyle := cfg.StyleResolver(StyleKeyBox)
		if checkGlyph == cfg.CheckedBox {
			boxStyle = cfg.StyleResolver(StyleKeyCheckbox)
		}
		segs = append(segs, Styled(checkGlyph, boxStyle))
	}

	if key != 0 {
		segs = append(segs, Plain(fmt.Sprintf("(%c) ", key)))
	}

	switch {
	case selected:
		segs = append(segs, Styled(it.Text, cfg.StyleResolver(StyleKeySelected)))
	case it.Selectable:
		segs = append(segs, Plain(it.Text))
	default: // disabled
		reason := it.DisabledText
		segs = append(segs, Styled(it.Text, cfg.StyleResolver(StyleKeyDisabled)))
		segs = append(segs, Styled(fmt.Sprintf(" (%s)", reason), cfg.StyleResolver(StyleKeyDisabled)))
	}

	return NewAttributedString(segs...)
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func padSegments(a AttributedString, width int) []Segment {
	w := a.Width()
	if w >= width {
		return a.Segments
	}
	return append(append([]Segment{}, a.Segments...), Plain(spaces(width-w)))
}
