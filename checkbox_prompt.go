package prompter

// runCheckbox reuses List's grid navigation and adds a per-item checked
// set toggled by the space bar.
func runCheckbox(p *Prompt, header []AttributedString, e *env) (*Result, error) {
	items := p.items()
	keys := itemKeys(p)

	checked := map[string]bool{}
	for _, it := range p.CheckboxItems {
		if it.InitiallyChecked && it.Selectable {
			checked[it.Name] = true
		}
	}

	if firstSelectable(items) == -1 {
		return &Result{Name: p.Name, Kind: KindCheckbox, Checkbox: checked}, nil
	}

	km := newCheckboxKeyMap()
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
				glyph := e.cfg.UncheckedBox
				if checked[items[i].Name] {
					glyph = e.cfg.CheckedBox
				}
				if !items[i].Selectable {
					glyph = e.cfg.Unavailable
				}
				body = append(body, renderItemRowChecked(e.cfg, items[i], keys[i], i == cursor, glyph))
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
					glyph := e.cfg.UncheckedBox
					if checked[items[i].Name] {
						glyph = e.cfg.CheckedBox
					}
					if !items[i].Selectable {
						glyph = e.cfg.Unavailable
					}
					cell := renderItemRowChecked(e.cfg, items[i], keys[i], i == cursor, glyph)
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
		case OpToggle:
			if items[cursor].Selectable {
				checked[items[cursor].Name] = !checked[items[cursor].Name]
			}
		case OpInsert:
			if j := matchShortcut(items, keys, r); j != -1 {
				cursor = j
			}
		case OpExit:
			result := map[string]bool{}
			for name, v := range checked {
				if v {
					result[name] = true
				}
			}
			return &Result{Name: p.Name, Kind: KindCheckbox, Checkbox: result}, nil
		case OpEscape:
			return nil, nil
		case OpCancel:
			return nil, ErrCancelled
		case OpNomatch:
		}
	}
}
