package prompter

import "fmt"

// runChoice has no cursor: all items are printed once, then a single
// "Choice: " line waits for a printable character matching a selectable
// item's shortcut key. Enter with nothing typed commits the default item
// if one exists.
func runChoice(p *Prompt, header []AttributedString, e *env) (*Result, error) {
	items := p.items()
	keys := itemKeys(p)

	if firstSelectable(items) == -1 {
		return &Result{Name: p.Name, Kind: KindChoice, Choice: ""}, nil
	}

	defaultIdx := -1
	for i, it := range p.ChoiceItems {
		if it.Default && it.Selectable {
			defaultIdx = i
			break
		}
	}

	km := newChoiceKeyMap()
	br := NewBindingReader(e.reader, km)

	var echo string

	render := func() {
		cols, rows := e.size()
		e.disp.SetSize(cols, rows)

		var body []AttributedString
		body = append(body, messageLine(e.cfg, p.Message, ""))
		for i, it := range items {
			body = append(body, renderItemRow(e.cfg, it, keys[i], false))
		}
		body = append(body, choiceLine(e.cfg, echo))

		e.disp.Render(buildFrame(header, body, len(body)-1, choiceLineCursorCol(echo)))
	}

	for {
		render()

		op, r, err := br.Next()
		if err != nil {
			return nil, &IOError{Op: "read", Err: err}
		}

		switch op {
		case OpInsert:
			if j := matchShortcut(items, keys, r); j != -1 {
				echo = string(keys[j])
				render()
				return &Result{Name: p.Name, Kind: KindChoice, Choice: items[j].Name}, nil
			}
		case OpExit:
			if defaultIdx != -1 {
				echo = string(keys[defaultIdx])
				render()
				return &Result{Name: p.Name, Kind: KindChoice, Choice: items[defaultIdx].Name}, nil
			}
		case OpEscape:
			return nil, nil
		case OpCancel:
			return nil, ErrCancelled
		case OpNomatch:
		}
	}
}

func choiceLine(cfg Config, echo string) AttributedString {
	return NewAttributedString(
		Styled("Choice: ", cfg.StyleResolver(StyleKeyPrompt)),
		Styled(echo, cfg.StyleResolver(StyleKeyAnswer)),
	)
}

func choiceLineCursorCol(echo string) int {
	return len([]rune(fmt.Sprintf("Choice: %s", echo)))
}
