package prompter

// env bundles the collaborators every prompt executor needs: a character
// source, a renderer, and style/glyph configuration. Every executor
// follows the same loop shape: render, read one operation, mutate state,
// repeat until commit, back, or cancel.
type env struct {
	reader *NonBlockingReader
	disp   *Display
	cfg    Config
	size   func() (cols, rows int)
	hist   *inputHistory
}

// executor is implemented by each of the six prompt-variant input loops.
// A nil *Result with a nil error means the user pressed Escape (the
// back-sentinel); a nil *Result with err == ErrCancelled means the user
// raised the cancellation operation.
type executor func(p *Prompt, header []AttributedString, e *env) (*Result, error)

func dispatch(p *Prompt, header []AttributedString, e *env) (*Result, error) {
	switch p.Kind {
	case KindInput:
		return runInput(p, header, e)
	case KindList:
		return runList(p, header, e)
	case KindCheckbox:
		return runCheckbox(p, header, e)
	case KindChoice:
		return runChoice(p, header, e)
	case KindConfirm:
		return runConfirm(p, header, e)
	case KindText:
		return runText(p, header, e)
	default:
		return nil, &UsageError{Msg: "unknown prompt variant"}
	}
}

// messageLine renders the common "<indicator> message[ echo]" line shared
// by every executor's frame.
func messageLine(cfg Config, message, echo string) AttributedString {
	segs := []Segment{
		Styled(cfg.Indicator+" ", cfg.StyleResolver(StyleKeyPrompt)),
		Styled(message, cfg.StyleResolver(StyleKeyMessage)),
	}
	if echo != "" {
		segs = append(segs, Plain(" "), Styled(echo, cfg.StyleResolver(StyleKeyAnswer)))
	}
	return NewAttributedString(segs...)
}

// errorLine renders a validator error reported inline below the prompt:
// the prompt continues, so this is drawn as part of the frame rather
// than unwinding anything.
func errorLine(cfg Config, msg string) AttributedString {
	return NewAttributedString(Styled(msg, cfg.StyleResolver(StyleKeyDisabled)))
}

func buildFrame(header []AttributedString, body []AttributedString, cursorRow, cursorCol int) Frame {
	lines := make([]AttributedString, 0, len(header)+len(body))
	lines = append(lines, header...)
	lines = append(lines, body...)
	return Frame{Lines: lines, CursorRow: len(header) + cursorRow, CursorCol: cursorCol}
}
