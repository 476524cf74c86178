package prompter

// runText renders a static styled block and commits automatically. It
// renders once so the block is visible before the flow controller
// advances, but unlike every other executor it never reads an operation
// token — there is no state to mutate and nothing for the user to commit.
func runText(p *Prompt, header []AttributedString, e *env) (*Result, error) {
	cols, rows := e.size()
	e.disp.SetSize(cols, rows)

	body := []AttributedString{NewAttributedString(Plain(p.Body))}
	e.disp.Render(buildFrame(header, body, 0, 0))

	return &Result{Name: p.Name, Kind: KindText}, nil
}
