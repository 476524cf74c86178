package prompter

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunListShortcutJumpAndCommit(t *testing.T) {
	e := New(WithInput(strings.NewReader("b\r")), WithOutput(io.Discard), WithSize(80, 24))

	items := []ListItem{
		{Item: Item{Name: "apple", Text: "Apple", Selectable: true}, Key: 'a'},
		{Item: Item{Name: "banana", Text: "Banana", Selectable: true}, Key: 'b'},
	}
	res, err := e.Run(nil, []Prompt{NewList("fruit", "Pick a fruit", items)})
	require.NoError(t, err)
	require.Equal(t, "banana", res["fruit"].List)
}

func TestRunListArrowNavigationCommit(t *testing.T) {
	e := New(WithInput(strings.NewReader("\x1b[B\r")), WithOutput(io.Discard), WithSize(80, 24))

	items := []ListItem{
		{Item: Item{Name: "apple", Text: "Apple", Selectable: true}},
		{Item: Item{Name: "banana", Text: "Banana", Selectable: true}},
	}
	res, err := e.Run(nil, []Prompt{NewList("fruit", "Pick a fruit", items)})
	require.NoError(t, err)
	require.Equal(t, "banana", res["fruit"].List, "moving down once should land on banana")
}

func TestRunListSkipsDisabledItemOnCommit(t *testing.T) {
	e := New(WithInput(strings.NewReader("\r")), WithOutput(io.Discard), WithSize(80, 24))

	items := []ListItem{
		{Item: Item{Name: "locked", Text: "Locked", Disabled: true, DisabledText: "unavailable"}},
		{Item: Item{Name: "open", Text: "Open", Selectable: true}},
	}
	res, err := e.Run(nil, []Prompt{NewList("choice", "Pick one", items)})
	require.NoError(t, err)
	require.Equal(t, "open", res["choice"].List, "cursor should start on the first selectable item")
}

func TestRunCheckboxTogglesAndCommitsSubset(t *testing.T) {
	e := New(WithInput(strings.NewReader(" \x1b[B \r")), WithOutput(io.Discard), WithSize(80, 24))

	items := []CheckboxItem{
		{Item: Item{Name: "a", Text: "A", Selectable: true}},
		{Item: Item{Name: "b", Text: "B", Selectable: true}},
		{Item: Item{Name: "c", Text: "C", Selectable: true}},
	}
	res, err := e.Run(nil, []Prompt{NewCheckbox("letters", "Pick letters", items)})
	require.NoError(t, err)

	cb := res["letters"].Checkbox
	require.True(t, cb["a"])
	require.True(t, cb["b"])
	require.False(t, cb["c"])
}

func TestRunCheckboxInitiallyCheckedSurvivesNoInput(t *testing.T) {
	e := New(WithInput(strings.NewReader("\r")), WithOutput(io.Discard), WithSize(80, 24))

	items := []CheckboxItem{
		{Item: Item{Name: "a", Text: "A", Selectable: true}, InitiallyChecked: true},
		{Item: Item{Name: "b", Text: "B", Selectable: true}},
	}
	res, err := e.Run(nil, []Prompt{NewCheckbox("letters", "Pick letters", items)})
	require.NoError(t, err)

	cb := res["letters"].Checkbox
	require.True(t, cb["a"])
	require.False(t, cb["b"])
}

func TestRunChoiceShortcutCommitsImmediately(t *testing.T) {
	e := New(WithInput(strings.NewReader("y")), WithOutput(io.Discard), WithSize(80, 24))

	items := []ChoiceItem{
		{Item: Item{Name: "yes", Text: "Yes", Selectable: true}, Key: 'y'},
		{Item: Item{Name: "no", Text: "No", Selectable: true}, Key: 'n'},
	}
	res, err := e.Run(nil, []Prompt{NewChoice("confirm", "Well?", items)})
	require.NoError(t, err)
	require.Equal(t, "yes", res["confirm"].Choice)
}

func TestRunChoiceEnterCommitsDefault(t *testing.T) {
	e := New(WithInput(strings.NewReader("\r")), WithOutput(io.Discard), WithSize(80, 24))

	items := []ChoiceItem{
		{Item: Item{Name: "yes", Text: "Yes", Selectable: true}, Key: 'y'},
		{Item: Item{Name: "no", Text: "No", Selectable: true}, Key: 'n', Default: true},
	}
	res, err := e.Run(nil, []Prompt{NewChoice("confirm", "Well?", items)})
	require.NoError(t, err)
	require.Equal(t, "no", res["confirm"].Choice, "want the default item")
}

func TestRunChoiceAllItemsUnselectableCommitsSentinelWithoutInput(t *testing.T) {
	// No input ever arrives; if the executor did not short-circuit on zero
	// selectable items it would block on br.Next() forever.
	e := New(WithInput(strings.NewReader("")), WithOutput(io.Discard), WithSize(80, 24))

	items := []ChoiceItem{
		{Item: Item{Name: "note", Text: "just a separator"}},
	}
	res, err := e.Run(nil, []Prompt{NewChoice("confirm", "Well?", items)})
	require.NoError(t, err)
	require.Equal(t, "", res["confirm"].Choice)
}

func TestRunChoiceRendersEchoBeforeReturningOnShortcutCommit(t *testing.T) {
	term := newTestTerm(40, 10)
	e := &env{
		reader: NewNonBlockingReader(strings.NewReader("y")),
		disp:   NewDisplay(term, 40, 10),
		cfg:    DefaultConfig(),
		size:   func() (int, int) { return 40, 10 },
	}
	defer e.reader.Shutdown()

	items := []ChoiceItem{
		{Item: Item{Name: "yes", Text: "Yes", Selectable: true}, Key: 'y'},
		{Item: Item{Name: "no", Text: "No", Selectable: true}, Key: 'n'},
	}
	p := NewChoice("confirm", "Well?", items)

	res, err := runChoice(&p, nil, e)
	require.NoError(t, err)
	require.Equal(t, "yes", res.Choice)
	require.Contains(t, term.line(3), "Choice: y", "the committed frame must show the echoed shortcut before returning")
}

func TestRunChoiceRendersEchoBeforeReturningOnDefaultCommit(t *testing.T) {
	term := newTestTerm(40, 10)
	e := &env{
		reader: NewNonBlockingReader(strings.NewReader("\r")),
		disp:   NewDisplay(term, 40, 10),
		cfg:    DefaultConfig(),
		size:   func() (int, int) { return 40, 10 },
	}
	defer e.reader.Shutdown()

	items := []ChoiceItem{
		{Item: Item{Name: "yes", Text: "Yes", Selectable: true}, Key: 'y'},
		{Item: Item{Name: "no", Text: "No", Selectable: true}, Key: 'n', Default: true},
	}
	p := NewChoice("confirm", "Well?", items)

	res, err := runChoice(&p, nil, e)
	require.NoError(t, err)
	require.Equal(t, "no", res.Choice)
	require.Contains(t, term.line(3), "Choice: n", "the default commit path must also draw the echo before returning")
}

func TestRunTextCommitsWithoutConsumingInput(t *testing.T) {
	e := New(WithInput(strings.NewReader("ignored\r")), WithOutput(io.Discard), WithSize(80, 24))

	res, err := e.Run(nil, []Prompt{
		NewText("banner", "Welcome!"),
		NewInput("name", "Name?"),
	})
	require.NoError(t, err)
	require.Equal(t, "ignored", res["name"].Input, "a Text prompt should not consume input bytes")
}

func TestValidateShapeRejectsDuplicateItemNames(t *testing.T) {
	p := NewList("fruit", "Pick", []ListItem{
		{Item: Item{Name: "dup", Text: "A", Selectable: true}},
		{Item: Item{Name: "dup", Text: "B", Selectable: true}},
	})
	require.Error(t, p.validateShape())
}

func TestValidateShapeRejectsEmptyItemName(t *testing.T) {
	p := NewList("fruit", "Pick", []ListItem{
		{Item: Item{Name: "", Text: "A", Selectable: true}},
	})
	require.Error(t, p.validateShape())
}
