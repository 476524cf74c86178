package prompter

import "fmt"

// Kind tags which prompt variant a Prompt or Result carries.
type Kind int

const (
	KindInput Kind = iota
	KindList
	KindCheckbox
	KindChoice
	KindConfirm
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "Input"
	case KindList:
		return "List"
	case KindCheckbox:
		return "Checkbox"
	case KindChoice:
		return "Choice"
	case KindConfirm:
		return "Confirm"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Item is the common record shared by ListItem, CheckboxItem, and
// ChoiceItem: name, display text, and the selectable/disabled flags
// governing navigation and rendering.
type Item struct {
	Name         string
	Text         string
	Selectable   bool
	Disabled     bool
	DisabledText string
}

// ListItem is a List prompt's per-row item.
type ListItem struct {
	Item
	// Key, if non-zero, jumps the cursor to this item when typed.
	Key rune
}

// CheckboxItem is a Checkbox prompt's per-row item.
type CheckboxItem struct {
	Item
	InitiallyChecked bool
	Key              rune
}

// ChoiceItem is a Choice prompt's per-row item. Non-selectable items act
// as separators.
type ChoiceItem struct {
	Item
	Key     rune
	Default bool
}

// Prompt is a tagged variant over the six prompt types. Only the fields
// relevant to Kind are meaningful; the flow controller and executors never
// read fields outside a prompt's own Kind.
type Prompt struct {
	Name    string
	Message string
	Kind    Kind

	// Input
	DefaultValue string
	Mask         rune // 0 means unmasked
	Validate     func(string) error

	// List
	ListItems []ListItem

	// Checkbox
	CheckboxItems []CheckboxItem

	// Choice
	ChoiceItems []ChoiceItem

	// Confirm
	ConfirmDefault bool

	// Text
	Body string
}

// PromptOption mutates a Prompt under construction. Named distinctly from
// the engine-level Option in flow.go to keep the two functional-options
// surfaces — per-prompt construction versus engine/flow configuration —
// textually apart.
type PromptOption func(*Prompt)

// WithDefaultValue sets an Input prompt's default, substituted when the
// user commits with an empty buffer.
func WithDefaultValue(v string) PromptOption { return func(p *Prompt) { p.DefaultValue = v } }

// WithMask sets the character an Input prompt echoes in place of typed
// characters (password entry).
func WithMask(r rune) PromptOption { return func(p *Prompt) { p.Mask = r } }

// WithValidator attaches a validator invoked on commit; a non-nil error
// is reported inline and the prompt continues.
func WithValidator(fn func(string) error) PromptOption { return func(p *Prompt) { p.Validate = fn } }

// NewInput builds an Input prompt.
func NewInput(name, message string, opts ...PromptOption) Prompt {
	p := Prompt{Name: name, Message: message, Kind: KindInput}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// NewList builds a List prompt from items.
func NewList(name, message string, items []ListItem) Prompt {
	return Prompt{Name: name, Message: message, Kind: KindList, ListItems: items}
}

// NewCheckbox builds a Checkbox prompt from items.
func NewCheckbox(name, message string, items []CheckboxItem) Prompt {
	return Prompt{Name: name, Message: message, Kind: KindCheckbox, CheckboxItems: items}
}

// NewChoice builds a Choice prompt from items.
func NewChoice(name, message string, items []ChoiceItem) Prompt {
	return Prompt{Name: name, Message: message, Kind: KindChoice, ChoiceItems: items}
}

// NewConfirm builds a Confirm (yes/no) prompt.
func NewConfirm(name, message string, defaultValue bool) Prompt {
	return Prompt{Name: name, Message: message, Kind: KindConfirm, ConfirmDefault: defaultValue}
}

// NewText builds a Text prompt: a static styled block that commits
// automatically without reading any input.
func NewText(name, body string) Prompt {
	return Prompt{Name: name, Message: body, Kind: KindText, Body: body}
}

// Result is the tagged-variant commit value for one prompt.
type Result struct {
	Name string
	Kind Kind

	Input    string
	List     string
	Checkbox map[string]bool
	Choice   string
	Confirm  bool
	// Text carries no payload; its presence in a result map is the sentinel.
}

// items returns the Item views of a List/Checkbox/Choice prompt in
// order, independent of which concrete slice backs it.
func (p *Prompt) items() []Item {
	switch p.Kind {
	case KindList:
		out := make([]Item, len(p.ListItems))
		for i, it := range p.ListItems {
			out[i] = it.Item
		}
		return out
	case KindCheckbox:
		out := make([]Item, len(p.CheckboxItems))
		for i, it := range p.CheckboxItems {
			out[i] = it.Item
		}
		return out
	case KindChoice:
		out := make([]Item, len(p.ChoiceItems))
		for i, it := range p.ChoiceItems {
			out[i] = it.Item
		}
		return out
	default:
		return nil
	}
}

func (p *Prompt) itemKey(i int) rune {
	switch p.Kind {
	case KindList:
		return p.ListItems[i].Key
	case KindCheckbox:
		return p.CheckboxItems[i].Key
	case KindChoice:
		return p.ChoiceItems[i].Key
	default:
		return 0
	}
}

func (p *Prompt) validateShape() error {
	seen := map[string]bool{}
	for _, it := range p.items() {
		if it.Name == "" {
			return &UsageError{Msg: fmt.Sprintf("prompt %q: item with empty name", p.Name)}
		}
		if seen[it.Name] {
			return &UsageError{Msg: fmt.Sprintf("prompt %q: duplicate item name %q", p.Name, it.Name)}
		}
		seen[it.Name] = true
	}
	return nil
}
