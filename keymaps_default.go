package prompter

// Default key bindings, expressed as KeyMap.Bind calls against the
// operation-token vocabulary of each executor.
const (
	seqUp    = "\x1b[A"
	seqDown  = "\x1b[B"
	seqRight = "\x1b[C"
	seqLeft  = "\x1b[D"
	seqHome  = "\x1b[H"
	seqEnd   = "\x1b[F"
	seqDel   = "\x1b[3~"
)

func bindCommon(km *KeyMap) {
	km.BindString("\r", OpExit)
	km.BindString("\n", OpExit)
	km.BindString("\x03", OpCancel)
	km.BindString("\x1b", OpEscape)
}

// newInputKeyMap binds the full Input-executor vocabulary.
func newInputKeyMap() *KeyMap {
	km := NewKeyMap(OpNomatch, OpInsert)
	bindCommon(km)
	km.BindString("\x7f", OpBackspace)
	km.BindString("\x08", OpBackspace)
	km.BindString(seqDel, OpDelete)
	km.BindString(seqLeft, OpLeft)
	km.BindString(seqRight, OpRight)
	km.BindString(seqUp, OpUp)
	km.BindString(seqDown, OpDown)
	km.BindString(seqHome, OpBeginningOfLine)
	km.BindString(seqEnd, OpEndOfLine)
	km.BindString("\x01", OpBeginningOfLine) // Control-A
	km.BindString("\x05", OpEndOfLine)       // Control-E
	km.BindString("\t", OpSelectCandidate)
	return km
}

// newGridKeyMap binds the navigation vocabulary shared by List and
// Checkbox. Column bindings are included unconditionally; the executor
// only consults them when its layout has more than one column, so
// binding them harmlessly here is simpler than rebuilding the trie every
// frame.
func newGridKeyMap() *KeyMap {
	km := NewKeyMap(OpNomatch, OpInsert)
	bindCommon(km)
	km.BindString(seqUp, OpBackwardOneLine)
	km.BindString(seqDown, OpForwardOneLine)
	km.BindString(seqLeft, OpBackwardOneColumn)
	km.BindString(seqRight, OpForwardOneColumn)
	return km
}

// newCheckboxKeyMap extends the grid vocabulary with TOGGLE on space.
func newCheckboxKeyMap() *KeyMap {
	km := newGridKeyMap()
	km.BindString(" ", OpToggle)
	return km
}

// newChoiceKeyMap has no cursor navigation: any printable character is a
// shortcut-key candidate.
func newChoiceKeyMap() *KeyMap {
	km := NewKeyMap(OpNomatch, OpInsert)
	bindCommon(km)
	return km
}

// newConfirmKeyMap binds left/right to toggle the active option.
func newConfirmKeyMap() *KeyMap {
	km := NewKeyMap(OpNomatch, OpInsert)
	bindCommon(km)
	km.BindString(seqLeft, OpLeft)
	km.BindString(seqRight, OpRight)
	return km
}
