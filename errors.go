package prompter

import "fmt"

// ErrCancelled is returned from Run when the user raises the
// cancellation operation (typically Control-C). It unwinds the whole run
// after terminal attributes have been restored.
var ErrCancelled = fmt.Errorf("prompter: user cancelled")

// UsageError reports misuse of the engine: re-entrant Run calls, a nil
// provider passed to RunDynamic, an unknown prompt variant, or items with
// empty or duplicate names.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return "prompter: usage error: " + e.Msg }

// IOError wraps a failure from the underlying TTY reader or writer.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("prompter: io error during %s: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// InvalidInput reports that the incremental decoder exhausted its
// replacement strategy on malformed byte input. This is rare: it requires a
// stream that never resynchronizes to a valid UTF-8 boundary.
type InvalidInput struct {
	Msg string
}

func (e *InvalidInput) Error() string { return "prompter: invalid input: " + e.Msg }

// ValidationError is a per-prompt runtime error raised by a custom
// validator. It is caught by the executor and reported inline below the
// prompt; the prompt itself continues rather than unwinding the run.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }
