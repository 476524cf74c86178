package prompter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Option configures an Engine. Named distinctly from the per-prompt
// PromptOption in model.go since the two configure independent things —
// a running Engine versus a single *Prompt — and overloading one
// interface across both would blur that boundary.
type Option interface{ apply(*Engine) }

type inputOption struct{ r io.Reader }

func (o inputOption) apply(e *Engine) { e.in = o.r }

// WithInput overrides the engine's input source (primarily for tests).
func WithInput(r io.Reader) Option { return inputOption{r} }

type outputOption struct{ w io.Writer }

func (o outputOption) apply(e *Engine) { e.out = o.w }

// WithOutput overrides the engine's output sink (primarily for tests).
func WithOutput(w io.Writer) Option { return outputOption{w} }

type configOption struct{ cfg Config }

func (o configOption) apply(e *Engine) { e.cfg = o.cfg }

// WithConfig overrides the glyph/style configuration.
func WithConfig(cfg Config) Option { return configOption{cfg} }

type sizeOption struct{ w, h int }

func (o sizeOption) apply(e *Engine) { e.widthOverride, e.heightOverride = o.w, o.h }

// WithSize fixes the terminal size rather than querying it each frame
// (tests only; production use re-reads the real size every frame and does
// not reflow mid-prompt beyond that).
func WithSize(w, h int) Option { return sizeOption{w, h} }

type ttyOption struct{ f *os.File }

func (o ttyOption) apply(e *Engine) {
	e.in, e.out = o.f, o.f
	e.fd = int(o.f.Fd())
}

// WithTTY points the engine at a TTY other than stdin/stdout.
func WithTTY(f *os.File) Option { return ttyOption{f} }

// Engine is the flow controller: it owns the TTY for the duration of a
// Run, sequences prompts, and maintains the accumulated header and
// result map with transactional back-navigation.
type Engine struct {
	in  io.Reader
	out io.Writer
	fd  int // -1 when not backed by a real os.File
	cfg Config

	widthOverride, heightOverride int
	running                       bool
}

// New creates an Engine reading from stdin and writing to stdout by default.
func New(opts ...Option) *Engine {
	e := &Engine{in: os.Stdin, out: os.Stdout, fd: -1, cfg: DefaultConfig()}
	if f, ok := e.in.(*os.File); ok {
		e.fd = int(f.Fd())
	}
	for _, o := range opts {
		o.apply(e)
	}
	return e
}

func (e *Engine) isTerminal() bool {
	return e.fd >= 0 && isatty.IsTerminal(uintptr(e.fd))
}

func (e *Engine) size() (cols, rows int) {
	if e.widthOverride > 0 {
		return e.widthOverride, e.heightOverride
	}
	if e.fd >= 0 {
		if w, h, err := term.GetSize(e.fd); err == nil {
			return w, h
		}
	}
	return 80, 24
}

// Provider returns the next batch of prompts given the cumulative result
// map so far, or nil to terminate the run successfully.
type Provider func(map[string]*Result) []Prompt

// Run executes a fixed prompt list. It is sugar over RunDynamic with a
// provider that yields the list once.
func (e *Engine) Run(header []string, prompts []Prompt) (map[string]*Result, error) {
	done := false
	return e.RunDynamic(header, func(map[string]*Result) []Prompt {
		if done {
			return nil
		}
		done = true
		return prompts
	})
}

type frame struct {
	prompts   []Prompt
	index     int
	committed []string // names committed so far, parallel to index
}

// RunDynamic executes prompts produced by provider, which is called again
// each time the current batch is exhausted and may inspect the results
// accumulated so far to decide what to ask next. Fixed and dynamic
// sequencing share one frame-stack state machine: a fixed Run is simply a
// provider yielding exactly one batch.
//
// The controller guarantees raw mode is entered exactly once at the start
// and restored exactly once at the end, even on panic — the restore runs
// in a deferred recover that re-panics once cleanup is done.
func (e *Engine) RunDynamic(header []string, provider Provider) (result map[string]*Result, err error) {
	if e.running {
		return nil, &UsageError{Msg: "engine is already running (re-entrant Run)"}
	}
	if provider == nil {
		return nil, &UsageError{Msg: "nil provider"}
	}
	e.running = true
	defer func() { e.running = false }()

	var restore func()
	if e.isTerminal() {
		if f, ok := e.in.(*os.File); ok {
			oldState, rerr := term.MakeRaw(int(f.Fd()))
			if rerr != nil {
				return nil, &IOError{Op: "enter raw mode", Err: rerr}
			}
			restore = func() { _ = term.Restore(int(f.Fd()), oldState) }
		}
	}
	defer func() {
		if restore != nil {
			restore()
		}
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	nbr := NewNonBlockingReader(e.in)
	defer nbr.Shutdown()
	disp := NewDisplay(e.out, 80, 24)
	hist := &inputHistory{index: -1}

	ev := &env{
		reader: nbr,
		disp:   disp,
		cfg:    e.cfg,
		size:   e.size,
		hist:   hist,
	}

	cumulative := map[string]*Result{}
	headerLines := append([]string(nil), header...)
	var stack []*frame

	for {
		if len(stack) == 0 || stack[len(stack)-1].index >= len(stack[len(stack)-1].prompts) {
			batch := provider(cloneResults(cumulative))
			if batch == nil {
				e.finish(disp, headerLines)
				return cumulative, nil
			}
			stack = append(stack, &frame{prompts: batch})
			continue
		}

		top := stack[len(stack)-1]
		p := &top.prompts[top.index]
		if verr := p.validateShape(); verr != nil {
			return nil, verr
		}

		res, derr := dispatch(p, toAttrLines(headerLines), ev)
		if derr == ErrCancelled {
			e.finish(disp, headerLines)
			return map[string]*Result{}, ErrCancelled
		}
		if derr != nil {
			return nil, derr
		}

		if res == nil { // Escape: back-navigation
			if top.index > 0 {
				top.index--
				name := top.committed[top.index]
				delete(cumulative, name)
				headerLines = headerLines[:len(headerLines)-1]
				top.committed = top.committed[:top.index]
				continue
			}
			if len(stack) == 1 {
				if e.cfg.CancellableFirstPrompt {
					e.finish(disp, headerLines)
					return map[string]*Result{}, nil
				}
				continue // re-prompt the same (first) prompt
			}
			// Cross-batch back navigation: discard this not-yet-committed batch
			// and unwind the entire previous batch, re-entering it at its start.
			stack = stack[:len(stack)-1]
			prev := stack[len(stack)-1]
			for prev.index > 0 {
				prev.index--
				name := prev.committed[prev.index]
				delete(cumulative, name)
				headerLines = headerLines[:len(headerLines)-1]
			}
			prev.committed = prev.committed[:0]
			continue
		}

		// Commit.
		cumulative[p.Name] = res
		headerLines = append(headerLines, createMessage(p, res))
		top.committed = append(top.committed, p.Name)
		top.index++
	}
}

func cloneResults(m map[string]*Result) map[string]*Result {
	out := make(map[string]*Result, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// finish rewrites the final screen state to show only the accumulated
// header with no live cursor artefacts.
func (e *Engine) finish(disp *Display, headerLines []string) {
	lines := toAttrLines(headerLines)
	f := Frame{Lines: lines}
	if n := len(lines); n > 0 {
		f.CursorRow, f.CursorCol = n-1, lines[n-1].Width()
	}
	disp.Render(f)
	disp.FinalNewline()
}

func toAttrLines(lines []string) []AttributedString {
	out := make([]AttributedString, len(lines))
	for i, l := range lines {
		out[i] = NewAttributedString(Plain(l))
	}
	return out
}

// createMessage formats the header summary line appended on commit: "?
// message answer", with the answer omitted when there is none.
func createMessage(p *Prompt, res *Result) string {
	answer := answerText(p, res)
	if answer == "" {
		return fmt.Sprintf("? %s", p.Message)
	}
	return fmt.Sprintf("? %s %s", p.Message, answer)
}

func answerText(p *Prompt, res *Result) string {
	switch res.Kind {
	case KindInput:
		return res.Input
	case KindList:
		return itemTextByName(p.items(), res.List)
	case KindChoice:
		return itemTextByName(p.items(), res.Choice)
	case KindCheckbox:
		items := p.items()
		var names []string
		for _, it := range items {
			if res.Checkbox[it.Name] {
				names = append(names, it.Text)
			}
		}
		return strings.Join(names, ", ")
	case KindConfirm:
		if res.Confirm {
			return "Yes"
		}
		return "No"
	default: // KindText
		return ""
	}
}

func itemTextByName(items []Item, name string) string {
	for _, it := range items {
		if it.Name == name {
			return it.Text
		}
	}
	return name
}
