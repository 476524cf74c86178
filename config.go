package prompter

import (
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Recognized PROMPTER_COLORS style keys.
const (
	StyleKeyCursor    = "cu" // cursor/indicator
	StyleKeyBox       = "be" // box element (unchecked/unavailable checkbox glyphs)
	StyleKeyDisabled  = "bd" // disabled item text
	StyleKeyPrompt    = "pr" // prompt marker
	StyleKeyMessage   = "me" // message text
	StyleKeyAnswer    = "an" // answer echo
	StyleKeySelected  = "se" // selected row
	StyleKeyCheckbox  = "cb" // checkbox glyph when checked
)

// StyleResolver maps a recognized style key to the lipgloss.Style to render
// it with. The zero Style (no attributes) is returned for unrecognized
// keys, matching lipgloss's own behavior of rendering unstyled text as-is.
type StyleResolver func(key string) lipgloss.Style

// Config holds the prompter's glyph and style configuration.
type Config struct {
	Indicator              string
	UncheckedBox           string
	CheckedBox             string
	Unavailable            string
	CancellableFirstPrompt bool
	StyleResolver          StyleResolver
}

// DefaultConfig returns the platform-appropriate glyph defaults with colors
// resolved from PROMPTER_COLORS (if set) layered over a built-in palette.
func DefaultConfig() Config {
	c := Config{CancellableFirstPrompt: true}
	if isWindowsLike() {
		c.Indicator = ">"
		c.UncheckedBox = "( )"
		c.CheckedBox = "(x)"
		c.Unavailable = "( )"
	} else {
		c.Indicator = "❯"
		c.UncheckedBox = "◯ "
		c.CheckedBox = "◉ "
		c.Unavailable = "⊝ "
	}
	c.StyleResolver = newStyleResolver(os.Getenv("PROMPTER_COLORS"))
	return c
}

func isWindowsLike() bool {
	return runtime.GOOS == "windows"
}

func defaultPalette() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		StyleKeyCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // green
		StyleKeyBox:      lipgloss.NewStyle().Foreground(lipgloss.Color("37")),  // cyan
		StyleKeyDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Faint(true),
		StyleKeyPrompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")), // gray
		StyleKeyMessage:  lipgloss.NewStyle(),
		StyleKeyAnswer:   lipgloss.NewStyle().Faint(true),
		StyleKeySelected: lipgloss.NewStyle().Bold(true),
		StyleKeyCheckbox: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// newStyleResolver parses the colon-separated key=value PROMPTER_COLORS
// value, applying each override atop defaultPalette. An unparseable entry
// is ignored; PROMPTER_COLORS is an optional, best-effort cosmetic
// override, not a configuration surface whose errors should abort a run.
func newStyleResolver(env string) StyleResolver {
	palette := defaultPalette()
	if env != "" {
		for _, kv := range strings.Split(env, ":") {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" || v == "" {
				continue
			}
			if _, known := palette[k]; known {
				palette[k] = parseStyleValue(v)
			}
		}
	}
	return func(key string) lipgloss.Style {
		if st, ok := palette[key]; ok {
			return st
		}
		return lipgloss.NewStyle()
	}
}

// parseStyleValue turns a PROMPTER_COLORS value into a lipgloss.Style. The
// value is a comma-separated list of an ANSI color number and optional
// attribute names (bold, faint, underline, reverse), e.g. "33,bold".
func parseStyleValue(v string) lipgloss.Style {
	st := lipgloss.NewStyle()
	for _, part := range strings.Split(v, ",") {
		switch part {
		case "bold":
			st = st.Bold(true)
		case "faint":
			st = st.Faint(true)
		case "underline":
			st = st.Underline(true)
		case "reverse":
			st = st.Reverse(true)
		default:
			if part != "" {
				st = st.Foreground(lipgloss.Color(part))
			}
		}
	}
	return st
}
