package prompter

import (
	"bufio"
	"io"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel rune values returned by NonBlockingReader.Read/Peek in place of
// a decoded character. Neither is a valid Unicode code point, so they
// double as internal sentinels without needing a separate result type.
const (
	RuneEOF     rune = -1
	RuneTimeout rune = -2
)

type decoded struct {
	r   rune
	err error
}

// NonBlockingReader turns a blocking byte source (the TTY) into a character
// stream supporting timed reads and single-character lookahead, with
// incremental UTF-8 decoding so a partially-read multi-byte character never
// produces a spurious replacement rune. A single background goroutine pumps
// bytes off the underlying reader; it owns no state the engine mutates and
// is released (not joined, since the blocking Read it is stuck in cannot be
// interrupted) by shutdown.
type NonBlockingReader struct {
	src    *bufio.Reader
	dec    transform.Transformer
	ch     chan decoded
	done   chan struct{}
	buf    []decoded // single-element pushback stack used by Peek
	closed bool
}

// NewNonBlockingReader starts the background pump over r.
func NewNonBlockingReader(r io.Reader) *NonBlockingReader {
	nr := &NonBlockingReader{
		src:  bufio.NewReader(r),
		dec:  unicode.UTF8.NewDecoder(),
		ch:   make(chan decoded, 256),
		done: make(chan struct{}),
	}
	go nr.pump()
	return nr
}

func (nr *NonBlockingReader) pump() {
	var raw [256]byte
	var pending []byte
	dst := make([]byte, 4)
	for {
		n, err := nr.src.Read(raw[:])
		if n > 0 {
			pending = append(pending, raw[:n]...)
			for len(pending) > 0 {
				ndst, nsrc, terr := nr.dec.Transform(dst, pending, false)
				if ndst == 0 && terr == transform.ErrShortSrc {
					// Incomplete multi-byte sequence at the tail; wait for more bytes
					// rather than emitting a premature replacement rune.
					break
				}
				for out := dst[:ndst]; len(out) > 0; {
					r, size := decodeOne(out)
					out = out[size:]
					select {
					case nr.ch <- decoded{r: r}:
					case <-nr.done:
						return
					}
				}
				if nsrc == 0 {
					break
				}
				pending = pending[nsrc:]
				if terr != nil && terr != transform.ErrShortSrc && terr != transform.ErrShortDst {
					break
				}
			}
		}
		if err != nil {
			select {
			case nr.ch <- decoded{r: RuneEOF, err: io.EOF}:
			case <-nr.done:
			}
			return
		}
	}
}

func decodeOne(b []byte) (rune, int) {
	for _, r := range string(b) {
		return r, len(string(r))
	}
	return RuneEOF, 0
}

// Read returns the next character, waiting up to timeout for it to become
// available. timeout < 0 blocks indefinitely; timeout == 0 polls without
// waiting. Returns RuneTimeout if no character arrived in time, or RuneEOF
// (with io.EOF) once the underlying source is exhausted.
func (nr *NonBlockingReader) Read(timeout time.Duration) (rune, error) {
	if len(nr.buf) > 0 {
		d := nr.buf[len(nr.buf)-1]
		nr.buf = nr.buf[:len(nr.buf)-1]
		return d.r, d.err
	}

	if timeout < 0 {
		d := <-nr.ch
		return d.r, d.err
	}

	if timeout == 0 {
		select {
		case d := <-nr.ch:
			return d.r, d.err
		default:
			return RuneTimeout, nil
		}
	}

	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case d := <-nr.ch:
		return d.r, d.err
	case <-t.C:
		return RuneTimeout, nil
	}
}

// Peek behaves like Read but does not consume the character: the next call
// to Read or Peek observes it again, error included — a Peek that observes
// EOF must not lose it, or a subsequent Read would report a spurious nil
// error for the buffered RuneEOF.
func (nr *NonBlockingReader) Peek(timeout time.Duration) (rune, error) {
	if len(nr.buf) > 0 {
		d := nr.buf[len(nr.buf)-1]
		return d.r, d.err
	}
	r, err := nr.Read(timeout)
	if r == RuneTimeout {
		return r, err
	}
	nr.buf = append(nr.buf, decoded{r: r, err: err})
	return r, err
}

// Available reports a lower bound on the number of characters that can be
// read without blocking.
func (nr *NonBlockingReader) Available() int {
	return len(nr.buf) + len(nr.ch)
}

// Shutdown releases the background pump. It does not close the underlying
// stream, which remains owned by the output writer until the engine's
// overall teardown (the TTY is a single shared resource used for both).
func (nr *NonBlockingReader) Shutdown() {
	if nr.closed {
		return
	}
	nr.closed = true
	close(nr.done)
}
