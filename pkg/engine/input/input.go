package input

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// DefaultHoldWindow is how long a terminal key press counts as held.
// Terminals never report key release, so a key stays held while its
// auto-repeat keeps arriving inside this window.
const DefaultHoldWindow = 250 * time.Millisecond

// readSize is large enough for any single key event.
const readSize = 64

// KeyDecoder turns a raw terminal byte stream into key codes.
// A terminal delivers each key event in one read, so an ESC that ends a read
// is the Escape key itself rather than the start of a sequence.
type KeyDecoder struct {
	r       io.Reader
	buf     []byte
	pending []string
}

// NewKeyDecoder creates a decoder reading from r.
func NewKeyDecoder(r io.Reader) *KeyDecoder {
	return &KeyDecoder{r: r, buf: make([]byte, readSize)}
}

// Next returns the next recognised key code. Unknown bytes and
// unknown escape sequences are skipped.
func (d *KeyDecoder) Next() (string, error) {
	for len(d.pending) == 0 {
		n, err := d.r.Read(d.buf)
		if n > 0 {
			d.pending = decodeKeys(d.pending, d.buf[:n])
		}
		if err != nil && len(d.pending) == 0 {
			return "", err
		}
	}
	code := d.pending[0]
	d.pending = d.pending[1:]
	return code, nil
}

// decodeKeys appends the codes found in one read to codes.
func decodeKeys(codes []string, b []byte) []string {
	for i := 0; i < len(b); i++ {
		if b[i] != 0x1b {
			if code := byteCode(b[i]); code != "" {
				codes = append(codes, code)
			}
			continue
		}
		if i+1 == len(b) || (b[i+1] != '[' && b[i+1] != 'O') {
			codes = append(codes, "escape")
			continue
		}
		// CSI/SS3: parameter and intermediate bytes, then one final byte
		j := i + 2
		for j < len(b) && b[j] >= 0x20 && b[j] <= 0x3f {
			j++
		}
		if j == len(b) {
			// truncated sequence
			return codes
		}
		if code := finalByteCode(b[j]); code != "" {
			codes = append(codes, code)
		}
		i = j
	}
	return codes
}

// finalByteCode maps the final byte of an arrow key sequence. Modifier
// parameters such as Ctrl+Up (ESC [1;5A) still yield the plain arrow.
func finalByteCode(b byte) string {
	switch b {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

func byteCode(b byte) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b >= 'a' && b <= 'z':
		return string(rune(b))
	}
	return ""
}

// KeyTracker converts key press events into held state.
type KeyTracker struct {
	window time.Duration

	mu       sync.Mutex
	lastSeen map[string]time.Time
}

// NewKeyTracker creates a tracker that holds each key for window after its last press.
func NewKeyTracker(window time.Duration) *KeyTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyTracker{window: window, lastSeen: make(map[string]time.Time)}
}

// Press records a press of code at t.
func (k *KeyTracker) Press(code string, t time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.lastSeen[code] = t
}

// Snapshot returns the codes held at now and forgets expired ones.
func (k *KeyTracker) Snapshot(now time.Time) Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()
	var held []string
	for code, seen := range k.lastSeen {
		if now.Sub(seen) <= k.window {
			held = append(held, code)
		} else {
			delete(k.lastSeen, code)
		}
	}
	return NewSnapshot(held...)
}

// RawTerminal puts stdin into raw mode and feeds decoded keys into a tracker.
type RawTerminal struct {
	fd       int
	oldState *term.State
	tracker  *KeyTracker
}

// OpenRawTerminal switches stdin to raw mode.
func OpenRawTerminal(tracker *KeyTracker) (*RawTerminal, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &RawTerminal{fd: fd, oldState: oldState, tracker: tracker}, nil
}

// Listen reads keys until stdin fails, recording each press. Quit codes are
// also forwarded on quit so the caller can stop the loop.
func (t *RawTerminal) Listen(quit chan<- struct{}) {
	dec := NewKeyDecoder(os.Stdin)
	for {
		code, err := dec.Next()
		if err != nil {
			return
		}
		t.tracker.Press(code, time.Now())
		if MapToIntent(code) == ActionQuit {
			select {
			case quit <- struct{}{}:
			default:
			}
		}
	}
}

// Restore returns the terminal to its previous mode.
func (t *RawTerminal) Restore() error {
	return term.Restore(t.fd, t.oldState)
}
