// Package replay records every tick of a run as compressed JSON lines and
// re-simulates recordings to check they are reproducible.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	engineinput "gridsnake/pkg/engine/input"
	"gridsnake/pkg/game/config"
	"gridsnake/pkg/game/gameplay"
)

// FormatVersion is written into every header.
const FormatVersion = 1

// Header is the first line of a recording.
type Header struct {
	Version   int           `json:"version"`
	StartedAt time.Time     `json:"started_at"`
	Seed      int64         `json:"seed"`
	Config    config.Config `json:"config"`
}

// line is the on-disk envelope; exactly one field is set.
type line struct {
	Header *Header              `json:"header,omitempty"`
	Tick   *gameplay.TickRecord `json:"tick,omitempty"`
}

// Writer appends one JSONL line per tick to a zstd stream.
type Writer struct {
	mu   sync.Mutex
	path string
	f    *os.File
	enc  *zstd.Encoder
	w    *bufio.Writer
}

// Create opens a new recording under dir and writes its header.
func Create(dir string, h Header) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("ticks-%s-%d.jsonl.zst", h.StartedAt.UTC().Format("20060102-150405"), h.Seed)
	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w := &Writer{path: path, f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}
	h.Version = FormatVersion
	if err := w.writeLine(line{Header: &h}); err != nil {
		_ = w.Close()
		return nil, err
	}
	log.Printf("recording ticks to %s", path)
	return w, nil
}

// Path returns the recording file path
func (w *Writer) Path() string {
	return w.path
}

// WriteTick appends one tick. It satisfies gameplay.Observer.
func (w *Writer) WriteTick(rec gameplay.TickRecord) error {
	return w.writeLine(line{Tick: &rec})
}

func (w *Writer) writeLine(l line) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return errors.New("replay: writer closed")
	}
	b, err := json.Marshal(l)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes and closes the recording.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return nil
	}
	var errs []error
	errs = append(errs, w.w.Flush())
	errs = append(errs, w.enc.Close())
	errs = append(errs, w.f.Close())
	w.w = nil
	w.enc = nil
	w.f = nil
	return errors.Join(errs...)
}

// Recording is a decoded recording.
type Recording struct {
	Header Header
	Ticks  []gameplay.TickRecord
}

// Read decodes a recording from r.
func Read(r io.Reader) (*Recording, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	rec := &Recording{}
	sawHeader := false
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for n := 1; sc.Scan(); n++ {
		var l line
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		switch {
		case l.Header != nil:
			if sawHeader {
				return nil, fmt.Errorf("line %d: second header", n)
			}
			if l.Header.Version != FormatVersion {
				return nil, fmt.Errorf("line %d: unsupported version %d", n, l.Header.Version)
			}
			rec.Header = *l.Header
			sawHeader = true
		case l.Tick != nil:
			if !sawHeader {
				return nil, fmt.Errorf("line %d: tick before header", n)
			}
			rec.Ticks = append(rec.Ticks, *l.Tick)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, errors.New("replay: missing header")
	}
	return rec, nil
}

// ReadFile decodes the recording at path.
func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Divergence describes the first tick whose re-simulation differs.
type Divergence struct {
	Tick     uint64
	Recorded gameplay.TickRecord
	Replayed gameplay.TickRecord
}

func (d *Divergence) Error() string {
	return fmt.Sprintf("tick %d diverged: recorded head %+v %s step %d food %+v, replayed head %+v %s step %d food %+v",
		d.Tick,
		d.Recorded.Head, d.Recorded.Heading, d.Recorded.Step, d.Recorded.Food,
		d.Replayed.Head, d.Replayed.Heading, d.Replayed.Step, d.Replayed.Food)
}

// Driver rebuilds the recorded game at tick 0 with the recorded bindings applied.
func (r *Recording) Driver() *gameplay.Driver {
	engineinput.ResetBindings()
	r.Header.Config.ApplyBindings()
	return gameplay.NewDriver(r.Header.Config, rand.New(rand.NewSource(r.Header.Seed)))
}

// Verify re-runs the recording from its seed and recorded input, stopping at
// the first tick that differs. It returns the replayed driver.
func (r *Recording) Verify() (*gameplay.Driver, error) {
	d := r.Driver()
	for _, want := range r.Ticks {
		got := d.Tick(engineinput.NewSnapshot(want.Held...))
		if !sameTick(got, want) {
			return d, &Divergence{Tick: want.Tick, Recorded: want, Replayed: got}
		}
	}
	return d, nil
}

func sameTick(a, b gameplay.TickRecord) bool {
	return a.Tick == b.Tick &&
		a.Heading == b.Heading &&
		a.Head == b.Head &&
		a.Step == b.Step &&
		a.Moved == b.Moved &&
		a.Food == b.Food
}
