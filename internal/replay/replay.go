// Package replay records the taps of a run and plays them back. A replay is
// JSON compressed with zstd; it is validated against a schema before it is
// decoded.
package replay

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const Version = 1

var ErrBadReplay = errors.New("bad replay")

//go:embed replay.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("replay.schema.json", schemaJSON)

// Replay is everything needed to reproduce a run: the seed, the tuning it
// was played with and the ticks on which the player tapped.
type Replay struct {
	Version int    `json:"version"`
	Seed    uint64 `json:"seed"`
	Tuning  string `json:"tuning"`
	Jumps   []int  `json:"jumps"`
	Ticks   int    `json:"ticks"`
	Score   int    `json:"score"`
	Cause   string `json:"cause"`
}

// Recorder collects taps during a run.
type Recorder struct {
	r Replay
}

func NewRecorder(seed uint64, tuningDigest string) *Recorder {
	return &Recorder{r: Replay{Version: Version, Seed: seed, Tuning: tuningDigest, Jumps: []int{}}}
}

func (rec *Recorder) Jump(tick int) {
	rec.r.Jumps = append(rec.r.Jumps, tick)
}

// Finish closes the recording and returns the replay.
func (rec *Recorder) Finish(ticks, score int, cause string) Replay {
	rec.r.Ticks = ticks
	rec.r.Score = score
	rec.r.Cause = cause
	return rec.r
}

func Write(w io.Writer, r Replay) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(r); err != nil {
		_ = enc.Close()
		return fmt.Errorf("encode replay: %w", err)
	}
	return enc.Close()
}

func Read(rd io.Reader) (Replay, error) {
	var r Replay
	dec, err := zstd.NewReader(rd)
	if err != nil {
		return r, err
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return r, fmt.Errorf("%w: %v", ErrBadReplay, err)
	}

	var doc any
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseNumber()
	if err := d.Decode(&doc); err != nil {
		return r, fmt.Errorf("%w: %v", ErrBadReplay, err)
	}
	if err := schema.Validate(doc); err != nil {
		return r, fmt.Errorf("%w: %v", ErrBadReplay, err)
	}
	if err := json.Unmarshal(raw, &r); err != nil {
		return r, fmt.Errorf("%w: %v", ErrBadReplay, err)
	}
	return r, nil
}

func Save(path string, r Replay) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if err := Write(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func Load(path string) (Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return Replay{}, err
	}
	defer f.Close()
	return Read(f)
}

// Player hands recorded taps back tick by tick.
type Player struct {
	r    Replay
	next int
}

func NewPlayer(r Replay) *Player {
	return &Player{r: r}
}

// Touched reports whether the player tapped on the given tick. Ticks must
// be asked in increasing order.
func (p *Player) Touched(tick int) bool {
	touched := false
	for p.next < len(p.r.Jumps) && p.r.Jumps[p.next] <= tick {
		if p.r.Jumps[p.next] == tick {
			touched = true
		}
		p.next++
	}
	return touched
}

// Done reports whether the recorded run is over at tick.
func (p *Player) Done(tick int) bool {
	return tick >= p.r.Ticks
}

func (p *Player) Replay() Replay { return p.r }
