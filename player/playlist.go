package player

import (
	"encoding/json"
	"fmt"

	"github.com/EcstasyEngineer/trance"
)

// playlistEntry is a single programmed pattern in a playlist file. Exactly
// one of Preset and Archetype must be set.
type playlistEntry struct {
	// Preset names a catalog archetype.
	Preset string `json:"preset,omitempty"`
	// Archetype is an inline descriptor.
	Archetype *trance.ArchetypeDescriptor `json:"archetype,omitempty"`
	// Seconds holds the pattern on screen before advancing. Zero selects the
	// default 20.
	Seconds float64 `json:"seconds,omitempty"`
	// Screenshot, when set, captures a labeled PNG as this entry comes up.
	Screenshot string `json:"screenshot,omitempty"`
}

// playlistFile is the top-level JSON structure of a playlist.
type playlistFile struct {
	Loop    bool            `json:"loop"`
	Entries []playlistEntry `json:"entries"`
}

const defaultHoldSeconds = 20

// Playlist sequences archetypes over time. The player advances it once per
// update tick and crossfades whenever it moves to the next entry.
type Playlist struct {
	descs   []trance.ArchetypeDescriptor
	holds   []float64
	shots   []string
	loop    bool
	cursor  int
	elapsed float64
	done    bool
}

// LoadPlaylist parses a JSON playlist and resolves every entry to a
// validated descriptor, so a bad preset name or descriptor fails at load
// time instead of mid-show.
func LoadPlaylist(jsonData []byte) (*Playlist, error) {
	var file playlistFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse playlist: %w", err)
	}
	if len(file.Entries) == 0 {
		return nil, fmt.Errorf("parse playlist: no entries")
	}

	p := &Playlist{
		descs: make([]trance.ArchetypeDescriptor, len(file.Entries)),
		holds: make([]float64, len(file.Entries)),
		shots: make([]string, len(file.Entries)),
		loop:  file.Loop,
	}
	for i, e := range file.Entries {
		switch {
		case e.Preset != "" && e.Archetype != nil:
			return nil, fmt.Errorf("parse playlist: entry %d sets both preset and archetype", i)
		case e.Preset != "":
			d, ok := trance.Preset(e.Preset)
			if !ok {
				return nil, fmt.Errorf("parse playlist: entry %d: unknown preset %q", i, e.Preset)
			}
			p.descs[i] = d
		case e.Archetype != nil:
			if err := e.Archetype.Validate(); err != nil {
				return nil, fmt.Errorf("parse playlist: entry %d: %w", i, err)
			}
			p.descs[i] = *e.Archetype
		default:
			return nil, fmt.Errorf("parse playlist: entry %d sets neither preset nor archetype", i)
		}
		if e.Seconds < 0 {
			return nil, fmt.Errorf("parse playlist: entry %d: negative duration", i)
		}
		p.holds[i] = e.Seconds
		if e.Seconds == 0 {
			p.holds[i] = defaultHoldSeconds
		}
		p.shots[i] = e.Screenshot
	}
	return p, nil
}

// NewPlaylist builds a playlist from descriptors directly, holding each for
// the given number of seconds. Used by hosts that cycle the preset catalog
// without a JSON file.
func NewPlaylist(descs []trance.ArchetypeDescriptor, holdSeconds float64, loop bool) *Playlist {
	if holdSeconds <= 0 {
		holdSeconds = defaultHoldSeconds
	}
	p := &Playlist{
		descs: descs,
		holds: make([]float64, len(descs)),
		shots: make([]string, len(descs)),
		loop:  loop,
	}
	for i := range p.holds {
		p.holds[i] = holdSeconds
	}
	return p
}

// Current returns the descriptor the playlist is holding on.
func (p *Playlist) Current() trance.ArchetypeDescriptor {
	return p.descs[p.cursor]
}

// Index returns the current entry index and the entry count.
func (p *Playlist) Index() (int, int) {
	return p.cursor, len(p.descs)
}

// Done reports whether a non-looping playlist has played its last entry out.
func (p *Playlist) Done() bool {
	return p.done
}

// step advances the hold timer and reports a switch to the next entry. The
// returned label is the new entry's screenshot request, if any.
func (p *Playlist) step(dt float64) (next trance.ArchetypeDescriptor, label string, switched bool) {
	if p.done {
		return trance.ArchetypeDescriptor{}, "", false
	}
	p.elapsed += dt
	if p.elapsed < p.holds[p.cursor] {
		return trance.ArchetypeDescriptor{}, "", false
	}
	p.elapsed = 0

	if p.cursor+1 >= len(p.descs) {
		if !p.loop {
			p.done = true
			return trance.ArchetypeDescriptor{}, "", false
		}
		p.cursor = 0
	} else {
		p.cursor++
	}
	return p.descs[p.cursor], p.shots[p.cursor], true
}

// skip jumps to the next entry immediately, as if the hold expired.
func (p *Playlist) skip() (trance.ArchetypeDescriptor, string, bool) {
	if p.done {
		return trance.ArchetypeDescriptor{}, "", false
	}
	p.elapsed = p.holds[p.cursor]
	return p.step(0)
}
