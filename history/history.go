// Package history remembers where playback stopped so a source can be resumed.
package history

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/where"
)

const (
	// positions closer than this to either end are not worth resuming
	margin = 5.0
)

var cacher = gache.New[map[string]*Position](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.CacheFs{},
	},
)

// Position is the saved playhead of one source.
type Position struct {
	Source   string    `json:"source"`
	Time     float64   `json:"time"`
	Duration float64   `json:"duration"`
	SavedAt  time.Time `json:"saved_at"`
}

// Resumable reports whether the position lies inside the playable range
// with enough room on both sides.
func (p *Position) Resumable() bool {
	return p.Time >= margin && p.Duration > 0 && p.Time < p.Duration-margin
}

// Normalize makes local paths absolute so the same file resolves to one record.
func Normalize(source string) string {
	if strings.Contains(source, "://") {
		return source
	}

	if abs, err := filepath.Abs(source); err == nil {
		return abs
	}
	return source
}

// Get returns every saved position keyed by normalized source.
func Get() (map[string]*Position, error) {
	saved, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}

	if expired || saved == nil {
		return make(map[string]*Position), nil
	}
	return saved, nil
}

// Lookup returns the saved position of source if it can be resumed.
func Lookup(source string) (*Position, bool, error) {
	saved, err := Get()
	if err != nil {
		return nil, false, err
	}

	p, ok := saved[Normalize(source)]
	if !ok || !p.Resumable() {
		return nil, false, nil
	}
	return p, true, nil
}

// Save records the playhead of source. Positions near the start or the end
// drop the record instead, so finished videos start over next time.
func Save(source string, t, duration float64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	p := &Position{
		Source:   Normalize(source),
		Time:     t,
		Duration: duration,
		SavedAt:  time.Now(),
	}

	if p.Resumable() {
		saved[p.Source] = p
	} else {
		delete(saved, p.Source)
	}

	return cacher.Set(saved)
}

// Remove forgets the position of source.
func Remove(source string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, Normalize(source))
	return cacher.Set(saved)
}
