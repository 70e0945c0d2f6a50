package song

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/parameter"
)

// Registry holds the songs available for the session
// Accessed from the frame loop only
type Registry struct {
	dir     string
	songs   []*Song
	current *Song
}

// NewRegistry creates an empty registry rooted at dir
func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir}
}

// Dir returns the songs directory
func (r *Registry) Dir() string {
	return r.dir
}

// Load replaces the registry contents with every song record in the directory
// A missing directory is created and yields an empty registry
// Unreadable records, invalid beatmaps and missing audio are skipped and logged
func (r *Registry) Load() error {
	r.songs = nil

	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		if err := os.MkdirAll(r.dir, parameter.SongDirPerm); err != nil {
			return fmt.Errorf("create songs directory: %w", err)
		}
		log.Info("Created songs directory", "dir", r.dir)
		return nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("read songs directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), parameter.SongFileExt) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	log.Debug("Found song records", "count", len(files), "dir", r.dir)

	for _, name := range files {
		path := filepath.Join(r.dir, name)
		rec, err := ReadRecordFile(path)
		if err != nil {
			log.Error("Failed to read song record", "file", path, "err", err)
			continue
		}
		s, err := FromRecord(rec, r.dir)
		if err != nil {
			log.Error("Rejected song record", "file", path, "err", err)
			continue
		}
		if _, err := os.Stat(s.AudioPath); err != nil {
			log.Error("Audio file does not exist", "song", s.Name, "path", s.AudioPath)
			continue
		}
		r.songs = append(r.songs, s)
		log.Debug("Loaded song", "song", s.Name, "beats", s.Schedule().Len(), "bpm", s.BPM())
	}

	log.Info("Songs loaded", "count", len(r.songs))

	if r.current != nil && r.IndexOf(r.current) < 0 {
		r.current = nil
	}
	if r.current == nil && len(r.songs) > 0 {
		r.current = r.songs[0]
	}
	return nil
}

// Add appends a song, replacing any existing song with the same name
func (r *Registry) Add(s *Song) {
	if i := r.IndexOf(s); i >= 0 {
		r.songs[i] = s
	} else {
		r.songs = append(r.songs, s)
	}
	if r.current == nil {
		r.current = s
	}
}

// Len returns the number of songs
func (r *Registry) Len() int {
	return len(r.songs)
}

// Songs returns a copy of the song list
func (r *Registry) Songs() []*Song {
	out := make([]*Song, len(r.songs))
	copy(out, r.songs)
	return out
}

// At returns the song at index i
func (r *Registry) At(i int) (*Song, error) {
	if len(r.songs) == 0 {
		return nil, ErrEmptyRegistry
	}
	if i < 0 || i >= len(r.songs) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexRange, i, len(r.songs))
	}
	return r.songs[i], nil
}

// Start returns the song at index clamped into range, for session start
func (r *Registry) Start(index int) (*Song, error) {
	if len(r.songs) == 0 {
		return nil, ErrEmptyRegistry
	}
	index = max(0, min(index, len(r.songs)-1))
	return r.songs[index], nil
}

// IndexOf locates a song by name, -1 if absent
func (r *Registry) IndexOf(s *Song) int {
	if s == nil {
		return -1
	}
	for i, candidate := range r.songs {
		if candidate.Name == s.Name {
			return i
		}
	}
	return -1
}

// Next returns the song after cur, wrapping at the end
// Unknown cur is treated as index 0
func (r *Registry) Next(cur *Song) (*Song, error) {
	n := len(r.songs)
	if n == 0 {
		return nil, ErrEmptyRegistry
	}
	i := r.IndexOf(cur)
	if i < 0 {
		i = 0
	}
	return r.songs[(i+1)%n], nil
}

// Previous returns the song before cur, wrapping at the start
// Unknown cur is treated as the last index
func (r *Registry) Previous(cur *Song) (*Song, error) {
	n := len(r.songs)
	if n == 0 {
		return nil, ErrEmptyRegistry
	}
	i := r.IndexOf(cur)
	if i < 0 {
		i = n - 1
	}
	return r.songs[(i-1+n)%n], nil
}

// Current returns the last song marked current, nil if none
func (r *Registry) Current() *Song {
	return r.current
}

// SetCurrent marks s as the current song
func (r *Registry) SetCurrent(s *Song) {
	r.current = s
}
