package song

import (
	"fmt"
	"path/filepath"

	"github.com/lixenwraith/beat-fighter/beatmap"
)

// Song pairs an audio asset with its beatmap
// Immutable after construction; the clock references it without owning it
type Song struct {
	UID              string
	Name             string // Identity used for registry cycling
	OriginalFileName string
	AudioPath        string
	ImportedByUser   bool

	beatmap  beatmap.Beatmap
	schedule *beatmap.Schedule
}

// New validates the beatmap and builds the song's schedule
func New(name, audioPath string, bm beatmap.Beatmap) (*Song, error) {
	if name == "" {
		return nil, ErrNoName
	}
	sched, err := bm.Schedule()
	if err != nil {
		return nil, fmt.Errorf("song %q: %w", name, err)
	}
	bm.BeatTimes = sched.BeatTimes()
	return &Song{
		Name:      name,
		AudioPath: audioPath,
		beatmap:   bm,
		schedule:  sched,
	}, nil
}

// FromRecord builds a song from a save record
// Relative audio paths are resolved against dir
func FromRecord(rec *Record, dir string) (*Song, error) {
	audioPath := rec.AudioFilePath
	if audioPath != "" && !filepath.IsAbs(audioPath) {
		audioPath = filepath.Join(dir, audioPath)
	}
	s, err := New(rec.UserGivenName, audioPath, rec.Beatmap())
	if err != nil {
		return nil, err
	}
	s.UID = rec.UID
	s.OriginalFileName = rec.OriginalFileName
	s.ImportedByUser = rec.ImportedByUser
	return s, nil
}

// Record converts the song back to its persisted form
// Audio path is stored relative to dir when it lives inside it
func (s *Song) Record(dir string) *Record {
	audioPath := s.AudioPath
	if rel, err := filepath.Rel(dir, audioPath); err == nil && filepath.IsLocal(rel) {
		audioPath = rel
	}
	return &Record{
		UID:                 s.UID,
		OriginalFileName:    s.OriginalFileName,
		UserGivenName:       s.Name,
		AudioFilePath:       audioPath,
		BPM:                 s.beatmap.BPM,
		ImportedByUser:      s.ImportedByUser,
		CroppedStartTime:    s.beatmap.CroppedStartTime,
		CroppedEndTime:      s.beatmap.CroppedEndTime,
		BeatMarkerPositions: []float64{},
		BeatMarkerTimes:     s.schedule.BeatTimes(),
	}
}

// Beatmap returns a copy of the timing data
func (s *Song) Beatmap() beatmap.Beatmap {
	bm := s.beatmap
	bm.BeatTimes = s.schedule.BeatTimes()
	return bm
}

// BPM returns the authored tempo, may be <= 0
func (s *Song) BPM() float64 {
	return s.beatmap.BPM
}

// StartTime returns the playback start inside the asset
func (s *Song) StartTime() float64 {
	return s.beatmap.StartTime()
}

// EndTime returns the crop end, ok=false to play to the end of the asset
func (s *Song) EndTime() (float64, bool) {
	return s.beatmap.EndTime()
}

// Schedule returns the validated beat schedule
func (s *Song) Schedule() *beatmap.Schedule {
	return s.schedule
}

func (s *Song) String() string {
	return s.Name
}
