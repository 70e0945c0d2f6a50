package song

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lixenwraith/beat-fighter/beatmap"
	"github.com/lixenwraith/beat-fighter/parameter"
)

// ImportOptions describes a song to add to the songs directory
type ImportOptions struct {
	Name      string
	AudioPath string // Source audio file, copied into the songs directory

	BPM       float64
	CropStart float64
	CropEnd   float64

	// Beats are explicit marker times; when empty a grid is generated from
	// BPM aligned to Anchor over [0, Length)
	Beats  []float64
	Anchor float64
	Length float64
}

// Import copies the audio into dir, writes <name>.json and returns the song
// An existing song with the same name is overwritten
func Import(dir string, opt ImportOptions) (*Song, error) {
	if opt.Name == "" {
		return nil, ErrNoName
	}
	if _, err := os.Stat(opt.AudioPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoAudio, opt.AudioPath)
	}

	beats := opt.Beats
	if len(beats) == 0 && opt.BPM > 0 {
		length := opt.Length
		if end := opt.CropEnd; end > 0 && (length <= 0 || end < length) {
			length = end
		}
		grid, err := beatmap.Grid(opt.BPM, opt.Anchor, length)
		if err != nil {
			return nil, err
		}
		beats = grid
	}

	bm := beatmap.Beatmap{
		BPM:              opt.BPM,
		CroppedStartTime: opt.CropStart,
		CroppedEndTime:   opt.CropEnd,
		BeatTimes:        beats,
	}
	if err := bm.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, parameter.SongDirPerm); err != nil {
		return nil, fmt.Errorf("create songs directory: %w", err)
	}

	audioDst := filepath.Join(dir, opt.Name+filepath.Ext(opt.AudioPath))
	if err := copyFile(opt.AudioPath, audioDst); err != nil {
		return nil, fmt.Errorf("copy audio: %w", err)
	}

	s, err := New(opt.Name, audioDst, bm)
	if err != nil {
		return nil, err
	}
	s.UID = uuid.NewString()
	s.OriginalFileName = filepath.Base(opt.AudioPath)
	s.ImportedByUser = true

	recPath := filepath.Join(dir, opt.Name+parameter.SongFileExt)
	if err := WriteRecordFile(recPath, s.Record(dir)); err != nil {
		return nil, fmt.Errorf("write song record: %w", err)
	}

	log.Info("Song imported", "song", s.Name, "uid", s.UID, "beats", s.Schedule().Len(), "file", recPath)
	return s, nil
}

func copyFile(src, dst string) error {
	if same, err := samePath(src, dst); err == nil && same {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, parameter.SongFilePerm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func samePath(a, b string) (bool, error) {
	ia, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ia, ib), nil
}
