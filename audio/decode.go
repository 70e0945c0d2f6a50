package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
)

// Supported reports whether the file extension names a decodable format
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".mp3", ".ogg":
		return true
	}
	return false
}

// Decode opens an audio asset, picking the decoder by file extension
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	if !Supported(path) {
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return stream, format, nil
}

// Duration returns the playback length of an audio asset
func Duration(path string) (time.Duration, error) {
	stream, format, err := Decode(path)
	if err != nil {
		return 0, err
	}
	defer stream.Close()
	return format.SampleRate.D(stream.Len()), nil
}
