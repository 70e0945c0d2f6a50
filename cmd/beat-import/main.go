package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/audio"
	"github.com/lixenwraith/beat-fighter/parameter"
	"github.com/lixenwraith/beat-fighter/song"
)

var errNoBeats = errors.New("no beats: pass -bpm or -beats")

func main() {
	var (
		name      = flag.String("name", "", "Song name, also the record file name")
		audioPath = flag.String("audio", "", "Audio file to import (.wav, .mp3, .ogg)")
		dir       = flag.String("dir", parameter.DefaultSongsDir, "Songs directory")
		bpm       = flag.Float64("bpm", 0, "Tempo used for the beat grid and beat interval")
		anchor    = flag.Float64("anchor", 0, "Any time that lands on a beat, aligns the grid")
		cropStart = flag.Float64("crop-start", 0, "Loop start in seconds")
		cropEnd   = flag.Float64("crop-end", 0, "Loop end in seconds, 0 plays to the end")
		length    = flag.Float64("length", 0, "Grid length in seconds, 0 reads the audio duration")
		beats     = flag.String("beats", "", "Explicit comma separated beat times, overrides the grid")
		verbose   = flag.Bool("v", false, "Log import details")
	)
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	opt, err := options(*name, *audioPath, *bpm, *anchor, *cropStart, *cropEnd, *length, *beats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "beat-import: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	s, err := song.Import(*dir, opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "beat-import: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %q (%s) with %d beats into %s\n", s.Name, s.UID, s.Schedule().Len(), *dir)
}

// options validates flag values and fills the grid length from the audio when unset
func options(name, audioPath string, bpm, anchor, cropStart, cropEnd, length float64, beats string) (song.ImportOptions, error) {
	opt := song.ImportOptions{
		Name:      name,
		AudioPath: audioPath,
		BPM:       bpm,
		Anchor:    anchor,
		CropStart: cropStart,
		CropEnd:   cropEnd,
		Length:    length,
	}

	explicit, err := parseBeats(beats)
	if err != nil {
		return opt, err
	}
	opt.Beats = explicit
	if len(explicit) == 0 && bpm <= 0 {
		return opt, errNoBeats
	}

	if len(explicit) == 0 && opt.Length <= 0 && cropEnd <= 0 {
		if !audio.Supported(audioPath) {
			return opt, fmt.Errorf("%w: %s", audio.ErrUnsupportedFormat, audioPath)
		}
		d, err := audio.Duration(audioPath)
		if err != nil {
			return opt, fmt.Errorf("read duration: %w", err)
		}
		opt.Length = d.Seconds()
		log.Debug("Grid length from audio", "file", audioPath, "length", opt.Length)
	}
	return opt, nil
}

// parseBeats reads a comma separated list of times, sorted ascending
func parseBeats(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("beat %q: %w", f, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("beat %q: negative time", f)
		}
		out = append(out, v)
	}
	sort.Float64s(out)
	return out, nil
}
