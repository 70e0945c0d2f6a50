package system

import (
	"testing"

	"github.com/lixenwraith/beat-fighter/audio"
	"github.com/lixenwraith/beat-fighter/beatmap"
	"github.com/lixenwraith/beat-fighter/rhythm"
	"github.com/lixenwraith/beat-fighter/song"
)

// playing returns a clock playing beats at bpm over a manual source
func playing(t *testing.T, bpm float64, beats []float64) (*rhythm.Clock, *audio.ManualSource) {
	t.Helper()
	s, err := song.New("test", "test.wav", beatmap.Beatmap{BPM: bpm, BeatTimes: beats})
	if err != nil {
		t.Fatalf("song.New failed: %v", err)
	}
	src := audio.NewManualSource()
	c := rhythm.NewClock(src, rhythm.DefaultOptions())
	if err := c.StartSong(s); err != nil {
		t.Fatalf("StartSong failed: %v", err)
	}
	return c, src
}

// step moves the source to now and ticks the clock
func step(c *rhythm.Clock, src *audio.ManualSource, now float64) {
	src.SetTime(now)
	c.Update()
}
