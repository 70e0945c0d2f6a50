package rhythm

// Verdict classifies an action time against recent beats
type Verdict int

const (
	// VerdictInactive means no song is playing or no beat has fired yet
	VerdictInactive Verdict = iota
	VerdictOnBeat
	VerdictEarly
	VerdictLate
)

var verdictNames = [...]string{"inactive", "on_beat", "early", "late"}

func (v Verdict) String() string {
	if v < 0 || int(v) >= len(verdictNames) {
		return "unknown"
	}
	return verdictNames[v]
}

// Judgment is the outcome of judging one timestamp
type Judgment struct {
	Verdict Verdict
	Index   int     // Beat judged against, -1 when inactive
	Offset  float64 // Timestamp minus that beat's time
}

// OnBeat reports whether the judgment counts as on the beat
func (j Judgment) OnBeat() bool {
	return j.Verdict == VerdictOnBeat
}

// Judge classifies ts against the current beat record, then the previous one
// Off-beat results are early or late relative to the current beat
func (c *Clock) Judge(ts float64) Judgment {
	if c.state != StatePlaying || !c.source.IsPlaying() {
		return Judgment{Verdict: VerdictInactive, Index: -1}
	}

	cur, ok := c.records.last(0)
	if !ok {
		return Judgment{Verdict: VerdictInactive, Index: -1}
	}
	if c.within(ts, cur.Time) {
		return Judgment{Verdict: VerdictOnBeat, Index: cur.Index, Offset: ts - cur.Time}
	}
	if prev, ok := c.records.last(1); ok && c.within(ts, prev.Time) {
		return Judgment{Verdict: VerdictOnBeat, Index: prev.Index, Offset: ts - prev.Time}
	}

	j := Judgment{Verdict: VerdictLate, Index: cur.Index, Offset: ts - cur.Time}
	if j.Offset < 0 {
		j.Verdict = VerdictEarly
	}
	return j
}

// IsOnBeat reports whether ts is within the margins of the current or previous beat
// False while idle, paused or before the first beat
func (c *Clock) IsOnBeat(ts float64) bool {
	return c.Judge(ts).OnBeat()
}

// IsOnBeatNow judges the current playback time
func (c *Clock) IsOnBeatNow() bool {
	return c.IsOnBeat(c.CurrentSongTime())
}

// JudgeNow classifies the current playback time
func (c *Clock) JudgeNow() Judgment {
	return c.Judge(c.CurrentSongTime())
}

func (c *Clock) within(ts, beat float64) bool {
	return ts >= beat-c.pre && ts <= beat+c.post
}
