package rhythm

import (
	"github.com/lixenwraith/beat-fighter/parameter"
)

// Record is a beat that has crossed since the last reset
type Record struct {
	Time  float64 // Scheduled beat time, seconds
	Index int     // Position in the song's beat list
}

// recordLog keeps the most recent beat records in a fixed ring
type recordLog struct {
	buf   [parameter.BeatRecordRetention]Record
	head  int // Next write slot
	count int // Valid entries, capped at len(buf)
	total int // Appends since reset
}

func (l *recordLog) append(r Record) {
	l.buf[l.head] = r
	l.head = (l.head + 1) % len(l.buf)
	if l.count < len(l.buf) {
		l.count++
	}
	l.total++
}

func (l *recordLog) reset() {
	l.head, l.count, l.total = 0, 0, 0
}

// last returns the record n positions back from the newest, 0 = newest
func (l *recordLog) last(n int) (Record, bool) {
	if n < 0 || n >= l.count {
		return Record{}, false
	}
	i := (l.head - 1 - n + len(l.buf)) % len(l.buf)
	return l.buf[i], true
}

// slice returns the retained records oldest first
func (l *recordLog) slice() []Record {
	out := make([]Record, l.count)
	for i := range out {
		out[i], _ = l.last(l.count - 1 - i)
	}
	return out
}
