package song

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/beat-fighter/beatmap"
)

// Record is the persisted song file, one JSON document per song
// Field names match the save files written by the song importer
type Record struct {
	UID                 string    `json:"UID"`
	OriginalFileName    string    `json:"originalFileName"`
	UserGivenName       string    `json:"userGivenName"`
	AudioFilePath       string    `json:"audioFilePath"`
	BPM                 float64   `json:"bpm"`
	ImportedByUser      bool      `json:"importedByUser"`
	CroppedStartTime    float64   `json:"croppedStartTime"`
	CroppedEndTime      float64   `json:"croppedEndTime"`
	BeatMarkerPositions []float64 `json:"beatMarkerPositions"`
	BeatMarkerTimes     []float64 `json:"beatMarkerTimes"`
}

// Beatmap extracts the timing data
func (r *Record) Beatmap() beatmap.Beatmap {
	beats := make([]float64, len(r.BeatMarkerTimes))
	copy(beats, r.BeatMarkerTimes)
	return beatmap.Beatmap{
		BPM:              r.BPM,
		CroppedStartTime: r.CroppedStartTime,
		CroppedEndTime:   r.CroppedEndTime,
		BeatTimes:        beats,
	}
}

// DecodeRecord reads a single record
func DecodeRecord(r io.Reader) (*Record, error) {
	var rec Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode song record: %w", err)
	}
	return &rec, nil
}

// Encode writes the record as indented JSON
func (r *Record) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode song record: %w", err)
	}
	return nil
}

// ReadRecordFile loads a record from disk
func ReadRecordFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeRecord(f)
}

// WriteRecordFile writes a record to disk, replacing any existing file
func WriteRecordFile(path string, rec *Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rec.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
