package statusweb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lixenwraith/beat-fighter/song"
	"github.com/lixenwraith/beat-fighter/status"
)

func TestStatusEndpoint(t *testing.T) {
	reg := status.NewRegistry()
	reg.Counters.Get("rhythm.beats").Store(12)
	h := NewHandler(reg, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["rhythm.beats"] != float64(12) {
		t.Errorf("Expected rhythm.beats 12, got %v", body["rhythm.beats"])
	}

	reg.Counters.Get("combo.level").Store(2)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status?prefix=combo.", nil))
	body = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(body) != 1 || body["combo.level"] != float64(2) {
		t.Errorf("Expected only combo.level, got %v", body)
	}
}

func TestSongEndpoint(t *testing.T) {
	reg := status.NewRegistry()
	h := NewHandler(reg, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/song", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 while idle, got %d", rec.Code)
	}

	reg.Labels.Get("rhythm.song").Store("Intro")
	reg.Counters.Get("rhythm.index").Store(3)
	reg.Gauges.Get("rhythm.interval").Set(0.5)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/song", nil))
	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["name"] != "Intro" || body["index"] != float64(3) || body["interval"] != 0.5 {
		t.Errorf("Unexpected song body %v", body)
	}
}

func TestServiceServesSongs(t *testing.T) {
	statusSvc := status.NewService()
	songSvc := song.NewService(t.TempDir())
	if err := songSvc.Init(); err != nil {
		t.Fatalf("songs Init failed: %v", err)
	}

	svc := NewService(statusSvc, songSvc)
	if err := svc.Init("127.0.0.1:0"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer svc.Stop()

	resp, err := http.Get(fmt.Sprintf("http://%s/songs", svc.Addr()))
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var songs []SongInfo
	if err := json.NewDecoder(resp.Body).Decode(&songs); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(songs) != 0 {
		t.Errorf("Expected empty library, got %v", songs)
	}
}

func TestServiceDisabledWithoutAddr(t *testing.T) {
	svc := NewService(status.NewService(), song.NewService(t.TempDir()))
	svc.Init("")
	if err := svc.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if svc.Addr() != "" {
		t.Errorf("Expected no listener, got %s", svc.Addr())
	}
	if err := svc.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
