package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// withLogDir points logging at a temp directory for the duration of the test
func withLogDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "logs")
	prevDir, prevSize := logDir, maxLogSize
	logDir = dir
	t.Cleanup(func() {
		logDir, maxLogSize = prevDir, prevSize
		setupLogging(false, "")
	})
	return dir
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := withLogDir(t)

	logFile := setupLogging(false, "debug")
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := withLogDir(t)

	logFile := setupLogging(true, "info")
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(dir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	log.Info("Test log message", "song", "alpha")
	log.Debug("Filtered message")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "Test log message") {
		t.Errorf("Expected info message in log file, got %q", data)
	}
	if strings.Contains(string(data), "Filtered message") {
		t.Error("Expected debug message to be filtered at info level")
	}
}

func TestSetupLogging_InvalidLevelFallsBackToDebug(t *testing.T) {
	withLogDir(t)

	logFile := setupLogging(true, "loud")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	if got := log.GetLevel(); got != log.DebugLevel {
		t.Errorf("Expected debug level, got %v", got)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := withLogDir(t)
	maxLogSize = 1024

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logFile := setupLogging(true, "info")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}
