package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/beat-fighter/parameter"
)

var (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = int64(parameter.MaxLogSize)
)

// setupLogging routes the default logger to logDir/logFileName when debug is set
// The terminal owns stdout, so without debug all output is discarded
// Returns the open log file, nil when logging is disabled
func setupLogging(debug bool, level string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(logFileName)
		base := logFileName[:len(logFileName)-len(ext)]
		rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.DebugLevel
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	log.SetLevel(lvl)
	return f
}
