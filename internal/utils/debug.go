package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	debugLogPrefix = "debug-"
	debugLogSuffix = ".log"
)

var (
	debugFile *os.File
	debugOnce sync.Once
	logsDir   string
	mu        sync.RWMutex
)

// ConfigureDebug sets the directory for debug logs
func ConfigureDebug(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logsDir = dir
}

// Debug writes a timestamped line to the session's debug log. It does
// nothing until ConfigureDebug has been called.
func Debug(format string, args ...any) {
	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	if dir == "" {
		return
	}

	debugOnce.Do(func() {
		_ = os.MkdirAll(dir, 0o755)
		name := debugLogPrefix + time.Now().Format("20060102-150405") + debugLogSuffix
		debugFile, _ = os.Create(filepath.Join(dir, name))
	})

	if debugFile != nil {
		fmt.Fprintf(debugFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	}
}

// CleanupLogs keeps the newest `keep` debug logs in the configured
// directory and removes the rest. keep <= 0 disables cleanup.
func CleanupLogs(keep int) {
	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	if dir == "" || keep <= 0 {
		return
	}

	removed, err := pruneLogs(dir, keep)
	if err != nil {
		Debug("log cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		Debug("removed %d old log file(s)", removed)
	}
}

func pruneLogs(dir string, keep int) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, debugLogPrefix) || !strings.HasSuffix(name, debugLogSuffix) {
			continue
		}
		logs = append(logs, name)
	}
	if len(logs) <= keep {
		return 0, nil
	}

	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(logs)))

	removed := 0
	for _, name := range logs[keep:] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
