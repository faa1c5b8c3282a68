package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLogFile(t *testing.T, dir string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "deckforge_*.log"))
	if err != nil || len(matches) == 0 {
		t.Fatalf("no log file found in %s: %v", dir, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestLogWritesToFile(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger()
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	l.Logf("request %s: %d slides", "abc", 5)
	l.Close()

	content := readLogFile(t, dir)
	if !strings.Contains(content, "request abc: 5 slides") {
		t.Errorf("log file missing message: %q", content)
	}
}

func TestDetailfHonorsDetailedFlag(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger()
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	l.Detailf("suppressed slide trace")
	l.SetDetailed(true)
	l.Detailf("visible slide trace")
	l.Close()

	content := readLogFile(t, dir)
	if strings.Contains(content, "suppressed slide trace") {
		t.Error("Detailf wrote while detail logging was off")
	}
	if !strings.Contains(content, "visible slide trace") {
		t.Error("Detailf did not write while detail logging was on")
	}
}

func TestInitNumbersRunsPerDay(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 2; i++ {
		l := NewLogger()
		if err := l.Init(dir); err != nil {
			t.Fatalf("Init %d failed: %v", i, err)
		}
		l.Close()
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "deckforge_*.log"))
	if len(matches) != 2 {
		t.Errorf("got %d log files, want one per run", len(matches))
	}
}
