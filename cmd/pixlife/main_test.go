package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixlife/internal/app"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--width", "12", "--height", "6", "--generations", "5")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.Contains(out, "generation 5") {
		t.Fatalf("missing summary:\n%s", out)
	}
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if len(line) == 12 && strings.Trim(line, "#.") == "" {
			rows++
		}
	}
	if rows != 6 {
		t.Fatalf("expected a 6-row board, found %d rows:\n%s", rows, out)
	}
}

func TestRunCommandEmptyBoard(t *testing.T) {
	out, err := execute(t, "run", "--width", "4", "--height", "4", "--generations", "3", "--empty", "-q")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "population 0") || !strings.Contains(out, "steady at 0") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "--width", "10", "--height", "10", "--seeds", "4",
		"--generations", "20", "--workers", "2", "--top", "2")
	if err != nil {
		t.Fatalf("sweep: %v\n%s", err, out)
	}
	if !strings.Contains(out, "SEED") {
		t.Fatalf("missing table header:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header and two rows:\n%s", out)
	}
}

func TestConfigFileAndValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("width: 5\nheight: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "run", "--config", path, "--generations", "1")
	if err != nil {
		t.Fatalf("run with config: %v", err)
	}
	if !strings.Contains(out, ".....\n") && !strings.Contains(out, "#") {
		t.Fatalf("expected a 5-wide board:\n%s", out)
	}

	if _, err := execute(t, "run", "--topology", "sphere"); err == nil {
		t.Fatal("expected an error for an unknown topology")
	}
}

func TestGUIRequiresTag(t *testing.T) {
	_, err := execute(t, "gui")
	if !errors.Is(err, app.ErrNoGUI) {
		t.Fatalf("err = %v, want ErrNoGUI", err)
	}
}

func TestSweepRejectsBadSeedCount(t *testing.T) {
	for _, n := range []string{"0", "-1"} {
		if _, err := execute(t, "sweep", "--seeds", n, "--generations", "1"); err == nil {
			t.Fatalf("expected an error for --seeds %s", n)
		}
	}
}
