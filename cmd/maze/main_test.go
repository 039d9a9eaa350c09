package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pavanmanishd/krc/arena"
	"github.com/pavanmanishd/krc/internal/config"
	"github.com/pavanmanishd/krc/internal/maze"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func draw(t *testing.T, opts maze.Options) string {
	t.Helper()
	m, err := maze.Generate(opts, nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestDefaultMaze(t *testing.T) {
	out, _, err := run(t)
	if err != nil {
		t.Fatal(err)
	}
	want := draw(t, maze.Options{Width: 8, Height: 8, Seed: 123456789})
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
}

func TestSizeFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want maze.Options
	}{
		{"size", []string{"--size", "3", "--seed", "1"}, maze.Options{Width: 3, Height: 3, Seed: 1}},
		{"width wins over size", []string{"--size", "3", "--width", "5", "--seed", "1"}, maze.Options{Width: 5, Height: 3, Seed: 1}},
		{"params", []string{"--width", "4", "--height", "2", "--params", "9"}, maze.Options{Width: 4, Height: 2, Seed: 123456789, Params: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			if want := draw(t, tt.want); out != want {
				t.Errorf("got\n%s\nwant\n%s", out, want)
			}
		})
	}
}

func TestCountKeepsSeedOrder(t *testing.T) {
	out, _, err := run(t, "--size", "4", "--seed", "10", "--count", "5", "--jobs", "3")
	if err != nil {
		t.Fatal(err)
	}

	var want strings.Builder
	for i := range 5 {
		if i > 0 {
			want.WriteString("\n")
		}
		seed := uint32(10 + i)
		fmt.Fprintf(&want, "seed %d\n", seed)
		want.WriteString(draw(t, maze.Options{Width: 4, Height: 4, Seed: seed}))
	}
	if out != want.String() {
		t.Errorf("got\n%s\nwant\n%s", out, want.String())
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	content := "width: 6\nheight: 2\nseed: 77\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "--config", path, "--height", "3")
	if err != nil {
		t.Fatal(err)
	}
	if want := draw(t, maze.Options{Width: 6, Height: 3, Seed: 77}); out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
		text   string
	}{
		{"zero width", []string{"--width", "0"}, config.ErrInvalid, ""},
		{"zero count", []string{"--count", "0"}, config.ErrInvalid, ""},
		{"memory limit", []string{"--size", "64", "--mem-limit", "1024"}, arena.ErrLimitExceeded, ""},
		{"missing config", []string{"--config", "/nonexistent/maze.toml"}, os.ErrNotExist, ""},
		{"bad color", []string{"--color", "sometimes"}, nil, "unsupported color mode"},
		{"extra args", []string{"oops"}, nil, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error, got output\n%s", out)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
			if tt.text != "" && !strings.Contains(err.Error(), tt.text) {
				t.Errorf("err = %v, want it to mention %q", err, tt.text)
			}
		})
	}
}

func TestFrameAndSolve(t *testing.T) {
	out, _, err := run(t, "--size", "5", "--frame", "--solve")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Errorf("missing border:\n%s", out)
	}
	if strings.Count(out, "*") < 9 {
		t.Errorf("path should cross at least 9 cells of a 5x5 maze:\n%s", out)
	}
}

func TestVerboseLogsArena(t *testing.T) {
	_, logs, err := run(t, "--size", "4", "-v")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"level=DEBUG", "msg=generating", "msg=arena", "in_use=", "msg=rendered", "digest="} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}

	_, logs, err = run(t, "--size", "4")
	if err != nil {
		t.Fatal(err)
	}
	if logs != "" {
		t.Errorf("quiet run logged:\n%s", logs)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "maze 0.2.0") {
		t.Errorf("version = %q", out)
	}

	out, _, err = run(t, "version", "--format", "json", "--full")
	if err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	if payload.Tool != "maze" || payload.GitCommit != "unknown" {
		t.Errorf("payload = %+v", payload)
	}

	if _, _, err := run(t, "version", "--format", "xml"); err == nil {
		t.Error("xml format should be rejected")
	}
}
