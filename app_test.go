package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes a config logging to a file in a temp dir and returns
// the config path and the log path.
func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "uci.log")
	cfg := "[engine]\nname = \"Test\"\nversion = \"9\"\nauthor = \"Me\"\n" +
		"[search]\nmax_depth = 2\n" +
		"[log]\nfile = " + `"` + filepath.ToSlash(logPath) + `"` + "\nlevel = \"debug\"\n"
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return path, logPath
}

func TestRunUCI(t *testing.T) {
	cfgPath, logPath := writeConfig(t)
	in := strings.NewReader("uci\nisready\nposition startpos moves e2e4\ngo\nquit\n")
	var out, errOut bytes.Buffer

	if code := run(context.Background(), []string{"-config", cfgPath}, in, &out, &errOut); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, errOut.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("output = %q, want 6 lines", lines)
	}
	if lines[0] != "id name Test 9" || lines[1] != "id author Me" || lines[2] != "uciok" || lines[3] != "readyok" {
		t.Errorf("handshake = %q", lines[:4])
	}
	if !strings.HasPrefix(lines[4], "info score ") || !strings.HasPrefix(lines[5], "bestmove ") {
		t.Errorf("search reply = %q", lines[4:])
	}

	logs, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"detected CPU features", "UCI engine started", "line=isready"} {
		if !bytes.Contains(logs, []byte(want)) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestRunProtocolErrorExitCode(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"-config", cfgPath}, strings.NewReader("go infinite\n"), &out, &errOut)
	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "go infinite not supported") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunPrintPV(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"argument", []string{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"}, "", "PV: a1a8 (M1)\n"},
		{"stdin", []string{"-"}, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1\n", "PV: a1a8 (M1)\n"},
		{"checkmated", []string{"4R2k/6pp/8/8/8/8/8/K7 b - - 0 1"}, "", "PV: (M0)\n"},
		{"stalemate", []string{"k7/p7/P7/8/8/8/8/KR6 b - - 0 1"}, "", "PV: (0.00)\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			args := append([]string{"-config", cfgPath}, tc.args...)
			if code := run(context.Background(), args, strings.NewReader(tc.stdin), &out, &errOut); code != 0 {
				t.Fatalf("run() = %d, stderr: %s", code, errOut.String())
			}
			if out.String() != tc.want {
				t.Errorf("stdout = %q, want %q", out.String(), tc.want)
			}
		})
	}
}

func TestRunBadFEN(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	var out, errOut bytes.Buffer

	if code := run(context.Background(), []string{"-config", cfgPath, "not a fen"}, strings.NewReader(""), &out, &errOut); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Parsing FEN failed") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"-nope"}, 2},
		{"too many arguments", []string{"-config", cfgPath, "a", "b"}, 2},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, 1},
		{"help", []string{"-h"}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			if code := run(context.Background(), tc.args, strings.NewReader(""), &out, &errOut); code != tc.want {
				t.Errorf("run() = %d, want %d", code, tc.want)
			}
		})
	}
}

func TestDumpConfig(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	var out, errOut bytes.Buffer

	if code := run(context.Background(), []string{"-config", cfgPath, "-dump-config"}, strings.NewReader(""), &out, &errOut); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, errOut.String())
	}
	for _, want := range []string{"[engine]", `name = "Test"`, "max_depth = 2"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("dump missing %q:\n%s", want, out.String())
		}
	}
}
