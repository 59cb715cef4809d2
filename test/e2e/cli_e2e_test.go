package e2e

import (
	"bytes"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

// buildBinary compiles ./cmd/binhist into a temporary directory. go test runs
// with the package directory as working directory, so the build runs from the
// module root two levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "binhist"
	if runtime.GOOS == "windows" {
		binName = "binhist.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/binhist")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build binhist: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary end to end.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}
	binPath := buildBinary(t)

	tests := []struct {
		name        string
		args        []string
		stdin       string
		checkStdout bool
		wantStdout  string // exact match when checkStdout is set
		wantPrefix  string // stdout prefix when set
		wantStderr  string // substring match (case-insensitive)
		wantCode    int
	}{
		{
			name:        "Two Bins",
			checkStdout: true,
			args:        []string{"2", "0", "10"},
			stdin:       "2\n7\n9\n",
			wantStdout:  "[  0.0%,  33.3%)\t[         0,          5)\t1\t(33.3%)\n" +
				"[ 33.3%, 100.0%)\t[         5,        inf)\t2\t(66.7%)\n",
		},
		{
			name:        "Empty Input",
			checkStdout: true,
			args:        []string{"2", "0", "10"},
			stdin:       "",
			wantStdout:  "[  0.0%,   NaN%)\t[         0,          5)\t0\t(NaN%)\n" +
				"[  NaN%,   NaN%)\t[         5,        inf)\t0\t(NaN%)\n",
		},
		{
			name:        "Single Bin",
			checkStdout: true,
			args:        []string{"1", "0", "10"},
			stdin:       "1\n20\n",
			wantStdout:  "[  0.0%, 100.0%)\t[         0,        inf)\t2\t(100.0%)\n",
		},
		{
			name:       "Help",
			args:       []string{"--help"},
			wantStderr: "usage",
		},
		{
			name:       "Version Flag",
			args:       []string{"--version"},
			wantPrefix: "binhist ",
		},
		{
			name:       "Version After Positionals",
			args:       []string{"2", "0", "10", "--version"},
			wantStderr: `unexpected argument "--version"`,
			wantCode:   4,
		},
		{
			name:       "Too Many Bins",
			args:       []string{"4611686018427387904", "0", "10"},
			stdin:      "1\n",
			wantStderr: "too many bins",
			wantCode:   6,
		},
		{
			name:       "Missing Arguments",
			args:       []string{"2", "0"},
			wantStderr: "missing argument <max>",
			wantCode:   4,
		},
		{
			name:       "Non-integer Argument",
			args:       []string{"2", "zero", "10"},
			wantStderr: "min",
			wantCode:   4,
		},
		{
			name:       "Bad Input Line",
			args:       []string{"2", "0", "10"},
			stdin:      "1\nfoo\n",
			wantStderr: `line 2: unable to parse as integer: "foo\n"`,
			wantCode:   5,
		},
		{
			name:       "Zero Bins",
			args:       []string{"0", "0", "10"},
			stdin:      "1\n",
			wantStderr: "precondition violated",
			wantCode:   6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			code := 0
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("Command failed to run: %v", err)
				}
				code = exitErr.ExitCode()
			}

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nstderr:\n%s", code, tt.wantCode, stderr.String())
			}
			if tt.wantCode != 0 && stdout.Len() != 0 {
				t.Errorf("failed run wrote to stdout:\n%s", stdout.String())
			}
			if tt.checkStdout && stdout.String() != tt.wantStdout {
				t.Errorf("stdout:\n got %q\nwant %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantPrefix != "" && !strings.HasPrefix(stdout.String(), tt.wantPrefix) {
				t.Errorf("stdout = %q, want prefix %q", stdout.String(), tt.wantPrefix)
			}
			if tt.wantStderr != "" && !strings.Contains(strings.ToLower(stderr.String()), strings.ToLower(tt.wantStderr)) {
				t.Errorf("stderr missing %q:\n%s", tt.wantStderr, stderr.String())
			}
		})
	}
}

// TestCLI_InterruptWhileWaitingForInput checks that SIGINT ends a run that is
// blocked on an open, silent stdin, and that no report is printed.
func TestCLI_InterruptWhileWaitingForInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}
	if runtime.GOOS == "windows" {
		t.Skip("SIGINT delivery is not available on windows")
	}
	binPath := buildBinary(t)

	cmd := exec.Command(binPath, "2", "0", "10")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.Fatalf("StdinPipe: %v", err)
	}
	defer stdin.Close()
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := io.WriteString(stdin, "1\n"); err != nil {
		t.Fatalf("writing stdin: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		t.Fatalf("Signal: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("Wait() = %v, want termination by signal", err)
		}
		if exitErr.Success() {
			t.Error("interrupted run reported success")
		}
	case <-time.After(5 * time.Second):
		_ = cmd.Process.Kill()
		t.Fatal("binhist still running 5s after SIGINT")
	}
	if stdout.Len() != 0 {
		t.Errorf("interrupted run printed a report:\n%s", stdout.String())
	}
}
