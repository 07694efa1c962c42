package scanners

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubGitleaks puts a fake gitleaks binary with a fixed exit code on PATH.
func stubGitleaks(t *testing.T, exitCode int) {
	t.Helper()
	dir := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode)
	if err := os.WriteFile(filepath.Join(dir, "gitleaks"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
}

func TestGitleaksExitStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		exitCode   int
		wantErrLog bool
	}{
		{"clean_scan", 0, false},
		{"leaks_found", 1, false},
		{"hard_failure", 2, true},
		{"not_executable", 126, true},
		{"command_error", 127, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubGitleaks(t, tt.exitCode)

			core, logs := observer.New(zapcore.DebugLevel)
			r := NewRunner(zap.New(core).Sugar(), t.TempDir(), t.TempDir())
			r.runGitleaks()

			errLogs := logs.FilterLevelExact(zapcore.ErrorLevel).Len()
			if tt.wantErrLog && errLogs == 0 {
				t.Errorf("exit %d: expected an error log, got none", tt.exitCode)
			}
			if !tt.wantErrLog && errLogs != 0 {
				t.Errorf("exit %d: expected no error log, got %d", tt.exitCode, errLogs)
			}
		})
	}
}
