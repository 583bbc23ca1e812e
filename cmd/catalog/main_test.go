package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(broken, []byte("server: ["), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// Keep usage output out of the test log
	stderr := os.Stderr
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open %s: %v", os.DevNull, err)
	}
	os.Stderr = devNull
	t.Cleanup(func() {
		os.Stderr = stderr
		devNull.Close()
	})

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"no action", nil, 2},
		{"unknown flag", []string{"-bogus"}, 2},
		{"broken config", []string{"-subjects", "-config", broken}, 1},
	}
	for _, tc := range cases {
		if got := run(tc.args); got != tc.want {
			t.Errorf("%s: run() = %d, want %d", tc.name, got, tc.want)
		}
	}
}
