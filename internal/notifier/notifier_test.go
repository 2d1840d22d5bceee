package notifier

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-ps"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.executable }

func writeLockfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifebalance-tray.lock")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	origFind := findProcessFunc
	defer func() { findProcessFunc = origFind }()

	tests := []struct {
		name    string
		content string
		proc    ps.Process
		wantErr bool
	}{
		{
			name:    "valid lockfile",
			content: "8123|4242|s3cret",
			proc:    fakeProcess{pid: 4242, executable: "lifebalance-tray"},
			wantErr: false,
		},
		{
			name:    "malformed lockfile",
			content: "8123|4242",
			wantErr: true,
		},
		{
			name:    "invalid port",
			content: "notaport|4242|s3cret",
			wantErr: true,
		},
		{
			name:    "port out of range",
			content: "70000|4242|s3cret",
			wantErr: true,
		},
		{
			name:    "empty secret",
			content: "8123|4242| ",
			wantErr: true,
		},
		{
			name:    "process not running",
			content: "8123|4242|s3cret",
			proc:    nil,
			wantErr: true,
		},
		{
			name:    "wrong executable",
			content: "8123|4242|s3cret",
			proc:    fakeProcess{pid: 4242, executable: "someapp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findProcessFunc = func(pid int) (ps.Process, error) {
				if tt.proc == nil {
					return nil, fmt.Errorf("no such process")
				}
				return tt.proc, nil
			}

			path := writeLockfile(t, tt.content)
			port, secret, err := findAndValidateTrayProcess(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if port != "8123" || secret != "s3cret" {
					t.Errorf("port=%q secret=%q", port, secret)
				}
			}
		})
	}
}

func TestValidateMissingLockfile(t *testing.T) {
	_, _, err := findAndValidateTrayProcess(filepath.Join(t.TempDir(), "missing.lock"))
	if err == nil {
		t.Error("expected an error for a missing lockfile")
	}
}
