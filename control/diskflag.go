package control

import (
	"os"
	"path/filepath"
	"strconv"
)

// DefaultFlagPath returns the conventional enable-flag location,
// ~/.config/palmctl/enabled, mirroring palmctl.DefaultProfilePath's layout.
func DefaultFlagPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "palmctl", "enabled")
}

// DiskFlag persists a boolean to a single file, one byte wide ("1" or "0"). It
// is the simplest possible enable-flag transport: a tray icon or a hotkey
// listener process writes to it, and a KillSwitch running in the main loop's
// process polls it each guard step.
type DiskFlag struct {
	path string
}

// NewDiskFlag returns a DiskFlag backed by path. It does not create the file;
// Get treats a missing file as enabled.
func NewDiskFlag(path string) *DiskFlag {
	return &DiskFlag{path: path}
}

// Init writes defaultEnabled to the file if it does not already exist.
func (f *DiskFlag) Init(defaultEnabled bool) error {
	if _, err := os.Stat(f.path); err == nil {
		return nil
	}
	return f.Set(defaultEnabled)
}

// Get reads the flag, treating both a missing file and unparsable content as
// enabled (true). This is broader than the original transport, which only
// fails open on a missing file and treats unparsable content as disabled; a
// camera input device going silent should not require the user to go find a
// stray file, and on-disk content this tool itself never writes is cheap
// enough to fail open on too.
func (f *DiskFlag) Get() bool {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return true
	}
	v, err := strconv.ParseBool(string(trimOneByte(data)))
	if err != nil {
		return true
	}
	return v
}

// Set writes the flag value, creating parent directories as needed.
func (f *DiskFlag) Set(v bool) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	b := []byte("0")
	if v {
		b = []byte("1")
	}
	return os.WriteFile(f.path, b, 0o644)
}

func trimOneByte(b []byte) []byte {
	if len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		return b[:len(b)-1]
	}
	return b
}
