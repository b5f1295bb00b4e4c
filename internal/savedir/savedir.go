// Package savedir locates save files on disk
package savedir

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"time"
)

// SaveFileName is the file every circuit is stored in.
const SaveFileName = "circuit.data"

// EnvSavesDir overrides the platform default.
const EnvSavesDir = "SAVE_MONGER_SAVES_DIR"

const appDir = "Turing Complete"

// Root returns the directory the game keeps its schematics in
func Root() string {
	// Check environment variable first
	if dir := os.Getenv(EnvSavesDir); dir != "" {
		return dir
	}

	// Use platform-specific defaults
	switch runtime.GOOS {
	case "darwin":
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", "Godot", "app_userdata", appDir, "schematics")
		}
	case "linux":
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, "godot", "app_userdata", appDir, "schematics")
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".local", "share", "godot", "app_userdata", appDir, "schematics")
		}
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Godot", "app_userdata", appDir, "schematics")
		}
	}

	// Fallback to the working directory
	return "."
}

// Entry is one save file found under a directory.
type Entry struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Find walks dir and returns every save file below it, sorted by path.
// Unreadable subdirectories are skipped.
func Find(dir string) ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Name() != SaveFileName {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		entries = append(entries, Entry{
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// PeekVersion reads only the container version byte of a save file.
func PeekVersion(path string) (byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	var b [1]byte
	if _, err := io.ReadFull(f, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}
