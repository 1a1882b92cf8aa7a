package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

const (
	// HomeEnv overrides the directory mood keeps its files in.
	HomeEnv = "MOOD_HOME"

	homeDir      = ".mood"
	databaseFile = "mood.db"
	configFile   = "config.yaml"
	envFile      = ".env"
	logFile      = "mood.log"
)

// Manager centralizes where mood keeps its files and how they are written.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at basePath. An empty basePath means
// $MOOD_HOME when set, otherwise ~/.mood. A leading "~/" is expanded either way.
func NewManager(basePath string) (*Manager, error) {
	if basePath == "" {
		basePath = strings.TrimSpace(os.Getenv(HomeEnv))
	}
	if basePath == "" {
		basePath = filepath.Join("~", homeDir)
	}

	expanded, err := expandHome(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", basePath, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, err
	}
	return &Manager{basePath: abs}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// BasePath returns the root directory storing all mood files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// PrefsPath resolves the JSON preference file for a namespace.
func (m *Manager) PrefsPath(namespace string) string {
	return filepath.Join(m.basePath, namespace+".json")
}

// DatabasePath resolves the SQLite database used by the sqlite backend.
func (m *Manager) DatabasePath() string {
	return filepath.Join(m.basePath, databaseFile)
}

// ConfigPath resolves the optional YAML config file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, configFile)
}

// EnvPath resolves the optional dotenv file.
func (m *Manager) EnvPath() string {
	return filepath.Join(m.basePath, envFile)
}

// LogPath resolves the log file. The TUI owns stdout, so logs never go there.
func (m *Manager) LogPath() string {
	return filepath.Join(m.basePath, logFile)
}

// EnsureBaseDir guarantees the base directory exists.
func (m *Manager) EnsureBaseDir() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}

// OpenLog opens the log file for appending, creating the base directory first.
func (m *Manager) OpenLog() (*os.File, error) {
	if err := m.EnsureBaseDir(); err != nil {
		return nil, err
	}
	return os.OpenFile(m.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermissions)
}

// WriteFileAtomic replaces path with data via a synced temp file and rename,
// so readers never observe a half-written file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "mood-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
