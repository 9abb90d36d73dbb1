package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the name of the settings file inside the config directory.
const SettingsFile = "settings.yaml"

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadSettings loads settings.yaml on top of DefaultSettings.
// Keys missing from the file keep their default values; a missing file
// yields the defaults unchanged.
func (l *Loader) LoadSettings() (*Settings, error) {
	cfg := DefaultSettings()

	data, err := fs.ReadFile(l.fsys, SettingsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", SettingsFile, err)
	}

	return &cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (s *Settings) Validate() error {
	if s.Controls.Jump == "" || s.Controls.Left == "" || s.Controls.Right == "" || s.Controls.Dash == "" {
		return errors.New("controls: jump, left, right and dash must all be bound")
	}
	if s.Physics.JumpReleaseDamp <= 0 {
		return errors.New("physics: jumpReleaseDamp must be positive")
	}
	if s.Physics.MaxStepOut <= 0 {
		return errors.New("physics: maxStepOut must be positive")
	}
	if s.Window.TPS <= 0 {
		return errors.New("window: tps must be positive")
	}
	return nil
}
