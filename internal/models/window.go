package models

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultGeometry = "480x650"
	DefaultAlpha    = 0.95
	MinAlpha        = 0.3
	MaxAlpha        = 1.0
)

// WindowConfig is the persisted window geometry and opacity
type WindowConfig struct {
	Geometry string  `json:"geometry"`
	Alpha    float64 `json:"alpha"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Geometry: DefaultGeometry,
		Alpha:    DefaultAlpha,
	}
}

// LoadWindowConfig reads the config at path. Any failure returns the
// defaults along with the error, which callers are free to ignore.
func LoadWindowConfig(path string) (WindowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultWindowConfig(), errors.Wrapf(err, "read window config %s", path)
	}

	cfg := DefaultWindowConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultWindowConfig(), errors.Wrapf(err, "parse window config %s", path)
	}

	if _, _, err := ParseGeometry(cfg.Geometry); err != nil {
		cfg.Geometry = DefaultGeometry
	}
	cfg.Alpha = ClampAlpha(cfg.Alpha)
	return cfg, nil
}

// SaveWindowConfig overwrites the config file at path
func SaveWindowConfig(path string, cfg WindowConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode window config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "write window config %s", path)
	}
	return nil
}

// ParseGeometry reads "<width>x<height>", ignoring a trailing "+x+y" position.
func ParseGeometry(geometry string) (width, height int, err error) {
	geometry = strings.TrimSpace(geometry)
	if i := strings.IndexAny(geometry, "+-"); i >= 0 {
		geometry = geometry[:i]
	}

	w, h, found := strings.Cut(geometry, "x")
	if !found {
		return 0, 0, errors.Errorf("invalid geometry %q", geometry)
	}
	width, err = strconv.Atoi(w)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid geometry width %q", w)
	}
	height, err = strconv.Atoi(h)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid geometry height %q", h)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, errors.Errorf("invalid geometry %dx%d", width, height)
	}
	return width, height, nil
}

// FormatGeometry is the inverse of ParseGeometry
func FormatGeometry(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// ClampAlpha limits alpha to [MinAlpha, MaxAlpha]
func ClampAlpha(alpha float64) float64 {
	if alpha < MinAlpha {
		return MinAlpha
	}
	if alpha > MaxAlpha {
		return MaxAlpha
	}
	return alpha
}

// WindowConfigStore binds the window config to its file
type WindowConfigStore struct {
	path string
}

func NewWindowConfigStore(path string) *WindowConfigStore {
	return &WindowConfigStore{path: path}
}

func (s *WindowConfigStore) Path() string {
	return s.path
}

func (s *WindowConfigStore) Load() (WindowConfig, error) {
	return LoadWindowConfig(s.path)
}

func (s *WindowConfigStore) Save(cfg WindowConfig) error {
	return SaveWindowConfig(s.path, cfg)
}
