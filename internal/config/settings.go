package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/rangepick/rangepick/internal/slider"
)

// Settings holds all user-configurable application settings organized by category.
type Settings struct {
	General GeneralSettings `json:"general"`
	Slider  SliderSettings  `json:"slider"`
}

// GeneralSettings contains application behavior settings.
type GeneralSettings struct {
	Theme             int `json:"theme"`
	LogRetentionCount int `json:"log_retention_count"`
}

const (
	ThemeAdaptive = 0
	ThemeLight    = 1
	ThemeDark     = 2
)

// SliderSettings mirrors slider.Config plus host layout options.
type SliderSettings struct {
	MaxValue       float64 `json:"max_value"`
	ShowLeftHandle bool    `json:"show_left_handle"`
	ShowPopover    bool    `json:"show_popover"`
	StartLabel     string  `json:"start_label"`
	EndLabel       string  `json:"end_label"`
	HandleWidth    float64 `json:"handle_width"`
	TrackMargin    int     `json:"track_margin"` // blank cells on each side of the track
}

// SettingMeta provides metadata for a single setting (for listing).
type SettingMeta struct {
	Key         string // JSON key name
	Label       string // Human-readable label
	Description string
	Type        string // "string", "int", "bool", "float64"
}

// GetSettingsMetadata returns metadata for all settings organized by category.
func GetSettingsMetadata() map[string][]SettingMeta {
	return map[string][]SettingMeta{
		"General": {
			{Key: "theme", Label: "App Theme", Description: "UI Theme (System, Light, Dark).", Type: "int"},
			{Key: "log_retention_count", Label: "Log Retention Count", Description: "Number of recent log files to keep.", Type: "int"},
		},
		"Slider": {
			{Key: "max_value", Label: "Max Value", Description: "Upper bound of the selectable range.", Type: "float64"},
			{Key: "show_left_handle", Label: "Show Start Handle", Description: "Show a start handle; otherwise the range is [0, end].", Type: "bool"},
			{Key: "show_popover", Label: "Show Labels", Description: "Show a label above the handle while dragging.", Type: "bool"},
			{Key: "start_label", Label: "Start Label", Description: "Text shown above the start handle.", Type: "string"},
			{Key: "end_label", Label: "End Label", Description: "Text shown above the end handle.", Type: "string"},
			{Key: "handle_width", Label: "Handle Width", Description: "Width of each handle in cells.", Type: "float64"},
			{Key: "track_margin", Label: "Track Margin", Description: "Blank cells on each side of the track.", Type: "int"},
		},
	}
}

// CategoryOrder returns the order of categories for listing.
func CategoryOrder() []string {
	return []string{"General", "Slider"}
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			Theme:             ThemeAdaptive,
			LogRetentionCount: 5,
		},
		Slider: SliderSettings{
			MaxValue:    slider.DefaultMaxValue,
			ShowPopover: true,
			HandleWidth: slider.DefaultHandleWidth,
			TrackMargin: 4,
		},
	}
}

// Values flattens the settings into JSON key -> value for display.
func (s *Settings) Values() (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[string]any)
	for _, category := range raw {
		for k, v := range category {
			out[k] = v
		}
	}
	return out, nil
}

// ToSliderConfig converts the slider settings into a core slider.Config.
// OnChange is left for the host to fill in.
func (s *Settings) ToSliderConfig() slider.Config {
	return slider.Config{
		MaxValue:       s.Slider.MaxValue,
		ShowLeftHandle: s.Slider.ShowLeftHandle,
		ShowPopover:    s.Slider.ShowPopover,
		StartLabel:     s.Slider.StartLabel,
		EndLabel:       s.Slider.EndLabel,
		HandleWidth:    s.Slider.HandleWidth,
	}
}

// GetSettingsPath returns the path to the settings JSON file.
func GetSettingsPath() string {
	return filepath.Join(GetRangepickDir(), "settings.json")
}

// LoadSettings loads settings from disk. Returns defaults if file doesn't exist.
func LoadSettings() (*Settings, error) {
	return loadSettingsFrom(GetSettingsPath())
}

func loadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings() // Start with defaults to fill any missing fields
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings, nil
}

// SaveSettings saves settings to disk atomically.
func SaveSettings(s *Settings) error {
	return saveSettingsTo(GetSettingsPath(), s)
}

func saveSettingsTo(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// Two instances saving at once would race on the temp file.
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock settings: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tempPath, path)
}
