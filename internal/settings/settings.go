package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Settings struct {
	Language     string `json:"language"`      // BCP-47 tag, e.g. "en" or "fr-CA"
	Theme        string `json:"theme"`         // theme key, e.g. "dracula"
	Primary      string `json:"primary"`       // last single-select value
	Compare      string `json:"compare"`       // last multi-select value
	Resource     string `json:"resource"`      // "bibles" or "commentaries"
	LanguageMode string `json:"language_mode"` // "langAll", "langMy", ...
	CatalogPath  string `json:"catalog_path,omitempty"`
	CloseDelayMS int    `json:"close_delay_ms,omitempty"`
	Debug        bool   `json:"debug,omitempty"`
}

// Defaults are used for anything the config file leaves empty.
func Defaults() Settings {
	return Settings{
		Language:     "en",
		Theme:        "catppuccin-mocha",
		Primary:      "ESV",
		CloseDelayMS: 400,
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, "sword-picker")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file and applies environment overrides.
func Load() (Settings, error) {
	path, err := configPath()
	if err != nil {
		return Defaults(), err
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit path.
func LoadFile(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		// No config = just defaults, no error
		if os.IsNotExist(err) {
			return ApplyEnv(s), nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return Defaults(), err
	}

	return ApplyEnv(s), nil
}

// ApplyEnv overrides fields from SWORD_PICKER_* variables.
func ApplyEnv(s Settings) Settings {
	if v := os.Getenv("SWORD_PICKER_LANG"); v != "" {
		s.Language = v
	}
	if v := os.Getenv("SWORD_PICKER_THEME"); v != "" {
		s.Theme = v
	}
	if v := os.Getenv("SWORD_PICKER_CATALOG"); v != "" {
		s.CatalogPath = v
	}
	if v := os.Getenv("SWORD_PICKER_CLOSE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.CloseDelayMS = n
		}
	}
	if v, ok := os.LookupEnv("SWORD_PICKER_DEBUG"); ok {
		s.Debug = parseBoolish(v)
	}
	return s
}

func parseBoolish(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func Save(s Settings) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	return SaveFile(path, s)
}

// SaveFile is Save with an explicit path.
func SaveFile(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
