// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AdSettings — параметры медиации рекламы
type AdSettings struct {
	Enabled         bool    `toml:"enabled"`
	AndroidAdUnitID string  `toml:"android_ad_unit_id"`
	IOSAdUnitID     string  `toml:"ios_ad_unit_id"`
	AndroidGameID   string  `toml:"android_game_id"`
	IOSGameID       string  `toml:"ios_game_id"`
	FillRate        float64 `toml:"fill_rate"`       // Доля успешных загрузок у симулятора
	CompletionRate  float64 `toml:"completion_rate"` // Доля досмотренных роликов
	WatchSeconds    float64 `toml:"watch_seconds"`
}

// Settings — настройки, которые читаются из TOML при запуске
type Settings struct {
	Sound      bool       `toml:"sound"`
	LogLevel   string     `toml:"log_level"`
	SaveDir    string     `toml:"save_dir"`
	DefsPath   string     `toml:"defs_path"`
	DebugStage int        `toml:"debug_stage"` // > 0 — начать сразу с этой стадии
	Seed       int64      `toml:"seed"`
	KnifeSkin  string     `toml:"knife_skin"`
	DebugAddr  string     `toml:"debug_addr"`
	Ads        AdSettings `toml:"ads"`
}

// DefaultSettings возвращает настройки по умолчанию
func DefaultSettings() Settings {
	return Settings{
		Sound:     true,
		LogLevel:  "info",
		SaveDir:   ".",
		DebugAddr: "localhost:6060",
		Ads: AdSettings{
			Enabled:         true,
			AndroidAdUnitID: "Rewarded_Android",
			IOSAdUnitID:     "Rewarded_iOS",
			FillRate:        0.9,
			CompletionRate:  0.85,
			WatchSeconds:    1.5,
		},
	}
}

// LoadSettings читает настройки из файла. Отсутствующий файл — не ошибка,
// в этом случае возвращаются значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Save записывает настройки обратно в TOML
func (s Settings) Save(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func (s Settings) Validate() error {
	if s.DebugStage < 0 {
		return fmt.Errorf("debug_stage must not be negative, got %d", s.DebugStage)
	}
	if s.Ads.FillRate < 0 || s.Ads.FillRate > 1 {
		return fmt.Errorf("ads.fill_rate must be in [0,1], got %v", s.Ads.FillRate)
	}
	if s.Ads.CompletionRate < 0 || s.Ads.CompletionRate > 1 {
		return fmt.Errorf("ads.completion_rate must be in [0,1], got %v", s.Ads.CompletionRate)
	}
	if s.Ads.WatchSeconds < 0 {
		return fmt.Errorf("ads.watch_seconds must not be negative, got %v", s.Ads.WatchSeconds)
	}
	return nil
}

// HighScorePath — путь к базе рекордов внутри каталога сохранений
func (s Settings) HighScorePath() string {
	return filepath.Join(s.SaveDir, "knifehit.db")
}
