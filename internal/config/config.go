package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/faizmokh/mood/internal/files"
	"github.com/faizmokh/mood/internal/log"
	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/prefs"
	"github.com/faizmokh/mood/internal/stats"
)

// EnvPrefix namespaces environment overrides, e.g. MOOD_BACKEND.
const EnvPrefix = "MOOD"

type ChartConfig struct {
	BarHeight int `mapstructure:"bar_height"`
}

type ReminderConfig struct {
	Title   string `mapstructure:"title"`
	Message string `mapstructure:"message"`
}

type Config struct {
	Backend       string            `mapstructure:"backend"`
	WindowDays    int               `mapstructure:"window_days"`
	Emotions      []string          `mapstructure:"emotions"`
	Colors        map[string]string `mapstructure:"colors"`
	SkipMalformed bool              `mapstructure:"skip_malformed"`
	LogLevel      string            `mapstructure:"log_level"`
	Chart         ChartConfig       `mapstructure:"chart"`
	Reminder      ReminderConfig    `mapstructure:"reminder"`
}

func Default() Config {
	emotions := make([]string, len(moodlog.DefaultEmotions))
	for i, e := range moodlog.DefaultEmotions {
		emotions[i] = string(e)
	}
	return Config{
		Backend:    string(prefs.BackendFile),
		WindowDays: stats.DefaultWindowDays,
		Emotions:   emotions,
		Colors:     map[string]string{},
		LogLevel:   "info",
		Chart:      ChartConfig{BarHeight: 10},
		Reminder: ReminderConfig{
			Title:   "Mood check-in",
			Message: "You haven't logged how you feel today. How are you doing?",
		},
	}
}

// Load reads <home>/.env (if present) into the environment, then merges
// defaults, <home>/config.yaml (if present) and MOOD_* overrides.
func Load(manager *files.Manager) (Config, error) {
	defaults := Default()

	if err := loadDotenv(manager.EnvPath()); err != nil {
		return defaults, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("backend", defaults.Backend)
	v.SetDefault("window_days", defaults.WindowDays)
	v.SetDefault("emotions", defaults.Emotions)
	v.SetDefault("colors", defaults.Colors)
	v.SetDefault("skip_malformed", defaults.SkipMalformed)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("chart.bar_height", defaults.Chart.BarHeight)
	v.SetDefault("reminder.title", defaults.Reminder.Title)
	v.SetDefault("reminder.message", defaults.Reminder.Message)

	path := manager.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return defaults, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return defaults, fmt.Errorf("stat config: %w", err)
	}

	// Decode into a zero value: mapstructure merges into existing slices
	// instead of replacing them, and viper already carries the defaults.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	for i, e := range cfg.Emotions {
		cfg.Emotions[i] = strings.TrimSpace(e)
	}
	return cfg, nil
}

func loadDotenv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var problems []string

	if !prefs.Backend(c.Backend).IsValid() {
		problems = append(problems, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, prefs.Backends))
	}
	if c.WindowDays < 1 {
		problems = append(problems, fmt.Sprintf("invalid window_days %d: must be at least 1", c.WindowDays))
	}
	if len(c.Emotions) == 0 {
		problems = append(problems, "emotions cannot be empty")
	}
	seen := make(map[string]bool)
	for _, e := range c.Emotions {
		key := strings.ToLower(e)
		switch {
		case e == "":
			problems = append(problems, "emotions cannot contain an empty label")
		case strings.EqualFold(e, moodlog.FilterAll):
			problems = append(problems, fmt.Sprintf("emotion '%s' is reserved for the filter", e))
		case strings.Contains(e, ":"):
			problems = append(problems, fmt.Sprintf("emotion '%s' cannot contain ':'", e))
		case seen[key]:
			problems = append(problems, fmt.Sprintf("emotion '%s' is listed twice", e))
		}
		seen[key] = true
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Chart.BarHeight < 1 || c.Chart.BarHeight > 100 {
		problems = append(problems, fmt.Sprintf("invalid chart.bar_height %d: must be between 1 and 100", c.Chart.BarHeight))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// EmotionSet returns the configured categories in display order.
func (c Config) EmotionSet() []moodlog.Emotion {
	set := make([]moodlog.Emotion, 0, len(c.Emotions))
	for _, e := range c.Emotions {
		set = append(set, moodlog.Emotion(e))
	}
	return set
}

// Palette merges configured colors over the defaults. Color keys are matched
// case-insensitively because viper lowercases map keys.
func (c Config) Palette() stats.Palette {
	palette := make(stats.Palette, len(stats.DefaultPalette)+len(c.Emotions))
	for emotion, color := range stats.DefaultPalette {
		palette[emotion] = color
	}
	for _, e := range c.Emotions {
		if color, ok := c.Colors[strings.ToLower(e)]; ok && color != "" {
			palette[moodlog.Emotion(e)] = color
		}
	}
	return palette
}

// Window returns the trailing stats window.
func (c Config) Window() stats.Window {
	return stats.Window{Days: c.WindowDays}
}

// PrefsBackend returns the configured preference backend.
func (c Config) PrefsBackend() prefs.Backend {
	return prefs.Backend(c.Backend)
}
