package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Cache struct {
		TTLHours int `yaml:"ttl_hours"`
	} `yaml:"cache"`

	Storage struct {
		// MaxValueBytes caps the total persisted payload; 0 = unlimited.
		MaxValueBytes int64 `yaml:"max_value_bytes"`
	} `yaml:"storage"`

	UI struct {
		DebounceMS   int   `yaml:"debounce_ms"`
		SettleMS     int   `yaml:"settle_ms"`
		TransitionMS int   `yaml:"transition_ms"`
		PageSizes    []int `yaml:"page_sizes"`
	} `yaml:"ui"`

	Export struct {
		Prefix string `yaml:"prefix"`
		Dir    string `yaml:"dir"` // empty = <data_dir>/exports
	} `yaml:"export"`

	Refresh struct {
		PerMinute int `yaml:"per_minute"`
	} `yaml:"refresh"`

	Theme struct {
		// SystemDefault stands in for the OS color-scheme probe when the
		// hosting shell passes nothing: "light", "dark", or "".
		SystemDefault string `yaml:"system_default"`
	} `yaml:"theme"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
