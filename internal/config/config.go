package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	SeedFile    string
	SeedCount   int
	SeedValue   int64
	APILatency  time.Duration
	APIFailRate float64
	RowEstimate int
	Theme       Theme
	Offline     bool
	ShowVersion bool

	OpenAIModel      string
	OpenAIBase       string
	OpenAITimeoutSec int

	ExportFormat string
	ExportOut    string
}

func Load() (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("staffdeck", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.SeedFile, "seed-file", "", "path to a JSON roster to load instead of generating one")
	fs.IntVar(&cfg.SeedCount, "seed-count", 250, "number of generated employees when no seed file is given")
	fs.Int64Var(&cfg.SeedValue, "seed", 42, "random seed for the generated roster")
	fs.DurationVar(&cfg.APILatency, "api-latency", 300*time.Millisecond, "simulated backend latency per request")
	fs.Float64Var(&cfg.APIFailRate, "api-fail-rate", 0, "probability in [0,1) that a backend request fails")
	fs.IntVar(&cfg.RowEstimate, "row-estimate", 1, "estimated grid row height in lines before measurement")
	theme := string(ThemeDark)
	fs.StringVar(&theme, "theme", string(ThemeDark), "theme: dark|light")
	fs.BoolVar(&cfg.Offline, "offline", false, "disable OpenAI and work offline only")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")
	fs.StringVar(&cfg.OpenAIModel, "openai-model", getenvDefault("STAFFDECK_OPENAI_MODEL", "gpt-5-mini"), "OpenAI model override")
	fs.StringVar(&cfg.OpenAIBase, "openai-base-url", getenvDefault("STAFFDECK_OPENAI_BASE_URL", ""), "OpenAI base URL override")
	fs.IntVar(&cfg.OpenAITimeoutSec, "openai-timeout-sec", getenvDefaultInt("STAFFDECK_OPENAI_TIMEOUT_SEC", 120), "OpenAI request timeout in seconds")
	fs.StringVar(&cfg.ExportFormat, "export", "", "export the roster and exit: csv|json")
	fs.StringVar(&cfg.ExportOut, "out", "", "output path for export")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	cfg.Theme = Theme(theme)

	if cfg.ExportFormat != "" && cfg.ExportOut == "" {
		return nil, errors.New("--export requires --out path")
	}
	if cfg.SeedCount < 0 {
		cfg.SeedCount = 0
	}
	if cfg.APIFailRate < 0 || cfg.APIFailRate >= 1 {
		return nil, errors.New("--api-fail-rate must be in [0,1)")
	}
	if cfg.RowEstimate < 1 {
		cfg.RowEstimate = 1
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func (c *Config) OpenAIKey() string { return os.Getenv("OPENAI_API_KEY") }

func (c *Config) String() string {
	return fmt.Sprintf("seedFile=%s seedCount=%d latency=%s failRate=%.2f theme=%s offline=%v",
		c.SeedFile, c.SeedCount, c.APILatency, c.APIFailRate, c.Theme, c.Offline)
}
