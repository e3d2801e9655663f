package config

import (
	"encoding/json"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Service *svcConfig
	Chart   *chartConfig
}

type svcConfig struct {
	Address        string   `envconfig:"FEEDRATE_ADDRESS" default:":8080"`
	MetricsAddress string   `envconfig:"FEEDRATE_METRICS_ADDRESS" default:":8090"`
	LogLevel       string   `envconfig:"FEEDRATE_LOG_LEVEL" default:"info"`
	LogFormat      string   `envconfig:"FEEDRATE_LOG_FORMAT" default:"console"`
	LogOutputs     []string `envconfig:"FEEDRATE_LOG_OUTPUTS" default:"stderr"`
	CorsOrigins    []string `envconfig:"FEEDRATE_CORS_ORIGINS" default:"*"`
}

type chartConfig struct {
	MaxRows int `envconfig:"FEEDRATE_CHART_MAX_ROWS" default:"200"`
}

// New reads the configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{
		Service: new(svcConfig),
		Chart:   new(chartConfig),
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if cfg.Chart.MaxRows <= 0 {
		return nil, fmt.Errorf("FEEDRATE_CHART_MAX_ROWS must be positive, got %d", cfg.Chart.MaxRows)
	}
	return cfg, nil
}

func (c *Config) String() string {
	contents, err := json.Marshal(c)
	if err != nil {
		return "<error>"
	}
	return string(contents)
}
