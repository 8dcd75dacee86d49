package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	NumNodes              int
	MaxNodes              int
	NumProcesses          int
	MaxProcesses          int
	EnableMigration       bool
	LogLevel              string
	LogFormat             string
}

const envPrefix = "SCHEDSIM"

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml once per process. Later calls return
// the same config, so callers that override fields should copy it first.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})
	return config, configErr
}

// Load reads the config file at path, or config.yaml in the working
// directory when path is empty. A missing file leaves the defaults in place;
// SCHEDSIM_* environment variables override both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		NumNodes:              v.GetInt("simulation.num_nodes"),
		MaxNodes:              v.GetInt("simulation.max_nodes"),
		NumProcesses:          v.GetInt("simulation.num_processes"),
		MaxProcesses:          v.GetInt("simulation.max_processes"),
		EnableMigration:       v.GetBool("simulation.enable_migration"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) Validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.RoundRobinTimeQuantum <= 0:
		return fmt.Errorf("round robin time quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	case c.NumNodes <= 0:
		return fmt.Errorf("num_nodes must be positive, got %d", c.NumNodes)
	case c.NumNodes > c.MaxNodes:
		return fmt.Errorf("num_nodes %d exceeds max_nodes %d", c.NumNodes, c.MaxNodes)
	case c.NumProcesses < 0:
		return fmt.Errorf("num_processes must not be negative, got %d", c.NumProcesses)
	case c.MaxProcesses <= 0:
		return fmt.Errorf("max_processes must be positive, got %d", c.MaxProcesses)
	case c.NumProcesses > c.MaxProcesses:
		return fmt.Errorf("num_processes %d exceeds max_processes %d", c.NumProcesses, c.MaxProcesses)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("simulation.num_nodes", 3)
	v.SetDefault("simulation.max_nodes", 256)
	v.SetDefault("simulation.num_processes", 20)
	v.SetDefault("simulation.max_processes", 10000)
	v.SetDefault("simulation.enable_migration", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
