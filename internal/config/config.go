// Package config provides configuration management for the exporter with
// YAML file, environment variable and flag-level override support.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/zaphar/win-utils/internal/perfpaths"
)

// Config represents the complete exporter configuration.
type Config struct {
	// ListenAddress is the host:port the metrics endpoint binds to.
	ListenAddress string `yaml:"listen_address"`

	// PollInterval is the sleep between collection ticks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// Machine optionally targets a remote machine's counters. Empty means
	// the local machine.
	Machine string `yaml:"machine"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`

	// Metrics is the set of counters to export.
	Metrics []Metric `yaml:"metrics"`
}

// Metric binds one exported metric name to one counter path. A path
// containing a wildcard is expanded at startup and exports one series per
// matching instance, labelled with the instance name.
type Metric struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Help string `yaml:"help"`
}

// NewDefault returns a configuration exporting the stock CPU, memory and
// network counter set.
func NewDefault() *Config {
	return &Config{
		ListenAddress: "0.0.0.0:8080",
		PollInterval:  10 * time.Second,
		Metrics: []Metric{
			{Name: "cpu_total_pct", Path: perfpaths.CPUTotalPct, Help: perfpaths.CPUTotalPct},
			{Name: "cpu_idle_pct", Path: perfpaths.CPUIdlePct, Help: perfpaths.CPUIdlePct},
			{Name: "cpu_user_pct", Path: perfpaths.CPUUserPct, Help: perfpaths.CPUUserPct},
			{Name: "cpu_privileged_pct", Path: perfpaths.CPUPrivilegedPct, Help: perfpaths.CPUPrivilegedPct},
			{Name: "cpu_priority_pct", Path: perfpaths.CPUPriorityPct, Help: perfpaths.CPUPriorityPct},
			{Name: "cpu_frequency", Path: perfpaths.CPUFrequency, Help: perfpaths.CPUFrequency},
			{Name: "mem_available_bytes", Path: perfpaths.MemAvailableBytes, Help: perfpaths.MemAvailableBytes},
			{Name: "mem_cache_bytes", Path: perfpaths.MemCacheBytes, Help: perfpaths.MemCacheBytes},
			{Name: "mem_committed_bytes", Path: perfpaths.MemCommittedBytes, Help: perfpaths.MemCommittedBytes},
			{Name: "net_bytes_received_per_sec", Path: perfpaths.NetBytesReceivedPerSec, Help: perfpaths.NetBytesReceivedPerSec},
			{Name: "net_bytes_sent_per_sec", Path: perfpaths.NetBytesSentPerSec, Help: perfpaths.NetBytesSentPerSec},
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func (c *Config) LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// LoadFromEnv overrides configuration from WINPERF_* environment variables.
func (c *Config) LoadFromEnv() {
	if val := os.Getenv("WINPERF_LISTEN_ADDRESS"); val != "" {
		c.ListenAddress = val
	}
	if val := os.Getenv("WINPERF_POLL_INTERVAL"); val != "" {
		if interval, err := time.ParseDuration(val); err == nil {
			c.PollInterval = interval
		}
	}
	if val := os.Getenv("WINPERF_MACHINE"); val != "" {
		c.Machine = val
	}
	if val := os.Getenv("WINPERF_DEBUG"); val != "" {
		if debug, err := strconv.ParseBool(val); err == nil {
			c.Debug = debug
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.ListenAddress == "" {
		return fmt.Errorf("listen_address must not be empty")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be greater than 0")
	}
	if len(c.Metrics) == 0 {
		return fmt.Errorf("at least one metric must be configured")
	}

	seen := make(map[string]bool, len(c.Metrics))
	for _, m := range c.Metrics {
		if m.Name == "" {
			return fmt.Errorf("metric with path %q has no name", m.Path)
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate metric name %q", m.Name)
		}
		seen[m.Name] = true
		if !strings.HasPrefix(m.Path, `\`) {
			return fmt.Errorf("metric %q: counter path %q must start with a backslash", m.Name, m.Path)
		}
	}

	return nil
}
