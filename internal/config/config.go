package config

import (
	"fmt"
	"net"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration of the bssmap-decode tool
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// Input formats
const (
	FormatHex    = "hex"
	FormatBinary = "binary"
)

// InputConfig selects where messages are read from
type InputConfig struct {
	// Format is FormatHex (one message per line) or FormatBinary (a raw
	// stream of BSSAP framed messages)
	Format string `yaml:"format"`
	// Path of the input file, "-" or empty for stdin
	Path string `yaml:"path"`
}

// OutputConfig controls what is produced besides the per-message log
type OutputConfig struct {
	// Pcap is the path of a pcap file receiving every decoded message,
	// empty to disable
	Pcap    string     `yaml:"pcap"`
	PcapUDP PcapConfig `yaml:"pcap_udp"`
	// Summary prints the per message type table at the end
	Summary bool `yaml:"summary"`
}

// PcapConfig holds the addresses written into pcap frames
type PcapConfig struct {
	SrcIP   string `yaml:"src_ip"`
	DstIP   string `yaml:"dst_ip"`
	SrcPort int    `yaml:"src_port"`
	DstPort int    `yaml:"dst_port"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Input:   InputConfig{Format: FormatHex, Path: "-"},
		Output: OutputConfig{
			PcapUDP: PcapConfig{
				SrcIP:   "10.0.0.1",
				DstIP:   "10.0.0.2",
				SrcPort: 2905,
				DstPort: 2905,
			},
			Summary: true,
		},
	}
}

// Load reads the configuration file at path on top of Default. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}
	if err := c.Input.Validate(); err != nil {
		return fmt.Errorf("input config: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}
	return nil
}

// Validate validates the LoggingConfig
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Level] {
		return fmt.Errorf("level must be one of: debug, info, warn, error")
	}
	return nil
}

// Validate validates the InputConfig
func (c *InputConfig) Validate() error {
	if c.Format != FormatHex && c.Format != FormatBinary {
		return fmt.Errorf("format must be one of: %s, %s", FormatHex, FormatBinary)
	}
	return nil
}

// Validate validates the OutputConfig
func (c *OutputConfig) Validate() error {
	if c.Pcap == "" {
		return nil // addresses are unused without a pcap file
	}
	return c.PcapUDP.Validate()
}

// Validate validates the PcapConfig
func (c *PcapConfig) Validate() error {
	if ip := net.ParseIP(c.SrcIP); ip == nil || ip.To4() == nil {
		return fmt.Errorf("src_ip must be an IPv4 address, got %q", c.SrcIP)
	}
	if ip := net.ParseIP(c.DstIP); ip == nil || ip.To4() == nil {
		return fmt.Errorf("dst_ip must be an IPv4 address, got %q", c.DstIP)
	}
	if c.SrcPort < 1 || c.SrcPort > 65535 {
		return fmt.Errorf("src_port must be between 1 and 65535, got %d", c.SrcPort)
	}
	if c.DstPort < 1 || c.DstPort > 65535 {
		return fmt.Errorf("dst_port must be between 1 and 65535, got %d", c.DstPort)
	}
	return nil
}
