// Package config holds the sample inputs the katas command feeds to each
// exercise demo. Defaults reproduce the classic sample invocations; a YAML
// file may override any of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates fixtures a demo cannot run with.
var ErrInvalidConfig = errors.New("config: invalid fixture")

// Config is the root of the YAML document.
type Config struct {
	TwoSum       TwoSumConfig       `yaml:"two_sum"`
	Palindrome   PalindromeConfig   `yaml:"palindrome"`
	BinarySearch BinarySearchConfig `yaml:"binary_search"`
	Dijkstra     DijkstraConfig     `yaml:"dijkstra"`
	Reverse      ReverseConfig      `yaml:"reverse"`
	CharCount    CharCountConfig    `yaml:"char_count"`
	Pets         PetsConfig         `yaml:"pets"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// TwoSumConfig feeds the two-sum demo.
type TwoSumConfig struct {
	Nums   []int `yaml:"nums"`
	Target int   `yaml:"target"`
}

// PalindromeConfig lists phrases to check.
type PalindromeConfig struct {
	Phrases []string `yaml:"phrases"`
}

// BinarySearchConfig feeds the binary-search demo. Sorted must be ascending.
type BinarySearchConfig struct {
	Sorted []int `yaml:"sorted"`
	Target int   `yaml:"target"`
}

// EdgeConfig is one weighted arc.
type EdgeConfig struct {
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// DijkstraConfig holds an adjacency mapping and a start node.
type DijkstraConfig struct {
	Graph map[int][]EdgeConfig `yaml:"graph"`
	Start int                  `yaml:"start"`
}

// UnmarshalYAML replaces the default graph instead of merging into it, so a
// file describing a smaller graph does not inherit the default nodes.
func (d *DijkstraConfig) UnmarshalYAML(n *yaml.Node) error {
	type plain DijkstraConfig
	p := plain{Start: d.Start}
	if err := n.Decode(&p); err != nil {
		return err
	}
	if p.Graph == nil {
		p.Graph = d.Graph
	}
	*d = DijkstraConfig(p)

	return nil
}

// ReverseConfig holds the text reversed in place.
type ReverseConfig struct {
	Text string `yaml:"text"`
}

// CharCountConfig holds the text whose letters are counted.
type CharCountConfig struct {
	Text string `yaml:"text"`
}

// PetConfig describes one pet.
type PetConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Age  int    `yaml:"age"`
}

// PetsConfig lists pets to register and a name to look up.
type PetsConfig struct {
	Pets   []PetConfig `yaml:"pets"`
	Lookup string      `yaml:"lookup"`
}

// LoggingConfig configures the command's zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug|info|warn|error
}

// DefaultConfig returns the classic sample invocations.
func DefaultConfig() *Config {
	return &Config{
		TwoSum: TwoSumConfig{Nums: []int{2, 7, 11, 15}, Target: 9},
		Palindrome: PalindromeConfig{
			Phrases: []string{"A man a plan a canal Panama", "hello", ""},
		},
		BinarySearch: BinarySearchConfig{Sorted: []int{-1, 0, 3, 5, 9, 12}, Target: 9},
		Dijkstra: DijkstraConfig{
			Graph: map[int][]EdgeConfig{
				0: {{To: 1, Weight: 4}, {To: 2, Weight: 1}},
				1: {{To: 3, Weight: 1}},
				2: {{To: 1, Weight: 2}, {To: 3, Weight: 5}},
				3: {},
			},
			Start: 0,
		},
		Reverse:   ReverseConfig{Text: "hello"},
		CharCount: CharCountConfig{Text: "Hola mundo"},
		Pets: PetsConfig{
			Pets: []PetConfig{
				{Name: "Rex", Type: "dog", Age: 1},
				{Name: "Misu", Type: "cat", Age: 5},
			},
			Lookup: "misu",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects fixtures that make a demo meaningless.
// Invalid exercise inputs (a negative age, a negative weight) are allowed on
// purpose: the demo then reports the exercise's own input error.
func (c *Config) Validate() error {
	for i := 1; i < len(c.BinarySearch.Sorted); i++ {
		if c.BinarySearch.Sorted[i-1] > c.BinarySearch.Sorted[i] {
			return fmt.Errorf("%w: binary_search.sorted is not ascending at index %d", ErrInvalidConfig, i)
		}
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}
