package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Dataset is the file format read by every command.
type Dataset struct {
	Neighbors   int      `yaml:"neighbors,omitempty" json:"neighbors,omitempty"`
	Capacity    *int     `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Parallelism int      `yaml:"parallelism,omitempty" json:"parallelism,omitempty"`
	Samples     []Sample `yaml:"samples" json:"samples"`
	Queries     []Query  `yaml:"queries,omitempty" json:"queries,omitempty"`
}

// Sample is one labeled position set to learn.
type Sample struct {
	Label     string `yaml:"label" json:"label"`
	Positions []int  `yaml:"positions" json:"positions"`
}

// Query is one position set to classify.
type Query struct {
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
	Positions  []int  `yaml:"positions" json:"positions"`
	MaxResults int    `yaml:"max_results,omitempty" json:"max_results,omitempty"`
}

// loadDataset loads a dataset from a YAML or JSON file
func loadDataset(path string) (*Dataset, error) {
	if path == "" {
		return nil, fmt.Errorf("dataset file is required, use -f flag")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var ds Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &ds); err != nil {
			if err := json.Unmarshal(data, &ds); err != nil {
				return nil, fmt.Errorf("failed to parse file (tried YAML and JSON): %w", err)
			}
		}
	}
	return &ds, nil
}

// parsePositions parses a comma-separated list such as "1,2,3".
func parsePositions(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", f, err)
		}
		out = append(out, p)
	}
	return out, nil
}
