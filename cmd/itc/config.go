package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/issuetext/issuetext/converter"
)

// fileConfig is the optional YAML config file shape.
type fileConfig struct {
	Sentinel        string `yaml:"sentinel"`
	MentionFallback string `yaml:"mentionFallback"`
}

func loadConfig(path string) (converter.Config, error) {
	if path == "" {
		return converter.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return converter.Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return converter.Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	return converter.Config{
		Sentinel:        fc.Sentinel,
		MentionFallback: fc.MentionFallback,
	}, nil
}
