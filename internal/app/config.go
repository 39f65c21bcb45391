package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string   // hcl/json file, or a directory of them
	Fragments []string // path fragments, resolved into one canonical path
	ListKeys  bool     // list every reachable path instead of resolving one

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if !cfg.ListKeys && len(cfg.Fragments) == 0 {
		return nil, errors.New("nothing to do: give path fragments to resolve, or set ListKeys")
	}

	return &cfg, nil
}
