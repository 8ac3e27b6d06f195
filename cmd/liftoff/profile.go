package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultProfileFile is consulted when --config is not given.
const defaultProfileFile = "liftoff.yaml"

// profile is the harness configuration file.
type profile struct {
	HostRoot   string `yaml:"host_root"`
	Executable string `yaml:"executable"`
	Settings   string `yaml:"settings"`
	Verbose    bool   `yaml:"verbose"`
	JSONLogs   bool   `yaml:"json_logs"`
}

// loadProfile reads the profile file and overlays command-line flags.
// A missing default profile is fine; a missing explicit --config is not.
func loadProfile() (profile, error) {
	var p profile

	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = defaultProfileFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return profile{}, fmt.Errorf("parsing profile %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No profile, flags only.
	default:
		return profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}

	if hostRoot != "" {
		p.HostRoot = hostRoot
	}
	if verbose {
		p.Verbose = true
	}
	if jsonLogs {
		p.JSONLogs = true
	}

	if p.HostRoot == "" {
		return profile{}, fmt.Errorf("host root is required (set --host-root or host_root in %s)", path)
	}

	return p, nil
}
