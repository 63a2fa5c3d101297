package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mriehl/fw/internal/log"
)

// Load reads the catalog from env.ConfigPath and sanity-checks it, so a
// hand-edited file with a relative resolved path is rejected up front.
func Load(env Env, logger *log.Logger) (*Config, error) {
	if env.ConfigPath == "" {
		return nil, &UserError{Msg: "cannot determine config path: $HOME not set and no override given"}
	}

	data, err := os.ReadFile(env.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", env.ConfigPath, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &UserError{Msg: fmt.Sprintf("malformed config %s", env.ConfigPath), Cause: err}
	}
	if cfg.Projects == nil {
		cfg.Projects = make(map[string]Project)
	}

	// Project map keys equal the embedded name field. A missing name in a
	// hand-edited file is filled in from the key, a conflicting one is a
	// config error.
	for key, project := range cfg.Projects {
		switch project.Name {
		case key:
		case "":
			project.Name = key
			cfg.Projects[key] = project
		default:
			return nil, &UserError{Msg: fmt.Sprintf("malformed config %s: project key %s does not match name %s", env.ConfigPath, key, project.Name)}
		}
	}

	if err := cfg.Check(env, logger); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{"path": env.ConfigPath, "projects": len(cfg.Projects)}).Debug("loaded config")
	return &cfg, nil
}

// Save sanity-checks the catalog and writes it to env.ConfigPath as
// pretty-printed JSON. The write is a single plain file write: there is no
// temp-file dance and no locking, concurrent invocations racing on the same
// file are unsupported.
func Save(env Env, logger *log.Logger, cfg *Config) error {
	if env.ConfigPath == "" {
		return &UserError{Msg: "cannot determine config path: $HOME not set and no override given"}
	}

	if err := cfg.Check(env, logger); err != nil {
		return err
	}

	logger.WithFields(log.Fields{"path": env.ConfigPath}).Info("writing config")
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(env.ConfigPath, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", env.ConfigPath, err)
	}
	return nil
}

// Setup returns a fresh catalog rooted at the given workspace directory,
// for first-run initialization.
func Setup(workspace string) *Config {
	return &Config{
		Projects: make(map[string]Project),
		Settings: Settings{Workspace: workspace},
	}
}
