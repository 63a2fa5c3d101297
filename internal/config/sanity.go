package config

import (
	"path/filepath"

	"github.com/mriehl/fw/internal/log"
)

// Check enforces the catalog invariant that every project's resolved
// workspace path is absolute. It runs after every load and before every
// save so hand-edited files are caught early and programmatic edits cannot
// introduce violations. The first offending project fails the check.
func (c *Config) Check(env Env, logger *log.Logger) error {
	checkLogger := logger.WithField("task", "check_sanity")
	for _, name := range c.ProjectNames() {
		project := c.Projects[name]
		path, err := c.ActualPathToProject(env, checkLogger, project)
		if err != nil {
			return err
		}
		if !filepath.IsAbs(path) {
			return &InvalidConfigError{Project: project.Name, Path: path}
		}
	}
	return nil
}
