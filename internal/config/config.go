package config

import (
	"slices"
)

// DefaultTagPriority is used for tags that do not set an explicit priority.
// Lower priorities are applied first.
const DefaultTagPriority uint8 = 50

// Settings holds the global defaults of the catalog.
type Settings struct {
	// Workspace is the root directory new project checkouts resolve under.
	Workspace string `json:"workspace"`
	// Shell is the command line used to launch a shell for a project.
	Shell []string `json:"shell,omitempty"`
	// DefaultAfterWorkon and DefaultAfterClone are copied verbatim onto
	// newly added projects.
	DefaultAfterWorkon string `json:"default_after_workon,omitempty"`
	DefaultAfterClone  string `json:"default_after_clone,omitempty"`
	// DefaultTags are the tag references assigned to newly added projects.
	DefaultTags []string `json:"default_tags,omitempty"`
	// Tags maps tag names to their definitions.
	Tags map[string]Tag `json:"tags,omitempty"`
}

// Tag is a reusable named bundle of overrides, referenced by name from
// projects. A tag has no identity beyond its key in Settings.Tags.
type Tag struct {
	AfterClone  string `json:"after_clone,omitempty"`
	AfterWorkon string `json:"after_workon,omitempty"`
	// Priority orders tag contributions during resolution. Nil means
	// DefaultTagPriority; zero is meaningful and distinct from unset.
	Priority  *uint8 `json:"priority,omitempty"`
	Workspace string `json:"workspace,omitempty"`
}

// Project is one catalog entry.
type Project struct {
	Name string `json:"name"`
	Git  string `json:"git"`
	// AfterClone and AfterWorkon take precedence over tag contributions.
	AfterClone  string `json:"after_clone,omitempty"`
	AfterWorkon string `json:"after_workon,omitempty"`
	// OverridePath bypasses workspace resolution entirely.
	OverridePath string `json:"override_path,omitempty"`
	// Tags are weak references into Settings.Tags.
	Tags []string `json:"tags,omitempty"`
}

// Config is the aggregate root: all projects plus global settings.
type Config struct {
	Projects map[string]Project `json:"projects"`
	Settings Settings           `json:"settings"`
}

// Project returns the project with the given name.
func (c *Config) Project(name string) (Project, bool) {
	p, ok := c.Projects[name]
	return p, ok
}

// ProjectNames returns all project names in ascending order.
func (c *Config) ProjectNames() []string {
	names := make([]string, 0, len(c.Projects))
	for name := range c.Projects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TagNames returns all defined tag names in ascending order.
func (c *Config) TagNames() []string {
	names := make([]string, 0, len(c.Settings.Tags))
	for name := range c.Settings.Tags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
