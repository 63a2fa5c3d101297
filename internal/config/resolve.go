package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/mriehl/fw/internal/log"
)

// tagValue pairs an extracted tag field with the ordering information
// needed for a deterministic merge. The tag name must survive until the
// sort so that equal priorities can tie-break on it.
type tagValue struct {
	value    string
	priority uint8
	name     string
}

// resolveFromTags is the generic merge shared by workspace, after-clone and
// after-workon resolution. extract pulls the relevant field off a tag
// (empty = field unset, skipped silently), join combines the contributing
// values in ascending priority order. The second return is false when no
// tag contributed anything and the caller should fall back to its default.
//
// Unknown tag names warn and are skipped; they never fail resolution.
// The iteration order of refs does not affect the output.
func (c *Config) resolveFromTags(logger *log.Logger, refs []string, extract func(Tag) string, join func([]string) string) (string, bool) {
	if len(refs) == 0 || len(c.Settings.Tags) == 0 {
		return "", false
	}
	logger.WithFields(log.Fields{"tags": refs}).Trace("resolving from tags")

	seen := make(map[string]bool, len(refs))
	var resolved []tagValue
	for _, name := range refs {
		if seen[name] {
			continue
		}
		seen[name] = true

		tag, ok := c.Settings.Tags[name]
		if !ok {
			logger.WithFields(log.Fields{"missing_tag": name}).Warn("ignoring tag since it was not found in the config")
			continue
		}
		value := extract(tag)
		if value == "" {
			// Known tag without the field set contributes nothing,
			// deliberately without a warning.
			continue
		}
		resolved = append(resolved, tagValue{
			value:    value,
			priority: c.tagPriorityOrFallback(logger, name, tag),
			name:     name,
		})
	}

	slices.SortFunc(resolved, func(a, b tagValue) int {
		if a.priority != b.priority {
			return int(a.priority) - int(b.priority)
		}
		return strings.Compare(a.name, b.name)
	})

	if len(resolved) == 0 {
		return "", false
	}

	values := make([]string, len(resolved))
	for i, r := range resolved {
		values[i] = r.value
	}
	result := join(values)
	logger.WithFields(log.Fields{"resolved": result}).Debug("resolved from tags")
	return result, true
}

func (c *Config) tagPriorityOrFallback(logger *log.Logger, name string, tag Tag) uint8 {
	if tag.Priority != nil {
		return *tag.Priority
	}
	logger.WithFields(log.Fields{"tag_name": name}).Debug(
		"no tag priority set, using default (50); tags with low priority apply first and equal priorities apply in alphabetical name order")
	return DefaultTagPriority
}

// joinCommands chains command contributions so that lower-priority tags
// run first.
func joinCommands(values []string) string {
	return strings.Join(values, " && ")
}

// lastWins picks the highest-priority contribution.
func lastWins(values []string) string {
	return values[len(values)-1]
}

// ResolveAfterClone returns the effective post-clone command for a project,
// or false when neither the project nor any tag contributes one.
func (c *Config) ResolveAfterClone(logger *log.Logger, project Project) (string, bool) {
	if project.AfterClone != "" {
		return project.AfterClone, true
	}
	return c.resolveFromTags(logger, project.Tags, func(t Tag) string { return t.AfterClone }, joinCommands)
}

// ResolveAfterWorkon returns the effective post-workon command for a
// project, prefixed with " && " so it can be appended directly after a
// shell's activation command. Empty when nothing contributes.
func (c *Config) ResolveAfterWorkon(logger *log.Logger, project Project) string {
	cmd := project.AfterWorkon
	if cmd == "" {
		cmd, _ = c.resolveFromTags(logger, project.Tags, func(t Tag) string { return t.AfterWorkon }, joinCommands)
	}
	if cmd == "" {
		return ""
	}
	return " && " + cmd
}

// resolveWorkspace returns the workspace directory the project resolves
// under: the highest-priority tag workspace, else the global default.
func (c *Config) resolveWorkspace(logger *log.Logger, project Project) string {
	workspace, ok := c.resolveFromTags(logger, project.Tags, func(t Tag) string { return t.Workspace }, lastWins)
	if !ok {
		workspace = c.Settings.Workspace
	}
	logger.WithFields(log.Fields{"workspace": workspace}).Trace("resolved workspace")
	return workspace
}

// ActualPathToProject computes the directory a project lives in: the
// expanded override path when set, otherwise the resolved workspace joined
// with the project name, expanded. Fails only when ~ expansion is needed
// and the home directory is unknown.
func (c *Config) ActualPathToProject(env Env, logger *log.Logger, project Project) (string, error) {
	if project.OverridePath != "" {
		return env.Expand(project.OverridePath)
	}
	return env.Expand(filepath.Join(c.resolveWorkspace(logger, project), project.Name))
}
