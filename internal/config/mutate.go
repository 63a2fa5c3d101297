package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mriehl/fw/internal/log"
)

// RepoNameFromURL derives a project name from a repository URL by taking
// the final /-delimited segment and stripping a single trailing ".git".
// Only one suffix occurrence is stripped: a URL ending in ".git.git" keeps
// one ".git" in the name, which is legal.
func RepoNameFromURL(url string) (string, error) {
	last := url
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		last = url[idx+1:]
	}
	if last == "" {
		return "", &UserError{Msg: fmt.Sprintf("given URL %s does not have path fragments so cannot determine project name, please give one", url)}
	}
	if strings.HasSuffix(last, ".git") {
		last = last[:len(last)-len(".git")]
	}
	if last == "" {
		return "", &UserError{Msg: fmt.Sprintf("cannot determine project name from URL %s, please give one", url)}
	}
	return last, nil
}

// AddEntry adds a new project for url. An empty name is derived from the
// URL. The new project inherits the settings defaults verbatim, with no
// override path.
func (c *Config) AddEntry(logger *log.Logger, name, url string) error {
	if name == "" {
		derived, err := RepoNameFromURL(url)
		if err != nil {
			return err
		}
		name = derived
	}
	logger.WithFields(log.Fields{"name": name, "url": url}).Info("prepare new project entry")

	if _, exists := c.Projects[name]; exists {
		return &UserError{Msg: fmt.Sprintf("project key %s already exists, not gonna overwrite it for you", name)}
	}

	if c.Projects == nil {
		c.Projects = make(map[string]Project)
	}
	c.Projects[name] = Project{
		Name:        name,
		Git:         url,
		AfterClone:  c.Settings.DefaultAfterClone,
		AfterWorkon: c.Settings.DefaultAfterWorkon,
		Tags:        slices.Clone(c.Settings.DefaultTags),
	}
	return nil
}

// UpdateOptions carries replacement values for UpdateEntry.
// Nil fields keep the existing value.
type UpdateOptions struct {
	Git          *string
	AfterWorkon  *string
	AfterClone   *string
	OverridePath *string
}

// UpdateEntry replaces fields of an existing project. The tag assignment is
// always cleared: an explicit update supersedes tag-derived configuration.
// Names starting with "http" or "git@" are rejected to guard against the
// common argument-order mistake of passing the URL first.
func (c *Config) UpdateEntry(logger *log.Logger, name string, opts UpdateOptions) error {
	if strings.HasPrefix(name, "http") || strings.HasPrefix(name, "git@") {
		return &UserError{Msg: fmt.Sprintf("%s looks like a repo URL and not like a project name, please fix", name)}
	}
	project, exists := c.Projects[name]
	if !exists {
		return &UserError{Msg: fmt.Sprintf("project key %s does not exist, can not update", name)}
	}
	logger.WithFields(log.Fields{"name": name}).Info("update project entry")

	if opts.Git != nil {
		project.Git = *opts.Git
	}
	if opts.AfterWorkon != nil {
		project.AfterWorkon = *opts.AfterWorkon
	}
	if opts.AfterClone != nil {
		project.AfterClone = *opts.AfterClone
	}
	if opts.OverridePath != nil {
		project.OverridePath = *opts.OverridePath
	}
	project.Tags = nil

	c.Projects[name] = project
	return nil
}

// RemoveEntry deletes a project from the catalog.
func (c *Config) RemoveEntry(logger *log.Logger, name string) error {
	if _, exists := c.Projects[name]; !exists {
		return &UserError{Msg: fmt.Sprintf("project key %s does not exist, can not remove", name)}
	}
	logger.WithFields(log.Fields{"name": name}).Info("remove project entry")
	delete(c.Projects, name)
	return nil
}

// TagProject attaches a tag reference to a project. Referencing a tag that
// settings does not define is allowed (references are weak) but warns,
// since the tag contributes nothing until it is defined.
func (c *Config) TagProject(logger *log.Logger, name, tag string) error {
	project, exists := c.Projects[name]
	if !exists {
		return &UserError{Msg: fmt.Sprintf("project key %s does not exist, can not tag", name)}
	}
	if _, known := c.Settings.Tags[tag]; !known {
		logger.WithFields(log.Fields{"missing_tag": tag}).Warn("tag is not defined in settings, it contributes nothing until it is")
	}
	if slices.Contains(project.Tags, tag) {
		return nil
	}
	project.Tags = append(project.Tags, tag)
	slices.Sort(project.Tags)
	c.Projects[name] = project
	return nil
}

// UntagProject detaches a tag reference from a project. Detaching a tag the
// project does not carry is a no-op.
func (c *Config) UntagProject(logger *log.Logger, name, tag string) error {
	project, exists := c.Projects[name]
	if !exists {
		return &UserError{Msg: fmt.Sprintf("project key %s does not exist, can not untag", name)}
	}
	if idx := slices.Index(project.Tags, tag); idx >= 0 {
		project.Tags = slices.Delete(project.Tags, idx, idx+1)
		if len(project.Tags) == 0 {
			project.Tags = nil
		}
		c.Projects[name] = project
	}
	return nil
}
