package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the catalog file name under the user's home directory.
const ConfigFileName = ".fw.json"

// Env captures the process-wide, environment-derived state the catalog
// depends on. It is resolved once per invocation and passed in explicitly
// so that resolution and sanity checking stay pure.
type Env struct {
	// Home is the current user's home directory, empty when it cannot be
	// determined.
	Home string
	// ConfigPath is the catalog file location, empty when neither an
	// override nor a home directory is available.
	ConfigPath string
}

// DetectEnv resolves the environment. An explicit configOverride wins over
// the default <home>/.fw.json location.
func DetectEnv(configOverride string) Env {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	path := configOverride
	if path == "" && home != "" {
		path = filepath.Join(home, ConfigFileName)
	}

	return Env{Home: home, ConfigPath: path}
}

// Expand replaces a leading ~ component with the home directory. Paths
// without the shorthand pass through unchanged. Fails only when expansion
// is needed and no home directory is known; callers treat that as a fatal
// configuration error.
func (e Env) Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	if e.Home == "" {
		return "", &UserError{Msg: "cannot expand " + path + ": home directory not determinable ($HOME not set)"}
	}
	if path == "~" {
		return e.Home, nil
	}
	return filepath.Join(e.Home, path[2:]), nil
}
