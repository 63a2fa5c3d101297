package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mriehl/fw/internal/log"
)

func testEnv(t *testing.T) Env {
	t.Helper()
	return Env{
		Home:       "/my/home",
		ConfigPath: filepath.Join(t.TempDir(), ConfigFileName),
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	logger := log.Discard()
	env := testEnv(t)

	cfg := testConfig()
	if err := Save(env, logger, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(env, logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Projects) != len(cfg.Projects) {
		t.Errorf("projects = %d, want %d", len(loaded.Projects), len(cfg.Projects))
	}
	p := loaded.Projects["test5"]
	if p.Name != "test5" || len(p.Tags) != 2 {
		t.Errorf("unexpected project round trip: %+v", p)
	}
	tag := loaded.Settings.Tags["tag4"]
	if tag.Priority == nil || *tag.Priority != 0 {
		t.Errorf("priority 0 must survive a round trip as set, got %v", tag.Priority)
	}
	if tag3 := loaded.Settings.Tags["tag1"]; tag3.Priority != nil {
		t.Errorf("unset priority must stay unset, got %v", tag3.Priority)
	}
}

// Load followed by Save with no mutation must reproduce the file byte for
// byte, keeping hand-edited catalogs diffable.
func TestSaveIsByteStable(t *testing.T) {
	t.Parallel()
	logger := log.Discard()
	env := testEnv(t)

	if err := Save(env, logger, testConfig()); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, err := os.ReadFile(env.ConfigPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	loaded, err := Load(env, logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Save(env, logger, loaded); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second, err := os.ReadFile(env.ConfigPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("load->save not byte stable:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestSavePrettyPrints(t *testing.T) {
	t.Parallel()
	logger := log.Discard()
	env := testEnv(t)

	if err := Save(env, logger, Setup("/workspace")); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(env.ConfigPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "{\n  \"projects\": {},\n  \"settings\": {\n    \"workspace\": \"/workspace\"\n  }\n}\n"
	if string(data) != want {
		t.Errorf("pretty output mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	logger := log.Discard()

	t.Run("missing file is an io error", func(t *testing.T) {
		t.Parallel()
		env := testEnv(t)
		_, err := Load(env, logger)
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
		}
		if IsUserError(err) {
			t.Errorf("io error misclassified as user error: %v", err)
		}
	})

	t.Run("malformed json is a user error with cause", func(t *testing.T) {
		t.Parallel()
		env := testEnv(t)
		if err := os.WriteFile(env.ConfigPath, []byte("{ not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(env, logger)
		if err == nil {
			t.Fatal("expected error")
		}
		if !IsUserError(err) {
			t.Errorf("expected user error, got %v", err)
		}
	})

	t.Run("sanity violation rejected on load", func(t *testing.T) {
		t.Parallel()
		env := testEnv(t)
		raw := `{
  "projects": { "fw": { "name": "fw", "git": "irrelevant" } },
  "settings": { "workspace": "relative/dir" }
}`
		if err := os.WriteFile(env.ConfigPath, []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(env, logger)
		var ice *InvalidConfigError
		if !errors.As(err, &ice) {
			t.Errorf("expected InvalidConfigError, got %v", err)
		}
	})

	t.Run("project key and name mismatch rejected", func(t *testing.T) {
		t.Parallel()
		env := testEnv(t)
		raw := `{
  "projects": { "fw": { "name": "other", "git": "irrelevant" } },
  "settings": { "workspace": "/test" }
}`
		if err := os.WriteFile(env.ConfigPath, []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(env, logger)
		if err == nil || !IsUserError(err) {
			t.Errorf("expected user error, got %v", err)
		}
	})

	t.Run("missing name filled from key", func(t *testing.T) {
		t.Parallel()
		env := testEnv(t)
		raw := `{
  "projects": { "fw": { "git": "irrelevant" } },
  "settings": { "workspace": "/test" }
}`
		if err := os.WriteFile(env.ConfigPath, []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(env, logger)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Projects["fw"].Name != "fw" {
			t.Errorf("name = %q, want fw", cfg.Projects["fw"].Name)
		}
	})

	t.Run("no config path", func(t *testing.T) {
		t.Parallel()
		_, err := Load(Env{}, logger)
		if err == nil || !IsUserError(err) {
			t.Errorf("expected user error, got %v", err)
		}
	})
}

func TestSaveRejectsSanityViolation(t *testing.T) {
	t.Parallel()
	logger := log.Discard()
	env := testEnv(t)

	cfg := Setup("relative/dir")
	cfg.Projects["fw"] = Project{Name: "fw", Git: "irrelevant"}

	err := Save(env, logger, cfg)
	var ice *InvalidConfigError
	if !errors.As(err, &ice) {
		t.Fatalf("expected InvalidConfigError, got %v", err)
	}
	if _, statErr := os.Stat(env.ConfigPath); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("rejected save must not write the file")
	}
}
