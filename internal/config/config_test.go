package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvFlags, EnvForceFallback, EnvNativeBraces, EnvLogLevel} {
		unsetEnv(t, key)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !reflect.DeepEqual(cfg.Glob.Flags, []string{"brace"}) {
		t.Errorf("Flags = %v, want [brace]", cfg.Glob.Flags)
	}
	if !cfg.Glob.NativeBraces {
		t.Error("NativeBraces should default to true")
	}
	if cfg.Glob.ForceFallback {
		t.Error("ForceFallback should default to false")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Glob.Flags = []string{"brace", "mark"}
	cfg.Glob.ForceFallback = true
	cfg.Glob.MaxPatternLength = 1024
	cfg.Log.Level = "debug"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("glob:\n  force_fallback: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Glob.ForceFallback {
		t.Error("ForceFallback not read")
	}
	if !cfg.Glob.NativeBraces || cfg.Log.Level != "warn" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("glob: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFlags, "brace, nosort,")
	t.Setenv(EnvForceFallback, "true")
	t.Setenv(EnvNativeBraces, "0")
	t.Setenv(EnvLogLevel, "debug")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("apply env: %v", err)
	}

	if !reflect.DeepEqual(cfg.Glob.Flags, []string{"brace", "nosort"}) {
		t.Errorf("Flags = %v", cfg.Glob.Flags)
	}
	if !cfg.Glob.ForceFallback || cfg.Glob.NativeBraces {
		t.Errorf("bools not applied: %+v", cfg.Glob)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestApplyEnvInvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvForceFallback, "sometimes")

	if err := Default().ApplyEnv(); err == nil {
		t.Error("expected error for invalid bool")
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := Default().Save(filepath.Join(root, FileName)); err != nil {
		t.Fatal(err)
	}

	got, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("find root: %v", err)
	}
	want, _ := filepath.EvalSymlinks(root)
	if gotReal, _ := filepath.EvalSymlinks(got); gotReal != want {
		t.Errorf("FindRoot = %q, want %q", got, root)
	}

	if !Exists(root) || Exists(nested) {
		t.Error("Exists reported the wrong directories")
	}
}

func TestResolve(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()

	cfg := Default()
	cfg.Glob.Flags = []string{"brace", "onlydir"}
	if err := cfg.Save(filepath.Join(root, FileName)); err != nil {
		t.Fatal(err)
	}
	env := EnvForceFallback + "=true\n"
	if err := os.WriteFile(filepath.Join(root, EnvFile), []byte(env), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "deep")
	if err := os.Mkdir(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := Resolve(nested, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(got.Glob.Flags, []string{"brace", "onlydir"}) {
		t.Errorf("Flags = %v, want the config file's", got.Glob.Flags)
	}
	if !got.Glob.ForceFallback {
		t.Error(".env override not applied")
	}
}

func TestResolveWithoutConfig(t *testing.T) {
	clearEnv(t)

	got, err := Resolve(t.TempDir(), "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("Resolve = %+v, want defaults", got)
	}
}

func TestResolveExplicitMissing(t *testing.T) {
	clearEnv(t)

	if _, err := Resolve(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}
