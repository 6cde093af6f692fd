package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_EnvOverridesBase(t *testing.T) {
	dir := t.TempDir()
	base := "server:\n  port: \":8080\"\ndb:\n  host: localhost\n  name: callsheet\n"
	local := "db:\n  host: db.internal\n"
	os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0644)
	os.WriteFile(filepath.Join(dir, "local.yaml"), []byte(local), 0644)

	cfg, err := LoadConfig("local", dir)
	if err != nil {
		t.Fatal(err)
	}

	db, ok := cfg["db"].(map[string]interface{})
	if !ok {
		t.Fatalf("db section = %#v", cfg["db"])
	}
	if db["host"] != "db.internal" {
		t.Errorf("db.host = %v, want db.internal", db["host"])
	}
	// Keys absent from the env file survive the merge.
	if db["name"] != "callsheet" {
		t.Errorf("db.name = %v, want callsheet", db["name"])
	}
}

func TestLoadConfig_SecretSubstitution(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("jwt:\n  secret: ${JWT_SECRET}\n"), 0644)
	os.WriteFile(filepath.Join(dir, "secrets.env"), []byte("JWT_SECRET=s3cret\n"), 0644)

	cfg, err := LoadConfig("", dir)
	if err != nil {
		t.Fatal(err)
	}

	jwt := cfg["jwt"].(map[string]interface{})
	if jwt["secret"] != "s3cret" {
		t.Errorf("jwt.secret = %v, want s3cret", jwt["secret"])
	}
}

func TestLoadConfig_MissingBase(t *testing.T) {
	if _, err := LoadConfig("local", t.TempDir()); err == nil {
		t.Error("expected error when base.yaml is missing")
	}
}
