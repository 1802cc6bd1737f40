package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	raw := `
server:
  postgresDsn: "host=db user=postgres dbname=bureau"
  redisAddr: "localhost:6379"
  memcachedAddr: "localhost:11211"
  enableTrace: true
  traceEndpoint: "localhost:4318"
bureau:
  referencePrefix: "NB"
  dedupTTLSeconds: 120
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Listen != ":8000" {
		t.Fatalf("expected default listen addr, got %q", cfg.Server.Listen)
	}
	if cfg.Server.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected redis addr %q", cfg.Server.RedisAddr)
	}
	if cfg.Bureau.ReferencePrefix != "NB" || cfg.Bureau.DedupTTLSeconds != 120 {
		t.Fatalf("unexpected bureau section %+v", cfg.Bureau)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
