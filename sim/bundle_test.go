package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTempBundle(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp bundle: %v", err)
	}
	return path
}

func TestLoadBundleValidYAML(t *testing.T) {
	path := writeTempBundle(t, `
algorithm: mlfq
quantum: 4
log_level: debug
trace: full
`)
	b, err := LoadBundle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, "mlfq", b.Algorithm)
	assert.Equal(t, 4, b.Quantum)
	assert.Equal(t, "debug", b.LogLevel)
	assert.Equal(t, "full", b.Trace)
}

func TestLoadBundleMissingFile(t *testing.T) {
	_, err := LoadBundle(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestLoadBundleMalformedYAML(t *testing.T) {
	path := writeTempBundle(t, "algorithm: [unterminated")
	_, err := LoadBundle(path)
	if err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}

func TestBundleValidateRejectsUnknownAlgorithm(t *testing.T) {
	b := &Bundle{Algorithm: "bogus"}
	if err := b.Validate(); err == nil {
		t.Errorf("Validate() should reject an unknown algorithm")
	}
}

func TestBundleValidateRejectsNegativeQuantum(t *testing.T) {
	b := &Bundle{Quantum: -1}
	if err := b.Validate(); err == nil {
		t.Errorf("Validate() should reject a negative quantum")
	}
}

func TestBundleValidateRejectsUnknownLogLevel(t *testing.T) {
	b := &Bundle{LogLevel: "bogus"}
	if err := b.Validate(); err == nil {
		t.Errorf("Validate() should reject an unknown log level")
	}
}

func TestBundleValidateAcceptsEmptyBundle(t *testing.T) {
	b := &Bundle{}
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() on an empty bundle should succeed, got %v", err)
	}
}
