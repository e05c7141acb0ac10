package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognisync/go-engine/internal/signal"
)

// #region round-trip

func TestYAML_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	orig := Builtin()
	if err := orig.WriteYAML(f); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	f.Close()

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.Len() != orig.Len() {
		t.Fatalf("loaded %d keys, want %d", loaded.Len(), orig.Len())
	}
	if diff := cmp.Diff(orig.tactics, loaded.tactics); diff != "" {
		t.Errorf("tactics mismatch (-orig +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(orig.crisis, loaded.crisis); diff != "" {
		t.Errorf("crisis mismatch (-orig +loaded):\n%s", diff)
	}
	if diff := cmp.Diff(orig.defaults, loaded.defaults); diff != "" {
		t.Errorf("defaults mismatch (-orig +loaded):\n%s", diff)
	}
}

// #endregion round-trip

// #region load-failures

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoad_RejectsInvalidCatalog(t *testing.T) {
	// Two variants, and the crisis section is incomplete.
	path := writeCatalogFile(t, `
tactics:
  - emotion: neutral
    attention: medium
    stress_zone: mid
    engagement_zone: mid
    variants: ["a", "b"]
crisis:
  __engagement_drop__: ["x"]
defaults:
  - "d"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeCatalogFile(t, "tactics: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_RejectsDuplicateKeys(t *testing.T) {
	path := writeCatalogFile(t, `
tactics:
  - emotion: neutral
    attention: medium
    stress_zone: mid
    engagement_zone: mid
    variants: ["a"]
  - emotion: neutral
    attention: medium
    stress_zone: mid
    engagement_zone: mid
    variants: ["b"]
crisis:
  __engagement_drop__: ["x"]
  __stress_spike__: ["x"]
  __inconsistency__: ["x"]
  __attention_lost__: ["x"]
defaults:
  - "d"
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected duplicate-key error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestLoad_MinimalValidCatalog(t *testing.T) {
	path := writeCatalogFile(t, `
tactics:
  - emotion: happy
    attention: high
    stress_zone: low
    engagement_zone: high
    variants: ["close now"]
crisis:
  __engagement_drop__: ["interrupt"]
  __stress_spike__: ["slow down"]
  __inconsistency__: ["name the gap"]
  __attention_lost__: ["stop talking"]
defaults:
  - "hold silence"
`)
	cat, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	k := Key{signal.EmotionHappy, signal.AttentionHigh, signal.ZoneLow, signal.ZoneHigh}
	entry, ok := cat.Lookup(k)
	if !ok || entry.Variants[0] != "close now" {
		t.Errorf("lookup = %+v ok=%v", entry, ok)
	}
	if cat.CrisisVariantCount(CrisisStressSpike) != 1 {
		t.Errorf("crisis variant count = %d, want 1", cat.CrisisVariantCount(CrisisStressSpike))
	}
}

// #endregion load-failures
