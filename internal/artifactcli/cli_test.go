// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifactcli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/recsys-engine/internal/artifacts"
	"github.com/tomtom215/recsys-engine/internal/logging"
)

var sourceFiles = map[string]string{
	"user_item_matrix.json": `{"users": [1, 2], "products": ["A", "B"], "rows": [[3, 0], [1, 2]]}`,
	"user_similarity.json":  `{"users": [1, 2], "matrix": [[1, 0.4], [0.4, 1]]}`,
	"association_rules.json": `[
		{"antecedents": ["A"], "consequents": ["B"], "support": 0.1, "confidence": 0.6, "lift": 1.5},
		{"antecedents": ["B"], "consequents": ["A"], "support": 0.1, "confidence": 0.3, "lift": 1.1}
	]`,
	"product_catalog.json":      `[{"StockCode": "A", "Description": "MUG"}, {"StockCode": "B", "Description": "CANDLE"}]`,
	"product_translations.json": `{"MUG": "Taza"}`,
}

func writeSource(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range sourceFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// run executes the command and returns stdout. Logging is reset afterwards
// since the command reconfigures the global logger.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	var stdout, stderr bytes.Buffer
	argv := append([]string{"artifacts", "--log-level", "error"}, args...)
	err := newCommand(&stdout, &stderr).Run(context.Background(), argv)
	return stdout.String(), err
}

func TestPackInspectVerify(t *testing.T) {
	src := writeSource(t)
	snap := t.TempDir()

	out, err := run(t, "pack", "--from", src, "--to", snap)
	if err != nil {
		t.Fatalf("pack error = %v", err)
	}
	var meta artifacts.SnapshotMetadata
	if err := json.Unmarshal([]byte(out), &meta); err != nil {
		t.Fatalf("decode pack output: %v\n%s", err, out)
	}
	if meta.Version != 1 || meta.Source != artifacts.SourceJSON {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Summary.Users != 2 || meta.Summary.Rules != 2 || meta.Summary.Translations != 1 {
		t.Errorf("unexpected summary %+v", meta.Summary)
	}

	out, err = run(t, "inspect", "--source", "snapshot", "--path", snap)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	var res inspectResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode inspect output: %v\n%s", err, out)
	}
	if res.Summary.CatalogEntries != 2 || len(res.Summary.Missing) != 0 {
		t.Errorf("unexpected inspect summary %+v", res.Summary)
	}

	out, err = run(t, "verify", "--path", snap)
	if err != nil {
		t.Fatalf("verify error = %v", err)
	}
	if !strings.Contains(out, meta.Checksum) {
		t.Errorf("verify output should carry the checksum, got %s", out)
	}

	if _, err := run(t, "pack", "--from", src, "--to", snap); err != nil {
		t.Fatalf("second pack error = %v", err)
	}
	out, err = run(t, "list", "--path", snap)
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	var versions []artifacts.SnapshotMetadata
	if err := json.Unmarshal([]byte(out), &versions); err != nil {
		t.Fatalf("decode list output: %v", err)
	}
	if len(versions) != 2 || versions[1].Version != 2 {
		t.Errorf("expected versions 1 and 2, got %+v", versions)
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	snap := t.TempDir()
	if _, err := run(t, "pack", "--from", writeSource(t), "--to", snap); err != nil {
		t.Fatalf("pack error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(snap, "bundle_v1.gob.zst"), []byte("not zstd"), 0o600); err != nil {
		t.Fatalf("corrupt snapshot: %v", err)
	}

	if _, err := run(t, "verify", "--path", snap, "--version", "1"); err == nil {
		t.Error("verify should fail on a corrupted snapshot")
	}
}

func TestInspectMissingArtifacts(t *testing.T) {
	out, err := run(t, "inspect", "--path", t.TempDir())
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	var res inspectResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode inspect output: %v", err)
	}
	if len(res.Summary.Missing) != len(artifacts.AllNames) {
		t.Errorf("expected every artifact missing, got %v", res.Summary.Missing)
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"pack without destination", []string{"pack", "--from", "x"}},
		{"pack from snapshot", []string{"pack", "--source", "snapshot", "--from", "x", "--to", "y"}},
		{"pack require all from empty dir", []string{"pack", "--require-all", "--from", "EMPTY", "--to", "OUT"}},
		{"verify empty store", []string{"verify", "--path", "EMPTY"}},
		{"unknown source", []string{"inspect", "--source", "parquet", "--path", "EMPTY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				switch a {
				case "EMPTY", "OUT":
					args[i] = t.TempDir()
				default:
					args[i] = a
				}
			}
			if _, err := run(t, args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestInvalidLogFormat(t *testing.T) {
	if _, err := run(t, "--log-format", "xml", "list", "--path", t.TempDir()); err == nil {
		t.Error("expected error for unknown log format")
	}
}
