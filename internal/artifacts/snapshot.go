// RecSys Engine - E-commerce Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recsys-engine

package artifacts

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

const (
	snapshotPrefix  = "bundle_v"
	snapshotDataExt = ".gob.zst"
	snapshotMetaExt = ".meta.json"
)

// ErrNoSnapshot is returned when a store holds no snapshot to load.
var ErrNoSnapshot = errors.New("no snapshot found")

// SnapshotMetadata describes one stored bundle. It is written next to the
// data file so it can be read without decompressing the bundle.
type SnapshotMetadata struct {
	// Version is monotonically increasing within a store.
	Version int `json:"version"`

	// Source is the loader the bundle was packed from (json, duckdb).
	Source string `json:"source"`

	// CreatedAt is when the snapshot was written.
	CreatedAt time.Time `json:"created_at"`

	// Checksum is the SHA-256 of the uncompressed gob payload.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed size on disk.
	SizeBytes int64 `json:"size_bytes"`

	// Summary holds artifact counts at pack time.
	Summary Summary `json:"summary"`
}

// SnapshotStore keeps versioned bundles as zstd-compressed gob files.
type SnapshotStore struct {
	dir string
	mu  sync.RWMutex

	latest int
}

// OpenSnapshotStore opens (creating if needed) a store at dir.
func OpenSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	s := &SnapshotStore{dir: dir}
	versions, err := s.scan()
	if err != nil {
		return nil, fmt.Errorf("scan snapshots: %w", err)
	}
	if len(versions) > 0 {
		s.latest = versions[len(versions)-1]
	}
	return s, nil
}

// scan returns the stored versions in ascending order.
func (s *SnapshotStore) scan() ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var versions []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if v, ok := parseSnapshotName(entry.Name()); ok {
			versions = append(versions, v)
		}
	}
	sort.Ints(versions)
	return versions, nil
}

// parseSnapshotName extracts N from "bundle_vN.gob.zst".
func parseSnapshotName(name string) (int, bool) {
	if !strings.HasPrefix(name, snapshotPrefix) || !strings.HasSuffix(name, snapshotDataExt) {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, snapshotPrefix), snapshotDataExt))
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}

// LatestVersion returns the newest stored version, or 0 when the store is empty.
func (s *SnapshotStore) LatestVersion() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Save writes b as the next version and returns its metadata.
func (s *SnapshotStore) Save(ctx context.Context, b *Bundle, source string) (*SnapshotMetadata, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(b); err != nil {
		return nil, fmt.Errorf("encode bundle: %w", err)
	}
	hash := sha256.Sum256(raw.Bytes())

	var compressed bytes.Buffer
	enc, err := zstd.NewWriter(&compressed)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	if _, err := enc.Write(raw.Bytes()); err != nil {
		_ = enc.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("compress bundle: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finalize compression: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meta := &SnapshotMetadata{
		Version:   s.latest + 1,
		Source:    source,
		CreatedAt: time.Now().UTC(),
		Checksum:  hex.EncodeToString(hash[:]),
		SizeBytes: int64(compressed.Len()),
		Summary:   b.Summarize(),
	}
	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}

	// Metadata first: a data file without its sidecar is never picked up as
	// complete by Load.
	if err := writeFileAtomic(s.metaPath(meta.Version), metaBytes); err != nil {
		return nil, err
	}
	if err := writeFileAtomic(s.dataPath(meta.Version), compressed.Bytes()); err != nil {
		return nil, err
	}

	s.latest = meta.Version
	return meta, nil
}

// Metadata reads the sidecar of a version (0 = latest).
func (s *SnapshotStore) Metadata(version int) (*SnapshotMetadata, error) {
	version, err := s.resolve(version)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.metaPath(version))
	if err != nil {
		return nil, fmt.Errorf("read snapshot metadata: %w", err)
	}
	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: snapshot metadata v%d: %v", ErrMalformed, version, err)
	}
	return &meta, nil
}

// List returns metadata for every stored version, oldest first.
func (s *SnapshotStore) List() ([]SnapshotMetadata, error) {
	versions, err := s.scan()
	if err != nil {
		return nil, err
	}
	out := make([]SnapshotMetadata, 0, len(versions))
	for _, v := range versions {
		meta, err := s.Metadata(v)
		if err != nil {
			continue
		}
		out = append(out, *meta)
	}
	return out, nil
}

// Load reads and verifies a version (0 = latest).
func (s *SnapshotStore) Load(ctx context.Context, version int) (*Bundle, *SnapshotMetadata, error) {
	meta, raw, err := s.readVerified(ctx, version)
	if err != nil {
		return nil, nil, err
	}

	var decoded Bundle
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&decoded); err != nil {
		return nil, nil, fmt.Errorf("%w: decode snapshot v%d: %v", ErrMalformed, meta.Version, err)
	}
	b, err := rebuild(&decoded)
	if err != nil {
		return nil, nil, err
	}
	return b, meta, nil
}

// Verify checks the checksum and structure of a version without keeping the bundle.
func (s *SnapshotStore) Verify(ctx context.Context, version int) (*SnapshotMetadata, error) {
	_, meta, err := s.Load(ctx, version)
	return meta, err
}

func (s *SnapshotStore) readVerified(ctx context.Context, version int) (*SnapshotMetadata, []byte, error) {
	meta, err := s.Metadata(version)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(s.dataPath(meta.Version))
	if err != nil {
		return nil, nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // read-only file

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: decompress snapshot v%d: %v", ErrMalformed, meta.Version, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	hash := sha256.Sum256(raw)
	if checksum := hex.EncodeToString(hash[:]); checksum != meta.Checksum {
		return nil, nil, fmt.Errorf("%w: snapshot v%d checksum mismatch: expected %s, got %s",
			ErrMalformed, meta.Version, meta.Checksum, checksum)
	}
	return meta, raw, nil
}

func (s *SnapshotStore) resolve(version int) (int, error) {
	if version > 0 {
		return version, nil
	}
	if latest := s.LatestVersion(); latest > 0 {
		return latest, nil
	}
	return 0, fmt.Errorf("%w in %s", ErrNoSnapshot, s.dir)
}

func (s *SnapshotStore) dataPath(version int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s%d%s", snapshotPrefix, version, snapshotDataExt))
}

func (s *SnapshotStore) metaPath(version int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s%d%s", snapshotPrefix, version, snapshotMetaExt))
}

// Loader adapts the store to the Loader interface for a fixed version (0 = latest).
func (s *SnapshotStore) Loader(version int) Loader {
	return snapshotLoader{store: s, version: version}
}

type snapshotLoader struct {
	store   *SnapshotStore
	version int
}

func (l snapshotLoader) Load(ctx context.Context) (*Bundle, error) {
	b, _, err := l.store.Load(ctx, l.version)
	return b, err
}

// rebuild runs the decoded artifacts back through their constructors so the
// unexported indexes exist and invariants are rechecked.
func rebuild(d *Bundle) (*Bundle, error) {
	b := &Bundle{Translations: d.Translations}
	var err error
	if d.Interactions != nil {
		if b.Interactions, err = NewInteractionMatrix(d.Interactions.Users, d.Interactions.Products, d.Interactions.Rows); err != nil {
			return nil, err
		}
	}
	if d.Similarity != nil {
		if b.Similarity, err = NewSimilarityModel(d.Similarity.Users, d.Similarity.Scores); err != nil {
			return nil, err
		}
	}
	if d.Rules != nil {
		if b.Rules, err = NewRuleTable(d.Rules.Rules); err != nil {
			return nil, err
		}
	}
	if d.Catalog != nil {
		b.Catalog = NewProductCatalog(d.Catalog.Entries)
	}
	return b, b.Validate()
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()           //nolint:errcheck // already failing
		_ = os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
