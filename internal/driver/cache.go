package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"prag/internal/diag"
	"prag/internal/project"
	"prag/internal/source"
)

// cacheSchemaVersion invalidates every entry when the payload format
// changes.
const cacheSchemaVersion uint16 = 1

// DiskCache memoizes per-file scan results on disk. The key combines
// the file content hash with the options fingerprint, so entries can
// never be served across different settings or edited files.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache at the standard location,
// honoring XDG_CACHE_HOME.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit
// directory, for tests and --cache-dir overrides.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "scan", hexKey+".mp")
}

// Put serializes a payload and replaces the entry atomically.
func (c *DiskCache) Put(key project.Digest, payload *filePayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// Best effort: the temp file is gone after a successful rename.
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload; ok is false on a miss or a schema mismatch.
func (c *DiskCache) Get(key project.Digest, out *filePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// DirectiveRecord summarizes one extracted directive for scan reports
// and the cache. Kind and Canonical are empty when parsing failed.
type DirectiveRecord struct {
	Line      uint32
	Start     uint32
	End       uint32
	Language  string
	Dialect   string
	Kind      string
	Clauses   int
	OK        bool
	Canonical string
}

// CachedDiag snapshots one bag entry. Notes and fixes are not cached;
// a hit restores locations and messages only.
type CachedDiag struct {
	Severity uint8
	Code     uint16
	Start    uint32
	End      uint32
	Message  string
}

// filePayload is the cached outcome of scanning one file.
type filePayload struct {
	Schema  uint16
	Records []DirectiveRecord
	Diags   []CachedDiag
}

func snapshotDiags(bag *diag.Bag) []CachedDiag {
	items := bag.Items()
	if len(items) == 0 {
		return nil
	}
	out := make([]CachedDiag, 0, len(items))
	for _, d := range items {
		out = append(out, CachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	return out
}

// restoreDiags rebuilds bag entries from a cache hit. Spans are valid
// because the key matched on the same content hash.
func restoreDiags(diags []CachedDiag, file *source.File, bag *diag.Bag) {
	for _, cd := range diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		})
	}
}
