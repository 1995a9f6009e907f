package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"svfmt/internal/format"
)

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

// Schema version for the cached payload; bump when the layout of Payload
// or the rendering rules change incompatibly.
const cacheSchemaVersion uint16 = 1

// Payload is the cached outcome of formatting one file under one set of
// layout options: the formatted hash and whether formatting changed the
// bytes. A hit with Changed=false means the file is already a fixed point
// and the pipeline can be skipped entirely.
type Payload struct {
	Schema        uint16
	FormattedHash Digest
	Changed       bool
}

// DiskCache stores formatting outcomes keyed by content+options digest.
// Safe for concurrent use; a nil *DiskCache is a no-op.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a cache under XDG_CACHE_HOME (or ~/.cache)
// in a subdirectory named after the app.
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

// cacheKey hashes the file content together with the layout options, so a
// config change invalidates every entry it affects.
func cacheKey(content []byte, opts format.Options) Digest {
	h := sha256.New()
	h.Write(content)
	var knobs [12]byte
	binary.LittleEndian.PutUint32(knobs[0:], uint32(opts.LineLimit))
	binary.LittleEndian.PutUint32(knobs[4:], uint32(opts.AlignColumn))
	binary.LittleEndian.PutUint32(knobs[8:], uint32(opts.IndentWidth))
	h.Write(knobs[:])
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "results", hex.EncodeToString(key[:])+".mp")
}

// Lookup reads the cached payload for key. Misses, decode failures, and
// schema mismatches all come back as a miss.
func (c *DiskCache) Lookup(key Digest) (Payload, bool) {
	if c == nil {
		return Payload{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return Payload{}, false
	}
	defer func() { _ = f.Close() }()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return Payload{}, false
	}
	if payload.Schema != cacheSchemaVersion {
		return Payload{}, false
	}
	return payload, true
}

// Store writes the outcome for key. Failures are swallowed: the cache is
// an accelerator, never a correctness dependency.
func (c *DiskCache) Store(key Digest, res format.Result) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := Payload{
		Schema:        cacheSchemaVersion,
		FormattedHash: sha256.Sum256(res.Output),
		Changed:       res.Changed,
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return
	}
	// Atomic replace.
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
	}
}

// DropAll invalidates the whole cache, useful after a schema bump.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
