// internal/species/cache.go
package species

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"keggblast/internal/kegg"
)

// Record is one cached organism.
type Record struct {
	TaxID  string
	Code   string
	Latin  string
	Common string
}

// Config locates the cache files and sets the refresh policy. Callers own
// the paths; nothing in this package reads globals.
type Config struct {
	CacheFile string
	MetaFile  string
	MaxAge    time.Duration
}

const (
	DefaultCacheName = "species_cache.csv"
	DefaultMetaName  = "species_cache_meta.txt"
	DefaultMaxAge    = 7 * 24 * time.Hour

	dateLayout = "2006-01-02"
)

// DefaultConfig places the cache files under dir with the 7-day window.
func DefaultConfig(dir string) Config {
	return Config{
		CacheFile: filepath.Join(dir, DefaultCacheName),
		MetaFile:  filepath.Join(dir, DefaultMetaName),
		MaxAge:    DefaultMaxAge,
	}
}

// Lister is the slice of the KEGG client the cache needs.
type Lister interface {
	ListOrganisms(ctx context.Context) ([]kegg.Organism, error)
}

// Cache loads and refreshes the on-disk organism table: a CSV of records
// plus a sidecar holding the date of the last refresh.
type Cache struct {
	cfg    Config
	lister Lister
	now    func() time.Time
}

func NewCache(cfg Config, lister Lister) *Cache {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	return &Cache{cfg: cfg, lister: lister, now: time.Now}
}

// IsStale reports whether the cache must be refreshed before use: either
// file missing or unreadable, or the recorded date older than MaxAge. Ages
// are compared at day granularity (the sidecar stores a date), so a cache
// exactly MaxAge old is still fresh.
func (c *Cache) IsStale() bool {
	if _, err := os.Stat(c.cfg.CacheFile); err != nil {
		return true
	}
	raw, err := os.ReadFile(c.cfg.MetaFile)
	if err != nil {
		return true
	}
	last, err := time.Parse(dateLayout, strings.TrimSpace(string(raw)))
	if err != nil {
		return true
	}
	today, err := time.Parse(dateLayout, c.now().Format(dateLayout))
	if err != nil {
		return true
	}
	return today.Sub(last) > c.cfg.MaxAge
}

// Refresh replaces the cache with a freshly downloaded organism table and
// stamps the sidecar with today's date. Both files land via temp-file
// renames, table first, so a reader never observes a torn table and a crash
// between the two renames leaves the date stale rather than wrong.
func (c *Cache) Refresh(ctx context.Context) ([]Record, error) {
	orgs, err := c.lister.ListOrganisms(ctx)
	if err != nil {
		return nil, &CacheRefreshError{Err: err}
	}
	recs := make([]Record, 0, len(orgs))
	for _, o := range orgs {
		recs = append(recs, Record{TaxID: o.TaxID, Code: o.Code, Latin: o.Latin, Common: o.Common})
	}
	if err := c.write(recs); err != nil {
		return nil, &CacheRefreshError{Err: err}
	}
	return recs, nil
}

// Load returns the cached records, refreshing first when stale. A cache
// that is fresh by date but unreadable counts as missing and triggers one
// refresh; if that also fails the CacheRefreshError surfaces.
func (c *Cache) Load(ctx context.Context) ([]Record, error) {
	if c.IsStale() {
		return c.Refresh(ctx)
	}
	recs, err := c.read()
	if err != nil {
		return c.Refresh(ctx)
	}
	return recs, nil
}

// LoadStale reads whatever the files currently hold without refreshing.
// Explicit opt-in for offline runs.
func (c *Cache) LoadStale() ([]Record, error) {
	recs, err := c.read()
	if err != nil {
		return nil, &CacheRefreshError{Err: err}
	}
	return recs, nil
}

func (c *Cache) write(recs []Record) error {
	if dir := filepath.Dir(c.cfg.CacheFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{{"Taxonomy ID", "Species ID", "Species Name", "Common Name"}}
	for _, r := range recs {
		rows = append(rows, []string{r.TaxID, r.Code, r.Latin, r.Common})
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	if err := atomicWrite(c.cfg.CacheFile, buf.Bytes()); err != nil {
		return err
	}
	return atomicWrite(c.cfg.MetaFile, []byte(c.now().Format(dateLayout)+"\n"))
}

func (c *Cache) read() ([]Record, error) {
	f, err := os.Open(c.cfg.CacheFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("cache %s has no records", c.cfg.CacheFile)
	}
	recs := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("cache %s row %d: want 4 fields, got %d", c.cfg.CacheFile, i+2, len(row))
		}
		recs = append(recs, Record{TaxID: row[0], Code: row[1], Latin: row[2], Common: row[3]})
	}
	return recs, nil
}

// atomicWrite lands data at path through a temp file in the destination
// directory, so concurrent readers see either the old file or the new one.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
