package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sword-picker/internal/api"
	"sword-picker/internal/versions"
)

const catalogFile = "catalog.json"

// ErrNotCached is returned when no catalog has been stored yet.
var ErrNotCached = errors.New("catalog not cached")

type Cache struct {
	cacheDir string
}

func NewCache() (*Cache, error) {
	// Get user's cache directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewCacheAt(filepath.Join(homeDir, ".cache", "sword-picker"))
}

// NewCacheAt uses dir as the cache directory, creating it if needed.
func NewCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Cache{cacheDir: dir}, nil
}

func (c *Cache) path() string {
	return filepath.Join(c.cacheDir, catalogFile)
}

// IsCached checks if a catalog is already stored
func (c *Cache) IsCached() bool {
	_, err := os.Stat(c.path())
	return err == nil
}

// Age returns how long ago the catalog was stored.
func (c *Cache) Age() (time.Duration, error) {
	info, err := os.Stat(c.path())
	if errors.Is(err, os.ErrNotExist) {
		return 0, ErrNotCached
	}
	if err != nil {
		return 0, err
	}
	return time.Since(info.ModTime()), nil
}

// StoreCatalog writes the catalog, replacing any earlier copy.
func (c *Cache) StoreCatalog(catalog *versions.Catalog) error {
	data, err := json.Marshal(catalog)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(c.cacheDir, catalogFile+"*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmpFile.Name(), c.path())
}

// LoadCatalog reads the stored catalog.
func (c *Cache) LoadCatalog() (*versions.Catalog, error) {
	if !c.IsCached() {
		return nil, ErrNotCached
	}
	return api.ReadCatalogFile(c.path())
}

// Clear removes the stored catalog
func (c *Cache) Clear() error {
	err := os.Remove(c.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
