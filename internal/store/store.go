// Package store persists the wishlist tree as a JSON document on disk.
//
// The on-disk layout is fixed by the legacy data file format:
//
//	{"categories": [{"name", "percent", "wishes": [{"name", "cost", "progress", "position"}]}]}
//
// Numeric cost/progress values may arrive as floats and are rounded to
// whole units on load. A missing position defaults to 0.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/wishsplit/internal/model"
)

// ErrNotFound is returned by Load when no data file exists yet.
var ErrNotFound = errors.New("wishlist data file not found")

// DataFileName is the wishlist document's file name inside the data dir.
const DataFileName = "wishlist_data.json"

type wishRecord struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Progress float64 `json:"progress"`
	Position int     `json:"position"`
}

type categoryRecord struct {
	Name    string       `json:"name"`
	Percent float64      `json:"percent"`
	Wishes  []wishRecord `json:"wishes"`
}

type document struct {
	Categories []categoryRecord `json:"categories"`
}

// Store reads and writes the wishlist document at a fixed path.
type Store struct {
	path string
}

// New creates a store for the data file inside dataDir.
func New(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, DataFileName)}
}

// Path returns the full path of the data file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the wishlist from disk. Returns ErrNotFound when the file does
// not exist; callers fall back to DefaultWishlist rather than failing.
func (s *Store) Load() (*model.Wishlist, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	wl := &model.Wishlist{}
	for _, cr := range doc.Categories {
		cat := model.NewCategory(cr.Name, cr.Percent)
		for _, wr := range cr.Wishes {
			w := model.NewWish(wr.Name, wr.Cost, wr.Progress)
			w.Position = wr.Position
			cat.Wishes = append(cat.Wishes, w)
		}
		// Store in position order so display order is stable from the start.
		cat.Wishes = cat.SortedWishes()
		wl.Categories = append(wl.Categories, cat)
	}
	return wl, nil
}

// Save writes the wishlist to disk via a temp file and rename, creating the
// data directory if needed. Callers treat failures as best-effort.
func (s *Store) Save(wl *model.Wishlist) error {
	doc := document{Categories: []categoryRecord{}}
	for _, c := range wl.Categories {
		cr := categoryRecord{Name: c.Name, Percent: c.Percent, Wishes: []wishRecord{}}
		for _, w := range c.Wishes {
			cr.Wishes = append(cr.Wishes, wishRecord{
				Name:     w.Name,
				Cost:     float64(w.Cost),
				Progress: float64(w.Progress),
				Position: w.Position,
			})
		}
		doc.Categories = append(doc.Categories, cr)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding wishlist: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}

// DefaultWishlist returns the built-in starter dataset used when no data
// file exists or the existing one cannot be read.
func DefaultWishlist() *model.Wishlist {
	wl := &model.Wishlist{}

	electronics := wl.AddCategory("Electronics", 40)
	laptop := model.NewWish("Laptop", 15000, 3000)
	electronics.AddWish(laptop)
	phone := model.NewWish("Phone", 10000, 0)
	electronics.AddWish(phone)

	clothes := wl.AddCategory("Clothes", 60)
	jacket := model.NewWish("Jacket", 8000, 0)
	clothes.AddWish(jacket)
	sneakers := model.NewWish("Sneakers", 5000, 0)
	clothes.AddWish(sneakers)

	return wl
}

// LoadOrDefault loads the wishlist, falling back to the default dataset on
// any failure. A corrupt file is reported on stderr but never fatal.
func (s *Store) LoadOrDefault() *model.Wishlist {
	wl, err := s.Load()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			fmt.Fprintf(os.Stderr, "  Could not load wishlist (%v), starting from defaults\n", err)
		}
		return DefaultWishlist()
	}
	return wl
}
