package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/wishsplit/internal/model"
)

func writeDataFile(t *testing.T, content string) *Store {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, DataFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return New(dir)
}

func TestStore_RoundTrip(t *testing.T) {
	st := New(t.TempDir())

	wl := &model.Wishlist{}
	c := wl.AddCategory("Electronics", 40)
	c.AddWish(model.NewWish("Laptop", 15000, 3000))
	c.AddWish(model.NewWish("Phone", 10000, 0))

	if err := st.Save(wl); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(loaded.Categories) != 1 {
		t.Fatalf("categories = %d, want 1", len(loaded.Categories))
	}
	lc := loaded.Categories[0]
	if lc.Name != "Electronics" || lc.Percent != 40 {
		t.Errorf("category = %s/%v, want Electronics/40", lc.Name, lc.Percent)
	}
	if len(lc.Wishes) != 2 {
		t.Fatalf("wishes = %d, want 2", len(lc.Wishes))
	}
	w := lc.Wishes[0]
	if w.Name != "Laptop" || w.Cost != 15000 || w.Progress != 3000 || w.Position != 0 {
		t.Errorf("wish = %+v, want Laptop 15000/3000 pos 0", w)
	}
	if w.PreviewProgress != w.Progress {
		t.Errorf("loaded preview = %d, want %d (idle)", w.PreviewProgress, w.Progress)
	}
}

func TestStore_LoadRoundsFloatAmounts(t *testing.T) {
	st := writeDataFile(t, `{
		"categories": [
			{"name": "Misc", "percent": 12.5, "wishes": [
				{"name": "Lamp", "cost": 99.5, "progress": 10.2, "position": 0}
			]}
		]
	}`)

	wl, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	w := wl.Categories[0].Wishes[0]
	if w.Cost != 100 {
		t.Errorf("Cost = %d, want 100 (rounded)", w.Cost)
	}
	if w.Progress != 10 {
		t.Errorf("Progress = %d, want 10 (rounded)", w.Progress)
	}
	if wl.Categories[0].Percent != 12.5 {
		t.Errorf("Percent = %v, want 12.5 (kept fractional)", wl.Categories[0].Percent)
	}
}

func TestStore_LoadSortsByPositionAndDefaultsMissing(t *testing.T) {
	// "First" has no position field and must default to 0, sorting ahead of
	// "Second" despite appearing later in the file.
	st := writeDataFile(t, `{
		"categories": [
			{"name": "Queue", "percent": 100, "wishes": [
				{"name": "Second", "cost": 100, "progress": 0, "position": 1},
				{"name": "First", "cost": 100, "progress": 0}
			]}
		]
	}`)

	wl, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wishes := wl.Categories[0].Wishes
	if wishes[0].Name != "First" || wishes[1].Name != "Second" {
		t.Errorf("order = %s,%s, want First,Second", wishes[0].Name, wishes[1].Name)
	}
	if wishes[0].Position != 0 {
		t.Errorf("missing position = %d, want 0", wishes[0].Position)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestStore_LoadOrDefault_CorruptFile(t *testing.T) {
	st := writeDataFile(t, `{"categories": [broken`)

	wl := st.LoadOrDefault()
	if len(wl.Categories) != 2 {
		t.Fatalf("categories = %d, want 2 (default dataset)", len(wl.Categories))
	}
}

func TestStore_SaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "wishlist")
	st := New(dir)

	if err := st.Save(DefaultWishlist()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, DataFileName)); err != nil {
		t.Fatalf("data file not written: %v", err)
	}
}

func TestDefaultWishlist(t *testing.T) {
	wl := DefaultWishlist()

	if len(wl.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(wl.Categories))
	}
	electronics := wl.Categories[0]
	if electronics.Name != "Electronics" || electronics.Percent != 40 {
		t.Errorf("first category = %s/%v, want Electronics/40", electronics.Name, electronics.Percent)
	}
	laptop := electronics.Wishes[0]
	if laptop.Name != "Laptop" || laptop.Cost != 15000 || laptop.Progress != 3000 {
		t.Errorf("laptop = %+v, want 15000/3000", laptop)
	}
	clothes := wl.Categories[1]
	if clothes.Name != "Clothes" || clothes.Percent != 60 {
		t.Errorf("second category = %s/%v, want Clothes/60", clothes.Name, clothes.Percent)
	}
	var wishCount int
	for _, c := range wl.Categories {
		wishCount += len(c.Wishes)
	}
	if wishCount != 4 {
		t.Errorf("sample wishes = %d, want 4", wishCount)
	}
}
