package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"velvet-cone/models"
)

func menuPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "menu.txt")
}

func TestMenuStore_LoadRoundTrip(t *testing.T) {
	path := menuPath(t)
	want := []models.MenuEntry{
		{Flavor: "Vanilla Bean", Price: 150},
		{Flavor: "Chocolate Fudge", Price: 170},
		{Flavor: "Mango Sorbet", Price: 165.5},
	}
	if err := WriteMenuFile(path, want); err != nil {
		t.Fatalf("WriteMenuFile: %v", err)
	}

	s := NewMenuStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(s.Entries(), want) {
		t.Errorf("Entries() = %v, want %v", s.Entries(), want)
	}

	// save(load(file)) then load again yields the same mapping, in order
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again := NewMenuStore(path)
	if err := again.Load(); err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if !reflect.DeepEqual(again.Entries(), want) {
		t.Errorf("after round-trip Entries() = %v, want %v", again.Entries(), want)
	}

	// loading twice without intervening writes is idempotent
	if err := s.Load(); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !reflect.DeepEqual(s.Entries(), want) {
		t.Errorf("second Load Entries() = %v, want %v", s.Entries(), want)
	}
}

func TestMenuStore_LoadSkipsBadLines(t *testing.T) {
	path := menuPath(t)
	content := "Vanilla Bean - 150\n" +
		"\n" +
		"no separator here\n" +
		"Bad Price - abc\n" +
		"Chocolate Fudge - 170\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewMenuStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []models.MenuEntry{
		{Flavor: "Vanilla Bean", Price: 150},
		{Flavor: "Chocolate Fudge", Price: 170},
	}
	if !reflect.DeepEqual(s.Entries(), want) {
		t.Errorf("Entries() = %v, want %v", s.Entries(), want)
	}
}

func TestMenuStore_LoadFallback(t *testing.T) {
	fallback := []models.MenuEntry{{Flavor: "Vanilla", Price: 100}}

	// empty file: no error, fallback entry
	path := menuPath(t)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewMenuStore(path)
	if err := s.Load(); err != nil {
		t.Errorf("Load of empty file should not error, got %v", err)
	}
	if !reflect.DeepEqual(s.Entries(), fallback) {
		t.Errorf("Entries() = %v, want fallback %v", s.Entries(), fallback)
	}

	// missing file: error surfaced, fallback still applied
	s = NewMenuStore(filepath.Join(t.TempDir(), "missing.txt"))
	if err := s.Load(); err == nil {
		t.Error("Load of missing file should return an error")
	}
	if !reflect.DeepEqual(s.Entries(), fallback) {
		t.Errorf("Entries() = %v, want fallback %v", s.Entries(), fallback)
	}
}

func TestMenuStore_Add(t *testing.T) {
	path := menuPath(t)
	if err := WriteMenuFile(path, []models.MenuEntry{{Flavor: "Vanilla Bean", Price: 150}}); err != nil {
		t.Fatal(err)
	}
	s := NewMenuStore(path)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}

	if err := s.Add("Vanilla Bean", 99); !errors.Is(err, models.ErrDuplicateFlavor) {
		t.Errorf("Add duplicate = %v, want ErrDuplicateFlavor", err)
	}
	if err := s.Add("Tiramisu", 195); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// persisted to the file
	reloaded := NewMenuStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}
	if p, ok := reloaded.Price("Tiramisu"); !ok || p != 195 {
		t.Errorf("Price(Tiramisu) after reload = %v, %v; want 195, true", p, ok)
	}
}

func TestMenuStore_Update(t *testing.T) {
	newPrice := func(p float64) *float64 { return &p }

	tests := []struct {
		name       string
		oldFlavor  string
		newFlavor  string
		price      *float64
		wantErr    error
		wantFlavor string
		wantPrice  float64
	}{
		{"reprice only", "Vanilla Bean", "", newPrice(155), nil, "Vanilla Bean", 155},
		{"rename only", "Vanilla Bean", "French Vanilla", nil, nil, "French Vanilla", 150},
		{"rename and reprice", "Vanilla Bean", "French Vanilla", newPrice(160), nil, "French Vanilla", 160},
		{"unknown flavor", "Rocky Road", "", newPrice(1), models.ErrFlavorNotFound, "", 0},
		{"rename onto existing", "Vanilla Bean", "Chocolate Fudge", nil, models.ErrDuplicateFlavor, "", 0},
		{"rename onto itself", "Vanilla Bean", "Vanilla Bean", newPrice(140), nil, "Vanilla Bean", 140},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := menuPath(t)
			err := WriteMenuFile(path, []models.MenuEntry{
				{Flavor: "Vanilla Bean", Price: 150},
				{Flavor: "Chocolate Fudge", Price: 170},
			})
			if err != nil {
				t.Fatal(err)
			}
			s := NewMenuStore(path)
			if err := s.Load(); err != nil {
				t.Fatal(err)
			}

			err = s.Update(tt.oldFlavor, tt.newFlavor, tt.price)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if p, ok := s.Price(tt.wantFlavor); !ok || p != tt.wantPrice {
				t.Errorf("Price(%q) = %v, %v; want %v, true", tt.wantFlavor, p, ok, tt.wantPrice)
			}
			// the renamed entry keeps its position
			if s.First() != tt.wantFlavor {
				t.Errorf("First() = %q, want %q", s.First(), tt.wantFlavor)
			}
		})
	}
}
