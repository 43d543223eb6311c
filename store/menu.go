package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"velvet-cone/models"
)

// MenuStore is the flavor-to-price mapping backed by a line-oriented text
// file, one "<flavor> - <price>" per line. Every mutation is written back
// to the file before it returns.
type MenuStore struct {
	path    string
	entries []models.MenuEntry
}

func NewMenuStore(path string) *MenuStore {
	return &MenuStore{path: path}
}

// Load reads the menu file. Lines whose price does not parse are skipped.
// If nothing usable is found the store falls back to a single default
// entry so the order form always has something to sell. A read failure is
// returned to the caller after the fallback is applied.
func (s *MenuStore) Load() error {
	s.entries = nil

	f, err := os.Open(s.path)
	if err != nil {
		s.fallback()
		return fmt.Errorf("open menu file %s: %w", s.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		idx := strings.Index(line, "-")
		if idx < 0 {
			continue
		}
		flavor := strings.TrimSpace(line[:idx])
		price, err := strconv.ParseFloat(strings.TrimSpace(line[idx+1:]), 64)
		if err != nil || flavor == "" {
			continue
		}
		if _, ok := s.Price(flavor); ok {
			continue // first occurrence wins
		}
		s.entries = append(s.entries, models.MenuEntry{Flavor: flavor, Price: price})
	}
	if err := scanner.Err(); err != nil {
		s.fallback()
		return fmt.Errorf("read menu file %s: %w", s.path, err)
	}
	if len(s.entries) == 0 {
		s.fallback()
	}
	return nil
}

func (s *MenuStore) fallback() {
	s.entries = []models.MenuEntry{{Flavor: "Vanilla", Price: 100.0}}
}

// Save rewrites the menu file, one entry per line, in store order.
func (s *MenuStore) Save() error {
	return WriteMenuFile(s.path, s.entries)
}

// WriteMenuFile writes entries as "<flavor> - <price>" lines to path,
// replacing whatever was there.
func WriteMenuFile(path string, entries []models.MenuEntry) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s - %s\n", e.Flavor, strconv.FormatFloat(e.Price, 'f', -1, 64))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write menu file %s: %w", path, err)
	}
	return nil
}

// Add inserts a new flavor and persists the menu.
func (s *MenuStore) Add(flavor string, price float64) error {
	if _, ok := s.Price(flavor); ok {
		return models.ErrDuplicateFlavor
	}
	s.entries = append(s.entries, models.MenuEntry{Flavor: flavor, Price: price})
	if err := s.Save(); err != nil {
		return err
	}
	return nil
}

// Update renames and/or reprices an existing flavor. A blank newFlavor
// keeps the current name; a nil newPrice keeps the current price.
func (s *MenuStore) Update(oldFlavor, newFlavor string, newPrice *float64) error {
	i := s.index(oldFlavor)
	if i < 0 {
		return models.ErrFlavorNotFound
	}
	if newFlavor == "" {
		newFlavor = oldFlavor
	}
	if newFlavor != oldFlavor {
		if _, ok := s.Price(newFlavor); ok {
			return models.ErrDuplicateFlavor
		}
	}
	s.entries[i].Flavor = newFlavor
	if newPrice != nil {
		s.entries[i].Price = *newPrice
	}
	return s.Save()
}

func (s *MenuStore) index(flavor string) int {
	for i, e := range s.entries {
		if e.Flavor == flavor {
			return i
		}
	}
	return -1
}

// Price returns the unit price for a flavor and whether it is on the menu.
func (s *MenuStore) Price(flavor string) (float64, bool) {
	if i := s.index(flavor); i >= 0 {
		return s.entries[i].Price, true
	}
	return 0, false
}

// PriceMap returns a copy of the mapping for the pricing rule.
func (s *MenuStore) PriceMap() map[string]float64 {
	m := make(map[string]float64, len(s.entries))
	for _, e := range s.entries {
		m[e.Flavor] = e.Price
	}
	return m
}

// Entries returns the menu in display order.
func (s *MenuStore) Entries() []models.MenuEntry {
	out := make([]models.MenuEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Flavors returns the flavor names in display order.
func (s *MenuStore) Flavors() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Flavor
	}
	return out
}

// First returns the first flavor on the menu (the form default).
func (s *MenuStore) First() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[0].Flavor
}
