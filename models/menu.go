package models

import "errors"

// MenuEntry is one flavor on the menu. Entries keep their insertion order
// for display; flavor names are unique.
type MenuEntry struct {
	Flavor string
	Price  float64
}

var (
	ErrDuplicateFlavor = errors.New("flavor already exists")
	ErrFlavorNotFound  = errors.New("flavor not found")
)
