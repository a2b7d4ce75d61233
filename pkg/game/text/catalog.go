// Package text resolves the catalog keys used throughout the game into display strings.
package text

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en.po
var englishPo []byte

// Catalog maps catalog keys to display text. Unknown keys come back unchanged.
type Catalog struct {
	po *gotext.Po

	// get is held in a variable so vet does not treat dynamic keys as format strings
	get func(str string, vars ...interface{}) string
}

// English returns the built-in English catalog
func English() *Catalog {
	return Parse(englishPo)
}

// Parse builds a catalog from the contents of a .po file
func Parse(buf []byte) *Catalog {
	po := gotext.NewPo()
	po.Parse(buf)
	return &Catalog{po: po, get: po.Get}
}

// Get returns the text for key
func (c *Catalog) Get(key string) string {
	if c == nil || key == "" {
		return key
	}
	return c.get(key)
}

// Has reports whether the catalog carries a translation for key
func (c *Catalog) Has(key string) bool {
	return c.Get(key) != key
}
