// Package messages resolves player-facing text from a gettext catalogue.
package messages

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/default.po
var defaultCatalogue []byte

var (
	mu sync.RWMutex
	po *gotext.Po
)

func init() {
	Load(defaultCatalogue)
}

// Load replaces the active catalogue with the given .po document
func Load(data []byte) {
	p := gotext.NewPo()
	p.Parse(data)

	mu.Lock()
	po = p
	mu.Unlock()
}

// Reset restores the built-in catalogue
func Reset() {
	Load(defaultCatalogue)
}

// Get returns the text for key, formatted with vars when given. Unknown
// keys come back unchanged.
func Get(key string, vars ...any) string {
	mu.RLock()
	p := po
	mu.RUnlock()

	s := p.Get(key)
	if len(vars) > 0 {
		s = fmt.Sprintf(s, vars...)
	}
	return s
}
