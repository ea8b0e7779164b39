package clipboard

import (
	"github.com/atotto/clipboard"

	"jdex/internal/ports"
)

// Copier implements ports.Copier using the system clipboard
type Copier struct{}

var _ ports.Copier = (*Copier)(nil)

// New creates a clipboard copier
func New() *Copier {
	return &Copier{}
}

// Copy places text on the clipboard
func (c *Copier) Copy(text string) error {
	return clipboard.WriteAll(text)
}
