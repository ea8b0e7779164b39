package ports

import "jdex/internal/domain"

// VaultRepository reads and extends the on-disk folder hierarchy.
// Scan is the sole producer of replacement index snapshots.
type VaultRepository interface {
	// Scan walks the root and rebuilds the full hierarchy from folder
	// names. Per-subtree problems land in the report, not the error.
	Scan() (*domain.Index, *domain.ScanReport, error)

	// CreateFolder creates one directory at a fully resolved path
	CreateFolder(path string) error

	// Root returns the configured hierarchy root
	Root() string
}
