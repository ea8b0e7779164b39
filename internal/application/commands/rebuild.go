package commands

import (
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// RebuildCommand scans the root and replaces the persisted index.
// The scanner is the sole writer of the index; any previous content is
// overwritten unconditionally.
type RebuildCommand struct {
	repo  ports.VaultRepository
	store ports.IndexStore
}

// NewRebuildCommand creates a new RebuildCommand
func NewRebuildCommand(repo ports.VaultRepository, store ports.IndexStore) *RebuildCommand {
	return &RebuildCommand{repo: repo, store: store}
}

// Execute performs the full rebuild and returns the scan report
func (c *RebuildCommand) Execute() (*domain.ScanReport, error) {
	index, report, err := c.repo.Scan()
	if err != nil {
		return nil, err
	}
	if err := c.store.Save(index); err != nil {
		return nil, err
	}
	return report, nil
}
