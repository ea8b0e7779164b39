package finder

import (
	"fmt"
	"os/exec"
	"runtime"

	"jdex/internal/ports"
)

// Opener implements ports.Opener by revealing folders in the platform
// file manager
type Opener struct{}

var _ ports.Opener = (*Opener)(nil)

// New creates a file manager opener
func New() *Opener {
	return &Opener{}
}

// Open reveals a folder in the file manager
func (o *Opener) Open(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
