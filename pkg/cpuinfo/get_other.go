//go:build !linux && !darwin && !windows

package cpuinfo

import (
	"context"
	"fmt"
	"runtime"
)

// Get is not implemented on this platform.
func Get(_ context.Context) (*Info, error) {
	return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
}
