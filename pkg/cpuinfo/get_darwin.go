//go:build darwin

package cpuinfo

import (
	"context"
	"fmt"
)

// Get queries the host for CPU information via the sysctl property
// store. The reported frequency, where available, is the rated
// maximum.
func Get(ctx context.Context) (*Info, error) {
	s := newSysctlSource()
	rep, err := s.collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return rep.finalize()
}
