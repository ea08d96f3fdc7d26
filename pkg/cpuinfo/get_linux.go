//go:build linux

package cpuinfo

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Get queries the host for CPU information. On Linux three sources
// are merged in precedence order: the sysfs tree, then /proc/cpuinfo,
// then the lscpu report. A lower-precedence source only fills fields
// the earlier ones left absent. Individual source failures are
// tolerated as long as at least one source could be read.
func Get(ctx context.Context) (*Info, error) {
	sources := []source{
		newSysfsSource(os.DirFS(sysfsCPURoot)),
		newProcSource(),
		newLscpuSource(),
	}

	merged := newReport()
	collected := false
	var firstErr error
	for _, s := range sources {
		rep, err := s.collect(ctx)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %v", s.name(), err)
			}
			continue
		}
		merged.fillFrom(rep)
		collected = true
	}
	if !collected {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, firstErr)
	}

	if merged.architecture == "" {
		if machine, err := unameMachine(); err == nil {
			merged.architecture = machine
		}
	}

	return merged.finalize()
}

func unameMachine() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("error calling uname: %v", err)
	}
	return unix.ByteSliceToString(uts.Machine[:]), nil
}
