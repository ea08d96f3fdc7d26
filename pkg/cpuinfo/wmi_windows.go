//go:build windows

package cpuinfo

import (
	"context"
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

// wmiSource queries the Win32_Processor class through WMI. The query
// itself carries no timeout; a wedged WMI service blocks until the
// process is interrupted.
type wmiSource struct{}

func (s *wmiSource) name() string { return "wmi" }

func (s *wmiSource) collect(_ context.Context) (*report, error) {
	var procs []win32Processor
	q := "SELECT Name, Manufacturer, Architecture, NumberOfCores, NumberOfLogicalProcessors, MaxClockSpeed, L2CacheSize, L3CacheSize FROM Win32_Processor"
	if err := wmi.Query(q, &procs); err != nil {
		return nil, fmt.Errorf("error querying Win32_Processor: %v", err)
	}
	if len(procs) == 0 {
		return nil, fmt.Errorf("Win32_Processor returned no instances")
	}
	return reportFromWin32(procs), nil
}

// Get queries the host for CPU information through WMI. The reported
// frequency is the maximum clock speed.
func Get(ctx context.Context) (*Info, error) {
	s := &wmiSource{}
	rep, err := s.collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return rep.finalize()
}
