package cpuinfo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// lscpuSource runs the lscpu inventory command and parses its tabular
// "Label: value" report. It is the lowest-precedence Linux source,
// used to fill fields the sysfs tree and /proc/cpuinfo did not supply
// (notably the byte order, and topology on ARM systems whose
// /proc/cpuinfo carries no identity fields).
type lscpuSource struct{}

func newLscpuSource() *lscpuSource { return &lscpuSource{} }

func (s *lscpuSource) name() string { return "lscpu" }

func (s *lscpuSource) collect(ctx context.Context) (*report, error) {
	cmd := exec.CommandContext(ctx, "lscpu")
	// Stable English labels regardless of the user's locale.
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("error running lscpu: %v", err)
	}
	return parseLscpu(string(out)), nil
}

// parseLscpu extracts candidate values from lscpu output. Unknown
// labels are ignored; a malformed value leaves that field absent.
func parseLscpu(raw string) *report {
	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if _, ok := fields[key]; !ok && key != "" {
			fields[key] = value
		}
	}

	rep := newReport()
	rep.modelName = fields["Model name"]
	rep.vendorID = fields["Vendor ID"]
	rep.architecture = fields["Architecture"]

	switch fields["Byte Order"] {
	case "Little Endian":
		rep.byteOrder = LittleEndian
	case "Big Endian":
		rep.byteOrder = BigEndian
	}

	if n, err := strconv.ParseUint(fields["CPU(s)"], 10, 32); err == nil {
		rep.logicalCores = uint32(n)
	}
	// lscpu reports topology as counts per level, so the physical core
	// count is cores per socket times sockets.
	coresPerSocket, err1 := strconv.ParseUint(fields["Core(s) per socket"], 10, 32)
	sockets, err2 := strconv.ParseUint(fields["Socket(s)"], 10, 32)
	if err1 == nil && err2 == nil {
		rep.physicalCores = uint32(coresPerSocket * sockets)
	}

	if mhz, err := strconv.ParseFloat(fields["CPU max MHz"], 64); err == nil {
		ghz := mhz / 1000
		rep.freqGHz = &ghz
	}

	for label, key := range map[string]CacheKey{
		"L1d cache": {Level: 1, Type: CacheData},
		"L1i cache": {Level: 1, Type: CacheInstruction},
		"L2 cache":  {Level: 2, Type: CacheUnified},
		"L3 cache":  {Level: 3, Type: CacheUnified},
	} {
		if kb, ok := parseCacheKB(fields[label]); ok {
			// Modern lscpu reports each level as a sum over all
			// instances, so the value is recorded as a total rather
			// than a per-core size.
			rep.caches[key] = cacheReading{perUnitKB: kb, totalKB: kb, hasTotal: true}
		}
	}

	if flags := fields["Flags"]; flags != "" {
		rep.flags = strings.Fields(flags)
	}

	return rep
}
