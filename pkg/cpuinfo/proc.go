package cpuinfo

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const procCpuinfoPath = "/proc/cpuinfo"

// procSource reads the per-logical-processor attribute blocks from
// /proc/cpuinfo. It is the legacy free-text source on Linux; the sysfs
// tree takes precedence for the fields both can supply.
type procSource struct {
	path string
}

func newProcSource() *procSource {
	return &procSource{path: procCpuinfoPath}
}

func (s *procSource) name() string { return "proc" }

func (s *procSource) collect(_ context.Context) (*report, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", s.path, err)
	}
	return parseProcCpuinfo(string(raw)), nil
}

// parseProcCpuinfo extracts candidate values from /proc/cpuinfo
// content. The input is organized as one "key : value" block per
// logical processor; a "processor" line starts a new block. Individual
// fields fail independently: a malformed value leaves that field
// absent and parsing continues.
func parseProcCpuinfo(raw string) *report {
	rep := newReport()

	var (
		units    uint32
		pairs    = make(map[coreIdentity]struct{})
		packages = make(map[int64]struct{})
		siblings uint32
		maxMHz   float64
		haveMHz  bool
		cacheKB  uint64
		curPkg   *int64
		curCore  *int64
	)

	// Record the identity pair of the block scanned so far. Blocks
	// missing the core id still contribute their package id.
	flush := func() {
		switch {
		case curPkg != nil && curCore != nil:
			pairs[coreIdentity{pkg: *curPkg, core: *curCore}] = struct{}{}
		case curPkg != nil:
			packages[*curPkg] = struct{}{}
		}
		curPkg, curCore = nil, nil
	}

	for _, line := range strings.Split(raw, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			flush()
			units++
		case "model name":
			if rep.modelName == "" {
				rep.modelName = value
			}
		case "vendor_id":
			if rep.vendorID == "" {
				rep.vendorID = value
			}
		case "CPU implementer":
			if rep.vendorID == "" {
				if vendor, ok := armImplementers[strings.ToLower(value)]; ok {
					rep.vendorID = vendor
				}
			}
		case "physical id":
			if id, err := strconv.ParseInt(value, 10, 64); err == nil {
				curPkg = &id
			}
		case "core id":
			if id, err := strconv.ParseInt(value, 10, 64); err == nil {
				curCore = &id
			}
		case "siblings":
			if siblings == 0 {
				if n, err := strconv.ParseUint(value, 10, 32); err == nil {
					siblings = uint32(n)
				}
			}
		case "cpu MHz":
			if mhz, err := strconv.ParseFloat(value, 64); err == nil {
				if !haveMHz || mhz > maxMHz {
					maxMHz = mhz
				}
				haveMHz = true
			}
		case "cache size":
			// Usually the per-core L2 size, e.g. "1024 KB".
			if kb, ok := parseCacheKB(value); ok && kb > cacheKB {
				cacheKB = kb
			}
		case "flags", "Features":
			if len(rep.flags) == 0 {
				rep.flags = strings.Fields(value)
			}
		}
	}
	flush()

	// Distinct (package, core) pairs are the physical core count.
	// With only package ids we assume one core per package, which is
	// an approximation. Otherwise the count stays unknown and the
	// normalizer falls back to 1.
	switch {
	case len(pairs) > 0:
		rep.physicalCores = uint32(len(pairs))
	case len(packages) > 0:
		rep.physicalCores = uint32(len(packages))
	}

	// A self-reported thread count is more reliable than enumerating
	// blocks, so "siblings" wins when present.
	if siblings > 0 {
		rep.logicalCores = siblings
	} else {
		rep.logicalCores = units
	}

	if haveMHz {
		ghz := maxMHz / 1000
		rep.freqGHz = &ghz
	}
	if cacheKB > 0 {
		rep.caches[CacheKey{Level: 2, Type: CacheUnified}] = cacheReading{perUnitKB: cacheKB}
	}

	return rep
}
