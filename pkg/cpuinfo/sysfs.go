package cpuinfo

import (
	"context"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

const sysfsCPURoot = "/sys/devices/system/cpu"

// sysfsSource reads the structured small-file tree the kernel exposes
// under /sys/devices/system/cpu: the per-cache index directories of
// cpu0 and the cpufreq scaling limits. It is the preferred source for
// cache sizes and the maximum frequency.
type sysfsSource struct {
	fsys fs.FS
}

func newSysfsSource(fsys fs.FS) *sysfsSource {
	return &sysfsSource{fsys: fsys}
}

func (s *sysfsSource) name() string { return "sysfs" }

func (s *sysfsSource) collect(_ context.Context) (*report, error) {
	rep := newReport()

	found := s.collectCaches(rep)
	if s.collectFrequency(rep) {
		found = true
	}
	if !found {
		return nil, fmt.Errorf("no cache or cpufreq entries under sysfs cpu tree")
	}
	return rep, nil
}

// collectCaches walks cpu0/cache/index*/ and records one per-unit size
// per (level, type). Each index directory describes one cache instance
// as three single-value files; a missing or malformed file skips that
// index only.
func (s *sysfsSource) collectCaches(rep *report) bool {
	entries, err := fs.ReadDir(s.fsys, "cpu0/cache")
	if err != nil {
		return false
	}

	found := false
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "index") {
			continue
		}
		dir := "cpu0/cache/" + entry.Name()

		levelStr, err := readTrimmed(s.fsys, dir+"/level")
		if err != nil {
			continue
		}
		typeStr, err := readTrimmed(s.fsys, dir+"/type")
		if err != nil {
			continue
		}
		sizeStr, err := readTrimmed(s.fsys, dir+"/size")
		if err != nil {
			continue
		}

		level, err := strconv.ParseUint(levelStr, 10, 32)
		if err != nil {
			continue
		}
		cacheType, ok := sysfsCacheType(typeStr)
		if !ok {
			continue
		}
		kb, ok := parseCacheKB(sizeStr)
		if !ok {
			continue
		}

		key := CacheKey{Level: uint32(level), Type: cacheType}
		if existing, ok := rep.caches[key]; !ok || kb > existing.perUnitKB {
			rep.caches[key] = cacheReading{perUnitKB: kb}
		}
		found = true
	}
	return found
}

// collectFrequency reads the cpufreq limits of cpu0, in kHz. The
// rated maximum is preferred; some Intel systems additionally expose
// base_frequency, used as a fallback.
func (s *sysfsSource) collectFrequency(rep *report) bool {
	for _, name := range []string{"cpu0/cpufreq/cpuinfo_max_freq", "cpu0/cpufreq/base_frequency"} {
		value, err := readTrimmed(s.fsys, name)
		if err != nil {
			continue
		}
		khz, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			continue
		}
		ghz := float64(khz) / 1e6
		rep.freqGHz = &ghz
		return true
	}
	return false
}

func sysfsCacheType(s string) (CacheType, bool) {
	switch s {
	case "Instruction":
		return CacheInstruction, true
	case "Data":
		return CacheData, true
	case "Unified":
		return CacheUnified, true
	default:
		return "", false
	}
}

func readTrimmed(fsys fs.FS, name string) (string, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}
