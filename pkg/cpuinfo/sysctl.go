package cpuinfo

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// sysctlRunner queries one key from the structured system property
// store, returning its value as trimmed text. Swapped for a canned map
// in tests.
type sysctlRunner func(ctx context.Context, key string) (string, error)

// sysctlSource reads CPU information from the macOS sysctl property
// store, one `sysctl -n <key>` invocation per key, plus `uname -m`
// for the machine architecture. Each spawn inherits the caller's
// context, so a hung command fails the key with the context error
// instead of blocking forever.
type sysctlSource struct {
	query     sysctlRunner
	queryTree func(ctx context.Context, prefix string) (string, error)
	uname     func(ctx context.Context) (string, error)
}

func newSysctlSource() *sysctlSource {
	return &sysctlSource{
		query:     runSysctl,
		queryTree: runSysctlTree,
		uname:     runUnameMachine,
	}
}

func runSysctl(ctx context.Context, key string) (string, error) {
	out, err := exec.CommandContext(ctx, "sysctl", "-n", key).Output()
	if err != nil {
		return "", fmt.Errorf("error querying sysctl %s: %v", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// runSysctlTree lists every key under a prefix, one "key: value" line
// per entry.
func runSysctlTree(ctx context.Context, prefix string) (string, error) {
	out, err := exec.CommandContext(ctx, "sysctl", prefix).Output()
	if err != nil {
		return "", fmt.Errorf("error querying sysctl tree %s: %v", prefix, err)
	}
	return string(out), nil
}

func runUnameMachine(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "uname", "-m").Output()
	if err != nil {
		return "", fmt.Errorf("error running uname: %v", err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (s *sysctlSource) name() string { return "sysctl" }

func (s *sysctlSource) collect(ctx context.Context) (*report, error) {
	rep := newReport()
	hits := 0

	str := func(keys ...string) string {
		for _, key := range keys {
			if v, err := s.query(ctx, key); err == nil && v != "" {
				return v
			}
		}
		return ""
	}
	num := func(keys ...string) (uint64, bool) {
		for _, key := range keys {
			v, err := s.query(ctx, key)
			if err != nil {
				continue
			}
			if n, err := strconv.ParseUint(v, 10, 64); err == nil {
				return n, true
			}
		}
		return 0, false
	}

	if rep.modelName = str("machdep.cpu.brand_string"); rep.modelName != "" {
		hits++
	}
	if rep.vendorID = str("machdep.cpu.vendor"); rep.vendorID != "" {
		hits++
	}

	switch str("hw.byteorder") {
	case "1234":
		rep.byteOrder = LittleEndian
		hits++
	case "4321":
		rep.byteOrder = BigEndian
		hits++
	}

	// Self-reported counts; no per-unit enumeration is available here.
	if n, ok := num("machdep.cpu.core_count", "hw.physicalcpu"); ok && n > 0 {
		rep.physicalCores = uint32(n)
		hits++
	}
	if n, ok := num("machdep.cpu.thread_count", "hw.logicalcpu"); ok && n > 0 {
		rep.logicalCores = uint32(n)
		hits++
	}

	// Rated maximum in Hz. Apple Silicon does not expose it; the
	// frequency then stays unknown.
	if hz, ok := num("hw.cpufrequency_max", "hw.cpufrequency"); ok && hz > 0 {
		ghz := float64(hz) / 1e9
		rep.freqGHz = &ghz
		hits++
	}

	hits += s.collectCaches(ctx, rep, num)

	rep.flags = s.collectFlags(ctx)
	if len(rep.flags) > 0 {
		hits++
	}

	if arch, err := s.uname(ctx); err == nil {
		rep.architecture = arch
	}

	if hits == 0 {
		return nil, fmt.Errorf("no sysctl keys could be queried")
	}
	return rep, nil
}

// collectCaches records cache sizes, which sysctl reports in bytes.
// The level 1 keys describe one core each and are left for the core
// multiplication. L2 and L3 need more care: hw.cachesize lists the
// size of a single cache per level while hw.cacheconfig lists how many
// logical processors share it, so the machine total is the listed size
// times the number of such caches. Apple Silicon keeps its L2 per
// performance-level cluster under hw.perflevel*.l2cachesize, and the
// plain hw.l2cachesize key names only one cluster's cache there, so
// neither may ever be scaled by the core count. Returns the number of
// readings recorded.
func (s *sysctlSource) collectCaches(ctx context.Context, rep *report, num func(keys ...string) (uint64, bool)) int {
	recorded := 0

	if b, ok := num("hw.l1icachesize"); ok && b > 0 {
		rep.caches[CacheKey{Level: 1, Type: CacheInstruction}] = cacheReading{perUnitKB: b / 1024}
		recorded++
	}
	if b, ok := num("hw.l1dcachesize"); ok && b > 0 {
		rep.caches[CacheKey{Level: 1, Type: CacheData}] = cacheReading{perUnitKB: b / 1024}
		recorded++
	}

	sizes := s.numberFields(ctx, "hw.cachesize")
	sharing := s.numberFields(ctx, "hw.cacheconfig")
	// Index n of both lists describes level n; index 0 is memory.
	shared := func(level int) (cacheReading, bool) {
		if level >= len(sizes) || level >= len(sharing) {
			return cacheReading{}, false
		}
		size, share := sizes[level], sharing[level]
		if size == 0 || share == 0 {
			return cacheReading{}, false
		}
		units := uint64(1)
		if n := uint64(rep.logicalCores); n > share {
			units = n / share
		}
		kb := size / 1024
		return cacheReading{perUnitKB: kb, totalKB: kb * units, hasTotal: true}, true
	}

	l2 := CacheKey{Level: 2, Type: CacheUnified}
	if r, ok := shared(2); ok {
		rep.caches[l2] = r
		recorded++
	} else {
		p0, ok0 := num("hw.perflevel0.l2cachesize")
		p1, ok1 := num("hw.perflevel1.l2cachesize")
		switch {
		case ok0 && p0 > 0 && ok1 && p1 > 0:
			rep.caches[l2] = cacheReading{perUnitKB: max(p0, p1) / 1024, totalKB: (p0 + p1) / 1024, hasTotal: true}
			recorded++
		case ok0 && p0 > 0:
			rep.caches[l2] = cacheReading{perUnitKB: p0 / 1024, totalKB: p0 / 1024, hasTotal: true}
			recorded++
		default:
			if b, ok := num("hw.l2cachesize"); ok && b > 0 {
				rep.caches[l2] = cacheReading{perUnitKB: b / 1024, totalKB: b / 1024, hasTotal: true}
				recorded++
			}
		}
	}

	l3 := CacheKey{Level: 3, Type: CacheUnified}
	if r, ok := shared(3); ok {
		rep.caches[l3] = r
		recorded++
	} else if b, ok := num("hw.l3cachesize"); ok && b > 0 {
		rep.caches[l3] = cacheReading{perUnitKB: b / 1024, totalKB: b / 1024, hasTotal: true}
		recorded++
	}

	return recorded
}

// numberFields parses a space-separated list of unsigned integers, as
// produced by the list-valued sysctl keys. Unparseable entries become
// zero so the indexes of later entries still line up.
func (s *sysctlSource) numberFields(ctx context.Context, key string) []uint64 {
	v, err := s.query(ctx, key)
	if err != nil {
		return nil
	}
	fields := strings.Fields(v)
	out := make([]uint64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			continue
		}
		out[i] = n
	}
	return out
}

// collectFlags sweeps the hw.optional.arm. subtree for features
// reported as enabled. Intel Macs expose a flat feature string under
// machdep.cpu.features instead.
func (s *sysctlSource) collectFlags(ctx context.Context) []string {
	if out, err := s.queryTree(ctx, "hw.optional.arm."); err == nil {
		var flags []string
		for _, line := range strings.Split(out, "\n") {
			key, value, found := strings.Cut(line, ":")
			if !found || strings.TrimSpace(value) != "1" {
				continue
			}
			if name, ok := strings.CutPrefix(strings.TrimSpace(key), "hw.optional.arm."); ok {
				flags = append(flags, name)
			}
		}
		if len(flags) > 0 {
			return flags
		}
	}

	if features, err := s.query(ctx, "machdep.cpu.features"); err == nil && features != "" {
		return strings.Fields(strings.ToLower(features))
	}
	return nil
}
