package cpuinfo

import (
	"strconv"
	"strings"
	"unicode"
)

// coreIdentity pairs a physical package id with a per-package core id.
// The number of distinct pairs across logical processors is the
// physical core count.
type coreIdentity struct {
	pkg  int64
	core int64
}

// cacheReading is one observed cache size before totals are computed.
// hasTotal marks sources that report the total themselves (e.g. the
// Windows property store reports package totals, not per-core sizes).
type cacheReading struct {
	perUnitKB uint64
	totalKB   uint64
	hasTotal  bool
}

// report holds the candidate values one source managed to extract.
// Zero values mean "not observed"; reduction to the final record
// happens in finalize after all sources have been merged.
type report struct {
	modelName    string
	vendorID     string
	architecture string
	byteOrder    ByteOrder

	physicalCores uint32
	logicalCores  uint32

	freqGHz *float64

	caches map[CacheKey]cacheReading
	flags  []string
}

func newReport() *report {
	return &report{caches: make(map[CacheKey]cacheReading)}
}

// fillFrom copies fields from a lower-precedence report into r, but
// only where r has no value yet. A value obtained from an earlier,
// higher-precedence source is never overwritten.
func (r *report) fillFrom(other *report) {
	if r.modelName == "" {
		r.modelName = other.modelName
	}
	if r.vendorID == "" {
		r.vendorID = other.vendorID
	}
	if r.architecture == "" {
		r.architecture = other.architecture
	}
	if r.byteOrder == ByteOrderUnknown {
		r.byteOrder = other.byteOrder
	}
	if r.physicalCores == 0 {
		r.physicalCores = other.physicalCores
	}
	if r.logicalCores == 0 {
		r.logicalCores = other.logicalCores
	}
	if r.freqGHz == nil {
		r.freqGHz = other.freqGHz
	}
	for key, reading := range other.caches {
		if _, ok := r.caches[key]; !ok {
			r.caches[key] = reading
		}
	}
	if len(r.flags) == 0 {
		r.flags = other.flags
	}
}

func (r *report) empty() bool {
	return r.modelName == "" && r.vendorID == "" &&
		r.physicalCores == 0 && r.logicalCores == 0
}

// sharedCacheLevel reports whether a cache level is shared across
// cores rather than private to each one. L1 and L2 are treated as
// per-core, L3 as shared.
func sharedCacheLevel(level uint32) bool {
	return level >= 3
}

// finalize reduces the merged candidate values into the normalized
// record. It fails only when no identifying field at all was found.
func (r *report) finalize() (*Info, error) {
	if r.empty() {
		return nil, ErrInsufficientData
	}

	physical := r.physicalCores
	if physical == 0 {
		// No identity pairs and no explicit count. Assume a single
		// core rather than failing; this is an approximation.
		physical = 1
	}
	logical := r.logicalCores
	if logical < physical {
		logical = physical
	}

	info := &Info{
		ModelName:     r.modelName,
		VendorKey:     normalizeVendor(r.vendorID, r.modelName),
		Architecture:  r.architecture,
		ByteOrder:     r.byteOrder,
		PhysicalCores: physical,
		LogicalCores:  logical,
		FrequencyGHz:  r.freqGHz,
		Caches:        make(map[CacheKey]CacheSize, len(r.caches)),
		Flags:         r.flags,
	}

	for key, reading := range r.caches {
		total := reading.totalKB
		if !reading.hasTotal {
			if sharedCacheLevel(key.Level) {
				total = reading.perUnitKB
			} else {
				total = reading.perUnitKB * uint64(physical)
			}
		}
		info.Caches[key] = CacheSize{PerUnitKB: reading.perUnitKB, TotalKB: total}
	}

	return info, nil
}

// parseCacheKB normalizes a cache size string to kilobytes. Accepted
// forms are a bare number (already KB), or a number with a K/M/G
// suffix in the short ("512K") or IEC ("32 KiB") spelling. A trailing
// parenthesized remark such as "(8 instances)" is ignored. Anything
// unparseable yields ok == false, never zero.
func parseCacheKB(s string) (kb uint64, ok bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if s == "" {
		return 0, false
	}

	num := s
	unit := ""
	if i := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }); i >= 0 {
		num = s[:i]
		unit = strings.TrimSpace(s[i:])
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, false
	}

	switch strings.ToUpper(unit) {
	case "", "K", "KB", "KIB":
		return n, true
	case "M", "MB", "MIB":
		return n * 1024, true
	case "G", "GB", "GIB":
		return n * 1024 * 1024, true
	default:
		return 0, false
	}
}
