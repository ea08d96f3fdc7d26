// Package cpuinfo queries the host machine for CPU identification and
// topology data and reduces it to a single normalized record.
//
// Each supported platform exposes one or more sources (a pseudo-file, a
// small-file tree, a property store or an external inventory command).
// Sources are read and parsed independently; the results are merged with
// a fixed precedence and normalized into one Info value per invocation.
package cpuinfo

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means no data source could be read at all:
	// file missing, permission denied, or the external inventory
	// command could not be run.
	ErrSourceUnavailable = errors.New("cpu information source unavailable")

	// ErrInsufficientData means the sources were readable but yielded
	// no identifying fields (no model, no vendor, no core counts).
	ErrInsufficientData = errors.New("could not determine any identifying cpu information")
)

// ByteOrder is the CPU byte order as reported by the platform.
type ByteOrder int

const (
	ByteOrderUnknown ByteOrder = iota
	LittleEndian
	BigEndian
)

func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "Little Endian"
	case BigEndian:
		return "Big Endian"
	default:
		return "Unknown"
	}
}

// CacheType distinguishes instruction, data and unified caches.
type CacheType string

const (
	CacheInstruction CacheType = "Instruction"
	CacheData        CacheType = "Data"
	CacheUnified     CacheType = "Unified"
)

// CacheKey identifies one tier of the cache hierarchy.
type CacheKey struct {
	Level uint32
	Type  CacheType
}

func (k CacheKey) String() string {
	switch {
	case k.Level == 1 && k.Type == CacheInstruction:
		return "L1i"
	case k.Level == 1 && k.Type == CacheData:
		return "L1d"
	default:
		return fmt.Sprintf("L%d", k.Level)
	}
}

// CacheSize holds the size reported for one cache instance and the
// total across instances. For per-core levels (L1, L2) the total is
// per-unit times the physical core count; shared levels (L3) report
// the single shared value unchanged.
type CacheSize struct {
	PerUnitKB uint64
	TotalKB   uint64
}

// Info is the normalized CPU record for the host machine. A missing
// cache key means the corresponding size was unavailable; a missing
// key is never the same as a zero size.
type Info struct {
	ModelName    string
	VendorKey    string
	Architecture string
	ByteOrder    ByteOrder

	PhysicalCores uint32
	LogicalCores  uint32

	// FrequencyGHz is the maximum clock speed observed across the
	// available sources. On Linux this comes from cpufreq or the
	// highest per-processor reading, so it is a proxy for the rated
	// maximum, not a guarantee. Nil when no source reported one.
	FrequencyGHz *float64

	Caches map[CacheKey]CacheSize

	// Flags lists the supported instruction set features in source
	// order. Empty on platforms that do not expose them.
	Flags []string
}

// source is one platform-specific provider of raw CPU information.
// Collection failures are reported to the caller; the caller decides
// whether another source can still satisfy the query.
type source interface {
	name() string
	collect(ctx context.Context) (*report, error)
}
