package cpuinfo

import (
	"errors"
	"testing"
)

func TestParseCacheKB(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"512K", 512, true},
		{"2M", 2048, true},
		{"1024", 1024, true},
		{"1024 KB", 1024, true},
		{"32 KiB", 32, true},
		{"4 MiB", 4096, true},
		{"256 KiB (4 instances)", 256, true},
		{"1G", 1024 * 1024, true},
		{"abc", 0, false},
		{"", 0, false},
		{"12Q", 0, false},
		{"  48K  ", 48, true},
	}
	for _, tc := range tests {
		kb, ok := parseCacheKB(tc.in)
		if ok != tc.ok || kb != tc.want {
			t.Errorf("parseCacheKB(%q) = %d, %v, want %d, %v", tc.in, kb, ok, tc.want, tc.ok)
		}
	}
}

func TestFinalizeCacheTotals(t *testing.T) {
	rep := newReport()
	rep.modelName = "Example CPU"
	rep.physicalCores = 4
	rep.logicalCores = 8
	rep.caches[CacheKey{Level: 1, Type: CacheData}] = cacheReading{perUnitKB: 32}
	rep.caches[CacheKey{Level: 3, Type: CacheUnified}] = cacheReading{perUnitKB: 16384}

	info, err := rep.finalize()
	if err != nil {
		t.Fatal(err)
	}

	// Per-core level: per-unit times physical core count.
	l1d := info.Caches[CacheKey{Level: 1, Type: CacheData}]
	if l1d.PerUnitKB != 32 || l1d.TotalKB != 128 {
		t.Errorf("L1d = %+v, want per-unit 32, total 128", l1d)
	}
	// Shared level: reported value unchanged, no multiplication.
	l3 := info.Caches[CacheKey{Level: 3, Type: CacheUnified}]
	if l3.PerUnitKB != 16384 || l3.TotalKB != 16384 {
		t.Errorf("L3 = %+v, want per-unit and total 16384", l3)
	}
}

func TestFinalizeSourceReportedTotalKept(t *testing.T) {
	rep := newReport()
	rep.modelName = "Example CPU"
	rep.physicalCores = 8
	rep.caches[CacheKey{Level: 2, Type: CacheUnified}] = cacheReading{perUnitKB: 4096, totalKB: 4096, hasTotal: true}

	info, err := rep.finalize()
	if err != nil {
		t.Fatal(err)
	}
	l2 := info.Caches[CacheKey{Level: 2, Type: CacheUnified}]
	if l2.TotalKB != 4096 {
		t.Errorf("L2 total = %d, want the source-reported 4096 without multiplication", l2.TotalKB)
	}
}

func TestFinalizeDefaults(t *testing.T) {
	rep := newReport()
	rep.modelName = "Example CPU"
	rep.logicalCores = 8

	info, err := rep.finalize()
	if err != nil {
		t.Fatal(err)
	}
	if info.PhysicalCores != 1 {
		t.Errorf("physical cores = %d, want fallback 1", info.PhysicalCores)
	}
	if info.LogicalCores != 8 {
		t.Errorf("logical cores = %d, want 8", info.LogicalCores)
	}
}

func TestFinalizeLogicalAtLeastPhysical(t *testing.T) {
	rep := newReport()
	rep.modelName = "Example CPU"
	rep.physicalCores = 4

	info, err := rep.finalize()
	if err != nil {
		t.Fatal(err)
	}
	if info.LogicalCores != 4 {
		t.Errorf("logical cores = %d, want raised to physical count 4", info.LogicalCores)
	}
}

func TestFinalizeInsufficientData(t *testing.T) {
	_, err := newReport().finalize()
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("finalize of empty report = %v, want ErrInsufficientData", err)
	}
}

func TestFillFromNeverOverwrites(t *testing.T) {
	high := newReport()
	high.modelName = "High Precedence CPU"
	freq := 5.0
	high.freqGHz = &freq
	high.caches[CacheKey{Level: 2, Type: CacheUnified}] = cacheReading{perUnitKB: 1024}

	low := newReport()
	low.modelName = "Low Precedence CPU"
	low.vendorID = "AuthenticAMD"
	lowFreq := 3.0
	low.freqGHz = &lowFreq
	low.caches[CacheKey{Level: 2, Type: CacheUnified}] = cacheReading{perUnitKB: 512}
	low.caches[CacheKey{Level: 3, Type: CacheUnified}] = cacheReading{perUnitKB: 32768}

	high.fillFrom(low)

	if high.modelName != "High Precedence CPU" {
		t.Errorf("model name overwritten to %q", high.modelName)
	}
	if *high.freqGHz != 5.0 {
		t.Errorf("frequency overwritten to %v", *high.freqGHz)
	}
	if high.caches[CacheKey{Level: 2, Type: CacheUnified}].perUnitKB != 1024 {
		t.Error("L2 reading overwritten by lower-precedence source")
	}
	// Fields the higher-precedence source did not supply are filled.
	if high.vendorID != "AuthenticAMD" {
		t.Errorf("vendor id not filled, got %q", high.vendorID)
	}
	if high.caches[CacheKey{Level: 3, Type: CacheUnified}].perUnitKB != 32768 {
		t.Error("L3 reading not filled from lower-precedence source")
	}
}
