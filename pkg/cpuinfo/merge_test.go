package cpuinfo

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/go-test/deep"
)

// TestMergedPipeline runs the full extract-merge-normalize pipeline
// over synthetic sources: a cache tree for one machine and a
// block-format pseudo-file for its topology, the way the Linux path
// composes them.
func TestMergedPipeline(t *testing.T) {
	procRaw := syntheticBlocks([][2]int{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
	})
	fsys := fstest.MapFS{
		"cpu0/cache/index0/level": mapFile("1\n"),
		"cpu0/cache/index0/type":  mapFile("Data\n"),
		"cpu0/cache/index0/size":  mapFile("32K\n"),
		"cpu0/cache/index1/level": mapFile("3\n"),
		"cpu0/cache/index1/type":  mapFile("Unified\n"),
		"cpu0/cache/index1/size":  mapFile("16384K\n"),
		"cpu0/cpufreq/cpuinfo_max_freq": mapFile("4200000\n"),
	}

	merged := newReport()
	sysfsRep, err := newSysfsSource(fsys).collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	merged.fillFrom(sysfsRep)
	merged.fillFrom(parseProcCpuinfo(procRaw))

	info, err := merged.finalize()
	if err != nil {
		t.Fatal(err)
	}

	freq := 4.2
	want := &Info{
		ModelName:     "Example CPU X9",
		VendorKey:     VendorUnknown,
		PhysicalCores: 4,
		LogicalCores:  8,
		FrequencyGHz:  &freq,
		Caches: map[CacheKey]CacheSize{
			// Per-core data cache: per-unit times physical cores.
			{Level: 1, Type: CacheData}: {PerUnitKB: 32, TotalKB: 128},
			// Shared L3: reported value unchanged.
			{Level: 3, Type: CacheUnified}: {PerUnitKB: 16384, TotalKB: 16384},
		},
	}
	if diff := deep.Equal(info, want); diff != nil {
		t.Error(diff)
	}
}

// TestMergedRyzenFixtures drives the same pipeline from the recorded
// fixtures of a real machine.
func TestMergedRyzenFixtures(t *testing.T) {
	merged := newReport()
	sysfsRep, err := newSysfsSource(fixtureFS(t, "ryzen-5-9600x/sys")).collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	merged.fillFrom(sysfsRep)
	merged.fillFrom(parseProcCpuinfo(readFixture(t, "ryzen-5-9600x/cpuinfo.txt")))

	info, err := merged.finalize()
	if err != nil {
		t.Fatal(err)
	}

	if info.VendorKey != VendorAMD {
		t.Errorf("vendor key = %q", info.VendorKey)
	}
	if info.PhysicalCores != 6 || info.LogicalCores != 12 {
		t.Errorf("cores = %d/%d, want 6/12", info.PhysicalCores, info.LogicalCores)
	}
	// The sysfs kHz reading wins over the per-processor MHz readings.
	if info.FrequencyGHz == nil || *info.FrequencyGHz != 5.486 {
		t.Errorf("frequency = %v, want 5.486", info.FrequencyGHz)
	}
	// The sysfs L2 reading (per-core 1024K) wins over the /proc
	// "cache size" line and is multiplied across six cores.
	l2 := info.Caches[CacheKey{Level: 2, Type: CacheUnified}]
	if l2.PerUnitKB != 1024 || l2.TotalKB != 6144 {
		t.Errorf("L2 = %+v, want per-unit 1024, total 6144", l2)
	}
	// Shared L3 stays unmultiplied.
	l3 := info.Caches[CacheKey{Level: 3, Type: CacheUnified}]
	if l3.PerUnitKB != 32768 || l3.TotalKB != 32768 {
		t.Errorf("L3 = %+v, want 32768 unchanged", l3)
	}
}
