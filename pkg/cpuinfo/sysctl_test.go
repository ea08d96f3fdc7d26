package cpuinfo

import (
	"context"
	"fmt"
	"testing"
)

// fakeSysctl serves canned sysctl values, standing in for the real
// property store.
type fakeSysctl struct {
	values map[string]string
	tree   string
	uname  string
}

func (f *fakeSysctl) source() *sysctlSource {
	return &sysctlSource{
		query: func(_ context.Context, key string) (string, error) {
			if v, ok := f.values[key]; ok {
				return v, nil
			}
			return "", fmt.Errorf("unknown oid %q", key)
		},
		queryTree: func(_ context.Context, prefix string) (string, error) {
			if f.tree == "" {
				return "", fmt.Errorf("unknown oid %q", prefix)
			}
			return f.tree, nil
		},
		uname: func(_ context.Context) (string, error) {
			return f.uname, nil
		},
	}
}

func TestSysctlAppleSilicon(t *testing.T) {
	fake := &fakeSysctl{
		values: map[string]string{
			"machdep.cpu.brand_string":  "Apple M3 Pro",
			"machdep.cpu.core_count":    "11",
			"machdep.cpu.thread_count":  "11",
			"hw.byteorder":              "1234",
			"hw.l1icachesize":           "131072",
			"hw.l1dcachesize":           "65536",
			"hw.l2cachesize":            "4194304",
			"hw.perflevel0.l2cachesize": "16777216",
			"hw.perflevel1.l2cachesize": "4194304",
		},
		tree: "hw.optional.arm.FEAT_AES: 1\n" +
			"hw.optional.arm.FEAT_SHA256: 1\n" +
			"hw.optional.arm.FEAT_BTI: 0\n",
		uname: "arm64",
	}

	rep, err := fake.source().collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if rep.modelName != "Apple M3 Pro" {
		t.Errorf("model name = %q", rep.modelName)
	}
	if rep.physicalCores != 11 || rep.logicalCores != 11 {
		t.Errorf("cores = %d/%d, want 11/11", rep.physicalCores, rep.logicalCores)
	}
	if rep.byteOrder != LittleEndian {
		t.Errorf("byte order = %v", rep.byteOrder)
	}
	if rep.architecture != "arm64" {
		t.Errorf("architecture = %q", rep.architecture)
	}
	// No frequency key on Apple Silicon: absent, not zero.
	if rep.freqGHz != nil {
		t.Errorf("frequency = %v, want absent", *rep.freqGHz)
	}
	if kb := rep.caches[CacheKey{Level: 1, Type: CacheData}].perUnitKB; kb != 64 {
		t.Errorf("L1d = %d KB, want 64", kb)
	}
	// One L2 per performance-level cluster: the larger is the per-unit
	// figure, the sum the machine total.
	l2 := rep.caches[CacheKey{Level: 2, Type: CacheUnified}]
	if l2.perUnitKB != 16384 || l2.totalKB != 20480 || !l2.hasTotal {
		t.Errorf("L2 = %+v, want 16384 KB per unit, 20480 KB total", l2)
	}
	if _, ok := rep.caches[CacheKey{Level: 3, Type: CacheUnified}]; ok {
		t.Error("L3 must be absent when the key is missing")
	}
	// Only features reported as enabled, with the prefix stripped.
	want := []string{"FEAT_AES", "FEAT_SHA256"}
	if len(rep.flags) != len(want) || rep.flags[0] != want[0] || rep.flags[1] != want[1] {
		t.Errorf("flags = %v, want %v", rep.flags, want)
	}

	// The cluster total passes through the normalizer untouched; it is
	// never scaled by the core count.
	info, err := rep.finalize()
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Caches[CacheKey{Level: 2, Type: CacheUnified}].TotalKB; got != 20480 {
		t.Errorf("normalized L2 total = %d KB, want 20480", got)
	}
}

func TestSysctlIntelMac(t *testing.T) {
	fake := &fakeSysctl{
		values: map[string]string{
			"machdep.cpu.brand_string": "Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz",
			"machdep.cpu.vendor":       "GenuineIntel",
			"machdep.cpu.core_count":   "6",
			"machdep.cpu.thread_count": "12",
			"machdep.cpu.features":     "FPU VME DE PSE TSC MSR PAE",
			"hw.byteorder":             "1234",
			"hw.cpufrequency_max":      "2600000000",
			"hw.l2cachesize":           "262144",
			"hw.l3cachesize":           "12582912",
			"hw.cachesize":             "34359738368 32768 262144 12582912",
			"hw.cacheconfig":           "12 2 2 12",
		},
		uname: "x86_64",
	}

	rep, err := fake.source().collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if rep.vendorID != "GenuineIntel" {
		t.Errorf("vendor id = %q", rep.vendorID)
	}
	if rep.freqGHz == nil || *rep.freqGHz != 2.6 {
		t.Errorf("frequency = %v, want 2.6 GHz from Hz reading", rep.freqGHz)
	}
	// hw.cachesize lists one cache's size per level, hw.cacheconfig how
	// many logical processors share it: six 256 KB L2 caches here, one
	// 12 MB L3 shared by all twelve threads.
	l2 := rep.caches[CacheKey{Level: 2, Type: CacheUnified}]
	if l2.perUnitKB != 256 || l2.totalKB != 1536 || !l2.hasTotal {
		t.Errorf("L2 = %+v, want 256 KB per unit, 1536 KB total", l2)
	}
	l3 := rep.caches[CacheKey{Level: 3, Type: CacheUnified}]
	if l3.perUnitKB != 12288 || l3.totalKB != 12288 || !l3.hasTotal {
		t.Errorf("L3 = %+v, want 12288 KB per unit and total", l3)
	}
	// The ARM feature sweep fails; the flat x86 feature string is the
	// fallback, lowercased.
	if len(rep.flags) != 7 || rep.flags[0] != "fpu" {
		t.Errorf("flags = %v", rep.flags)
	}
}

// The plain hw.l2cachesize key names a single cache, which on Apple
// Silicon is one cluster's L2. Its value must reach the normalized
// record as-is, not multiplied by the core count.
func TestSysctlPlainL2KeyNotScaled(t *testing.T) {
	fake := &fakeSysctl{
		values: map[string]string{
			"machdep.cpu.brand_string": "Apple M3 Pro",
			"machdep.cpu.core_count":   "11",
			"machdep.cpu.thread_count": "11",
			"hw.l2cachesize":           "4194304",
		},
		uname: "arm64",
	}

	rep, err := fake.source().collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	info, err := rep.finalize()
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Caches[CacheKey{Level: 2, Type: CacheUnified}].TotalKB; got != 4096 {
		t.Errorf("L2 total = %d KB, want 4096", got)
	}
}

func TestSysctlAllQueriesFail(t *testing.T) {
	fake := &fakeSysctl{values: map[string]string{}}
	if _, err := fake.source().collect(context.Background()); err == nil {
		t.Fatal("expected error when no key can be queried")
	}
}

// Keys that answer with zero record nothing and therefore must not
// count toward a usable collection.
func TestSysctlZeroValuesAreNoHits(t *testing.T) {
	fake := &fakeSysctl{
		values: map[string]string{
			"machdep.cpu.core_count": "0",
			"hw.cpufrequency_max":    "0",
			"hw.l3cachesize":         "0",
		},
	}
	if _, err := fake.source().collect(context.Background()); err == nil {
		t.Fatal("expected error when every key answers zero")
	}
}
