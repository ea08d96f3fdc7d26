package cpuinfo

// win32Processor mirrors the Win32_Processor properties we query.
// Field names must match the WMI property names.
type win32Processor struct {
	Name                      string
	Manufacturer              string
	Architecture              uint16
	NumberOfCores             uint32
	NumberOfLogicalProcessors uint32
	MaxClockSpeed             uint32
	L2CacheSize               uint32
	L3CacheSize               uint32
}

// win32ArchNames maps the Win32_Processor Architecture codes onto
// machine type strings.
var win32ArchNames = map[uint16]string{
	0:  "x86",
	5:  "arm",
	9:  "x86_64",
	12: "arm64",
}

// reportFromWin32 reduces the queried Win32_Processor instances, one
// per package, into a single report.
func reportFromWin32(procs []win32Processor) *report {
	rep := newReport()
	rep.modelName = procs[0].Name
	rep.vendorID = procs[0].Manufacturer
	rep.architecture = win32ArchNames[procs[0].Architecture]
	// Windows runs little-endian on every architecture it supports.
	rep.byteOrder = LittleEndian

	// Counts sum across packages; the frequency is the fastest any
	// package reports.
	var maxMHz uint32
	for _, p := range procs {
		rep.physicalCores += p.NumberOfCores
		rep.logicalCores += p.NumberOfLogicalProcessors
		if p.MaxClockSpeed > maxMHz {
			maxMHz = p.MaxClockSpeed
		}
	}

	if maxMHz > 0 {
		ghz := float64(maxMHz) / 1000
		rep.freqGHz = &ghz
	}

	// Cache sizes are package totals in KB, recorded as totals so the
	// normalizer does not multiply them again.
	if kb := uint64(procs[0].L2CacheSize); kb > 0 {
		rep.caches[CacheKey{Level: 2, Type: CacheUnified}] = cacheReading{perUnitKB: kb, totalKB: kb, hasTotal: true}
	}
	if kb := uint64(procs[0].L3CacheSize); kb > 0 {
		rep.caches[CacheKey{Level: 3, Type: CacheUnified}] = cacheReading{perUnitKB: kb, totalKB: kb, hasTotal: true}
	}

	return rep
}
