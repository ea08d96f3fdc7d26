package cpuinfo

import "strings"

// Canonical vendor keys. The same key is used for display and for the
// logo catalog lookup.
const (
	VendorAMD     = "AMD"
	VendorIntel   = "Intel"
	VendorARM     = "ARM"
	VendorNVIDIA  = "NVIDIA"
	VendorPowerPC = "PowerPC"
	VendorApple   = "Apple"
	VendorUnknown = "Unknown"
)

// vendorProbes is the fixed priority order for substring matching.
// When a string contains more than one vendor name fragment (e.g. an
// "AMD" board string inside an Intel model name), the earlier entry
// wins. The order is pinned here and covered by tests.
var vendorProbes = []struct {
	fragment string
	key      string
}{
	{"amd", VendorAMD},
	{"intel", VendorIntel},
	{"apple", VendorApple},
	{"nvidia", VendorNVIDIA},
	{"powerpc", VendorPowerPC},
	{"arm", VendorARM},
}

// armImplementers maps the /proc/cpuinfo "CPU implementer" codes we
// recognize onto vendor names.
var armImplementers = map[string]string{
	"0x41": "ARM",
	"0x4e": "NVIDIA",
	"0x61": "Apple",
}

// normalizeVendor maps the raw vendor identifier and model string onto
// one canonical vendor key. Exact vendor id strings are checked first,
// then case-insensitive substring matching in vendorProbes order over
// the vendor id and finally the model name.
func normalizeVendor(vendorID, modelName string) string {
	switch vendorID {
	case "AuthenticAMD":
		return VendorAMD
	case "GenuineIntel":
		return VendorIntel
	}

	for _, probe := range vendorProbes {
		if containsFold(vendorID, probe.fragment) {
			return probe.key
		}
	}
	for _, probe := range vendorProbes {
		if containsFold(modelName, probe.fragment) {
			return probe.key
		}
	}
	return VendorUnknown
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
