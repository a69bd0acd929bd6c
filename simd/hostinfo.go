package simd

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// HostInfo summarises the running CPU and the engines available on it.
type HostInfo struct {
	Arch        string
	Vendor      string
	Brand       string
	Cores       int
	CPUFeatures []string

	// Supported lists the engines dispatch may pick, Best the one it will.
	Supported []Level
	Best      Level
	Target    Level
}

// Describe reports what the host offers. CPU identification comes from
// cpuid and is informational; dispatch decisions only use Detect.
func Describe() HostInfo {
	f := Detect()
	info := HostInfo{
		Arch:        runtime.GOARCH,
		Vendor:      cpuid.CPU.VendorString,
		Brand:       cpuid.CPU.BrandName,
		Cores:       cpuid.CPU.LogicalCores,
		CPUFeatures: cpuid.CPU.FeatureSet(),
		Best:        f.Best(),
		Target:      TargetLevel(),
	}
	for _, l := range Levels() {
		if f.Supports(l) {
			info.Supported = append(info.Supported, l)
		}
	}
	return info
}
