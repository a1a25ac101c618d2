package config

import (
	"log/slog"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// cpuFlags lists the reported features, widest vector extension first.
var cpuFlags = []struct {
	name string
	id   cpuid.FeatureID
	has  func(CPUFeatures) bool
}{
	{"AVX512", cpuid.AVX512F, func(f CPUFeatures) bool { return f.AVX512 }},
	{"AVX2", cpuid.AVX2, func(f CPUFeatures) bool { return f.AVX2 }},
	{"BMI2", cpuid.BMI2, func(f CPUFeatures) bool { return f.BMI2 }},
	{"POPCNT", cpuid.POPCNT, func(f CPUFeatures) bool { return f.POPCNT }},
	{"SSE42", cpuid.SSE42, func(f CPUFeatures) bool { return f.SSE42 }},
}

// DetectCPUFeatures reports the host processor.
func DetectCPUFeatures() CPUFeatures {
	f := CPUFeatures{
		Brand: cpuid.CPU.BrandName,
		Cores: cpuid.CPU.LogicalCores,
	}
	f.AVX512 = cpuid.CPU.Supports(cpuFlags[0].id)
	f.AVX2 = cpuid.CPU.Supports(cpuFlags[1].id)
	f.BMI2 = cpuid.CPU.Supports(cpuFlags[2].id)
	f.POPCNT = cpuid.CPU.Supports(cpuFlags[3].id)
	f.SSE42 = cpuid.CPU.Supports(cpuFlags[4].id)
	if f.Brand == "" {
		f.Brand = "unknown"
	}
	return f
}

// FeatureString joins the supported features, or returns "none".
func (f CPUFeatures) FeatureString() string {
	var names []string
	for _, flag := range cpuFlags {
		if flag.has(f) {
			names = append(names, flag.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// LogValue implements slog.LogValuer.
func (f CPUFeatures) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("brand", f.Brand),
		slog.Int("cores", f.Cores),
		slog.String("features", f.FeatureString()),
	)
}
