package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeaturesArchitecture(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if f.ForceGeneric {
		t.Fatal("ForceGeneric must not be set by hardware detection")
	}
}

func TestSetForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX2: true, Architecture: "amd64"})
	f := DetectFeatures()
	if !f.HasAVX2 || f.Architecture != "amd64" {
		t.Fatalf("forced features not returned: %+v", f)
	}

	ResetDetection()
	if got := DetectFeatures(); got.Architecture != runtime.GOARCH {
		t.Fatalf("after reset Architecture = %q, want %q", got.Architecture, runtime.GOARCH)
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"generic always", Features{}, SIMDNone, true},
		{"avx2 present", Features{HasAVX2: true}, SIMDAVX2, true},
		{"avx2 missing", Features{}, SIMDAVX2, false},
		{"neon present", Features{HasNEON: true}, SIMDNEON, true},
		{"neon missing", Features{HasAVX2: true}, SIMDNEON, false},
		{"force generic hides avx2", Features{HasAVX2: true, ForceGeneric: true}, SIMDAVX2, false},
		{"force generic keeps none", Features{ForceGeneric: true}, SIMDNone, true},
		{"unknown level", Features{HasAVX2: true, HasNEON: true}, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestSIMDLevelString(t *testing.T) {
	for level, want := range map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDAVX2:      "AVX2",
		SIMDNEON:      "NEON",
		SIMDLevel(42): "Unknown",
	} {
		if got := level.String(); got != want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}
