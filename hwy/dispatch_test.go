package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchSVE, "sve"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	t.Logf("Dispatch level: %s, width %d bytes", CurrentName(), CurrentWidth())

	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
	if Float32Lanes() != CurrentWidth()/4 {
		t.Errorf("Float32Lanes() = %d, want %d", Float32Lanes(), CurrentWidth()/4)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", tt.value)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
