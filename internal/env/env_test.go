// SPDX-License-Identifier: EPL-2.0

package env

import (
	"testing"
	"time"
)

func TestStr(t *testing.T) {
	t.Setenv("SPEECHPCM_TEST_STR", "kore")

	if got := Str("SPEECHPCM_TEST_STR", "puck"); got != "kore" {
		t.Errorf("Str() = %q, want kore", got)
	}
	if got := Str("SPEECHPCM_TEST_UNSET", "puck"); got != "puck" {
		t.Errorf("Str(unset) = %q, want puck", got)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{name: "set", value: "48000", fallback: 24000, want: 48000},
		{name: "empty", value: "", fallback: 24000, want: 24000},
		{name: "malformed", value: "fast", fallback: 24000, want: 24000},
		{name: "negative", value: "-1", fallback: 1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SPEECHPCM_TEST_INT", tt.value)

			if got := Int("SPEECHPCM_TEST_INT", tt.fallback); got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDuration(t *testing.T) {
	t.Setenv("SPEECHPCM_TEST_DUR", "1m30s")

	if got := Duration("SPEECHPCM_TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("Duration() = %v, want 1m30s", got)
	}

	t.Setenv("SPEECHPCM_TEST_DUR", "soon")

	if got := Duration("SPEECHPCM_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("Duration(malformed) = %v, want 1s", got)
	}
}
