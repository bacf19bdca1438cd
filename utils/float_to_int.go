// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1,1] and scales by 32767.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 maps a 16-bit PCM sample into [-1,1) by dividing by 32768.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// QuantizeInt16 is the inverse of Int16ToFloat32: round(x*32768), clamped to
// the int16 range.
func QuantizeInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768.0)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}
