// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/speechpcm/audio"
)

// NewBuffer builds a buffer of frames per channel from waveform, which is
// given the frame index and the channel.
func NewBuffer(sampleRate, channels, frames int, waveform func(frame int, channel int) float32) *audio.Buffer {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for i := range frames {
			data[c][i] = waveform(i, c)
		}
	}

	return &audio.Buffer{SampleRate: sampleRate, Data: data}
}

// SilentBuffer is all zeros.
func SilentBuffer(sampleRate, channels, frames int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) float32 {
		return 0.0
	})
}

// SineBuffer holds a sine wave at frequency Hz on every channel.
func SineBuffer(sampleRate, channels, frames int, frequency float64) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// ConstantBuffer holds value everywhere.
func ConstantBuffer(sampleRate, channels, frames int, value float32) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// RampBuffer rises linearly per channel; channel c is offset by c so that
// channels stay distinguishable after interleaving.
func RampBuffer(sampleRate, channels, frames int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, frames, func(frame int, channel int) float32 {
		return float32(frame*channels+channel) / 32768.0
	})
}
