// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/speechpcm/utils"
)

// lowPassAlpha is the one-pole low-pass coefficient applied before downsampling.
const lowPassAlpha float32 = 0.5

// Resample converts buf to dstRate using Catmull-Rom cubic interpolation,
// channel by channel. A simple low-pass filter runs first when downsampling.
// The result always holds ceil(frames*dstRate/srcRate) frames per channel.
func Resample(buf *Buffer, dstRate int) (*Buffer, error) {
	if dstRate <= 0 || buf.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if buf.NumChannels() == 0 {
		return nil, ErrInvalidChannelCount
	}

	srcRate := buf.SampleRate
	frames := buf.Frames()

	if srcRate == dstRate {
		return buf.clone(), nil
	}

	outFrames := (frames*dstRate + srcRate - 1) / srcRate
	out, err := NewBuffer(dstRate, buf.NumChannels(), outFrames)
	if err != nil {
		return nil, err
	}

	ratio := float64(srcRate) / float64(dstRate)
	downsampling := ratio > 1.0

	for c, ch := range buf.Data {
		src := ch
		if downsampling {
			src = lowPass(ch, lowPassAlpha)
		}
		resampleChannel(src, out.Data[c], ratio)
	}

	return out, nil
}

func resampleChannel(src, dst []float32, ratio float64) {
	last := len(src) - 1
	at := func(i int) float32 {
		// Duplicate edge frames past either end.
		return src[max(0, min(i, last))]
	}

	for j := range dst {
		pos := float64(j) * ratio
		i := int(pos)
		x := float32(pos - float64(i))

		dst[j] = utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), x)
	}
}

// lowPass runs y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with the first
// sample to avoid a warm-up transient.
func lowPass(samples []float32, alpha float32) []float32 {
	out := make([]float32, len(samples))
	if len(samples) == 0 {
		return out
	}

	state := samples[0]
	for i, x := range samples {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}

func (b *Buffer) clone() *Buffer {
	data := make([][]float32, len(b.Data))
	for c, ch := range b.Data {
		data[c] = append([]float32(nil), ch...)
	}

	return &Buffer{SampleRate: b.SampleRate, Data: data}
}
