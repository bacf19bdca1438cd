// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/speechpcm/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Decoder reads a whole Ogg Vorbis payload.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}

	return toBuffer(samples, format)
}

// toBuffer splits oggvorbis' interleaved output, which is already normalized
// to [-1,1], into a Buffer.
func toBuffer(samples []float32, format *oggvorbis.Format) (*audio.Buffer, error) {
	if format == nil {
		return nil, ErrNotVorbis
	}

	buf, err := audio.Deinterleave(samples, format.SampleRate, format.Channels)
	if err != nil {
		return nil, fmt.Errorf("vorbis stream: %w", err)
	}

	return buf, nil
}
