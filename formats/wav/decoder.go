// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/utils"
)

const pcmFormat = 1

// Decoder reads a whole 16-bit PCM WAV payload.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != pcmFormat || dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav samples: %w", err)
	}

	samples := make([]float32, len(ib.Data))
	for i, v := range ib.Data {
		samples[i] = utils.Int16ToFloat32(int16(v))
	}

	return audio.Deinterleave(samples, int(dec.SampleRate), int(dec.NumChans))
}
