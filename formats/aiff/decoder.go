// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/utils"
)

const chunkSize = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder reads a whole 16-bit PCM AIFF payload.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	return decodeAll(dec)
}

// decodeAll drains dec in chunks and de-interleaves the result.
func decodeAll(dec aiffReader) (*audio.Buffer, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	chunk := &goaudio.IntBuffer{Data: make([]int, chunkSize), Format: format}
	var samples []float32

	for {
		chunk.Data = chunk.Data[:cap(chunk.Data)]

		n, err := dec.PCMBuffer(chunk)
		for _, v := range chunk.Data[:n] {
			samples = append(samples, utils.Int16ToFloat32(int16(v)))
		}

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding aiff samples: %w", err)
		}
	}

	return audio.Deinterleave(samples, format.SampleRate, format.NumChannels)
}
