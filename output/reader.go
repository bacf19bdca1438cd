// SPDX-License-Identifier: EPL-2.0

package output

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ik5/speechpcm/audio"
)

// framesPerRead is how many frames SourceReader pulls from the Source at a time.
const framesPerRead = 1024

// SourceReader exposes src as a stream of float32 little-endian bytes,
// interleaved, which is the layout oto.FormatFloat32LE expects.
func SourceReader(src audio.Source) io.Reader {
	channels := max(src.Channels(), 1)

	return &sourceReader{
		src:     src,
		samples: make([]float32, framesPerRead*channels),
		bytes:   make([]byte, 0, framesPerRead*channels*4),
	}
}

type sourceReader struct {
	src     audio.Source
	samples []float32
	bytes   []byte
	pending []byte
	err     error
}

func (r *sourceReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}

		n, err := r.src.ReadSamples(r.samples)
		if n == 0 && err == nil {
			err = io.ErrNoProgress
		}
		r.err = err

		r.bytes = r.bytes[:0]
		for _, s := range r.samples[:n] {
			r.bytes = binary.LittleEndian.AppendUint32(r.bytes, math.Float32bits(s))
		}
		r.pending = r.bytes
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]

	return n, nil
}
