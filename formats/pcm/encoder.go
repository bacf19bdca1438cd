// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/utils"
)

// Encode interleaves buf and writes it as signed 16-bit little-endian PCM,
// quantizing each sample to round(x*32768). Decode(Encode(buf)) reproduces
// buf within one quantization step.
func Encode(buf *audio.Buffer) []byte {
	channels := buf.NumChannels()
	frames := buf.Frames()
	out := make([]byte, frames*channels*bytesPerSample)

	for c, ch := range buf.Data {
		for i := range frames {
			off := (i*channels + c) * bytesPerSample
			binary.LittleEndian.PutUint16(out[off:], uint16(utils.QuantizeInt16(ch[i])))
		}
	}

	return out
}
