// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/pcm"
)

// go-mp3 always produces 16-bit little-endian stereo.
const outputChannels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder reads a whole MP3 payload.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	return decodeAll(dec)
}

// decodeAll drains dec and hands its PCM output to the raw decoder.
func decodeAll(dec mp3Reader) (*audio.Buffer, error) {
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 frames: %w", err)
	}

	return pcm.Decode(data, dec.SampleRate(), outputChannels)
}
