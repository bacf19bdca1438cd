// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/utils"
)

// Encode writes buf as a 16-bit PCM WAV, keeping its rate and channel layout.
// Samples are quantized the same way pcm.Encode does.
func Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	channels := buf.NumChannels()
	if channels == 0 {
		return audio.ErrInvalidChannelCount
	}
	if buf.SampleRate <= 0 {
		return audio.ErrInvalidSampleRate
	}

	inter := buf.Interleaved()
	data := make([]int, len(inter))
	for i, s := range inter {
		data[i] = int(utils.QuantizeInt16(s))
	}

	enc := wav.NewEncoder(w, buf.SampleRate, 16, channels, pcmFormat)

	err := enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	})
	if err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
