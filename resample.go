// SPDX-License-Identifier: EPL-2.0

package speechpcm

import (
	"fmt"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/pcm"
	"github.com/ik5/speechpcm/utils"
)

// DecodeSpeech decodes a base64 speech payload in the service convention:
// 16-bit little-endian PCM, mono, 24000 Hz.
func DecodeSpeech(payload string) (*audio.Buffer, error) {
	return pcm.DecodeBase64(payload, pcm.DefaultSampleRate, pcm.DefaultChannels)
}

// ResampleToMono16 resamples buf to targetRate with cubic interpolation,
// averages its channels into mono and converts the result to 16-bit PCM.
// It returns the samples and the output rate.
func ResampleToMono16(buf *audio.Buffer, targetRate int) ([]int16, int, error) {
	mono, err := audio.Downmix(buf)
	if err != nil {
		return nil, targetRate, fmt.Errorf("downmix: %w", err)
	}

	out, err := audio.Resample(mono, targetRate)
	if err != nil {
		return nil, targetRate, fmt.Errorf("resample: %w", err)
	}

	samples := out.Data[0]
	pcm16 := make([]int16, len(samples))
	for i, s := range samples {
		pcm16[i] = utils.Float32ToInt16(s)
	}

	return pcm16, targetRate, nil
}
