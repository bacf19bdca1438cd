// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/speechpcm/audio"
)

var (
	// ErrNotWavFile indicates the payload is not a RIFF/WAVE file
	ErrNotWavFile = fmt.Errorf("%w: not a WAV file", audio.ErrInvalidAudioData)

	// ErrOnlyPCM16bitSupported indicates a compressed, float or non 16-bit payload
	ErrOnlyPCM16bitSupported = fmt.Errorf("%w: only PCM 16-bit WAV is supported", audio.ErrInvalidAudioData)
)
