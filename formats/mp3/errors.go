// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/speechpcm/audio"
)

var (
	// ErrNotMP3 indicates go-mp3 could not find a valid frame header
	ErrNotMP3 = fmt.Errorf("%w: not an MP3 stream", audio.ErrInvalidAudioData)
)
