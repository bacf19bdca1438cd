// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"

	"github.com/ik5/speechpcm/audio"
)

var (
	// ErrNotVorbis indicates the payload is not a decodable Ogg Vorbis stream
	ErrNotVorbis = fmt.Errorf("%w: not an Ogg Vorbis stream", audio.ErrInvalidAudioData)
)
