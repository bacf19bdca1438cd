// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	"github.com/ik5/speechpcm/audio"
)

var (
	// ErrInvalidBase64 indicates the payload text is not valid base64
	ErrInvalidBase64 = fmt.Errorf("%w: malformed base64 payload", audio.ErrInvalidAudioData)
)
