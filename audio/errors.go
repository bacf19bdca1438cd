// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAudioData is the kind shared by every decode refusal.
	// Use errors.Is against it to catch any of the more specific errors below.
	ErrInvalidAudioData = errors.New("invalid audio data")

	ErrInvalidChannelCount = fmt.Errorf("%w: channel count must be positive", ErrInvalidAudioData)
	ErrInvalidSampleRate   = fmt.Errorf("%w: sample rate must be positive", ErrInvalidAudioData)

	// ErrEmptyPayload is reported when synthesis produced no audio at all.
	// The decoder is never invoked in that case.
	ErrEmptyPayload = fmt.Errorf("%w: no audio produced", ErrInvalidAudioData)

	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrUnsupportedRemix  = errors.New("unsupported channel remix")
)
