// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF payloads.
//
// This package uses github.com/go-audio/aiff. AIFF stores samples big-endian,
// but go-audio hands them back as plain ints, so normalization matches the
// other formats: each sample is divided by 32768.
//
//	buf, err := aiff.Decoder{}.Decode(r)
//
// go-audio needs to seek; other readers are buffered in memory first.
//
// # Errors
//
//   - ErrNotAiffFile: not a FORM/AIFF container
//   - ErrOnlyPCM16bitSupported: any bit depth other than 16
//   - ErrUnsupportedAiffLayout: no usable channel layout
//
// All three are kinds of audio.ErrInvalidAudioData.
package aiff
