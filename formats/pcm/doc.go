// SPDX-License-Identifier: EPL-2.0

// Package pcm decodes raw signed 16-bit little-endian PCM, the format speech
// synthesis services return as base64 text.
//
// # Decoding
//
// Decode takes the raw bytes plus the layout, which raw PCM does not carry:
//
//	buf, err := pcm.Decode(data, 24000, 1)
//
// Samples are interleaved as [f0c0, f0c1, ..., f1c0, ...] and come out
// de-interleaved, one slice per channel, each sample divided by 32768 so
// every value lies in [-1.0, 1.0).
//
// DecodeBase64 does the same starting from the base64 text:
//
//	buf, err := pcm.DecodeBase64(payload, pcm.DefaultSampleRate, pcm.DefaultChannels)
//
// # Lenient Truncation
//
// Input that does not end on a frame boundary is not an error. An odd final
// byte and any samples that do not complete a frame are ignored. Truncation
// reports how much would be dropped, for callers that want to log it.
//
// # Errors
//
// A channel count or sample rate that is not positive is refused with
// audio.ErrInvalidChannelCount or audio.ErrInvalidSampleRate. Empty input is
// not an error: it decodes to the requested channels with no frames.
//
// # Registry
//
// NewDecoder builds a Decoder from media type parameters, so raw PCM can be
// registered under "audio/l16" and looked up as "audio/L16;rate=24000".
package pcm
