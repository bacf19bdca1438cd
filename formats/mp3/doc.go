// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 speech payloads, as returned by TTS services that
// answer with audio/mpeg.
//
// This package uses github.com/hajimehoshi/go-mp3. go-mp3 emits 16-bit
// little-endian interleaved stereo, which is handed as-is to pcm.Decode, so
// MP3 audio gets exactly the same normalization as raw PCM payloads.
//
//	buf, err := mp3.Decoder{}.Decode(r)
//
// # Output Format
//
//   - Channels: always 2 (use audio.Downmix for mono)
//   - Sample rate: whatever the stream declares
//   - Samples: float32 in [-1.0, 1.0)
//
// Input go-mp3 rejects fails with ErrNotMP3, a kind of audio.ErrInvalidAudioData.
package mp3
