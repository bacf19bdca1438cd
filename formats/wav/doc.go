// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV speech payloads and writes decoded audio to WAV files.
//
// Both directions go through github.com/go-audio/wav and support 16-bit PCM
// only, at any sample rate and channel count.
//
// # Decoding
//
//	buf, err := wav.Decoder{}.Decode(r)
//
// go-audio needs to seek, so a reader that is not an io.ReadSeeker is read
// into memory first. Non-WAV input fails with ErrNotWavFile and any other
// encoding with ErrOnlyPCM16bitSupported; both are kinds of
// audio.ErrInvalidAudioData.
//
// # Encoding
//
//	f, _ := os.Create("speech.wav")
//	err := wav.Encode(f, buf)
//
// Samples are quantized with round(x*32768), so a WAV written here decodes
// back to within one quantization step of the original buffer.
package wav
