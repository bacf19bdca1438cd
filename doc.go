// SPDX-License-Identifier: EPL-2.0

// Package speechpcm turns synthesized speech into playable audio.
//
// Speech services such as Gemini answer with base64 text holding raw 16-bit
// little-endian PCM, mono at 24000 Hz. DecodeSpeech turns that text into an
// audio.Buffer of float32 samples in [-1,1):
//
//	buf, err := speechpcm.DecodeSpeech(payload)
//	if err != nil {
//		return err
//	}
//
// The decoding rules are strict about arguments and lenient about length:
// an odd trailing byte and an incomplete final frame are dropped silently.
// A channel count below one fails with audio.ErrInvalidChannelCount, and
// every decode refusal matches audio.ErrInvalidAudioData with errors.Is.
//
// # Packages
//
//   - audio: Buffer, Source, the media-type Registry, Resample, Downmix, Remix
//   - formats/pcm: the raw PCM decoder and its inverse
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: container decoders
//   - speech: the Synthesizer contract, the Gemini client and Speaker
//   - output: sinks for the audio device (oto), WAV files and Discard
//
// # Telephony and ASR
//
// ResampleToMono16 reshapes decoded speech for consumers that want a fixed
// mono rate, such as an 8 kHz PBX leg or a 16 kHz recognizer:
//
//	pcm16, rate, err := speechpcm.ResampleToMono16(buf, 8000)
package speechpcm
