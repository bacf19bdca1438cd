// SPDX-License-Identifier: EPL-2.0

// Package speech turns text into played audio.
//
// A Speaker asks a Synthesizer for audio, decodes the payload and hands the
// resulting audio.Buffer to a Sink:
//
//	synth, err := speech.NewGemini(speech.ConfigFromEnv(), nil)
//	speaker := speech.NewSpeaker(synth, sink)
//	err = speaker.Speak(ctx, "Fresh tomatoes are back in stock.")
//
// Payloads are base64 text. Their media type picks the decoder from
// DefaultRegistry; a payload with no media type is raw 16-bit PCM, mono at
// 24 kHz unless WithDefaultFormat says otherwise.
//
// When the service answers without audio, Render fails with
// audio.ErrEmptyPayload and the decoder is never invoked. When ctx is done
// before the payload arrives, Render returns the context error.
package speech
