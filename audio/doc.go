// SPDX-License-Identifier: EPL-2.0

// Package audio holds the decoded audio model and the operations on it.
//
// # Buffer
//
// A Buffer is what every decoder in this module produces: one []float32 per
// channel, all the same length, plus the sample rate.
//
//	buf, err := pcm.Decode(raw, 24000, 1)
//	fmt.Println(buf.NumChannels(), buf.Frames(), buf.Duration())
//
// Interleaved returns the samples frame by frame, and Source streams them
// through the Source interface for sinks that pull audio in chunks.
//
// # Conversions
//
// Resample changes the sample rate with cubic interpolation. Downmix averages
// channels into mono and Remix adapts a buffer to a device channel count:
//
//	out, err := audio.Resample(buf, 48000)
//	out, err = audio.Remix(out, 2)
//
// # Format Registry
//
// The registry maps media types to decoder factories. Parameters in the media
// type reach the factory, which is how raw PCM learns its rate and layout:
//
//	registry := audio.NewRegistry()
//	registry.Register("audio/l16", pcm.NewDecoder)
//	dec, err := registry.Lookup("audio/L16;codec=pcm;rate=24000")
//	buf, err := dec.Decode(r)
//
// # Errors
//
// Every refusal to decode wraps ErrInvalidAudioData, so callers can test for
// the kind with errors.Is and for the exact cause with the specific sentinel.
package audio
