// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis speech payloads (audio/ogg).
//
// This package uses github.com/jfreymuth/oggvorbis, which already produces
// float32 samples in [-1, 1]; the decoder only de-interleaves them.
//
//	buf, err := vorbis.Decoder{}.Decode(r)
//
// The whole stream is decoded at once. Channel count and sample rate come
// from the stream headers.
package vorbis
