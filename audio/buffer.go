// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// Buffer is decoded audio: one sample slice per channel, all of the same
// length, each sample a float32 amplitude in [-1,1].
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// NewBuffer allocates a zeroed buffer of frames per channel.
func NewBuffer(sampleRate, channels, frames int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannelCount
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	return &Buffer{SampleRate: sampleRate, Data: data}, nil
}

// Deinterleave splits interleaved samples into a Buffer. Trailing samples
// that do not make up a whole frame are dropped.
func Deinterleave(samples []float32, sampleRate, channels int) (*Buffer, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannelCount
	}

	buf, err := NewBuffer(sampleRate, channels, len(samples)/channels)
	if err != nil {
		return nil, err
	}

	frames := buf.Frames()
	for c := range channels {
		ch := buf.Data[c]
		for i := range frames {
			ch[i] = samples[i*channels+c]
		}
	}

	return buf, nil
}

func (b *Buffer) NumChannels() int { return len(b.Data) }

// Frames is the per-channel sample count.
func (b *Buffer) Frames() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// Interleaved returns the samples as [f0c0, f0c1, ..., f1c0, ...].
func (b *Buffer) Interleaved() []float32 {
	channels := b.NumChannels()
	frames := b.Frames()
	out := make([]float32, frames*channels)

	for c, ch := range b.Data {
		for i := range frames {
			out[i*channels+c] = ch[i]
		}
	}

	return out
}

// Source streams the buffer as interleaved samples.
func (b *Buffer) Source() Source {
	return &bufferSource{buf: b}
}

type bufferSource struct {
	buf   *Buffer
	frame int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.NumChannels() }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	channels := s.buf.NumChannels()
	if channels == 0 {
		return 0, io.EOF
	}
	if len(dst)%channels != 0 {
		return 0, ErrInvalidDstSize
	}

	remaining := s.buf.Frames() - s.frame
	if remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/channels, remaining)
	for i := range frames {
		for c, ch := range s.buf.Data {
			dst[i*channels+c] = ch[s.frame+i]
		}
	}
	s.frame += frames

	if s.frame >= s.buf.Frames() {
		return frames * channels, io.EOF
	}

	return frames * channels, nil
}
