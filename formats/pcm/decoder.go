// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/utils"
)

const (
	// DefaultSampleRate and DefaultChannels describe speech payloads that
	// arrive without a declared layout: mono at 24 kHz.
	DefaultSampleRate = 24000
	DefaultChannels   = 1

	// MediaType is raw 16-bit PCM (RFC 2586 names it big-endian, but speech
	// services use it for little-endian payloads, and so do we).
	MediaType    = "audio/l16"
	RawMediaType = "audio/pcm"

	bytesPerSample = 2
)

// Decode reinterprets data as signed 16-bit little-endian samples,
// interleaved over channels, and splits them into one normalized
// channel slice each. An odd trailing byte and samples that do not
// complete a frame are dropped; see Truncation.
func Decode(data []byte, sampleRate, channels int) (*audio.Buffer, error) {
	if channels <= 0 {
		return nil, audio.ErrInvalidChannelCount
	}
	if sampleRate <= 0 {
		return nil, audio.ErrInvalidSampleRate
	}

	frames, _ := Truncation(len(data), channels)

	buf, err := audio.NewBuffer(sampleRate, channels, frames)
	if err != nil {
		return nil, err
	}

	for c, ch := range buf.Data {
		for i := range frames {
			off := (i*channels + c) * bytesPerSample
			ch[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(data[off:])))
		}
	}

	return buf, nil
}

// DecodeBase64 decodes standard base64 text, then the PCM within it.
// Whitespace and line breaks in s are ignored.
func DecodeBase64(s string, sampleRate, channels int) (*audio.Buffer, error) {
	data, err := Unbase64(s)
	if err != nil {
		return nil, err
	}

	return Decode(data, sampleRate, channels)
}

// Unbase64 returns the bytes behind a base64 payload, ignoring whitespace.
func Unbase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(stripSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}

	return data, nil
}

// Truncation reports how many whole frames Decode will produce from byteLen
// bytes and how many trailing bytes it will ignore.
func Truncation(byteLen, channels int) (frames, droppedBytes int) {
	if channels <= 0 || byteLen <= 0 {
		return 0, max(byteLen, 0)
	}

	frames = byteLen / bytesPerSample / channels

	return frames, byteLen - frames*channels*bytesPerSample
}

func stripSpace(s string) string {
	if !strings.ContainsAny(s, " \t\r\n") {
		return s
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}

// Decoder reads a whole raw PCM stream of a fixed layout.
type Decoder struct {
	SampleRate int
	Channels   int
}

func (d Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading pcm data: %w", err)
	}

	return Decode(data, d.SampleRate, d.Channels)
}

// NewDecoder is an audio.Factory. It reads "rate" and "channels" from the
// media type parameters and falls back to DefaultSampleRate and
// DefaultChannels when they are absent.
func NewDecoder(params map[string]string) (audio.Decoder, error) {
	rate, err := intParam(params, "rate", DefaultSampleRate)
	if err != nil || rate <= 0 {
		return nil, fmt.Errorf("%w: rate=%q", audio.ErrInvalidSampleRate, params["rate"])
	}

	channels, err := intParam(params, "channels", DefaultChannels)
	if err != nil || channels <= 0 {
		return nil, fmt.Errorf("%w: channels=%q", audio.ErrInvalidChannelCount, params["channels"])
	}

	return Decoder{SampleRate: rate, Channels: channels}, nil
}

func intParam(params map[string]string, key string, fallback int) (int, error) {
	v, ok := params[key]
	if !ok || v == "" {
		return fallback, nil
	}

	return strconv.Atoi(v)
}
