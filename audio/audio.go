// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"mime"
	"strings"
	"sync"
)

// Source streams interleaved samples, typically out of a Buffer.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder turns an encoded payload into a de-interleaved Buffer.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Factory builds a Decoder from the parameters of a media type,
// e.g. rate and channels out of "audio/L16;rate=24000;channels=1".
type Factory func(params map[string]string) (Decoder, error)

// Static wraps a parameterless decoder as a Factory.
func Static(d Decoder) Factory {
	return func(map[string]string) (Decoder, error) {
		return d, nil
	}
}

// Registry maps media types (e.g., "audio/wav", "audio/l16") to decoder factories.
type Registry struct {
	factories map[string]Factory

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		mtx:       &sync.Mutex{},
	}
}

// Register binds mediaType to f. Media types are matched case-insensitively.
func (r *Registry) Register(mediaType string, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.factories[strings.ToLower(strings.TrimSpace(mediaType))] = f
}

// Lookup parses mimeType, including its parameters, and builds the matching decoder.
func (r *Registry) Lookup(mimeType string) (Decoder, error) {
	mediaType, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedFormat, mimeType, err)
	}

	r.mtx.Lock()
	f, ok := r.factories[mediaType]
	r.mtx.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaType)
	}

	d, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mediaType, err)
	}

	return d, nil
}

// MediaTypes lists every registered media type.
func (r *Registry) MediaTypes() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	types := make([]string, 0, len(r.factories))
	for k := range r.factories {
		types = append(types, k)
	}

	return types
}
