// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/aiff"
	"github.com/ik5/speechpcm/formats/mp3"
	"github.com/ik5/speechpcm/formats/pcm"
	"github.com/ik5/speechpcm/formats/vorbis"
	"github.com/ik5/speechpcm/formats/wav"
	"github.com/ik5/speechpcm/internal/audiotest"
)

func TestDefaultRegistry_Types(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()

	tests := []struct {
		mimeType string
		check    func(audio.Decoder) bool
	}{
		{"audio/L16;codec=pcm;rate=24000", func(d audio.Decoder) bool { _, ok := d.(pcm.Decoder); return ok }},
		{"audio/pcm", func(d audio.Decoder) bool { _, ok := d.(pcm.Decoder); return ok }},
		{"audio/wav", func(d audio.Decoder) bool { _, ok := d.(wav.Decoder); return ok }},
		{"audio/x-wav", func(d audio.Decoder) bool { _, ok := d.(wav.Decoder); return ok }},
		{"audio/mpeg", func(d audio.Decoder) bool { _, ok := d.(mp3.Decoder); return ok }},
		{"audio/ogg; codecs=vorbis", func(d audio.Decoder) bool { _, ok := d.(vorbis.Decoder); return ok }},
		{"audio/aiff", func(d audio.Decoder) bool { _, ok := d.(aiff.Decoder); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			t.Parallel()

			dec, err := reg.Lookup(tt.mimeType)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if !tt.check(dec) {
				t.Errorf("Lookup(%q) = %T", tt.mimeType, dec)
			}
		})
	}

	if _, err := reg.Lookup("video/mp4"); !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("Lookup(video/mp4) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDefaultRegistry_WAVPayload(t *testing.T) {
	t.Parallel()

	src := audiotest.SineBuffer(22050, 1, 2205, 330)

	path := filepath.Join(t.TempDir(), "payload.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := wav.Encode(f, src); err != nil {
		t.Fatalf("wav.Encode() error = %v", err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	dec, err := DefaultRegistry().Lookup("audio/wav")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	buf, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if buf.SampleRate != 22050 || buf.Frames() != 2205 {
		t.Errorf("Decode() = %d Hz %d frames, want 22050 Hz 2205 frames", buf.SampleRate, buf.Frames())
	}
}
