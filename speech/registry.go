// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/aiff"
	"github.com/ik5/speechpcm/formats/mp3"
	"github.com/ik5/speechpcm/formats/pcm"
	"github.com/ik5/speechpcm/formats/vorbis"
	"github.com/ik5/speechpcm/formats/wav"
)

// DefaultRegistry knows every payload format this module can decode, under
// the media types speech services use for them.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register(pcm.MediaType, pcm.NewDecoder)
	reg.Register(pcm.RawMediaType, pcm.NewDecoder)

	for _, mt := range []string{"audio/wav", "audio/x-wav", "audio/wave", "audio/vnd.wave"} {
		reg.Register(mt, audio.Static(wav.Decoder{}))
	}
	for _, mt := range []string{"audio/mpeg", "audio/mp3"} {
		reg.Register(mt, audio.Static(mp3.Decoder{}))
	}
	for _, mt := range []string{"audio/ogg", "audio/vorbis"} {
		reg.Register(mt, audio.Static(vorbis.Decoder{}))
	}
	for _, mt := range []string{"audio/aiff", "audio/x-aiff"} {
		reg.Register(mt, audio.Static(aiff.Decoder{}))
	}

	return reg
}
