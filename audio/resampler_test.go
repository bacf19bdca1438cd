// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/internal/audiotest"
)

func TestResample_FrameCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		srcRate    int
		dstRate    int
		frames     int
		wantFrames int
	}{
		{name: "speech to telephony", srcRate: 24000, dstRate: 8000, frames: 24000, wantFrames: 8000},
		{name: "speech to device", srcRate: 24000, dstRate: 48000, frames: 2400, wantFrames: 4800},
		{name: "cd to wideband", srcRate: 44100, dstRate: 16000, frames: 44100, wantFrames: 16000},
		{name: "rounds up", srcRate: 24000, dstRate: 8000, frames: 10, wantFrames: 4},
		{name: "same rate", srcRate: 16000, dstRate: 16000, frames: 123, wantFrames: 123},
		{name: "empty", srcRate: 24000, dstRate: 48000, frames: 0, wantFrames: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.SineBuffer(tt.srcRate, 2, tt.frames, 440)

			out, err := audio.Resample(src, tt.dstRate)
			if err != nil {
				t.Fatalf("Resample() error = %v", err)
			}

			if out.SampleRate != tt.dstRate {
				t.Errorf("SampleRate = %d, want %d", out.SampleRate, tt.dstRate)
			}
			if out.NumChannels() != 2 {
				t.Errorf("NumChannels() = %d, want 2", out.NumChannels())
			}
			if out.Frames() != tt.wantFrames {
				t.Errorf("Frames() = %d, want %d", out.Frames(), tt.wantFrames)
			}
		})
	}
}

func TestResample_ConstantPreserved(t *testing.T) {
	t.Parallel()

	for _, dst := range []int{8000, 16000, 48000} {
		out, err := audio.Resample(audiotest.ConstantBuffer(24000, 1, 2400, 0.5), dst)
		if err != nil {
			t.Fatalf("Resample(%d) error = %v", dst, err)
		}

		for i, s := range out.Data[0] {
			if math.Abs(float64(s-0.5)) > 1e-5 {
				t.Fatalf("Resample(%d): sample %d = %v, want 0.5", dst, i, s)
			}
		}
	}
}

func TestResample_UpsampleKeepsSourceSamples(t *testing.T) {
	t.Parallel()

	src := audiotest.SineBuffer(8000, 1, 800, 200)

	out, err := audio.Resample(src, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	// Every second output frame lands exactly on a source frame.
	for i := range src.Frames() {
		if got, want := out.Data[0][2*i], src.Data[0][i]; math.Abs(float64(got-want)) > 1e-6 {
			t.Fatalf("out[%d] = %v, want src[%d] = %v", 2*i, got, i, want)
		}
	}
}

func TestResample_DoesNotAlias(t *testing.T) {
	t.Parallel()

	src := audiotest.ConstantBuffer(16000, 1, 10, 0.1)

	out, err := audio.Resample(src, 16000)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	out.Data[0][0] = 0.9
	if src.Data[0][0] != 0.1 {
		t.Error("Resample() at the same rate shares storage with its input")
	}
}

func TestResample_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := audio.Resample(audiotest.SilentBuffer(8000, 1, 10), 0); !errors.Is(err, audio.ErrInvalidSampleRate) {
		t.Errorf("Resample(rate 0) error = %v, want ErrInvalidSampleRate", err)
	}

	if _, err := audio.Resample(&audio.Buffer{SampleRate: 8000}, 16000); !errors.Is(err, audio.ErrInvalidChannelCount) {
		t.Errorf("Resample(no channels) error = %v, want ErrInvalidChannelCount", err)
	}
}

func TestDownmix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data [][]float32
		want []float32
	}{
		{name: "mono passthrough", data: [][]float32{{0.1, 0.2}}, want: []float32{0.1, 0.2}},
		{name: "stereo", data: [][]float32{{1, 0.5}, {0, -0.5}}, want: []float32{0.5, 0}},
		{name: "quad", data: [][]float32{{1}, {1}, {0}, {0}}, want: []float32{0.5}},
		{name: "three channels", data: [][]float32{{0.3}, {0.3}, {0.3}}, want: []float32{0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := audio.Downmix(&audio.Buffer{SampleRate: 8000, Data: tt.data})
			if err != nil {
				t.Fatalf("Downmix() error = %v", err)
			}

			if out.NumChannels() != 1 {
				t.Fatalf("NumChannels() = %d, want 1", out.NumChannels())
			}
			for i, want := range tt.want {
				if math.Abs(float64(out.Data[0][i]-want)) > 1e-6 {
					t.Errorf("sample %d = %v, want %v", i, out.Data[0][i], want)
				}
			}
		})
	}
}

func TestRemix(t *testing.T) {
	t.Parallel()

	mono := audiotest.RampBuffer(8000, 1, 10)

	stereo, err := audio.Remix(mono, 2)
	if err != nil {
		t.Fatalf("Remix(mono, 2) error = %v", err)
	}
	for c := range 2 {
		for i := range mono.Data[0] {
			if stereo.Data[c][i] != mono.Data[0][i] {
				t.Fatalf("channel %d sample %d = %v, want %v", c, i, stereo.Data[c][i], mono.Data[0][i])
			}
		}
	}

	back, err := audio.Remix(stereo, 1)
	if err != nil {
		t.Fatalf("Remix(stereo, 1) error = %v", err)
	}
	if back.NumChannels() != 1 || back.Data[0][3] != mono.Data[0][3] {
		t.Errorf("Remix(stereo, 1) = %v, want %v", back.Data, mono.Data)
	}

	if _, err := audio.Remix(stereo, 6); !errors.Is(err, audio.ErrUnsupportedRemix) {
		t.Errorf("Remix(stereo, 6) error = %v, want ErrUnsupportedRemix", err)
	}
	if _, err := audio.Remix(stereo, 0); !errors.Is(err, audio.ErrInvalidChannelCount) {
		t.Errorf("Remix(stereo, 0) error = %v, want ErrInvalidChannelCount", err)
	}
}

func BenchmarkResample(b *testing.B) {
	src := audiotest.SineBuffer(24000, 1, 24000, 440)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		_, _ = audio.Resample(src, 48000)
	}
}
