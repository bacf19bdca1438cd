// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/speechpcm/audio"
)

// pollInterval is how often Play checks whether the player has drained.
const pollInterval = 10 * time.Millisecond

// oto allows a single context per process, so every Oto sink shares it.
var device struct {
	once     sync.Once
	ctx      *oto.Context
	err      error
	rate     int
	channels int
}

func openDevice(rate, channels int) (*oto.Context, int, int, error) {
	device.once.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: channels,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			device.err = fmt.Errorf("%w: %w", ErrDeviceContext, err)
			return
		}
		<-ready

		device.ctx = ctx
		device.rate = rate
		device.channels = channels
	})

	return device.ctx, device.rate, device.channels, device.err
}

// Oto plays buffers on the default audio device. Buffers are remixed and
// resampled to the device format before playback.
type Oto struct {
	sampleRate int
	channels   int
	volume     atomic.Int32
	logger     *slog.Logger
}

// NewOto describes the device format to request. The format only takes
// effect for the first sink to play; later sinks share that device.
func NewOto(sampleRate, channels int, logger *slog.Logger) *Oto {
	if logger == nil {
		logger = slog.Default()
	}

	o := &Oto{sampleRate: sampleRate, channels: channels, logger: logger}
	o.volume.Store(100)

	return o
}

// SetVolume sets the playback volume, clamped to 0..100.
func (o *Oto) SetVolume(volume int) {
	o.volume.Store(int32(clampVolume(volume)))
}

func (o *Oto) Volume() int {
	return int(o.volume.Load())
}

// Play blocks until buf has been played or ctx is done. On cancellation the
// player is paused and ctx.Err() returned.
func (o *Oto) Play(ctx context.Context, buf *audio.Buffer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	otoCtx, rate, channels, err := openDevice(o.sampleRate, o.channels)
	if err != nil {
		return err
	}
	if rate != o.sampleRate || channels != o.channels {
		o.logger.Warn("audio_device_format_mismatch",
			"requested_rate", o.sampleRate, "requested_channels", o.channels,
			"device_rate", rate, "device_channels", channels)
	}

	out, err := toDeviceFormat(buf, rate, channels)
	if err != nil {
		return err
	}

	player := otoCtx.NewPlayer(SourceReader(out.Source()))
	defer player.Close()

	player.SetVolume(float64(o.Volume()) / 100)
	player.Play()

	o.logger.Debug("playback_started", "rate", rate, "channels", channels, "duration", out.Duration())

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := player.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	return nil
}

func toDeviceFormat(buf *audio.Buffer, rate, channels int) (*audio.Buffer, error) {
	out, err := audio.Remix(buf, channels)
	if err != nil {
		return nil, err
	}

	return audio.Resample(out, rate)
}

func clampVolume(volume int) int {
	return min(max(volume, 0), 100)
}
