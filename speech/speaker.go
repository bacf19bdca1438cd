// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/pcm"
	"github.com/ik5/speechpcm/internal/metrics"
)

// Payload is synthesized audio as the service returns it: base64 text and,
// when the service says so, its media type.
type Payload struct {
	MIMEType string
	Data     string
}

// Synthesizer produces speech audio from text.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (Payload, error)
}

// Sink plays (or stores) decoded audio.
type Sink interface {
	Play(ctx context.Context, buf *audio.Buffer) error
}

// Speaker runs one text-to-speech request end to end: synthesize, decode,
// hand off to a sink. It holds no per-request state, so concurrent calls
// are independent.
type Speaker struct {
	synth    Synthesizer
	sink     Sink
	registry *audio.Registry
	logger   *slog.Logger

	sampleRate int
	channels   int
}

type Option func(*Speaker)

// WithRegistry replaces DefaultRegistry as the source of decoders.
func WithRegistry(r *audio.Registry) Option {
	return func(s *Speaker) { s.registry = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Speaker) { s.logger = l }
}

// WithDefaultFormat sets the raw PCM layout assumed for payloads that arrive
// without a media type. The default is mono at 24 kHz.
func WithDefaultFormat(sampleRate, channels int) Option {
	return func(s *Speaker) {
		s.sampleRate = sampleRate
		s.channels = channels
	}
}

func NewSpeaker(synth Synthesizer, sink Sink, opts ...Option) *Speaker {
	s := &Speaker{
		synth:      synth,
		sink:       sink,
		sampleRate: pcm.DefaultSampleRate,
		channels:   pcm.DefaultChannels,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Render synthesizes text and decodes the result without playing it.
// Each call counts once in speech_requests_total, "ok" on success.
func (s *Speaker) Render(ctx context.Context, text string) (*audio.Buffer, error) {
	buf, outcome, err := s.render(ctx, text, s.logger.With("request_id", uuid.NewString()))
	metrics.SpeechRequests.WithLabelValues(outcome).Inc()

	return buf, err
}

func (s *Speaker) render(ctx context.Context, text string, log *slog.Logger) (*audio.Buffer, string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, "empty_text", ErrEmptyText
	}

	start := time.Now()
	payload, err := s.synth.Synthesize(ctx, text)
	metrics.StageDuration.WithLabelValues("synthesize").Observe(time.Since(start).Seconds())
	if err != nil {
		log.Warn("speech_synthesis_failed", "error", err)
		return nil, "synthesis_error", fmt.Errorf("synthesizing speech: %w", err)
	}

	// A request aborted before its payload arrived never reaches the decoder.
	if err := ctx.Err(); err != nil {
		return nil, "cancelled", err
	}

	if strings.TrimSpace(payload.Data) == "" {
		log.Warn("speech_empty_payload", "mime_type", payload.MIMEType)
		return nil, "empty_payload", audio.ErrEmptyPayload
	}

	start = time.Now()

	dec, err := s.decoderFor(payload.MIMEType)
	if err != nil {
		if strings.TrimSpace(payload.MIMEType) == "" {
			// The configured default layout is unusable.
			return nil, "decode_error", err
		}
		return nil, "unsupported_format", err
	}

	raw, err := pcm.Unbase64(payload.Data)
	if err != nil {
		return nil, "decode_error", err
	}

	if d, ok := dec.(pcm.Decoder); ok {
		if _, dropped := pcm.Truncation(len(raw), d.Channels); dropped > 0 {
			metrics.TruncatedBytes.Add(float64(dropped))
			log.Debug("speech_pcm_truncated", "bytes", len(raw), "dropped_bytes", dropped, "channels", d.Channels)
		}
	}

	buf, err := dec.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "decode_error", fmt.Errorf("decoding speech: %w", err)
	}

	metrics.StageDuration.WithLabelValues("decode").Observe(time.Since(start).Seconds())
	metrics.AudioDuration.Observe(buf.Duration().Seconds())

	log.Debug("speech_decoded",
		"mime_type", payload.MIMEType,
		"sample_rate", buf.SampleRate,
		"channels", buf.NumChannels(),
		"frames", buf.Frames(),
		"duration_ms", buf.Duration().Milliseconds())

	return buf, "ok", nil
}

// Speak renders text and plays it on the sink. It counts once in
// speech_requests_total: "ok" only after the sink has played the audio.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	buf, outcome, err := s.render(ctx, text, s.logger.With("request_id", uuid.NewString()))
	if err != nil {
		metrics.SpeechRequests.WithLabelValues(outcome).Inc()
		return err
	}

	start := time.Now()
	err = s.sink.Play(ctx, buf)
	metrics.StageDuration.WithLabelValues("play").Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SpeechRequests.WithLabelValues("play_error").Inc()
		return fmt.Errorf("playing speech: %w", err)
	}

	metrics.SpeechRequests.WithLabelValues("ok").Inc()

	return nil
}

func (s *Speaker) decoderFor(mimeType string) (audio.Decoder, error) {
	if strings.TrimSpace(mimeType) == "" {
		if s.channels <= 0 {
			return nil, audio.ErrInvalidChannelCount
		}
		if s.sampleRate <= 0 {
			return nil, audio.ErrInvalidSampleRate
		}
		return pcm.Decoder{SampleRate: s.sampleRate, Channels: s.channels}, nil
	}

	dec, err := s.registry.Lookup(mimeType)
	if err != nil {
		return nil, fmt.Errorf("decoding speech: %w", err)
	}

	return dec, nil
}
