// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"time"

	"github.com/ik5/speechpcm/internal/env"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash-preview-tts"
	DefaultVoice   = "Kore"
	DefaultTimeout = 30 * time.Second
)

// Config selects and authenticates the Gemini speech model.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Voice   string
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
		Voice:   DefaultVoice,
		Timeout: DefaultTimeout,
	}
}

// ConfigFromEnv reads GEMINI_API_KEY, GEMINI_BASE_URL, GEMINI_TTS_MODEL,
// GEMINI_TTS_VOICE and GEMINI_TIMEOUT over DefaultConfig.
func ConfigFromEnv() Config {
	def := DefaultConfig()

	return Config{
		APIKey:  env.Str("GEMINI_API_KEY", ""),
		BaseURL: env.Str("GEMINI_BASE_URL", def.BaseURL),
		Model:   env.Str("GEMINI_TTS_MODEL", def.Model),
		Voice:   env.Str("GEMINI_TTS_VOICE", def.Voice),
		Timeout: env.Duration("GEMINI_TIMEOUT", def.Timeout),
	}
}
