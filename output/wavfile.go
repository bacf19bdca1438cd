// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"fmt"
	"os"

	"github.com/ik5/speechpcm/audio"
	"github.com/ik5/speechpcm/formats/wav"
)

// WAVFile writes each buffer it plays to Path as 16-bit PCM WAV,
// replacing whatever was there.
type WAVFile struct {
	Path string
}

func (w WAVFile) Play(ctx context.Context, buf *audio.Buffer) error {
	if w.Path == "" {
		return ErrNoPath
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", w.Path, err)
	}

	if err := wav.Encode(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", w.Path, err)
	}

	return f.Close()
}
