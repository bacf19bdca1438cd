// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"

	"github.com/ik5/speechpcm/audio"
)

// Discard drops everything it is given. Useful for dry runs.
type Discard struct{}

func (Discard) Play(ctx context.Context, _ *audio.Buffer) error {
	return ctx.Err()
}
