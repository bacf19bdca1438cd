// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	ErrNoPath        = errors.New("wav sink has no path")
	ErrDeviceContext = errors.New("failed to create audio device context")
)
