// SPDX-License-Identifier: EPL-2.0

package speech

import "errors"

var (
	ErrEmptyText        = errors.New("nothing to synthesize")
	ErrMissingAPIKey    = errors.New("missing API key")
	ErrUnexpectedStatus = errors.New("unexpected status from speech service")
)
