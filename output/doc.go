// SPDX-License-Identifier: EPL-2.0

// Package output holds the sinks decoded speech is handed to: the system
// audio device through oto, a WAV file on disk, or nowhere at all.
package output
