// SPDX-License-Identifier: EPL-2.0

package pcm_test

import (
	"encoding/base64"
	"fmt"

	"github.com/ik5/speechpcm/formats/pcm"
)

// Example_decode decodes two mono samples: 0 and 32767.
func Example_decode() {
	buf, err := pcm.Decode([]byte{0x00, 0x00, 0xFF, 0x7F}, 24000, 1)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("%d channel, %d frames at %d Hz\n", buf.NumChannels(), buf.Frames(), buf.SampleRate)
	fmt.Printf("%.6f %.6f\n", buf.Data[0][0], buf.Data[0][1])
	// Output:
	// 1 channel, 2 frames at 24000 Hz
	// 0.000000 0.999969
}

// Example_decodeBase64 decodes a stereo payload delivered as base64 text.
func Example_decodeBase64() {
	// int16 samples 100, -100, 200, -200 interleaved over two channels
	raw := []byte{0x64, 0x00, 0x9C, 0xFF, 0xC8, 0x00, 0x38, 0xFF}
	payload := base64.StdEncoding.EncodeToString(raw)

	buf, err := pcm.DecodeBase64(payload, 24000, 2)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	for c, ch := range buf.Data {
		fmt.Printf("channel %d: %.0f %.0f\n", c, ch[0]*32768, ch[1]*32768)
	}
	// Output:
	// channel 0: 100 200
	// channel 1: -100 -200
}

// Example_truncation shows the lenient handling of a stray trailing byte.
func Example_truncation() {
	data := []byte{0x00, 0x40, 0x7F}

	frames, dropped := pcm.Truncation(len(data), 1)
	buf, _ := pcm.Decode(data, 24000, 1)

	fmt.Printf("frames=%d dropped=%d first=%.2f\n", frames, dropped, buf.Data[0][0])
	// Output: frames=1 dropped=1 first=0.50
}
