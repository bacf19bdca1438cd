// SPDX-License-Identifier: EPL-2.0

package audio

// Downmix averages all channels of buf into a single channel.
func Downmix(buf *Buffer) (*Buffer, error) {
	channels := buf.NumChannels()
	if channels == 0 {
		return nil, ErrInvalidChannelCount
	}
	if channels == 1 {
		return buf.clone(), nil
	}

	frames := buf.Frames()
	out := &Buffer{SampleRate: buf.SampleRate, Data: [][]float32{make([]float32, frames)}}
	mono := out.Data[0]

	// Unrolled for stereo, the common case.
	if channels == 2 {
		l, r := buf.Data[0], buf.Data[1]
		for i := range frames {
			mono[i] = (l[i] + r[i]) * 0.5
		}
		return out, nil
	}

	invChannels := float32(1.0) / float32(channels)
	for i := range frames {
		sum := float32(0)
		for _, ch := range buf.Data {
			sum += ch[i]
		}
		mono[i] = sum * invChannels
	}

	return out, nil
}

// Remix converts buf to the given channel count. Mono fans out to any count,
// anything folds down to mono; other layouts are refused with ErrUnsupportedRemix.
func Remix(buf *Buffer, channels int) (*Buffer, error) {
	if channels <= 0 || buf.NumChannels() == 0 {
		return nil, ErrInvalidChannelCount
	}

	switch {
	case buf.NumChannels() == channels:
		return buf.clone(), nil
	case channels == 1:
		return Downmix(buf)
	case buf.NumChannels() == 1:
		data := make([][]float32, channels)
		for c := range data {
			data[c] = append([]float32(nil), buf.Data[0]...)
		}
		return &Buffer{SampleRate: buf.SampleRate, Data: data}, nil
	default:
		return nil, ErrUnsupportedRemix
	}
}
