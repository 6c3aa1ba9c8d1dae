// Package audio synthesizes the notification chime served to pages.
package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"github.com/pkg/errors"
)

// ChimeSpec describes a single sine tone that glides from StartHz to EndHz
// and then holds while its gain decays exponentially.
type ChimeSpec struct {
	SampleRate int
	Duration   time.Duration
	StartHz    float64
	EndHz      float64
	Glide      time.Duration
	StartGain  float64
	EndGain    float64
}

// DefaultChime is the two-tone ascending C5 to E5 cue.
var DefaultChime = ChimeSpec{
	SampleRate: 22050,
	Duration:   300 * time.Millisecond,
	StartHz:    523.25,
	EndHz:      659.25,
	Glide:      100 * time.Millisecond,
	StartGain:  0.1,
	EndGain:    0.01,
}

const (
	bitsPerSample = 16
	channels      = 1
	wavHeaderSize = 44
)

// Samples renders the tone as signed 16-bit PCM.
func (s ChimeSpec) Samples() []int16 {
	n := int(math.Round(float64(s.SampleRate) * s.Duration.Seconds()))
	out := make([]int16, n)

	glide := s.Glide.Seconds()
	total := s.Duration.Seconds()
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(s.SampleRate)

		freq := s.EndHz
		if t < glide {
			freq = s.StartHz * math.Pow(s.EndHz/s.StartHz, t/glide)
		}
		gain := s.StartGain * math.Pow(s.EndGain/s.StartGain, t/total)

		out[i] = int16(math.Round(gain * math.Sin(phase) * math.MaxInt16))
		phase += 2 * math.Pi * freq / float64(s.SampleRate)
	}

	return out
}

// WAV encodes the tone as a RIFF/WAVE PCM file.
func (s ChimeSpec) WAV() ([]byte, error) {
	samples := s.Samples()
	dataSize := len(samples) * bitsPerSample / 8
	byteRate := s.SampleRate * channels * bitsPerSample / 8

	buf := bytes.NewBuffer(make([]byte, 0, wavHeaderSize+dataSize))
	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(36 + dataSize),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(1), // PCM
		uint16(channels),
		uint32(s.SampleRate),
		uint32(byteRate),
		uint16(channels * bitsPerSample / 8),
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		uint32(dataSize),
	}
	for _, field := range header {
		if err := binary.Write(buf, binary.LittleEndian, field); err != nil {
			return nil, errors.Wrap(err, "write wav header")
		}
	}

	if err := binary.Write(buf, binary.LittleEndian, samples); err != nil {
		return nil, errors.Wrap(err, "write wav samples")
	}

	return buf.Bytes(), nil
}
