package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	animcurve "github.com/nicolasserrano/go-anim-curve"
)

const (
	bitsPerSample = 16
	monoChannels  = 1
	maxInt16      = 32767.0

	// WAV audio format tag for integer PCM
	wavFormatPCM = 1
)

// parseKeys parses a "time:value,time:value,..." keyframe list.
func parseKeys(spec string) ([]animcurve.Key, error) {
	parts := strings.Split(spec, ",")
	keys := make([]animcurve.Key, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tv := strings.SplitN(part, ":", 2)
		if len(tv) != 2 {
			return nil, fmt.Errorf("keyframe %q is not of the form time:value", part)
		}

		t, err := strconv.ParseFloat(tv[0], 64)
		if err != nil {
			return nil, fmt.Errorf("keyframe %q: bad time: %w", part, err)
		}

		v, err := strconv.ParseFloat(tv[1], 64)
		if err != nil {
			return nil, fmt.Errorf("keyframe %q: bad value: %w", part, err)
		}

		keys = append(keys, animcurve.K(t, v))
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("no keyframes in %q", spec)
	}

	return keys, nil
}

// writeWAV writes samples in [-1, 1] as 16-bit mono PCM.
func writeWAV(path string, rate int, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, rate, bitsPerSample, monoChannels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  rate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitsPerSample,
	}
	for i, v := range samples {
		buf.Data[i] = int(math.Round(v * maxInt16))
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}

	if err := enc.Close(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
