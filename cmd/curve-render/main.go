// Command curve-render renders a keyframed curve as a mono WAV control
// signal, so envelopes and modulation curves can be inspected in any audio
// editor.
//
// Usage:
//
//	curve-render -keys 0:0,0.1:1,0.5:0.3,2:0 -type catmullrom out.wav
//	curve-render -keys 0:-1,1:1 -type smoothstep -rate 8000 -duration 2 out.wav
//
// Key times are in seconds and values are amplitudes; after -gain the signal
// is clipped to [-1, 1].
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	animcurve "github.com/nicolasserrano/go-anim-curve"
)

const (
	defaultRate    = 48000
	defaultTension = 0.5
	defaultGain    = 1.0

	minSampleRate = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		keysSpec = flag.String("keys", "", "Comma-separated time:value keyframes, times in seconds")
		typeName = flag.String("type", "linear", "Interpolation type: step, linear, smoothstep, catmullrom, cardinal, cardinalstable")
		tension  = flag.Float64("tension", defaultTension, "Tension for the cardinal types")
		rate     = flag.Int("rate", defaultRate, "Output sample rate in Hz")
		duration = flag.Float64("duration", 0, "Rendered length in seconds (defaults to the last key time)")
		gain     = flag.Float64("gain", defaultGain, "Amplitude multiplier applied before clipping")
		verbose  = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 || *keysSpec == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] -keys t:v,t:v,... output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("missing -keys or output path")
	}
	outputPath := args[0]

	if *rate < minSampleRate {
		return fmt.Errorf("sample rate must be positive, got %d", *rate)
	}

	keys, err := parseKeys(*keysSpec)
	if err != nil {
		return fmt.Errorf("invalid -keys: %w", err)
	}

	typ, err := animcurve.ParseType(*typeName)
	if err != nil {
		return fmt.Errorf("invalid -type: %w", err)
	}

	curve, err := animcurve.New(typ, *tension, keys)
	if err != nil {
		return err
	}

	seconds := *duration
	if seconds <= 0 {
		seconds = keys[len(keys)-1].Time
	}
	if seconds <= 0 {
		return fmt.Errorf("nothing to render: duration is %v seconds", seconds)
	}

	numSamples := int(seconds * float64(*rate))
	samples := renderSamples(curve, *rate, numSamples, *gain)

	if *verbose {
		log.Printf("Rendering %d samples (%.3f s at %d Hz, %v interpolation)",
			numSamples, seconds, *rate, typ)
	}

	if err := writeWAV(outputPath, *rate, samples); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	if *verbose {
		log.Printf("Wrote %s", outputPath)
	}
	return nil
}

// renderSamples samples the curve at the output rate, applying gain and
// clipping to the [-1, 1] PCM range.
func renderSamples(c *animcurve.Curve, rate, numSamples int, gain float64) []float64 {
	interval := 1.0 / float64(rate)
	sampler := animcurve.NewSampler(c, 0, interval)

	samples := sampler.Sample(make([]float64, numSamples))
	for i, v := range samples {
		samples[i] = clip(v * gain)
	}
	return samples
}

func clip(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
