// Command curve-sample evaluates a keyframed curve at uniformly spaced times
// and prints the samples as CSV.
//
// Usage:
//
//	curve-sample -keys 0:0,1:2,2:-1,3:1 -type catmullrom -n 50
//	curve-sample -keys 0:0,10:10 -type smoothstep -from -2 -to 12 -n 30
//	curve-sample -demo
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	animcurve "github.com/nicolasserrano/go-anim-curve"
)

const (
	defaultKeys    = "0:0,1:1"
	defaultType    = "linear"
	defaultTension = 0.5
	defaultSamples = 20

	// Demo layout
	demoSamples  = 21
	demoColWidth = 15
)

func main() {
	var (
		keysSpec = flag.String("keys", defaultKeys, "Comma-separated time:value keyframes, times strictly increasing")
		typeName = flag.String("type", defaultType, "Interpolation type: step, linear, smoothstep, catmullrom, cardinal, cardinalstable")
		tension  = flag.Float64("tension", defaultTension, "Tension for the cardinal types")
		from     = flag.Float64("from", 0, "Start of the sampled time range")
		to       = flag.Float64("to", 0, "End of the sampled time range (defaults to the last key time)")
		n        = flag.Int("n", defaultSamples, "Number of samples (minimum 2)")
		demo     = flag.Bool("demo", false, "Print a comparison of all interpolation types")
	)
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	keys, err := parseKeys(*keysSpec)
	if err != nil {
		log.Fatalf("Invalid -keys: %v", err)
	}

	typ, err := animcurve.ParseType(*typeName)
	if err != nil {
		log.Fatalf("Invalid -type: %v", err)
	}

	curve, err := animcurve.New(typ, *tension, keys)
	if err != nil {
		log.Fatalf("Invalid curve: %v", err)
	}

	t0, t1 := *from, *to
	if t1 == 0 && len(keys) > 0 {
		t1 = keys[len(keys)-1].Time
	}

	samples := animcurve.SampleRange(curve, t0, t1, *n)
	if samples == nil {
		log.Fatalf("Need at least 2 samples, got -n %d", *n)
	}

	fmt.Println("time,value")
	step := (t1 - t0) / float64(*n-1)
	for i, v := range samples {
		fmt.Printf("%g,%g\n", t0+step*float64(i), v)
	}
}

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

	return keys, nil
}

// runDemo samples one key set under every interpolation type, side by side.
func runDemo() {
	keys := []animcurve.Key{
		animcurve.K(0, 0), animcurve.K(1, 1), animcurve.K(2, 0.2),
		animcurve.K(3, 0.8), animcurve.K(4, 0),
	}

	types := []animcurve.Type{
		animcurve.Step, animcurve.Linear, animcurve.Smoothstep,
		animcurve.CatmullRom, animcurve.Cardinal, animcurve.CardinalStable,
	}

	curves := make([]*animcurve.Curve, len(types))
	for i, typ := range types {
		c, err := animcurve.New(typ, defaultTension, keys)
		if err != nil {
			log.Fatalf("Failed to build %v demo curve: %v", typ, err)
		}
		curves[i] = c
	}

	fmt.Printf("%-8s", "time")
	for _, typ := range types {
		fmt.Printf("%*s", demoColWidth, typ)
	}
	fmt.Println()

	t0 := keys[0].Time
	t1 := keys[len(keys)-1].Time
	step := (t1 - t0) / float64(demoSamples-1)

	samples := make([][]float64, len(curves))
	for i, c := range curves {
		samples[i] = animcurve.SampleRange(c, t0, t1, demoSamples)
	}

	for row := 0; row < demoSamples; row++ {
		fmt.Printf("%-8.2f", t0+step*float64(row))
		for i := range curves {
			fmt.Printf("%*.*f", demoColWidth, 4, samples[i][row])
		}
		fmt.Println()
	}
}
