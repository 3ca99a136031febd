package fader_test

import (
	"fmt"

	"github.com/cwbudde/algo-fade/dsp/buffer"
	"github.com/cwbudde/algo-fade/dsp/core"
	"github.com/cwbudde/algo-fade/dsp/fader"
)

func ExampleMappedAmplitude() {
	for _, c := range []float64{0, 0.25, 0.5, 0.75, 1} {
		fmt.Printf("%.2f ", fader.MappedAmplitude(c, 0, 0.5, 0.5, 1))
	}
	fmt.Println()
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}

func ExampleFader() {
	settings := core.NewBlockSettings(core.WithFramesPerBlock(4))
	control, inStart, inEnd, outStart, outEnd := 0.5, 0.0, 1.0, 0.0, 1.0

	f, err := fader.New(settings, fader.Inputs{
		Audio:        buffer.FromSlice([]float64{1, 1, 1, 1}),
		Control:      &control,
		FadeInStart:  &inStart,
		FadeInEnd:    &inEnd,
		FadeOutStart: &outStart,
		FadeOutEnd:   &outEnd,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	f.Execute()
	fmt.Println(f.Output().Samples(), f.Amplitude())
	f.Execute()
	fmt.Println(f.Output().Samples())
	// Output:
	// [0 0.0625 0.125 0.1875] 0.25
	// [0.25 0.25 0.25 0.25]
}
