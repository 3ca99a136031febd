package main

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-fade/dsp/buffer"
	"github.com/cwbudde/algo-fade/dsp/core"
	"github.com/cwbudde/algo-fade/dsp/crossfade"
	"github.com/cwbudde/algo-fade/dsp/envelope"
	"github.com/cwbudde/algo-fade/dsp/fader"
	"github.com/cwbudde/algo-fade/dsp/signal"
	"github.com/cwbudde/algo-fade/dsp/trigger"
	"github.com/cwbudde/algo-fade/measure/click"
)

func runScenario(cfg config, mode string) (result, error) {
	switch mode {
	case "envelope-in":
		return envelopeScenario(cfg, envelope.FadeIn)
	case "envelope-out":
		return envelopeScenario(cfg, envelope.FadeOut)
	case "crossfade":
		return crossfadeScenario(cfg)
	case "pair":
		return pairScenario(cfg)
	case "fader":
		return faderScenario(cfg)
	default:
		return result{}, fmt.Errorf("unknown mode %q", mode)
	}
}

// execute runs one block of each processor in order.
func execute(procs ...core.Processor) {
	for _, p := range procs {
		p.Execute()
	}
}

// oscillators builds n sources at harmonics of the base frequency and one
// pooled input block per source.
func oscillators(cfg config, pool *buffer.Pool, n int) ([]*signal.Oscillator, []*buffer.Block, error) {
	oscs := make([]*signal.Oscillator, n)
	blocks := make([]*buffer.Block, n)
	for i := range oscs {
		osc, err := signal.NewOscillator(cfg.settings, cfg.freq*float64(i+1), signal.WithAmplitude(0.5))
		if err != nil {
			return nil, nil, err
		}
		oscs[i] = osc
		blocks[i] = pool.Get()
	}

	return oscs, blocks, nil
}

func pull(oscs []*signal.Oscillator, blocks []*buffer.Block) {
	for i, osc := range oscs {
		blocks[i].CopyFrom(osc.Next().Samples())
	}
}

func release(pool *buffer.Pool, blocks []*buffer.Block) {
	for _, b := range blocks {
		pool.Put(b)
	}
}

func (c config) blockTime(b int) string {
	return f4(float64(b) * c.settings.BlockDuration())
}

func envelopeScenario(cfg config, dir envelope.Direction) (result, error) {
	frames := cfg.settings.FramesPerBlock
	start, err := trigger.New(frames)
	if err != nil {
		return result{}, err
	}
	reset, err := trigger.New(frames)
	if err != nil {
		return result{}, err
	}

	duration := cfg.duration
	gen, err := envelope.New(cfg.settings, dir, envelope.Inputs{Start: start, Reset: reset, Duration: &duration})
	if err != nil {
		return result{}, err
	}

	pool := buffer.NewPool(frames)
	oscs, in, err := oscillators(cfg, pool, 1)
	if err != nil {
		return result{}, err
	}
	defer release(pool, in)

	// A [0, 1] fade-in range and an unreachable fade-out range make the
	// fader's amplitude equal the envelope value.
	inStart, inEnd, outStart, outEnd := 0.0, 1.0, 2.0, 3.0
	f, err := fader.New(cfg.settings, fader.Inputs{
		Audio:        in[0],
		Control:      gen.Output(),
		FadeInStart:  &inStart,
		FadeInEnd:    &inEnd,
		FadeOutStart: &outStart,
		FadeOutEnd:   &outEnd,
	})
	if err != nil {
		return result{}, err
	}

	r := result{
		name:   dir.String(),
		header: []string{"block", "time", "envelope", "started", "finished", "peak", "peak_db"},
	}

	for b := range cfg.blockCount() {
		start.AdvanceBlock()
		reset.AdvanceBlock()
		if b == 1 {
			start.TriggerFrame(0)
		}

		pull(oscs, in)
		execute(gen, f)

		out := f.Output()
		r.audio = append(r.audio, out.Samples()...)
		r.addRow(
			strconv.Itoa(b),
			cfg.blockTime(b),
			f4(gen.Value()),
			frameCell(gen.Started().Scan()),
			frameCell(gen.Finished().Scan()),
			f4(out.Peak()),
			f4(core.LinearToDB(out.Peak())),
		)
	}

	return r, nil
}

func crossfadeScenario(cfg config) (result, error) {
	pool := buffer.NewPool(cfg.settings.FramesPerBlock)
	oscs, in, err := oscillators(cfg, pool, cfg.inputs)
	if err != nil {
		return result{}, err
	}
	defer release(pool, in)

	control := 0.0
	xf, err := crossfade.New(cfg.settings, crossfade.Inputs{Control: &control, Audio: in})
	if err != nil {
		return result{}, err
	}

	r := result{
		name:   "crossfade",
		header: []string{"block", "time", "control", "a", "b", "alpha", "gain_a", "gain_b", "mixed", "peak"},
	}

	n := cfg.blockCount()
	for b := range n {
		control = sweep(0, float64(cfg.inputs-1), b, n)
		pull(oscs, in)
		execute(xf)

		sel := xf.Selection()
		mixed := 0
		for i := range xf.NumInputs() {
			if xf.Mixed(i) {
				mixed++
			}
		}

		out := xf.Output()
		r.audio = append(r.audio, out.Samples()...)
		r.addRow(
			strconv.Itoa(b),
			cfg.blockTime(b),
			f4(control),
			strconv.Itoa(sel.IndexA),
			strconv.Itoa(sel.IndexB),
			f4(sel.Alpha),
			f4(xf.Gain(sel.IndexA)),
			f4(xf.Gain(sel.IndexB)),
			strconv.Itoa(mixed),
			f4(out.Peak()),
		)
	}

	return r, nil
}

func pairScenario(cfg config) (result, error) {
	pool := buffer.NewPool(cfg.settings.FramesPerBlock)
	oscs, in, err := oscillators(cfg, pool, 2)
	if err != nil {
		return result{}, err
	}
	defer release(pool, in)

	control := 0.0
	p, err := crossfade.NewPair(cfg.settings, crossfade.PairInputs{Control: &control, A: in[0], B: in[1]})
	if err != nil {
		return result{}, err
	}

	r := result{
		name:   "pair",
		header: []string{"block", "time", "control", "gain_a", "gain_b", "power", "peak"},
	}

	n := cfg.blockCount()
	for b := range n {
		control = sweep(0, 1, b, n)
		pull(oscs, in)
		execute(p)

		gA, gB := p.Gains()
		out := p.Output()
		r.audio = append(r.audio, out.Samples()...)
		r.addRow(
			strconv.Itoa(b),
			cfg.blockTime(b),
			f4(control),
			f4(gA),
			f4(gB),
			f4(gA*gA+gB*gB),
			f4(out.Peak()),
		)
	}

	return r, nil
}

func faderScenario(cfg config) (result, error) {
	pool := buffer.NewPool(cfg.settings.FramesPerBlock)
	oscs, in, err := oscillators(cfg, pool, 1)
	if err != nil {
		return result{}, err
	}
	defer release(pool, in)

	control := 0.0
	inStart, inEnd := cfg.fadeIn[0], cfg.fadeIn[1]
	outStart, outEnd := cfg.fadeOut[0], cfg.fadeOut[1]
	f, err := fader.New(cfg.settings, fader.Inputs{
		Audio:        in[0],
		Control:      &control,
		FadeInStart:  &inStart,
		FadeInEnd:    &inEnd,
		FadeOutStart: &outStart,
		FadeOutEnd:   &outEnd,
	})
	if err != nil {
		return result{}, err
	}

	r := result{
		name:   "fader",
		header: []string{"block", "time", "control", "amplitude", "amplitude_db", "peak"},
	}

	n := cfg.blockCount()
	for b := range n {
		control = sweep(0, 1, b, n)
		pull(oscs, in)
		execute(f)

		out := f.Output()
		r.audio = append(r.audio, out.Samples()...)
		r.addRow(
			strconv.Itoa(b),
			cfg.blockTime(b),
			f4(control),
			f4(f.Amplitude()),
			f4(core.LinearToDB(f.Amplitude())),
			f4(out.Peak()),
		)
	}

	return r, nil
}

// analysis summarises the click behaviour of every rendered output.
func analysis(cfg config, results []result) (result, error) {
	r := result{
		name:   "analysis",
		header: []string{"scenario", "peak", "rms", "crest_db", "max_step", "step_frame", "hf_ratio"},
	}

	for _, s := range results {
		ratio, err := click.HighBandRatio(s.audio, cfg.settings.SampleRate(), cfg.cutoff)
		if err != nil {
			return result{}, fmt.Errorf("%s: %w", s.name, err)
		}
		pos, step := click.MaxStep(s.audio)

		r.addRow(
			s.name,
			f4(click.Peak(s.audio)),
			f4(click.RMS(s.audio)),
			f4(click.CrestFactorDB(s.audio)),
			f4(step),
			strconv.Itoa(pos),
			f4(ratio),
		)
	}

	return r, nil
}
