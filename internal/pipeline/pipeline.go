// Package pipeline ties the loaders and renderers into the single
// load -> render -> write pass the CLI runs.
package pipeline

import (
	"fmt"

	"github.com/dutch-casa/uav-swarm-simulator/internal/config"
	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/metrics"
	"github.com/dutch-casa/uav-swarm-simulator/internal/render"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
)

// Options name the inputs and outputs of one visualization run.
type Options struct {
	TracePath   string
	MetricsPath string
	MapPath     string
	OutPath     string
	Animate     bool
	Config      *config.Config
}

// Result summarizes what a run produced.
type Result struct {
	Trace    *trace.Trace
	Summary  *metrics.Summary
	Map      *gridmap.Map
	Outputs  []string
	Warnings []string
}

// Run executes the whole pipeline. Map and metrics failures degrade
// with a recorded warning; a trace failure or render failure is fatal.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}

	res := &Result{}

	tr, err := trace.Load(opts.TracePath)
	if err != nil {
		return nil, fmt.Errorf("load trace %s: %w", opts.TracePath, err)
	}
	res.Trace = tr

	sum, err := metrics.Load(opts.MetricsPath)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("could not load metrics %s: %v", opts.MetricsPath, err))
	}
	res.Summary = sum

	if opts.MapPath != "" {
		m, err := gridmap.Load(opts.MapPath)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("could not load map %s: %v", opts.MapPath, err))
		}
		res.Map = m
	}

	r := render.New(opts.Config)
	if err := r.Static(tr, sum, res.Map, opts.OutPath); err != nil {
		return nil, err
	}
	res.Outputs = append(res.Outputs, opts.OutPath)

	if opts.Animate && !tr.Empty() {
		gifPath := render.GifPath(opts.OutPath)
		if err := r.Animate(tr, res.Map, gifPath); err != nil {
			return nil, err
		}
		res.Outputs = append(res.Outputs, gifPath)
	}

	return res, nil
}
