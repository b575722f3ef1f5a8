package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"stillshot/internal/config"
)

// renderOptions are the flags shared by the rendering commands.
type renderOptions struct {
	configFile  string
	output      string
	width       int
	height      int
	supersample int
	workers     int
	fill        float64
	fov         float64
	radius      float64
	polar       float64
	azimuth     float64
	target      string
	light       string
	background  string
	scale       float64
	autoFrame   bool
	caption     bool
	quiet       bool

	// orbit only
	frames     int
	orbitStart float64
	orbitEnd   float64
	easing     string

	// preset seeds command-specific defaults before flags are applied.
	preset func(cmd *cobra.Command, cfg *config.Config)
}

func (o *renderOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.configFile, "config", "", "Path to config.json file")
	f.StringVarP(&o.output, "out", "o", "", "Output image path (.png, .webp, .tga)")
	f.IntVar(&o.width, "width", 0, "Image width in pixels (default 512)")
	f.IntVar(&o.height, "height", 0, "Image height in pixels (default: width)")
	f.IntVar(&o.supersample, "supersample", 0, "Supersampling factor (default 2)")
	f.Float64Var(&o.fill, "fill", 0, "Crop and rescale the subject to this fraction of the frame (0 keeps the camera framing)")
	f.Float64Var(&o.fov, "fov", 0, "Horizontal field of view in degrees (default 39.6, a 50mm lens)")
	f.Float64Var(&o.radius, "radius", 0, "Camera distance from the target (default 500)")
	f.Float64Var(&o.polar, "polar", 0, "Camera polar angle from +Z in degrees (default 90)")
	f.Float64Var(&o.azimuth, "azimuth", 0, "Camera azimuth from +X in degrees")
	f.StringVar(&o.target, "target", "", "Look-at target as x,y,z")
	f.StringVar(&o.light, "light", "", "Point light position as x,y,z (default 5,-5,10)")
	f.StringVar(&o.background, "background", "", "Background color #rrggbb[aa] (default transparent)")
	f.Float64Var(&o.scale, "scale", 0, "Scale for vertex-triple tables (default 100)")
	f.BoolVar(&o.autoFrame, "auto-frame", false, "Frame the whole model, using the spherical angles as view direction")
	f.BoolVar(&o.caption, "caption", false, "Stamp the model name and triangle count onto the image")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Suppress progress output")
}

// resolve loads the config file, applies flags that were set and fills defaults.
func (o *renderOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if o.configFile != "" {
		var err error
		cfg, err = config.Load(o.configFile)
		if err != nil {
			return cfg, err
		}
	}

	if o.preset != nil {
		o.preset(cmd, &cfg)
	}

	fl := config.Flags{
		Output:      o.output,
		Width:       o.width,
		Height:      o.height,
		Supersample: o.supersample,
		Workers:     o.workers,
		Fill:        o.fill,
		FOV:         o.fov,
		Background:  o.background,
		Scale:       o.scale,
		AutoFrame:   o.autoFrame,
		Caption:     o.caption,
		Frames:      o.frames,
		Easing:      o.easing,
	}
	changed := cmd.Flags().Changed
	if changed("radius") {
		fl.Radius = &o.radius
	}
	if changed("polar") {
		fl.Polar = &o.polar
	}
	if changed("azimuth") {
		fl.Azimuth = &o.azimuth
	}
	if changed("orbit-start") {
		fl.OrbitStart = &o.orbitStart
	}
	if changed("orbit-end") {
		fl.OrbitEnd = &o.orbitEnd
	}
	if o.target != "" {
		v, err := parseVec3(o.target)
		if err != nil {
			return cfg, fmt.Errorf("--target: %w", err)
		}
		fl.Target = &v
	}
	if o.light != "" {
		v, err := parseVec3(o.light)
		if err != nil {
			return cfg, fmt.Errorf("--light: %w", err)
		}
		fl.Light = &v
	}

	cfg.Resolve(fl)
	return cfg, cfg.Validate()
}

func (o *renderOptions) progress(cmd *cobra.Command) io.Writer {
	if o.quiet {
		return io.Discard
	}
	return cmd.OutOrStdout()
}

func parseVec3(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, fmt.Errorf("invalid number %q", p)
		}
		v[i] = f
	}
	return v, nil
}
