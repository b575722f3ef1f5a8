package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"stillshot/internal/batch"
	"stillshot/internal/mathutil"
	"stillshot/internal/orbit"
	"stillshot/internal/scene"
)

var orbitOpts renderOptions

var orbitCmd = &cobra.Command{
	Use:   "orbit <model>",
	Short: "Render a frame sequence circling the model, plus a manifest.json",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrbit,
}

func init() {
	orbitOpts.register(orbitCmd)
	f := orbitCmd.Flags()
	f.IntVar(&orbitOpts.workers, "workers", 0, "Number of parallel render workers (default: NumCPU)")
	f.IntVar(&orbitOpts.frames, "frames", 0, "Number of frames (default 36)")
	f.Float64Var(&orbitOpts.orbitStart, "orbit-start", 0, "Start azimuth in degrees")
	f.Float64Var(&orbitOpts.orbitEnd, "orbit-end", 0, "End azimuth in degrees (default 360)")
	f.StringVar(&orbitOpts.easing, "easing", "", "Azimuth easing: "+strings.Join(orbit.Easings(), ", "))
	rootCmd.AddCommand(orbitCmd)
}

func runOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := orbitOpts.resolve(cmd)
	if err != nil {
		return err
	}
	out := orbitOpts.progress(cmd)

	meshes, err := loadModel(args[0], cfg.Scale)
	if err != nil {
		return err
	}
	s, err := buildScene(cfg, meshes)
	if err != nil {
		return err
	}
	center, radius, err := orbitCenter(cfg, s)
	if err != nil {
		return err
	}

	positions, err := orbit.Frames(orbit.Config{
		Frames:       cfg.Frames,
		Radius:       radius,
		Polar:        mathutil.Deg2Rad(cfg.Polar),
		StartAzimuth: mathutil.Deg2Rad(cfg.OrbitStart),
		EndAzimuth:   mathutil.Deg2Rad(cfg.OrbitEnd),
		Easing:       cfg.Easing,
	})
	if err != nil {
		return err
	}

	dir := cfg.FrameDir()
	ext := filepath.Ext(cfg.Output)
	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	jobs := make([]batch.Job, 0, len(positions))
	for i, sph := range positions {
		cam := &scene.Camera{FOV: s.Camera.FOV}
		if err := cam.PlaceSpherical(sph, center); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		jobs = append(jobs, batch.Job{
			Name:    fmt.Sprintf("%s-%03d", name, i),
			Scene:   s,
			Camera:  cam,
			OutPath: filepath.Join(dir, fmt.Sprintf("frame-%03d%s", i, ext)),
		})
	}

	fmt.Fprintf(out, "Meshes: %d, triangles: %d\n", len(s.Meshes), s.TriangleCount())
	fmt.Fprintf(out, "Orbit: %d frames, radius %.3f, %s easing → %s\n", len(jobs), radius, cfg.Easing, dir)
	fmt.Fprintf(out, "Workers: %d\n", cfg.Workers)

	results := batch.Run(batch.Config{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Fill:        cfg.Fill,
		Caption:     cfg.Caption,
		Flatten:     cfg.Background != "",
		Progress:    out,
	}, jobs)

	manifest := filepath.Join(dir, "manifest.json")
	if err := batch.WriteManifest(manifest, results); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	success, failed := batch.Summarize(results)
	fmt.Fprintf(out, "\nDone: %d/%d rendered, manifest %s\n", success, len(results), manifest)
	if len(failed) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nFailed frames (%d):\n", len(failed))
		for _, r := range failed {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", r.Name, r.Error)
		}
		return fmt.Errorf("%d of %d frames failed", len(failed), len(results))
	}
	return nil
}
