package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/bounds"
	"stillshot/internal/camera"
	"stillshot/internal/config"
	"stillshot/internal/mathutil"
)

var placeOpts struct {
	fov     float64
	radius  float64
	polar   float64
	azimuth float64
	target   string
	box      string
	distance float64
}

var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Print the camera pose for a spherical placement without rendering",
	Args:  cobra.NoArgs,
	RunE:  runPlace,
}

func init() {
	f := placeCmd.Flags()
	f.Float64Var(&placeOpts.fov, "fov", 0, "Horizontal field of view in degrees (default 39.6)")
	f.Float64Var(&placeOpts.radius, "radius", 0, "Camera distance from the target (default 500)")
	f.Float64Var(&placeOpts.polar, "polar", 0, "Polar angle from +Z in degrees (default 90)")
	f.Float64Var(&placeOpts.azimuth, "azimuth", 0, "Azimuth from +X in degrees")
	f.StringVar(&placeOpts.target, "target", "", "Look-at target as x,y,z")
	f.StringVar(&placeOpts.box, "box", "", "Bounding box minx,miny,minz,maxx,maxy,maxz to frame")
	f.Float64Var(&placeOpts.distance, "distance", 0, "With --box, report the field of view that frames the box from this distance")
	rootCmd.AddCommand(placeCmd)
}

func runPlace(cmd *cobra.Command, args []string) error {
	fl := config.Flags{FOV: placeOpts.fov}
	changed := cmd.Flags().Changed
	if changed("radius") {
		fl.Radius = &placeOpts.radius
	}
	if changed("polar") {
		fl.Polar = &placeOpts.polar
	}
	if changed("azimuth") {
		fl.Azimuth = &placeOpts.azimuth
	}
	if placeOpts.target != "" {
		v, err := parseVec3(placeOpts.target)
		if err != nil {
			return fmt.Errorf("--target: %w", err)
		}
		fl.Target = &v
	}
	var cfg config.Config
	cfg.Resolve(fl)
	if err := cfg.Validate(); err != nil {
		return err
	}

	sph := cfg.Spherical()
	if err := sph.Validate(); err != nil {
		return err
	}
	target := cfg.TargetVec()
	pose, err := camera.LookAt(sph.Around(target), target)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Spherical: r=%g polar=%g° azimuth=%g°\n", cfg.Radius, cfg.Polar, cfg.Azimuth)
	printPose(out, pose)

	if placeOpts.box == "" {
		return nil
	}
	box, err := parseBox(placeOpts.box)
	if err != nil {
		return fmt.Errorf("--box: %w", err)
	}
	dist, err := camera.FramingDistance(box.MaxDimension(), cfg.FOVRadians())
	if err != nil {
		return err
	}
	framed, err := camera.Frame(box, sph.Cartesian(), cfg.FOVRadians())
	if err != nil {
		return err
	}
	c := box.Center()
	fmt.Fprintf(out, "\nBox center: (%.4f, %.4f, %.4f), max dimension %.4f, diagonal %.4f\n",
		c.X, c.Y, c.Z, box.MaxDimension(), box.Diagonal())
	fmt.Fprintf(out, "Framing distance (fov %.2f°): %.4f\n", cfg.FOV, dist)
	at := camera.ToSpherical(r3.Sub(framed.Position, c))
	fmt.Fprintf(out, "Framed at:  r=%.4f polar=%.2f° azimuth=%.2f°\n",
		at.Radius, mathutil.Rad2Deg(at.Polar), mathutil.Rad2Deg(at.Azimuth))
	printPose(out, framed)

	if placeOpts.distance == 0 {
		return nil
	}
	fov, err := camera.FramingFOV(box.MaxDimension(), placeOpts.distance)
	if err != nil {
		return err
	}
	focal, err := camera.FocalLength(fov, camera.DefaultSensorWidth)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nAt distance %.4f: fov %.2f°, focal length %.2fmm (%gmm sensor)\n",
		placeOpts.distance, mathutil.Rad2Deg(fov), focal, camera.DefaultSensorWidth)
	return nil
}

func printPose(w io.Writer, p camera.Pose) {
	q := p.Quaternion()
	x, y, z := p.Euler()
	fmt.Fprintf(w, "Position:   (%.4f, %.4f, %.4f)\n", p.Position.X, p.Position.Y, p.Position.Z)
	fmt.Fprintf(w, "Forward:    (%.4f, %.4f, %.4f)\n", p.Forward.X, p.Forward.Y, p.Forward.Z)
	fmt.Fprintf(w, "Quaternion: (x=%.4f, y=%.4f, z=%.4f, w=%.4f)\n", q[0], q[1], q[2], q[3])
	fmt.Fprintf(w, "Euler XYZ:  (%.2f°, %.2f°, %.2f°)\n", mathutil.Rad2Deg(x), mathutil.Rad2Deg(y), mathutil.Rad2Deg(z))
}

func parseBox(s string) (bounds.Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 6 {
		return bounds.Box{}, fmt.Errorf("want minx,miny,minz,maxx,maxy,maxz, got %q", s)
	}
	lo, err := parseVec3(strings.Join(parts[:3], ","))
	if err != nil {
		return bounds.Box{}, err
	}
	hi, err := parseVec3(strings.Join(parts[3:], ","))
	if err != nil {
		return bounds.Box{}, err
	}
	return bounds.FromPoints([]r3.Vec{
		{X: lo[0], Y: lo[1], Z: lo[2]},
		{X: hi[0], Y: hi[1], Z: hi[2]},
	}), nil
}
