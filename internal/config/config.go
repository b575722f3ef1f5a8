package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/camera"
	"stillshot/internal/mathutil"
	"stillshot/internal/scene"
	"stillshot/internal/triples"
)

// Config holds all configurable paths and render settings. Angles are in degrees.
type Config struct {
	// Paths
	Output string `json:"output"`

	// Camera
	FOV       float64    `json:"fov"`
	Radius    float64    `json:"radius"`
	Polar     float64    `json:"polar"`
	Azimuth   float64    `json:"azimuth"`
	Target    [3]float64 `json:"target"`
	AutoFrame bool       `json:"auto_frame"`

	// Scene
	Light      [3]float64 `json:"light"`
	Background string     `json:"background"`
	Scale      float64    `json:"scale"`

	// Render settings
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Supersample int     `json:"supersample"`
	Workers     int     `json:"workers"`
	Fill        float64 `json:"fill"`
	Caption     bool    `json:"caption"`

	// Orbit
	Frames     int     `json:"frames"`
	OrbitStart float64 `json:"orbit_start"`
	OrbitEnd   float64 `json:"orbit_end"`
	Easing     string  `json:"easing"`

	set present
}

// present records which zero-able camera fields were given explicitly, so an
// explicit 0 is not mistaken for "unset".
type present struct {
	radius  bool
	polar   bool
	azimuth bool
	light   bool
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	var keys struct {
		Radius  *float64    `json:"radius"`
		Polar   *float64    `json:"polar"`
		Azimuth *float64    `json:"azimuth"`
		Light   *[3]float64 `json:"light"`
	}
	if err := json.Unmarshal(data, &keys); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.set = present{
		radius:  keys.Radius != nil,
		polar:   keys.Polar != nil,
		azimuth: keys.Azimuth != nil,
		light:   keys.Light != nil,
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Pointer fields are nil when the flag was not given.
type Flags struct {
	Output      string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Fill        float64
	FOV         float64
	Radius      *float64
	Polar       *float64
	Azimuth     *float64
	Target      *[3]float64
	Light       *[3]float64
	Background  string
	Scale       float64
	AutoFrame   bool
	Caption     bool
	Frames      int
	OrbitStart  *float64
	OrbitEnd    *float64
	Easing      string
}

// Resolve applies flags over the file values, then fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(f Flags) {
	// CLI flags override config file
	if f.Output != "" {
		c.Output = f.Output
	}
	if f.Width > 0 {
		c.Width = f.Width
	}
	if f.Height > 0 {
		c.Height = f.Height
	}
	if f.Supersample > 0 {
		c.Supersample = f.Supersample
	}
	if f.Workers > 0 {
		c.Workers = f.Workers
	}
	if f.Fill != 0 {
		c.Fill = f.Fill
	}
	if f.FOV != 0 {
		c.FOV = f.FOV
	}
	if f.Radius != nil {
		c.Radius = *f.Radius
		c.set.radius = true
	}
	if f.Polar != nil {
		c.Polar = *f.Polar
		c.set.polar = true
	}
	if f.Azimuth != nil {
		c.Azimuth = *f.Azimuth
		c.set.azimuth = true
	}
	if f.Target != nil {
		c.Target = *f.Target
	}
	if f.Light != nil {
		c.Light = *f.Light
		c.set.light = true
	}
	if f.Background != "" {
		c.Background = f.Background
	}
	if f.Scale != 0 {
		c.Scale = f.Scale
	}
	if f.AutoFrame {
		c.AutoFrame = true
	}
	if f.Caption {
		c.Caption = true
	}
	if f.Frames > 0 {
		c.Frames = f.Frames
	}
	if f.OrbitStart != nil {
		c.OrbitStart = *f.OrbitStart
	}
	if f.OrbitEnd != nil {
		c.OrbitEnd = *f.OrbitEnd
	}
	if f.Easing != "" {
		c.Easing = f.Easing
	}

	// Defaults
	if c.Output == "" {
		c.Output = "render.png"
	}
	if c.Width <= 0 {
		c.Width = 512
	}
	if c.Height <= 0 {
		c.Height = c.Width
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FOV == 0 {
		fov, _ := camera.FieldOfView(scene.DefaultFocalLength, camera.DefaultSensorWidth)
		c.FOV = mathutil.Rad2Deg(fov)
	}
	if !c.set.radius {
		c.Radius = 500
	}
	if !c.set.polar {
		c.Polar = 90
	}
	if !c.set.light {
		l := scene.DefaultLightPosition
		c.Light = [3]float64{l.X, l.Y, l.Z}
	}
	if c.Scale == 0 {
		c.Scale = triples.DefaultScale
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.OrbitStart == 0 && c.OrbitEnd == 0 {
		c.OrbitEnd = 360
	}
	if c.Easing == "" {
		c.Easing = "linear"
	}
}

// PresetView seeds the camera angles for when neither the file nor flags give
// them. With frame set and no explicit radius, the scene is auto-framed.
// Call it between Load and Resolve.
func (c *Config) PresetView(polar, azimuth float64, frame bool) {
	if !c.set.polar {
		c.Polar = polar
		c.set.polar = true
	}
	if !c.set.azimuth {
		c.Azimuth = azimuth
		c.set.azimuth = true
	}
	if frame && !c.set.radius {
		c.AutoFrame = true
	}
}

// Validate rejects settings that cannot produce an image.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		return fmt.Errorf("config: fov %g° outside (0, 180)", c.FOV)
	}
	if c.Fill < 0 || c.Fill > 1 || math.IsNaN(c.Fill) {
		return fmt.Errorf("config: fill %g outside [0, 1]", c.Fill)
	}
	if c.Radius < 0 || math.IsNaN(c.Radius) {
		return fmt.Errorf("config: negative radius %g", c.Radius)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// Spherical returns the configured camera placement in radians.
func (c *Config) Spherical() camera.Spherical {
	return camera.Spherical{
		Radius:  c.Radius,
		Polar:   mathutil.Deg2Rad(c.Polar),
		Azimuth: mathutil.Deg2Rad(c.Azimuth),
	}
}

// FOVRadians returns the field of view in radians.
func (c *Config) FOVRadians() float64 {
	return mathutil.Deg2Rad(c.FOV)
}

// TargetVec returns the look-at target.
func (c *Config) TargetVec() r3.Vec {
	return r3.Vec{X: c.Target[0], Y: c.Target[1], Z: c.Target[2]}
}

// LightVec returns the point light position.
func (c *Config) LightVec() r3.Vec {
	return r3.Vec{X: c.Light[0], Y: c.Light[1], Z: c.Light[2]}
}

// FrameDir returns the orbit frame directory, named after Output.
func (c *Config) FrameDir() string {
	ext := filepath.Ext(c.Output)
	return c.Output[:len(c.Output)-len(ext)] + "_frames"
}
