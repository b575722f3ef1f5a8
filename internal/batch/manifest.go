package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"stillshot/internal/mathutil"
)

// ManifestEntry represents one rendered image in the output manifest.
type ManifestEntry struct {
	Name       string     `json:"name"`
	Image      string     `json:"image"`
	Position   [3]float64 `json:"camera_position"`
	Forward    [3]float64 `json:"camera_forward"`
	Quaternion [4]float64 `json:"camera_quaternion"` // x, y, z, w
	EulerDeg   [3]float64 `json:"camera_euler_deg"`
	FOVDeg     float64    `json:"fov_deg"`
	Triangles  int        `json:"triangles"`
	Pixels     int        `json:"pixels"`
}

// WriteManifest writes the successful results as JSON to path. Image paths
// are stored relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success || r.Camera == nil {
			continue
		}
		img := r.OutPath
		if rel, err := filepath.Rel(dir, r.OutPath); err == nil {
			img = filepath.ToSlash(rel)
		}
		pose := r.Camera.Pose
		x, y, z := pose.Euler()
		entries = append(entries, ManifestEntry{
			Name:       r.Name,
			Image:      img,
			Position:   [3]float64{pose.Position.X, pose.Position.Y, pose.Position.Z},
			Forward:    [3]float64{pose.Forward.X, pose.Forward.Y, pose.Forward.Z},
			Quaternion: pose.Quaternion(),
			EulerDeg:   [3]float64{mathutil.Rad2Deg(x), mathutil.Rad2Deg(y), mathutil.Rad2Deg(z)},
			FOVDeg:     mathutil.Rad2Deg(r.Camera.FOV),
			Triangles:  r.Stats.Triangles,
			Pixels:     r.Stats.Pixels,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
