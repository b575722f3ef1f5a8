package batch

import (
	"fmt"
	"image/color"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"stillshot/internal/output"
	"stillshot/internal/postprocess"
	"stillshot/internal/raster"
	"stillshot/internal/scene"
)

// Config holds the render settings shared by every job of a run.
type Config struct {
	Width       int
	Height      int
	Supersample int
	Workers     int
	Fill        float64 // > 0 rescales the subject to this fraction of the frame
	Caption     bool
	Flatten     bool
	Progress    io.Writer // nil disables progress lines
}

// Job is one image: a scene, the camera to view it through and a target path.
// Jobs may share a scene; only the camera differs per job.
type Job struct {
	Name    string
	Scene   *scene.Scene
	Camera  *scene.Camera
	OutPath string
}

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	OutPath string
	Camera  *scene.Camera
	Stats   raster.Stats
	Success bool
	Error   string
}

// Run processes all jobs using a worker pool. Results keep job order.
func Run(cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	if cfg.Progress != nil {
		reporter.Add(1)
		go func() {
			defer reporter.Done()
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Fprintf(cfg.Progress, "  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = Process(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)
	reporter.Wait()

	return results
}

// Process renders and saves a single job.
func Process(cfg Config, job Job) Result {
	res := Result{Name: job.Name, OutPath: job.OutPath, Camera: job.Camera}
	if job.Scene == nil {
		res.Error = "no scene"
		return res
	}
	if job.Scene.TriangleCount() == 0 {
		res.Error = "no geometry in scene"
		return res
	}

	// Shallow view of the shared scene with this job's camera.
	view := *job.Scene
	if job.Camera != nil {
		view.Camera = job.Camera
	}
	if view.Camera == nil {
		res.Error = raster.ErrNoCamera.Error()
		return res
	}
	res.Camera = view.Camera

	ss := max(cfg.Supersample, 1)
	img, stats, err := raster.Render(&view, cfg.Width*ss, cfg.Height*ss)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Stats = stats

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	if cfg.Fill > 0 {
		img = postprocess.Fit(img, cfg.Fill)
	}
	if cfg.Flatten {
		img = postprocess.Flatten(img, view.Background)
	}
	if cfg.Caption {
		img = postprocess.Caption(img, fmt.Sprintf("%s  %d tris", job.Name, stats.Triangles), color.White)
	}

	if err := output.Save(job.OutPath, img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// Summarize counts successes and returns the failed results.
func Summarize(results []Result) (success int, failed []Result) {
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed = append(failed, r)
		}
	}
	return success, failed
}
