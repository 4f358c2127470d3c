package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"geom3/internal/mesh"
	"geom3/mat3"
	"geom3/ray"
)

// TurntableConfig holds the shared resources for a frame-sequence run.
type TurntableConfig struct {
	Mesh      mesh.Mesh
	Base      mat3.M3 // base orientation, applied before the per-frame spin
	Light     ray.R3
	Frames    int
	Workers   int
	OutputDir string
	Options   Options
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame int
	Path  string
	Err   error
}

// Turntable renders Frames evenly spaced Y-axis spins of the mesh using a
// worker pool, writing each frame as WebP into OutputDir.
func Turntable(cfg TurntableConfig) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
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
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)
	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg TurntableConfig, idx int) Result {
	angle := 2 * math.Pi * float64(idx) / float64(cfg.Frames)
	// Base orientation first, then the turntable spin
	model := mat3.Mul(cfg.Base, mat3.RotY(angle))

	img := Frame(cfg.Mesh, model, cfg.Light, cfg.Options)

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", idx))
	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Err: err}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: idx, Err: fmt.Errorf("webp encode: %w", err)}
	}
	return Result{Frame: idx, Path: outPath}
}
