package phong3d

import (
	"math"
	"time"
)

// Render builds the canvas described by cfg (the first frame of an animation).
func Render(cfg *Config) (*Canvas, error) {
	return renderFrame(cfg, 0)
}

// RenderFrames renders cfg.Frames canvases, rotating the light around the
// Y axis by a full turn over the whole sequence.
func RenderFrames(cfg *Config) ([]*Canvas, error) {
	n := imax(1, cfg.Frames)
	frames := make([]*Canvas, 0, n)
	for k := 0; k < n; k++ {
		c, err := renderFrame(cfg, Real(k)*2*math.Pi/Real(n))
		if err != nil {
			return nil, err
		}
		frames = append(frames, c)
		DebugLog("Frame %d/%d done", k+1, n)
	}
	return frames, nil
}

func renderFrame(cfg *Config, lightAngle Real) (*Canvas, error) {
	bg := Black
	if cfg.Background != nil {
		bg = cfg.Background.Color()
	}
	canvas := NewCanvasFilled(cfg.Width, cfg.Height, bg)

	for i, tc := range cfg.Trajectories {
		p, env, err := tc.Build()
		if err != nil {
			return nil, err
		}
		ticks := DrawTrajectory(canvas, p, env, tc.Color.Color())
		DebugLog("Trajectory #%d: %d ticks", i, ticks)
	}

	if cfg.Sphere != nil {
		s, err := cfg.Sphere.Build()
		if err != nil {
			return nil, err
		}
		light := cfg.Light.Build()
		if lightAngle != 0 {
			light.Position = RotationY(lightAngle).MulTuple(light.Position)
		}
		start := time.Now()
		if err := DrawSphere(canvas, s, light); err != nil {
			return nil, err
		}
		DebugLog("Sphere drawn in %s", time.Since(start))
	}
	return canvas, nil
}

// Run loads the scene at cfgPath, renders it and saves the result.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Frames > 1 {
		frames, err := RenderFrames(cfg)
		if err != nil {
			return err
		}
		return SaveGIF(cfg.Output, frames, cfg.Delay, cfg.Upscale)
	}
	canvas, err := Render(cfg)
	if err != nil {
		return err
	}
	return canvas.Save(cfg.Output, cfg.Format, cfg.Upscale)
}
