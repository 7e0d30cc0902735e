package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lukaszgryglicki/phong3d/internal/phong3d"
)

// preview shows the rendered frames until the window is closed or Escape/Q is pressed.
// More than one frame loops as an animation.
type preview struct {
	frames        []*ebiten.Image
	ticksPerFrame int
	tick          int
	w, h          int
}

func (p *preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	p.tick++
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	i := (p.tick / p.ticksPerFrame) % len(p.frames)
	screen.DrawImage(p.frames[i], nil)
}

func (p *preview) Layout(_, _ int) (int, int) { return p.w, p.h }

func main() {
	phong3d.Debug = os.Getenv("DEBUG") != ""
	phong3d.Progress = false

	cfgPath := "scenes/sphere.json"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := phong3d.LoadConfig(cfgPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	canvases, err := phong3d.RenderFrames(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	// delay is in 100ths of a second
	p := &preview{ticksPerFrame: max(1, cfg.Delay*ebiten.TPS()/100)}
	for _, c := range canvases {
		img := c.Upscale(cfg.Upscale)
		b := img.Bounds()
		p.w, p.h = b.Dx(), b.Dy()
		p.frames = append(p.frames, ebiten.NewImageFromImage(img))
	}

	ebiten.SetWindowSize(p.w, p.h)
	ebiten.SetWindowTitle("phong3d: " + cfgPath)
	if err := ebiten.RunGame(p); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
