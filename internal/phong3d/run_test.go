package phong3d

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	quiet(t)
	bg := Triple{0, 0, 0.2}
	cfg := &Config{
		Width: 21, Height: 21,
		Background: &bg,
		Sphere: &SphereCfg{
			Transforms: []TransformCfg{{"translate", []Real{0, 0, 1.5}}},
		},
		Light: &LightCfg{Position: Triple{-10, 10, -10}},
	}
	c, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if c.Width != 21 || c.Height != 21 {
		t.Fatalf("canvas %dx%d", c.Width, c.Height)
	}
	if !c.At(0, 0).Equal(bg.Color()) {
		t.Fatalf("background not kept where the sphere is missed: %+v", c.At(0, 0))
	}
	if c.At(10, 10).Equal(bg.Color()) {
		t.Fatal("sphere not drawn")
	}

	cfg.Sphere.Transforms = []TransformCfg{{"scale", []Real{0, 1, 1}}}
	if _, err := Render(cfg); err == nil {
		t.Fatal("singular sphere transform must fail")
	}
}

func TestRenderTrajectory(t *testing.T) {
	cfg := &Config{
		Width: 20, Height: 20,
		Trajectories: []TrajectoryCfg{{
			Position: Triple{0, 10, 0},
			Velocity: Triple{1, 0, 0},
			Gravity:  Triple{0, -1, 0},
			Color:    Triple{0, 1, 0},
		}},
	}
	c, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if c.At(0, 10) != Green {
		t.Fatalf("trajectory start not plotted: %+v", c.At(0, 10))
	}
}

func TestRun(t *testing.T) {
	quiet(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.ppm")
	body := `{"width": 9, "height": 7, "output": "` + out + `", "sphere": {"transforms": [{"op": "translate", "args": [0, 0, 2]}]}}`
	cfgPath := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Run(cfgPath); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n9 7\n255\n") {
		t.Fatalf("unexpected output header: %q", string(data[:12]))
	}
	if err := Run(filepath.Join(dir, "nope.json")); err == nil {
		t.Fatal("missing config must fail")
	}
}
