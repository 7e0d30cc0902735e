package phong3d

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Triples are written as [x, y, z] / [r, g, b] in both JSON and YAML.
type Triple [3]Real

func (t Triple) Point() Tuple  { return Point(t[0], t[1], t[2]) }
func (t Triple) Vector() Tuple { return Vector(t[0], t[1], t[2]) }
func (t Triple) Color() Color  { return Color{t[0], t[1], t[2]} }

// UnmarshalJSON rejects arrays that are not exactly three long, as yaml.v3 does.
func (t *Triple) UnmarshalJSON(data []byte) error {
	var vs []Real
	if err := json.Unmarshal(data, &vs); err != nil {
		return err
	}
	if len(vs) != 3 {
		return fmt.Errorf("expected 3 values, got %d", len(vs))
	}
	copy(t[:], vs)
	return nil
}

type TransformCfg struct {
	Op   string `json:"op" yaml:"op"`
	Args []Real `json:"args" yaml:"args"`
}

// Optional fields keep the DefaultMaterial value when omitted.
type MaterialCfg struct {
	Color     *Triple `json:"color,omitempty" yaml:"color,omitempty"`
	Ambient   *Real   `json:"ambient,omitempty" yaml:"ambient,omitempty"`
	Diffuse   *Real   `json:"diffuse,omitempty" yaml:"diffuse,omitempty"`
	Specular  *Real   `json:"specular,omitempty" yaml:"specular,omitempty"`
	Shininess *Real   `json:"shininess,omitempty" yaml:"shininess,omitempty"`
}

type SphereCfg struct {
	// Listed in application order: the first transform is applied first.
	Transforms []TransformCfg `json:"transforms,omitempty" yaml:"transforms,omitempty"`
	Material   MaterialCfg    `json:"material" yaml:"material"`
}

type LightCfg struct {
	Position  Triple  `json:"position" yaml:"position"`
	Intensity *Triple `json:"intensity,omitempty" yaml:"intensity,omitempty"`
}

type TrajectoryCfg struct {
	Position Triple `json:"position" yaml:"position"`
	Velocity Triple `json:"velocity" yaml:"velocity"`
	Speed    Real   `json:"speed,omitempty" yaml:"speed,omitempty"` // velocity is normalized and scaled when > 0
	Gravity  Triple `json:"gravity" yaml:"gravity"`
	Wind     Triple `json:"wind" yaml:"wind"`
	Color    Triple `json:"color" yaml:"color"`
}

type Config struct {
	Width        int             `json:"width" yaml:"width"`
	Height       int             `json:"height" yaml:"height"`
	Output       string          `json:"output" yaml:"output"`
	Format       string          `json:"format,omitempty" yaml:"format,omitempty"`
	Upscale      int             `json:"upscale,omitempty" yaml:"upscale,omitempty"`
	Frames       int             `json:"frames,omitempty" yaml:"frames,omitempty"` // light orbits the Y axis once over all frames (gif only)
	Delay        int             `json:"delay,omitempty" yaml:"delay,omitempty"`   // gif frame delay, 100ths of a second
	Background   *Triple         `json:"background,omitempty" yaml:"background,omitempty"`
	Sphere       *SphereCfg      `json:"sphere,omitempty" yaml:"sphere,omitempty"`
	Light        *LightCfg       `json:"light,omitempty" yaml:"light,omitempty"`
	Trajectories []TrajectoryCfg `json:"trajectories,omitempty" yaml:"trajectories,omitempty"`
}

// Build turns one op into its matrix.
func (tc TransformCfg) Build() (Mat4, error) {
	want := map[string]int{
		"translate": 3, "scale": 3, "shear": 6,
		"rotateX": 1, "rotateY": 1, "rotateZ": 1,
		"rotateXDeg": 1, "rotateYDeg": 1, "rotateZDeg": 1,
	}
	n, ok := want[tc.Op]
	if !ok {
		return Mat4{}, fmt.Errorf("unknown transform %q", tc.Op)
	}
	a := tc.Args
	if len(a) != n {
		return Mat4{}, fmt.Errorf("transform %q needs %d args, got %d", tc.Op, n, len(a))
	}
	switch tc.Op {
	case "translate":
		return Translation(a[0], a[1], a[2]), nil
	case "scale":
		return Scaling(a[0], a[1], a[2]), nil
	case "shear":
		return Shearing(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	case "rotateX":
		return RotationX(a[0]), nil
	case "rotateY":
		return RotationY(a[0]), nil
	case "rotateZ":
		return RotationZ(a[0]), nil
	case "rotateXDeg":
		return RotationXDeg(a[0]), nil
	case "rotateYDeg":
		return RotationYDeg(a[0]), nil
	default:
		return RotationZDeg(a[0]), nil
	}
}

// Build validates and constructs the sphere; the transform must be invertible.
func (sc SphereCfg) Build() (*Sphere, error) {
	ms := make([]Mat4, 0, len(sc.Transforms))
	for i, tc := range sc.Transforms {
		M, err := tc.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere transform #%d: %w", i, err)
		}
		ms = append(ms, M)
	}
	s := UnitSphere()
	s.Transform = Chain(ms...)
	if !s.Transform.IsInvertible() {
		return nil, fmt.Errorf("sphere transform: %w", ErrSingularMatrix)
	}
	s.Material = sc.Material.Build()
	return s, nil
}

func (mc MaterialCfg) Build() Material {
	m := DefaultMaterial()
	if mc.Color != nil {
		m.Color = mc.Color.Color()
	}
	if mc.Ambient != nil {
		m.SetAmbient(*mc.Ambient)
	}
	if mc.Diffuse != nil {
		m.SetDiffuse(*mc.Diffuse)
	}
	if mc.Specular != nil {
		m.SetSpecular(*mc.Specular)
	}
	if mc.Shininess != nil {
		m.SetShininess(*mc.Shininess)
	}
	return m
}

func (lc LightCfg) Build() PointLight {
	intensity := White
	if lc.Intensity != nil {
		intensity = lc.Intensity.Color()
	}
	return NewPointLight(lc.Position.Point(), intensity)
}

func (tc TrajectoryCfg) Build() (Projectile, Environment, error) {
	v := tc.Velocity.Vector()
	if tc.Speed > 0 {
		if v.Len() == 0 {
			return Projectile{}, Environment{}, fmt.Errorf("trajectory speed set with a zero velocity")
		}
		v = v.Norm().Mul(tc.Speed)
	}
	return NewProjectile(tc.Position.Point(), v), NewEnvironment(tc.Gravity.Vector(), tc.Wind.Vector()), nil
}

// LoadConfig reads a JSON or (.yaml/.yml) YAML scene and fills in defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), output=%s, format=%s, upscale=%d", path, cfg.Width, cfg.Height, cfg.Output, cfg.Format, cfg.Upscale)
	return &cfg, nil
}

// Defaults / validation
func (cfg *Config) applyDefaults() error {
	if cfg.Width <= 0 {
		cfg.Width = CanvasWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = CanvasHeight
	}
	if cfg.Output == "" {
		cfg.Output = Output
	}
	if ForceFormat != "" {
		cfg.Format = ForceFormat
	}
	if cfg.Format == "" {
		cfg.Format = FormatFromPath(cfg.Output)
	}
	switch cfg.Format {
	case "ppm", "png", "bmp", "tiff", "gif":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.Upscale <= 0 {
		cfg.Upscale = Upscale
	}
	if cfg.Upscale > MaxUpscale {
		return fmt.Errorf("upscale %d exceeds %d", cfg.Upscale, MaxUpscale)
	}
	if cfg.Frames <= 0 {
		cfg.Frames = Frames
	}
	if cfg.Frames > MaxFrames {
		return fmt.Errorf("frames %d exceeds %d", cfg.Frames, MaxFrames)
	}
	if cfg.Frames > 1 && cfg.Format != "gif" {
		return fmt.Errorf("%d frames need gif output, got %q", cfg.Frames, cfg.Format)
	}
	if cfg.Delay <= 0 {
		cfg.Delay = GIFDelay
	}
	if cfg.Sphere == nil && len(cfg.Trajectories) == 0 {
		return fmt.Errorf("config has nothing to draw")
	}
	if cfg.Sphere != nil && cfg.Light == nil {
		cfg.Light = &LightCfg{Position: Triple{-10, 10, -10}}
	}
	return nil
}
