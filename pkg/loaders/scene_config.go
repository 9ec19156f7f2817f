package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/material"
	"github.com/df07/go-phong-views/pkg/math"
	"github.com/df07/go-phong-views/pkg/scene"
)

// Defaults applied to fields a scene config leaves out
const (
	DefaultObserverDistance = 1000.0
	DefaultFitDistance      = 1500.0
	DefaultKd               = 0.7
	DefaultKs               = 0.5
	DefaultShininess        = 20.0
)

// Vec3Cfg is a point or color written as [x, y, z]
type Vec3Cfg [3]float64

func (v Vec3Cfg) vec() math.Vec3 { return math.NewVec3(v[0], v[1], v[2]) }

// colorOrWhite returns the configured color, or white when omitted
func colorOrWhite(c *Vec3Cfg) math.Vec3 {
	if c == nil {
		return math.Gray(1)
	}
	return c.vec()
}

type LightCfg struct {
	Position  Vec3Cfg  `json:"position"`
	Intensity float64  `json:"intensity"`
	Color     *Vec3Cfg `json:"color,omitempty"` // defaults to white
}

type SphereCfg struct {
	Center Vec3Cfg  `json:"center"`
	Radius float64  `json:"radius"`
	Color  *Vec3Cfg `json:"color,omitempty"`
}

// PlaneCfg is the z = 0 screen; a zero radius leaves it unclipped
type PlaneCfg struct {
	Center Vec3Cfg  `json:"center"`
	Radius float64  `json:"radius,omitempty"`
	Color  *Vec3Cfg `json:"color,omitempty"`
}

type MaterialCfg struct {
	Kd float64 `json:"kd"`
	Ks float64 `json:"ks"`
	N  float64 `json:"n"`
}

// ViewCfg is an explicit view. ContainMargin > 0 widens it until every
// bounded surface fits.
type ViewCfg struct {
	Axis          string   `json:"axis"`
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	CenterU       float64  `json:"centerU,omitempty"`
	CenterV       float64  `json:"centerV,omitempty"`
	Base          int      `json:"base,omitempty"`
	Observer      *Vec3Cfg `json:"observer,omitempty"`
	ContainMargin float64  `json:"containMargin,omitempty"`
}

// FitCfg fits one view per axis around the scene with an observer on each axis
type FitCfg struct {
	Axes     string  `json:"axes"` // e.g. "z,y,x"
	Distance float64 `json:"distance,omitempty"`
	Margin   float64 `json:"margin,omitempty"`
	Base     int     `json:"base,omitempty"`
}

// SceneConfig is the JSON description of a scene and the views to render
type SceneConfig struct {
	Name     string       `json:"name,omitempty"`
	Observer *Vec3Cfg     `json:"observer,omitempty"`
	Lights   []LightCfg   `json:"lights"`
	Spheres  []SphereCfg  `json:"spheres,omitempty"`
	Planes   []PlaneCfg   `json:"planes,omitempty"`
	Material *MaterialCfg `json:"material,omitempty"`
	Model    string       `json:"model,omitempty"` // "phong" or "illuminance"
	Colored  bool         `json:"colored,omitempty"`
	Shadows  *bool        `json:"shadows,omitempty"` // defaults to true
	Views    []ViewCfg    `json:"views,omitempty"`
	Fit      *FitCfg      `json:"fit,omitempty"`
}

// LoadSceneConfig reads and parses a JSON scene config file
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	cfg, err := ParseSceneConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseSceneConfig parses a JSON scene config and fills in defaults
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	// Defaults
	if cfg.Observer == nil {
		cfg.Observer = &Vec3Cfg{0, 0, DefaultObserverDistance}
	}
	if cfg.Material == nil {
		cfg.Material = &MaterialCfg{Kd: DefaultKd, Ks: DefaultKs, N: DefaultShininess}
	}
	if cfg.Shadows == nil {
		shadows := true
		cfg.Shadows = &shadows
	}
	if len(cfg.Views) == 0 && cfg.Fit == nil {
		cfg.Fit = &FitCfg{Axes: "z"}
	}
	if cfg.Fit != nil {
		if cfg.Fit.Axes == "" {
			cfg.Fit.Axes = "z"
		}
		if cfg.Fit.Distance <= 0 {
			cfg.Fit.Distance = DefaultFitDistance
		}
		if cfg.Fit.Margin <= 0 {
			cfg.Fit.Margin = geometry.DefaultViewMargin
		}
		if cfg.Fit.Base <= 0 {
			cfg.Fit.Base = geometry.DefaultBaseResolution
		}
	}
	return &cfg, nil
}

// Build validates the config and constructs the scene and its views
func (c *SceneConfig) Build() (*scene.Scene, []geometry.ViewSpec, error) {
	model, err := scene.ParseModel(c.Model)
	if err != nil {
		return nil, nil, err
	}

	desc := scene.Scene{
		Observer: scene.Observer{Position: c.Observer.vec()},
		Material: material.NewPhong(c.Material.Kd, c.Material.Ks, c.Material.N),
		Model:    model,
		Colored:  c.Colored,
		Shadows:  c.Shadows == nil || *c.Shadows,
	}
	for _, l := range c.Lights {
		desc.Lights = append(desc.Lights, lights.NewColoredPointLight(l.Position.vec(), l.Intensity, colorOrWhite(l.Color)))
	}
	for _, p := range c.Planes {
		desc.Surfaces = append(desc.Surfaces, geometry.NewDiscPlane(p.Center.vec(), p.Radius, colorOrWhite(p.Color)))
	}
	for _, s := range c.Spheres {
		desc.Surfaces = append(desc.Surfaces, geometry.NewSphere(s.Center.vec(), s.Radius, colorOrWhite(s.Color)))
	}

	sc, err := scene.New(desc)
	if err != nil {
		return nil, nil, err
	}

	views, err := c.buildViews(sc)
	if err != nil {
		return nil, nil, err
	}
	return sc, views, nil
}

func (c *SceneConfig) buildViews(sc *scene.Scene) ([]geometry.ViewSpec, error) {
	var views []geometry.ViewSpec

	for i, v := range c.Views {
		axis, err := geometry.ParseAxis(v.Axis)
		if err != nil {
			return nil, fmt.Errorf("views[%d]: %w", i, err)
		}
		view := geometry.ViewSpec{
			Axis:           axis,
			Width:          v.Width,
			Height:         v.Height,
			CenterU:        v.CenterU,
			CenterV:        v.CenterV,
			BaseResolution: v.Base,
		}
		if v.Observer != nil {
			observer := v.Observer.vec()
			view.Observer = &observer
		}
		if v.ContainMargin > 0 {
			view = geometry.EnsureContains(view, sc.Surfaces, v.ContainMargin)
		}
		if err := view.Validate(); err != nil {
			return nil, fmt.Errorf("views[%d]: %w", i, err)
		}
		views = append(views, view)
	}

	if c.Fit != nil {
		axes, err := geometry.ParseAxes(c.Fit.Axes)
		if err != nil {
			return nil, fmt.Errorf("fit: %w", err)
		}
		fitted, err := geometry.OrthogonalViews(sc.Surfaces, axes, c.Fit.Distance, c.Fit.Margin, c.Fit.Base)
		if err != nil {
			return nil, fmt.Errorf("fit: %w", err)
		}
		for _, view := range fitted {
			if err := view.Validate(); err != nil {
				return nil, fmt.Errorf("fit: %w", err)
			}
		}
		views = append(views, fitted...)
	}
	return views, nil
}
