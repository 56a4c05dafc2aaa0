package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/akmonengine/prism"
	"github.com/akmonengine/prism/color"
	"github.com/akmonengine/prism/geometry"
	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidVector = errors.New("vector must have 3 components")
	ErrInvalidRadius = errors.New("light radius must be a finite value >= 0")
	ErrInvalidBounds = errors.New("volume min must not exceed max")
	ErrInvalidSpeed  = errors.New("light speed must be a finite value >= 0")
)

// SceneConfig describes a scene in YAML.
type SceneConfig struct {
	Workers   int            `yaml:"workers"`
	CellSize  float32        `yaml:"cell_size"`
	CellCount int            `yaml:"cell_count"`
	Volumes   []VolumeConfig `yaml:"volumes"`
	Lights    []LightConfig  `yaml:"lights"`
}

type VolumeConfig struct {
	Id  string    `yaml:"id"`
	Min []float32 `yaml:"min"`
	Max []float32 `yaml:"max"`
}

// LightConfig describes a point light. When Target is set, the light travels
// towards it by Speed units per frame.
type LightConfig struct {
	Id       string    `yaml:"id"`
	Position []float32 `yaml:"position"`
	Radius   float32   `yaml:"radius"`
	Color    []float32 `yaml:"color,omitempty"`
	Target   []float32 `yaml:"target,omitempty"`
	Speed    float32   `yaml:"speed,omitempty"`
}

// LoadSceneConfig decodes a scene from a YAML reader.
func LoadSceneConfig(r io.Reader) (*SceneConfig, error) {
	var c SceneConfig
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &c, nil
}

// MovingLight is a light with a destination.
type MovingLight struct {
	Light  *prism.Light
	Target geometry.Vec3
	Speed  float32
}

// Step moves the light towards its target without overshooting it.
func (m *MovingLight) Step() {
	m.Light.Position = m.Light.Position.ApproachTo(m.Target, m.Speed)
}

// Build validates the configuration and creates the scene it describes.
func (c *SceneConfig) Build() (*prism.Scene, []*MovingLight, error) {
	scene := prism.NewScene()
	if c.Workers > 0 {
		scene.Workers = c.Workers
	}
	if c.CellSize > 0 || c.CellCount > 0 {
		cellSize := float32(prism.DEFAULT_CELL_SIZE)
		if c.CellSize > 0 {
			cellSize = c.CellSize
		}
		cellCount := prism.DEFAULT_CELL_COUNT
		if c.CellCount > 0 {
			cellCount = c.CellCount
		}
		scene.CullGrid = prism.NewCullGrid(cellSize, cellCount)
	}

	for i, vc := range c.Volumes {
		min, err := toVec3(vc.Min)
		if err != nil {
			return nil, nil, fmt.Errorf("volume %d (%s) min: %w", i, vc.Id, err)
		}
		max, err := toVec3(vc.Max)
		if err != nil {
			return nil, nil, fmt.Errorf("volume %d (%s) max: %w", i, vc.Id, err)
		}
		bounds := geometry.NewAABB(min, max)
		if !validBounds(bounds) {
			return nil, nil, fmt.Errorf("volume %d (%s) %v: %w", i, vc.Id, bounds, ErrInvalidBounds)
		}

		scene.AddVolume(&prism.Volume{Id: vc.Id, Bounds: bounds})
	}

	var moving []*MovingLight
	for i, lc := range c.Lights {
		position, err := toVec3(lc.Position)
		if err != nil {
			return nil, nil, fmt.Errorf("light %d (%s) position: %w", i, lc.Id, err)
		}
		if !finiteNonNegative(lc.Radius) {
			return nil, nil, fmt.Errorf("light %d (%s) radius %v: %w", i, lc.Id, lc.Radius, ErrInvalidRadius)
		}

		lightColor := color.White
		if lc.Color != nil {
			rgb, err := toVec3(lc.Color)
			if err != nil {
				return nil, nil, fmt.Errorf("light %d (%s) color: %w", i, lc.Id, err)
			}
			lightColor = rgb.Clamped().ToColor()
		}

		light := &prism.Light{Id: lc.Id, Position: position, Radius: lc.Radius, Color: lightColor}
		scene.AddLight(light)

		if lc.Target != nil {
			target, err := toVec3(lc.Target)
			if err != nil {
				return nil, nil, fmt.Errorf("light %d (%s) target: %w", i, lc.Id, err)
			}
			if !finiteNonNegative(lc.Speed) {
				return nil, nil, fmt.Errorf("light %d (%s) speed %v: %w", i, lc.Id, lc.Speed, ErrInvalidSpeed)
			}
			moving = append(moving, &MovingLight{Light: light, Target: target, Speed: lc.Speed})
		}
	}

	return scene, moving, nil
}

func toVec3(values []float32) (geometry.Vec3, error) {
	if len(values) != 3 {
		return geometry.Vec3{}, fmt.Errorf("got %d values: %w", len(values), ErrInvalidVector)
	}
	return geometry.Vec3{values[0], values[1], values[2]}, nil
}

func finiteNonNegative(value float32) bool {
	return !math32.IsNaN(value) && !math32.IsInf(value, 0) && value >= 0
}

// validBounds rejects inverted boxes and NaN corners.
func validBounds(bounds geometry.AABB) bool {
	for axis := geometry.AxisX; axis <= geometry.AxisZ; axis++ {
		if !(bounds.Min.Component(axis) <= bounds.Max.Component(axis)) {
			return false
		}
	}
	return true
}
