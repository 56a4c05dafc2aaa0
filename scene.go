package prism

import (
	"github.com/akmonengine/prism/color"
	"github.com/akmonengine/prism/geometry"
)

const (
	DEFAULT_WORKERS    = 1
	DEFAULT_CELL_SIZE  = 4.0
	DEFAULT_CELL_COUNT = 1024
)

// Volume is a bounding box standing for a mesh or an occluder.
type Volume struct {
	Id     interface{}
	Bounds geometry.AABB
}

// Light is a point light with a finite range.
type Light struct {
	Id       interface{}
	Position geometry.Vec3
	Radius   float32
	Color    color.Color
}

// Bounds returns the box enclosing the light's range.
func (l *Light) Bounds() geometry.AABB {
	return geometry.SphereBounds(l.Position, l.Radius)
}

// Reaches reports whether the light's range overlaps the volume bounds.
func (l *Light) Reaches(volume *Volume) bool {
	return volume.Bounds.OverlapSphere(l.Position, l.Radius)
}

// LightResult lists the volumes one light reaches, in the scene's volume order.
type LightResult struct {
	Light   *Light
	Volumes []*Volume
}

type Scene struct {
	Volumes  []*Volume
	Lights   []*Light
	CullGrid *CullGrid
	// Number of goroutines Cull spreads the lights over
	Workers int

	Events Events
}

// NewScene creates an empty scene with the default grid and worker count.
func NewScene() *Scene {
	return &Scene{
		CullGrid: NewCullGrid(DEFAULT_CELL_SIZE, DEFAULT_CELL_COUNT),
		Workers:  DEFAULT_WORKERS,
		Events:   NewEvents(),
	}
}

func (s *Scene) AddVolume(volume *Volume) {
	s.Volumes = append(s.Volumes, volume)
}

// RemoveVolume removes a volume from the scene
func (s *Scene) RemoveVolume(volume *Volume) {
	k := -1
	for i, v := range s.Volumes {
		if v == volume {
			k = i
			break
		}
	}

	if k != -1 {
		s.Volumes = append(s.Volumes[:k], s.Volumes[k+1:]...)
	}

	s.Events.forgetVolume(volume)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

// RemoveLight removes a light from the scene
func (s *Scene) RemoveLight(light *Light) {
	k := -1
	for i, l := range s.Lights {
		if l == light {
			k = i
			break
		}
	}

	if k != -1 {
		s.Lights = append(s.Lights[:k], s.Lights[k+1:]...)
	}

	s.Events.forgetLight(light)
}

// Bounds returns the box around every volume of the scene.
// ok is false for a scene without volumes.
func (s *Scene) Bounds() (bounds geometry.AABB, ok bool) {
	if len(s.Volumes) == 0 {
		return geometry.AABB{}, false
	}

	bounds = s.Volumes[0].Bounds
	for _, volume := range s.Volumes[1:] {
		bounds.Merge(volume.Bounds)
	}

	return bounds, true
}

// Cull finds, for every light, the volumes its range reaches.
// Results follow the order of s.Lights. Listeners subscribed to Events are
// called before Cull returns.
func (s *Scene) Cull() []LightResult {
	s.Workers = max(DEFAULT_WORKERS, s.Workers)

	// Phase 1: broad phase grid
	s.buildGrid()

	// Phase 2: per light sphere tests, each worker owning its result slots
	results := make([]LightResult, len(s.Lights))
	slots := make([]int, len(s.Lights))
	for i := range slots {
		slots[i] = i
	}

	task(s.Workers, slots, func(i int) {
		light := s.Lights[i]
		indices := s.CullGrid.QuerySphere(light.Position, light.Radius, s.Volumes)

		volumes := make([]*Volume, len(indices))
		for j, volumeIdx := range indices {
			volumes[j] = s.Volumes[volumeIdx]
		}
		results[i] = LightResult{Light: light, Volumes: volumes}
	})

	// Phase 3: events
	s.Events.recordLighting(results)
	s.Events.flush()

	return results
}

// VolumesInBox returns the volumes overlapping box, in the scene's volume order.
func (s *Scene) VolumesInBox(box geometry.AABB) []*Volume {
	s.buildGrid()

	indices := s.CullGrid.QueryBox(box, s.Volumes)
	volumes := make([]*Volume, len(indices))
	for i, volumeIdx := range indices {
		volumes[i] = s.Volumes[volumeIdx]
	}

	return volumes
}

func (s *Scene) buildGrid() {
	if s.CullGrid == nil {
		s.CullGrid = NewCullGrid(DEFAULT_CELL_SIZE, DEFAULT_CELL_COUNT)
	}

	s.CullGrid.Clear()
	for i, volume := range s.Volumes {
		s.CullGrid.Insert(i, volume.Bounds)
	}
	s.CullGrid.SortCells()
}
