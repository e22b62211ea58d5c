package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"skirmish/internal/sim/comp"
)

// Movement advances positions by velocity scaled with the frame delta time.
type Movement struct {
	filter *ecs.Filter2[comp.Transform2D, comp.Velocity]
	frame  ecs.Resource[comp.Frame]
}

func (s *Movement) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[comp.Transform2D, comp.Velocity](w).Register()
	s.frame = ecs.NewResource[comp.Frame](w)
}

func (s *Movement) Update(w *ecs.World) {
	dt := s.frame.Get().DT
	query := s.filter.Query()
	for query.Next() {
		tr, vel := query.Get()
		tr.X += vel.VX * dt
		tr.Y += vel.VY * dt
	}
}

func (s *Movement) Finalize(w *ecs.World) {}

// Rotation turns each moving unit to face its velocity vector. Units at
// rest keep their previous facing.
type Rotation struct {
	filter *ecs.Filter2[comp.Transform2D, comp.Velocity]
}

func (s *Rotation) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[comp.Transform2D, comp.Velocity](w).Register()
}

func (s *Rotation) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		tr, vel := query.Get()
		if vel.VX != 0 || vel.VY != 0 {
			tr.Rotation = float32(math.Atan2(float64(vel.VY), float64(vel.VX)))
		}
	}
}

func (s *Rotation) Finalize(w *ecs.World) {}

// Boundary teleports units that left the [0, 1000] arena to the opposite
// edge.
type Boundary struct {
	filter *ecs.Filter1[comp.Transform2D]
}

func (s *Boundary) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[comp.Transform2D](w).Register()
}

func (s *Boundary) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		tr := query.Get()
		if tr.X < 0 {
			tr.X = 1000.0
		}
		if tr.X > 1000.0 {
			tr.X = 0.0
		}
		if tr.Y < 0 {
			tr.Y = 1000.0
		}
		if tr.Y > 1000.0 {
			tr.Y = 0.0
		}
	}
}

func (s *Boundary) Finalize(w *ecs.World) {}

// VelocityDamping applies per-frame friction.
type VelocityDamping struct {
	filter *ecs.Filter1[comp.Velocity]
}

func (s *VelocityDamping) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[comp.Velocity](w).Register()
}

func (s *VelocityDamping) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		vel := query.Get()
		vel.VX *= 0.99
		vel.VY *= 0.99
	}
}

func (s *VelocityDamping) Finalize(w *ecs.World) {}
