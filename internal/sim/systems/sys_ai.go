package systems

import (
	"github.com/mlange-42/ark/ecs"

	"skirmish/internal/sim/comp"
	"skirmish/internal/simrand"
)

// AIJitter re-rolls movement intent every twentieth frame: each unit is
// nudged by up to ±1 on each axis with probability 0.1. The generator is
// reseeded from the frame index, so a frame's jitter does not depend on
// earlier frames.
type AIJitter struct {
	filter *ecs.Filter1[comp.Velocity]
	frame  ecs.Resource[comp.Frame]
}

func (s *AIJitter) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[comp.Velocity](w).Register()
	s.frame = ecs.NewResource[comp.Frame](w)
}

func (s *AIJitter) Update(w *ecs.World) {
	frame := s.frame.Get()
	if frame.Index%20 != 0 {
		return
	}
	rng := simrand.New(frame.Index)
	query := s.filter.Query()
	for query.Next() {
		vel := query.Get()
		if rng.NextFloat32() > 0.9 {
			vel.VX += (rng.NextFloat32() - 0.5) * 2.0
			vel.VY += (rng.NextFloat32() - 0.5) * 2.0
		}
	}
}

func (s *AIJitter) Finalize(w *ecs.World) {}
