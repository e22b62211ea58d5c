package systems

import (
	"github.com/mlange-42/ark/ecs"

	"skirmish/internal/sim/comp"
)

// HealthRegen restores 5 hit points every 30th frame, clamped at the
// maximum. Dead units (zero health) do not regenerate.
type HealthRegen struct {
	filter *ecs.Filter1[comp.Health]
	frame  ecs.Resource[comp.Frame]
}

func (s *HealthRegen) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[comp.Health](w).Register()
	s.frame = ecs.NewResource[comp.Frame](w)
}

func (s *HealthRegen) Update(w *ecs.World) {
	if s.frame.Get().Index%30 != 0 {
		return
	}
	query := s.filter.Query()
	for query.Next() {
		h := query.Get()
		if h.Current > 0 && h.Current < h.Max {
			next := h.Current + 5
			if next > h.Max {
				next = h.Max
			}
			h.Current = next
		}
	}
}

func (s *HealthRegen) Finalize(w *ecs.World) {}

// Death removes units whose health reached zero. Removals are collected
// during the query and applied after it closes; structural changes are not
// allowed while the world is locked by iteration.
type Death struct {
	filter *ecs.Filter1[comp.Health]
	dead   []ecs.Entity
}

func (s *Death) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[comp.Health](w).Register()
}

func (s *Death) Update(w *ecs.World) {
	s.dead = s.dead[:0]
	query := s.filter.Query()
	for query.Next() {
		if query.Get().Current == 0 {
			s.dead = append(s.dead, query.Entity())
		}
	}
	for _, e := range s.dead {
		w.RemoveEntity(e)
	}
}

func (s *Death) Finalize(w *ecs.World) {}
