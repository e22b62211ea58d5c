package systems

import (
	"github.com/mlange-42/ark/ecs"

	"skirmish/internal/sim/comp"
)

// StatusEffect applies movement impairments. Stunned zeroes the velocity
// and overrides Slowed, which halves it.
type StatusEffect struct {
	filter *ecs.Filter2[comp.Status, comp.Velocity]
}

func (s *StatusEffect) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter2[comp.Status, comp.Velocity](w).Register()
}

func (s *StatusEffect) Update(w *ecs.World) {
	query := s.filter.Query()
	for query.Next() {
		st, vel := query.Get()
		if st.Stunned == 1 {
			vel.VX = 0
			vel.VY = 0
		} else if st.Slowed == 1 {
			vel.VX *= 0.5
			vel.VY *= 0.5
		}
	}
}

func (s *StatusEffect) Finalize(w *ecs.World) {}

// Lifetime decrements each temporary unit's time budget and removes units
// whose budget is spent.
type Lifetime struct {
	filter  *ecs.Filter1[comp.Lifetime]
	frame   ecs.Resource[comp.Frame]
	expired []ecs.Entity
}

func (s *Lifetime) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[comp.Lifetime](w).Register()
	s.frame = ecs.NewResource[comp.Frame](w)
}

func (s *Lifetime) Update(w *ecs.World) {
	dt := s.frame.Get().DT
	s.expired = s.expired[:0]
	query := s.filter.Query()
	for query.Next() {
		lt := query.Get()
		remaining := lt.Remaining - dt
		if remaining <= 0 {
			s.expired = append(s.expired, query.Entity())
		} else {
			lt.Remaining = remaining
		}
	}
	for _, e := range s.expired {
		w.RemoveEntity(e)
	}
}

func (s *Lifetime) Finalize(w *ecs.World) {}
