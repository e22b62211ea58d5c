package systems

import (
	"github.com/mlange-42/ark/ecs"

	"skirmish/internal/sim/comp"
)

// CooldownDecay counts attack cooldowns down to zero.
type CooldownDecay struct {
	filter *ecs.Filter1[comp.Cooldown]
	frame  ecs.Resource[comp.Frame]
}

func (s *CooldownDecay) Initialize(w *ecs.World) {
	s.filter = ecs.NewFilter1[comp.Cooldown](w).Register()
	s.frame = ecs.NewResource[comp.Frame](w)
}

func (s *CooldownDecay) Update(w *ecs.World) {
	dt := s.frame.Get().DT
	query := s.filter.Query()
	for query.Next() {
		cd := query.Get()
		if cd.Current > 0 {
			next := cd.Current - dt
			if next < 0 {
				next = 0
			}
			cd.Current = next
		}
	}
}

func (s *CooldownDecay) Finalize(w *ecs.World) {}

type healthWrite struct {
	target  ecs.Entity
	current uint16
}

// Combat resolves attacks every fifth frame. Ready attackers (cooldown at
// zero) hit their target for max(1, damage - armor*0.1); targets without
// armor take the raw amount. Health writes are collected during the query
// and applied afterwards so every attacker reads the target's pre-tick
// health, then all ready cooldowns are reset to their maximum. Dangling or
// dead target handles are skipped, never fatal.
type Combat struct {
	attackers *ecs.Filter3[comp.Damage, comp.Cooldown, comp.Target]
	health    *ecs.Map[comp.Health]
	armor     *ecs.Map[comp.Armor]
	frame     ecs.Resource[comp.Frame]
	writes    []healthWrite
}

func (s *Combat) Initialize(w *ecs.World) {
	s.attackers = ecs.NewFilter3[comp.Damage, comp.Cooldown, comp.Target](w).Register()
	s.health = ecs.NewMap[comp.Health](w)
	s.armor = ecs.NewMap[comp.Armor](w)
	s.frame = ecs.NewResource[comp.Frame](w)
}

func (s *Combat) Update(w *ecs.World) {
	if s.frame.Get().Index%5 != 0 {
		return
	}

	s.writes = s.writes[:0]
	query := s.attackers.Query()
	for query.Next() {
		dmg, cd, tgt := query.Get()
		if cd.Current != 0 {
			continue
		}
		if !w.Alive(tgt.Entity) || !s.health.Has(tgt.Entity) {
			continue
		}

		dealt := dmg.Amount
		if s.armor.Has(tgt.Entity) {
			reduced := float32(dmg.Amount) - float32(s.armor.Get(tgt.Entity).Value)*0.1
			if reduced < 1.0 {
				dealt = 1
			} else {
				dealt = uint16(reduced)
			}
		}

		current := s.health.Get(tgt.Entity).Current
		var next uint16
		if current > dealt {
			next = current - dealt
		}
		s.writes = append(s.writes, healthWrite{target: tgt.Entity, current: next})
	}

	for _, wr := range s.writes {
		s.health.Get(wr.target).Current = wr.current
	}

	reset := s.attackers.Query()
	for reset.Next() {
		_, cd, _ := reset.Get()
		if cd.Current == 0 {
			cd.Current = cd.Max
		}
	}
}

func (s *Combat) Finalize(w *ecs.World) {}
