// Package sim builds the synthetic combat population the benchmark runs
// against.
package sim

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"skirmish/internal/sim/comp"
	"skirmish/internal/simrand"
)

// unitSpec holds one unit's attribute draws before the entity exists, so a
// target index can resolve to a unit that is created later in the batch.
type unitSpec struct {
	transform comp.Transform2D
	velocity  comp.Velocity
	team      comp.Team

	hasArmor bool
	armor    comp.Armor

	hasAttack bool
	damage    comp.Damage
	cooldown  comp.Cooldown
	targetIdx int

	hasStatus bool
	status    comp.Status

	hasLifetime bool
	lifetime    comp.Lifetime
}

// Populate fills the world with n combat units generated from the given
// seed and returns their handles in creation order.
//
// Every unit carries Transform2D, Velocity, Health and Team; armor (p=0.8),
// an attack kit (p=0.6), status effects (p=0.2) and a lifetime (p=0.15) are
// attached by independent gates. All draws come from a single RNG stream in
// a fixed per-unit order; reordering them changes the population for a
// given seed, so this loop must never be parallelized.
func Populate(world *ecs.World, n int, seed uint32) []ecs.Entity {
	rng := simrand.New(seed)

	specs := make([]unitSpec, n)
	for i := range specs {
		s := &specs[i]
		s.transform = comp.Transform2D{
			X:        rng.NextFloat32() * 1000.0,
			Y:        rng.NextFloat32() * 1000.0,
			Rotation: rng.NextFloat32() * math.Pi * 2.0,
		}
		s.velocity = comp.Velocity{
			VX: rng.NextFloat32()*10.0 - 5.0,
			VY: rng.NextFloat32()*10.0 - 5.0,
		}

		if rng.NextFloat32() > 0.2 {
			s.hasArmor = true
			s.armor = comp.Armor{Value: uint16(rng.NextFloat32() * 50.0)}
		}

		if rng.NextFloat32() > 0.4 {
			s.hasAttack = true
			s.targetIdx = int(rng.NextFloat32() * float32(n))
			if s.targetIdx >= n {
				s.targetIdx = n - 1
			}
			s.damage = comp.Damage{Amount: uint16(rng.NextFloat32()*20.0) + 10}
			s.cooldown = comp.Cooldown{Current: 0.0, Max: 1.0}
		}

		s.team = comp.Team{ID: uint8(rng.NextFloat32() * 4.0)}

		if rng.NextFloat32() > 0.8 {
			s.hasStatus = true
			if rng.NextFloat32() > 0.5 {
				s.status.Stunned = 1
			}
			if rng.NextFloat32() > 0.5 {
				s.status.Slowed = 1
			}
		}

		if rng.NextFloat32() > 0.85 {
			s.hasLifetime = true
			s.lifetime = comp.Lifetime{Remaining: rng.NextFloat32() * 5.0}
		}
	}

	core := ecs.NewMap4[comp.Transform2D, comp.Velocity, comp.Health, comp.Team](world)
	entities := make([]ecs.Entity, n)
	for i := range specs {
		health := comp.Health{Current: 100, Max: 100}
		entities[i] = core.NewEntity(&specs[i].transform, &specs[i].velocity, &health, &specs[i].team)
	}

	armorMap := ecs.NewMap[comp.Armor](world)
	attackMap := ecs.NewMap3[comp.Damage, comp.Cooldown, comp.Target](world)
	statusMap := ecs.NewMap[comp.Status](world)
	lifetimeMap := ecs.NewMap[comp.Lifetime](world)

	for i := range specs {
		s := &specs[i]
		if s.hasArmor {
			armorMap.Add(entities[i], &s.armor)
		}
		if s.hasAttack {
			// Targets may self-reference; they dangle once the target dies.
			target := comp.Target{Entity: entities[s.targetIdx]}
			attackMap.Add(entities[i], &s.damage, &s.cooldown, &target)
		}
		if s.hasStatus {
			statusMap.Add(entities[i], &s.status)
		}
		if s.hasLifetime {
			lifetimeMap.Add(entities[i], &s.lifetime)
		}
	}

	return entities
}
