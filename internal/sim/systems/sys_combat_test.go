package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"skirmish/internal/sim/comp"
)

func spawnTarget(w *ecs.World, health uint16) ecs.Entity {
	return ecs.NewMap[comp.Health](w).NewEntity(&comp.Health{Current: health, Max: 100})
}

func spawnAttacker(w *ecs.World, damage uint16, cooldown float32, target ecs.Entity) ecs.Entity {
	m := ecs.NewMap3[comp.Damage, comp.Cooldown, comp.Target](w)
	return m.NewEntity(
		&comp.Damage{Amount: damage},
		&comp.Cooldown{Current: cooldown, Max: 1},
		&comp.Target{Entity: target},
	)
}

func TestCooldownDecay(t *testing.T) {
	dt := float32(0.016)
	w := testWorld(0, dt)
	m := ecs.NewMap[comp.Cooldown](w)
	running := m.NewEntity(&comp.Cooldown{Current: 1, Max: 1})
	almost := m.NewEntity(&comp.Cooldown{Current: 0.01, Max: 1})
	ready := m.NewEntity(&comp.Cooldown{Current: 0, Max: 1})

	sys := &CooldownDecay{}
	sys.Initialize(w)
	sys.Update(w)

	if got, want := m.Get(running).Current, float32(1)-dt; got != want {
		t.Errorf("running cooldown: got %v, want %v", got, want)
	}
	if got := m.Get(almost).Current; got != 0 {
		t.Errorf("cooldown must clamp at zero, got %v", got)
	}
	if got := m.Get(ready).Current; got != 0 {
		t.Errorf("ready cooldown must stay zero, got %v", got)
	}
}

func TestCombatArmorReduction(t *testing.T) {
	w := testWorld(0, 0.016)
	target := spawnTarget(w, 100)
	ecs.NewMap[comp.Armor](w).Add(target, &comp.Armor{Value: 50})
	attacker := spawnAttacker(w, 10, 0, target)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	// 10 - 50*0.1 = 5 damage.
	if got := ecs.NewMap[comp.Health](w).Get(target).Current; got != 95 {
		t.Errorf("target health: got %d, want 95", got)
	}
	if got := ecs.NewMap[comp.Cooldown](w).Get(attacker).Current; got != 1 {
		t.Errorf("attacker cooldown not reset: got %v, want 1", got)
	}
}

func TestCombatDamageFloorsAtOne(t *testing.T) {
	w := testWorld(0, 0.016)
	target := spawnTarget(w, 100)
	ecs.NewMap[comp.Armor](w).Add(target, &comp.Armor{Value: 95})
	spawnAttacker(w, 10, 0, target)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	// 10 - 95*0.1 = 0.5, floored to 1.
	if got := ecs.NewMap[comp.Health](w).Get(target).Current; got != 99 {
		t.Errorf("target health: got %d, want 99", got)
	}
}

func TestCombatRawDamageWithoutArmor(t *testing.T) {
	w := testWorld(0, 0.016)
	target := spawnTarget(w, 100)
	spawnAttacker(w, 10, 0, target)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	if got := ecs.NewMap[comp.Health](w).Get(target).Current; got != 90 {
		t.Errorf("target health: got %d, want 90", got)
	}
}

func TestCombatAttackersReadPreTickHealth(t *testing.T) {
	w := testWorld(0, 0.016)
	target := spawnTarget(w, 100)
	spawnAttacker(w, 30, 0, target)
	spawnAttacker(w, 30, 0, target)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	// Both attackers read health 100 and write 70; damage within one tick
	// does not accumulate.
	if got := ecs.NewMap[comp.Health](w).Get(target).Current; got != 70 {
		t.Errorf("target health: got %d, want 70", got)
	}
}

func TestCombatHealthFloorsAtZero(t *testing.T) {
	w := testWorld(0, 0.016)
	target := spawnTarget(w, 50)
	spawnAttacker(w, 200, 0, target)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	if got := ecs.NewMap[comp.Health](w).Get(target).Current; got != 0 {
		t.Errorf("target health: got %d, want 0", got)
	}
}

func TestCombatToleratesDanglingTarget(t *testing.T) {
	w := testWorld(0, 0.016)
	target := spawnTarget(w, 100)
	attacker := spawnAttacker(w, 10, 0, target)
	w.RemoveEntity(target)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	// The attack is skipped, but the ready cooldown is still reset.
	if got := ecs.NewMap[comp.Cooldown](w).Get(attacker).Current; got != 1 {
		t.Errorf("attacker cooldown: got %v, want 1", got)
	}
}

func TestCombatSelfTarget(t *testing.T) {
	w := testWorld(0, 0.016)
	e := spawnTarget(w, 100)
	ecs.NewMap3[comp.Damage, comp.Cooldown, comp.Target](w).Add(
		e,
		&comp.Damage{Amount: 10},
		&comp.Cooldown{Current: 0, Max: 1},
		&comp.Target{Entity: e},
	)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	if got := ecs.NewMap[comp.Health](w).Get(e).Current; got != 90 {
		t.Errorf("self-inflicted health: got %d, want 90", got)
	}
}

func TestCombatSkipsOffFrames(t *testing.T) {
	w := testWorld(1, 0.016)
	target := spawnTarget(w, 100)
	attacker := spawnAttacker(w, 10, 0, target)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	if got := ecs.NewMap[comp.Health](w).Get(target).Current; got != 100 {
		t.Errorf("combat ran on an off frame: health %d", got)
	}
	if got := ecs.NewMap[comp.Cooldown](w).Get(attacker).Current; got != 0 {
		t.Errorf("cooldown reset on an off frame: got %v", got)
	}
}

func TestCombatSkipsUnreadyAttacker(t *testing.T) {
	w := testWorld(0, 0.016)
	target := spawnTarget(w, 100)
	attacker := spawnAttacker(w, 10, 0.5, target)

	sys := &Combat{}
	sys.Initialize(w)
	sys.Update(w)

	if got := ecs.NewMap[comp.Health](w).Get(target).Current; got != 100 {
		t.Errorf("unready attacker dealt damage: health %d", got)
	}
	if got := ecs.NewMap[comp.Cooldown](w).Get(attacker).Current; got != 0.5 {
		t.Errorf("unready cooldown changed: got %v, want 0.5", got)
	}
}
