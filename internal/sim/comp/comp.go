// Package comp defines the component records attached to simulated combat
// units. Field widths match the reference workload exactly (f32/u16/u8) so
// the archetype layout stays comparable across engine ports.
package comp

import "github.com/mlange-42/ark/ecs"

// Transform2D is the world-space position and facing of a unit. Positions
// are wrapped into [0, 1000] by the boundary stage.
type Transform2D struct {
	X        float32
	Y        float32
	Rotation float32
}

// Velocity in world units per second.
type Velocity struct {
	VX float32
	VY float32
}

// Health tracks hit points. Current never exceeds Max and never underflows.
type Health struct {
	Current uint16
	Max     uint16
}

// Armor reduces incoming damage by Value*0.1 per hit.
type Armor struct {
	Value uint16
}

// Damage is the raw amount dealt per attack.
type Damage struct {
	Amount uint16
}

// Cooldown gates attacks. Current counts down to zero and is reset to Max
// after the attack fires.
type Cooldown struct {
	Current float32
	Max     float32
}

// Team assigns a unit to one of four factions.
type Team struct {
	ID uint8
}

// Target references another unit's handle. The handle may dangle once the
// target dies; consumers must check liveness before dereferencing.
type Target struct {
	Entity ecs.Entity
}

// Status carries movement-impairing effects. Stunned takes priority over
// Slowed.
type Status struct {
	Stunned uint8
	Slowed  uint8
}

// Lifetime is the remaining time budget of a temporary unit, in seconds.
type Lifetime struct {
	Remaining float32
}

// Frame is the per-step simulation context, stored as a world resource so
// the stages stay pure functions of world state plus frame context.
type Frame struct {
	Index uint32
	DT    float32
}
