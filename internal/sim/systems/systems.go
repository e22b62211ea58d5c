// Package systems implements the per-frame update pipeline of the combat
// simulation. The stages run in a fixed order every frame:
//
//	Movement, Rotation, Boundary, HealthRegen, CooldownDecay, Combat,
//	Death, StatusEffect, Lifetime, VelocityDamping, AIJitter
//
// The order is significant: changing it changes simulation results. Each
// stage implements Initialize/Update/Finalize over an ark world so the set
// can be scheduled by an ark-tools app. Stages never fail; a unit missing a
// required attribute is simply not matched by the stage's filter.
package systems
