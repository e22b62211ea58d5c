// Package bench drives the combat simulation and reduces frame timings to
// the reported metrics.
package bench

import (
	"time"

	"github.com/mlange-42/ark-tools/app"
	"github.com/mlange-42/ark/ecs"

	"skirmish/internal/sim"
	"skirmish/internal/sim/comp"
	"skirmish/internal/sim/systems"
)

// Simulation owns one populated world and the full stage pipeline. It moves
// through Initialized -> Running -> Completed; stages never fail, so there
// is no error path.
type Simulation struct {
	app   *app.App
	frame ecs.Resource[comp.Frame]
}

// NewSimulation builds a world with n units and the eleven pipeline stages
// in their fixed order.
func NewSimulation(n int, seed uint32, dt float32) *Simulation {
	capacity := n
	if capacity < 16 {
		capacity = 16
	}
	a := app.New(capacity).Seed(uint64(seed))

	frame := ecs.NewResource[comp.Frame](&a.World)
	frame.Add(&comp.Frame{DT: dt})

	sim.Populate(&a.World, n, seed)

	a.AddSystem(&systems.Movement{})
	a.AddSystem(&systems.Rotation{})
	a.AddSystem(&systems.Boundary{})
	a.AddSystem(&systems.HealthRegen{})
	a.AddSystem(&systems.CooldownDecay{})
	a.AddSystem(&systems.Combat{})
	a.AddSystem(&systems.Death{})
	a.AddSystem(&systems.StatusEffect{})
	a.AddSystem(&systems.Lifetime{})
	a.AddSystem(&systems.VelocityDamping{})
	a.AddSystem(&systems.AIJitter{})

	a.Initialize()
	return &Simulation{app: a, frame: frame}
}

// World exposes the underlying ECS world for inspection in tests.
func (s *Simulation) World() *ecs.World {
	return &s.app.World
}

// Step runs the full pipeline once for the given frame index and returns
// the elapsed wall-clock time, read from the monotonic clock.
func (s *Simulation) Step(frameIndex int) time.Duration {
	s.frame.Get().Index = uint32(frameIndex)
	start := time.Now()
	s.app.Update()
	return time.Since(start)
}

// Finalize tears the pipeline down.
func (s *Simulation) Finalize() {
	s.app.Finalize()
}

// RunSimulation executes one full benchmark run: generate a population of n
// units, step the pipeline for the given number of frames and return the
// per-frame durations in milliseconds.
func RunSimulation(n, frames int, seed uint32, dt float32) []float64 {
	simulation := NewSimulation(n, seed, dt)
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		samples[i] = simulation.Step(i).Seconds() * 1000.0
	}
	simulation.Finalize()
	return samples
}
