package graph

import (
	"math"
	"math/rand"
)

// Layout tuning constants. Forces are scaled by a temperature that decays
// over the run, annealing the system so it settles instead of oscillating.
const (
	repulsionStrength = 5000.0
	springStrength    = 0.01
	springLength      = 150.0
	damping           = 0.9
	initialSpread     = 200.0
	minTemperature    = 0.1

	// DefaultSteps is the simulation length used when the caller does not
	// drive stepping itself.
	DefaultSteps = 200
)

// NodePos is one node's position and velocity in layout space. Positions are
// centered on the origin; the presentation layer applies pan/zoom on top.
type NodePos struct {
	X, Y   float64
	VX, VY float64
}

// InitPositions places n nodes on a jittered ring: evenly spaced angles with
// randomized radii, avoiding the degenerate all-at-origin start. Pass a nil
// rng to use the shared global source; layouts are intentionally not
// deterministic.
func InitPositions(n int, rng *rand.Rand) []NodePos {
	randFloat := rand.Float64
	if rng != nil {
		randFloat = rng.Float64
	}
	out := make([]NodePos, n)
	for i := range out {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := initialSpread * (0.3 + 0.7*randFloat())
		out[i] = NodePos{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}
	return out
}

// Step advances the simulation one tick at the given temperature and returns
// the new positions; the input slice is not modified. Positions are indexed
// like d.Nodes.
func Step(d Data, positions []NodePos, temperature float64) []NodePos {
	out := append([]NodePos{}, positions...)
	n := len(out)
	if n == 0 {
		return out
	}

	// Pairwise repulsion.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := out[i].X - out[j].X
			dy := out[i].Y - out[j].Y
			distSq := math.Max(1, dx*dx+dy*dy)
			dist := math.Sqrt(distSq)
			force := repulsionStrength / distSq * temperature
			fx := force * dx / dist
			fy := force * dy / dist
			out[i].VX += fx
			out[i].VY += fy
			out[j].VX -= fx
			out[j].VY -= fy
		}
	}

	// Spring attraction along edges, toward the rest length.
	idx := d.NodeIndex()
	for _, e := range d.Edges {
		i1, ok1 := idx[e.Tag1]
		i2, ok2 := idx[e.Tag2]
		if !ok1 || !ok2 {
			continue
		}
		dx := out[i2].X - out[i1].X
		dy := out[i2].Y - out[i1].Y
		dist := math.Max(1, math.Sqrt(dx*dx+dy*dy))
		force := springStrength * (dist - springLength) * temperature
		fx := force * dx / dist
		fy := force * dy / dist
		out[i1].VX += fx
		out[i1].VY += fy
		out[i2].VX -= fx
		out[i2].VY -= fy
	}

	// Damped integration.
	for i := range out {
		out[i].VX *= damping
		out[i].VY *= damping
		out[i].X += out[i].VX
		out[i].Y += out[i].VY
	}
	return out
}

// Temperature returns the annealing temperature for a given step of a run:
// a linear decay from 1 toward the floor.
func Temperature(step, steps int) float64 {
	if steps <= 0 {
		return minTemperature
	}
	return math.Max(minTemperature, 1-float64(step)/float64(steps))
}

// Run lays out the graph from a fresh jittered-ring start over the given
// number of annealed steps. Exact coordinates vary run to run; structural
// properties (edge lengths, separation) converge.
func Run(d Data, steps int, rng *rand.Rand) []NodePos {
	if steps <= 0 {
		steps = DefaultSteps
	}
	positions := InitPositions(len(d.Nodes), rng)
	for i := 0; i < steps; i++ {
		positions = Step(d, positions, Temperature(i, steps))
	}
	return positions
}

// NodeRadius returns a node's display radius, scaled by its share of the
// largest count.
func NodeRadius(count, maxCount int) float64 {
	if maxCount < 1 {
		maxCount = 1
	}
	return 15 + 25*float64(count)/float64(maxCount)
}

// HitTest returns the index of the node whose center lies within 1.5x its
// radius of the given point in layout space (the caller inverse-applies any
// pan/zoom first). The first match in node order wins.
func HitTest(d Data, positions []NodePos, x, y float64) (int, bool) {
	maxCount := d.MaxCount()
	for i := range d.Nodes {
		if i >= len(positions) {
			break
		}
		r := NodeRadius(d.Nodes[i].Count, maxCount) * 1.5
		dx := x - positions[i].X
		dy := y - positions[i].Y
		if dx*dx+dy*dy <= r*r {
			return i, true
		}
	}
	return 0, false
}
