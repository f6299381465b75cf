package graph

import (
	"math"
	"math/rand"
	"testing"
)

func twoNodeGraph() Data {
	return Data{
		Nodes: []Node{{Tag: "a", Count: 1}, {Tag: "b", Count: 1}},
		Edges: []Edge{{Tag1: "a", Tag2: "b", Weight: 1}},
	}
}

func TestInitPositionsSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	positions := InitPositions(8, rng)
	if len(positions) != 8 {
		t.Fatalf("expected 8 positions, got %d", len(positions))
	}
	for i, p := range positions {
		r := math.Hypot(p.X, p.Y)
		if r < initialSpread*0.3-1e-9 || r > initialSpread+1e-9 {
			t.Errorf("position %d radius %v outside jittered ring", i, r)
		}
	}
}

func TestRunSeparatesConnectedPair(t *testing.T) {
	// Two connected nodes settle near the equilibrium where spring pull
	// balances repulsion, somewhat past the rest length. Coordinates vary
	// run to run, so only the separation is checked.
	d := twoNodeGraph()
	rng := rand.New(rand.NewSource(42))
	positions := Run(d, DefaultSteps, rng)

	dist := math.Hypot(positions[0].X-positions[1].X, positions[0].Y-positions[1].Y)
	if dist < 100 || dist > 260 {
		t.Errorf("settled distance = %v, want near spring equilibrium", dist)
	}
}

func TestRunKeepsDisconnectedNodesApart(t *testing.T) {
	d := Data{Nodes: []Node{{Tag: "a", Count: 1}, {Tag: "b", Count: 1}, {Tag: "c", Count: 1}}}
	rng := rand.New(rand.NewSource(7))
	positions := Run(d, DefaultSteps, rng)

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			dist := math.Hypot(positions[i].X-positions[j].X, positions[i].Y-positions[j].Y)
			if dist < 50 {
				t.Errorf("nodes %d and %d ended %v apart; repulsion failed", i, j, dist)
			}
		}
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	d := twoNodeGraph()
	in := []NodePos{{X: 10}, {X: -10}}
	orig := append([]NodePos{}, in...)
	_ = Step(d, in, 1)
	for i := range in {
		if in[i] != orig[i] {
			t.Errorf("input position %d mutated: %+v", i, in[i])
		}
	}
}

func TestStepEmptyGraph(t *testing.T) {
	if got := Step(Data{}, nil, 1); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestTemperatureDecay(t *testing.T) {
	if got := Temperature(0, 200); got != 1 {
		t.Errorf("initial temperature = %v, want 1", got)
	}
	if got := Temperature(100, 200); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("midpoint temperature = %v, want 0.5", got)
	}
	if got := Temperature(199, 200); got < minTemperature {
		t.Errorf("temperature %v fell below floor", got)
	}
	if got := Temperature(500, 200); got != minTemperature {
		t.Errorf("past-end temperature = %v, want floor", got)
	}
}

func TestNodeRadius(t *testing.T) {
	tests := []struct {
		count, maxCount int
		want            float64
	}{
		{1, 1, 40},
		{1, 2, 27.5},
		{0, 4, 15},
		{2, 0, 65}, // degenerate maxCount clamps to 1
	}
	for _, tt := range tests {
		if got := NodeRadius(tt.count, tt.maxCount); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NodeRadius(%d, %d) = %v, want %v", tt.count, tt.maxCount, got, tt.want)
		}
	}
}

func TestHitTest(t *testing.T) {
	d := Data{Nodes: []Node{{Tag: "a", Count: 1}, {Tag: "b", Count: 1}}}
	positions := []NodePos{{X: 0, Y: 0}, {X: 500, Y: 0}}

	// Both nodes have radius 40, so the grab zone extends to 60.
	if i, ok := HitTest(d, positions, 59, 0); !ok || i != 0 {
		t.Errorf("hit inside grab zone = (%d, %v), want node 0", i, ok)
	}
	if _, ok := HitTest(d, positions, 61, 0); ok {
		t.Error("point outside grab zone should miss")
	}
	if i, ok := HitTest(d, positions, 510, 10); !ok || i != 1 {
		t.Errorf("hit near second node = (%d, %v), want node 1", i, ok)
	}
	if _, ok := HitTest(d, positions, 250, 250); ok {
		t.Error("far point should miss everything")
	}
}

func TestHitTestFirstMatchWins(t *testing.T) {
	d := Data{Nodes: []Node{{Tag: "a", Count: 1}, {Tag: "b", Count: 1}}}
	positions := []NodePos{{X: 0, Y: 0}, {X: 10, Y: 0}}
	if i, ok := HitTest(d, positions, 5, 0); !ok || i != 0 {
		t.Errorf("overlapping hit = (%d, %v), want first node", i, ok)
	}
}
