package workflow

import (
	"context"
	"fmt"
)

type NodeID string

const Done NodeID = "done"

// maxSteps caps one run of the machine. The loop-count guard already bounds
// the only cycle, so hitting the cap means a wiring bug, not bad weather.
const maxSteps = 32

type NodeFunc func(ctx context.Context, s State) Patch

type GuardFunc func(s State) bool

type edge struct {
	guard GuardFunc // nil means unconditional
	to    NodeID
}

// Machine is a fixed transition table evaluated by a small driver loop. Edges
// are tried in registration order; the first edge whose guard passes (or the
// first unconditional edge) is taken.
type Machine struct {
	nodes map[NodeID]NodeFunc
	edges map[NodeID][]edge
	entry NodeID
}

func NewMachine() *Machine {
	return &Machine{
		nodes: make(map[NodeID]NodeFunc),
		edges: make(map[NodeID][]edge),
	}
}

func (m *Machine) AddNode(id NodeID, fn NodeFunc) {
	m.nodes[id] = fn
}

func (m *Machine) AddEdge(from, to NodeID) {
	m.edges[from] = append(m.edges[from], edge{to: to})
}

func (m *Machine) AddConditionalEdge(from NodeID, guard GuardFunc, to NodeID) {
	m.edges[from] = append(m.edges[from], edge{guard: guard, to: to})
}

func (m *Machine) SetEntryPoint(id NodeID) {
	m.entry = id
}

// Run drives the machine from the entry point until Done, merging each node's
// patch into the state before picking the next edge.
func (m *Machine) Run(ctx context.Context, initial State) (State, error) {
	if m.entry == "" {
		return initial, fmt.Errorf("workflow: no entry point set")
	}

	state := initial
	current := m.entry

	for step := 0; step < maxSteps; step++ {
		if current == Done {
			return state, nil
		}
		if err := ctx.Err(); err != nil {
			return state, fmt.Errorf("workflow: run cancelled at %q: %w", current, err)
		}

		fn, ok := m.nodes[current]
		if !ok {
			return state, fmt.Errorf("workflow: unknown node %q", current)
		}
		state = fn(ctx, state).Apply(state)

		next, err := m.next(current, state)
		if err != nil {
			return state, err
		}
		current = next
	}

	return state, fmt.Errorf("workflow: exceeded %d steps without reaching %q", maxSteps, Done)
}

func (m *Machine) next(from NodeID, s State) (NodeID, error) {
	for _, e := range m.edges[from] {
		if e.guard == nil || e.guard(s) {
			return e.to, nil
		}
	}
	return "", fmt.Errorf("workflow: no edge out of %q matched", from)
}
