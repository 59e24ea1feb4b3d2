// Package solver implements a minimal fixpoint driver for type relations.
//
// A Graph holds type slots, each either resolved or types.Incomplete, and constraints: a relation applied to a
// list of slots. Solve calls the relations of the unsolved constraints over and over, installing the types they
// return into incomplete slots, until no more progress is made.
package solver

import (
	"github.com/go-logr/logr"
	"github.com/gomlx/typerel"
	"github.com/gomlx/typerel/types"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	// ErrUnresolved is reported for constraints whose slots could not all be resolved when Solve
	// reached a fixpoint.
	ErrUnresolved = errors.New("could not infer type")

	// ErrConflict is reported when a relation returns a type different from one already installed in a slot.
	ErrConflict = errors.New("conflicting types")
)

// DefaultMaxIterations is the default bound on the number of passes over the constraints in Solve.
const DefaultMaxIterations = 100

// SlotID identifies a slot in a Graph.
type SlotID int

type constraint struct {
	name     string
	relation typerel.Relation
	numArgs  int
	slots    []SlotID

	solved bool

	// err is set once the constraint fails: it is not called again.
	err error
}

// Graph of type slots and constraints. It is not safe for concurrent use.
type Graph struct {
	slots       []types.Type
	constraints []*constraint

	logger        logr.Logger
	maxIterations int
	iterations    int
}

// New creates an empty Graph.
func New(options ...Option) *Graph {
	g := &Graph{
		logger:        logr.Discard(),
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// NewSlot adds a slot holding the given type.
// If t is nil, the slot is created incomplete.
func (g *Graph) NewSlot(t types.Type) SlotID {
	id := SlotID(len(g.slots))
	if t == nil {
		t = types.Incomplete{ID: int(id)}
	}
	g.slots = append(g.slots, t)
	return id
}

// NewIncomplete adds an incomplete slot.
func (g *Graph) NewIncomplete() SlotID {
	return g.NewSlot(nil)
}

// Type returns the current type of the slot.
func (g *Graph) Type(id SlotID) types.Type {
	return g.slots[id]
}

// NumSlots returns the number of slots in the graph.
func (g *Graph) NumSlots() int {
	return len(g.slots)
}

// Iterations returns the number of passes over the constraints done by the last call to Solve.
func (g *Graph) Iterations() int {
	return g.iterations
}

// AddConstraint relates the types of the given slots with the relation. The name is used in error messages.
// numArgs is passed as is to the relation.
func (g *Graph) AddConstraint(name string, relation typerel.Relation, numArgs int, slots ...SlotID) error {
	if relation == nil {
		return errors.Errorf("constraint %q has no relation", name)
	}
	for _, id := range slots {
		if id < 0 || int(id) >= len(g.slots) {
			return errors.Errorf("constraint %q refers to unknown slot #%d, graph has %d slots", name, id, len(g.slots))
		}
	}
	g.constraints = append(g.constraints, &constraint{
		name:     name,
		relation: relation,
		numArgs:  numArgs,
		slots:    slots,
	})
	return nil
}

// Solve runs the constraints until a fixpoint is reached.
//
// Constraints are visited in the order they were added. A constraint is solved once all its slots are resolved,
// and it is not called again. A constraint that fails is not called again either, and its error is reported by
// this and any later call to Solve. Constraints left unsolved at the fixpoint are reported with ErrUnresolved.
//
// All errors are combined with multierr, use multierr.Errors to list them.
func (g *Graph) Solve() error {
	g.iterations = 0
	for {
		if g.iterations >= g.maxIterations {
			return multierr.Append(g.failures(false),
				errors.Errorf("type inference did not converge after %d iterations", g.maxIterations))
		}
		g.iterations++
		progress := false
		for _, c := range g.constraints {
			if c.solved || c.err != nil {
				continue
			}
			changed, err := g.apply(c)
			if err != nil {
				c.err = err
				continue
			}
			progress = progress || changed
		}
		g.logger.V(1).Info("type inference pass", "iteration", g.iterations, "progress", progress)
		if !progress {
			break
		}
	}

	return g.failures(true)
}

// failures combines the errors of the failed constraints, in the order they were added. If unresolved is set,
// the constraints not solved are reported with ErrUnresolved.
func (g *Graph) failures(unresolved bool) error {
	var errs error
	for _, c := range g.constraints {
		switch {
		case c.solved:
		case c.err != nil:
			errs = multierr.Append(errs, c.err)
		case unresolved:
			errs = multierr.Append(errs, errors.Wrapf(ErrUnresolved, "constraint %q %s", c.name, g.describe(c)))
		}
	}
	return errs
}

// apply calls the constraint's relation and installs the results. It returns whether any slot changed.
func (g *Graph) apply(c *constraint) (changed bool, err error) {
	args := make([]types.Type, len(c.slots))
	for ii, id := range c.slots {
		args[ii] = g.slots[id]
	}
	result, err := c.relation(args, c.numArgs)
	if err != nil {
		return false, errors.WithMessagef(err, "constraint %q", c.name)
	}
	if len(result.Types) != len(args) {
		return false, errors.Errorf("constraint %q: relation returned %d types for %d slots", c.name, len(result.Types), len(args))
	}
	g.logger.V(2).Info("constraint", "name", c.name, "status", result.Status.String())

	if result.Status == typerel.Refined {
		for ii, id := range c.slots {
			t := result.Types[ii]
			if !types.IsResolved(t) {
				continue
			}
			current := g.slots[id]
			if types.IsIncomplete(current) {
				g.slots[id] = t
				changed = true
				continue
			}
			if !types.Equal(current, t) {
				return changed, errors.Wrapf(ErrConflict, "constraint %q: slot #%d has type %s, relation inferred %s",
					c.name, id, current, t)
			}
		}
	}

	c.solved = true
	for _, id := range c.slots {
		if !types.IsResolved(g.slots[id]) {
			c.solved = false
			break
		}
	}
	return changed, nil
}

// describe renders the constraint's slot types, e.g. "(tensor<2xf32>, ?1) -> ?2".
func (g *Graph) describe(c *constraint) string {
	args := make([]types.Type, len(c.slots))
	for ii, id := range c.slots {
		args[ii] = g.slots[id]
	}
	if len(args) == 0 {
		return "()"
	}
	return types.FuncType{Params: args[:len(args)-1], Result: args[len(args)-1]}.String()
}
