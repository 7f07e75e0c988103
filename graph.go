package airfoil

// A Derived declares one derived quantity: its name, the static set of
// upstream names it depends on (parameters or other derived quantities),
// and the function that recomputes it. Compute must be transactional:
// replace the quantity's value only after computing the new one fully, so
// that a failed recompute leaves the previous value observable.
type Derived struct {
	Name    string
	Deps    []string
	Compute func() error
}

// A Graph propagates committed parameter writes to derived quantities.
// The derived quantities are declared once, in dependency order: a quantity
// may depend on parameters and on quantities declared before it, never
// after. Propagation walks the declaration order, so recomputation is
// always topological (coefficients before coordinates) and each affected
// quantity is recomputed exactly once per write, no matter how many of its
// dependencies changed.
type Graph struct {
	derived []Derived
}

// NewGraph returns a propagation graph over the given derived quantities.
// It panics if the declarations are not in dependency order; the tables are
// static, so a cycle or a forward reference is a programmer error.
func NewGraph(derived []Derived) *Graph {
	declared := make(map[string]int, len(derived))
	for i, d := range derived {
		declared[d.Name] = i
	}
	for i, d := range derived {
		for _, dep := range d.Deps {
			if j, ok := declared[dep]; ok && j >= i {
				panic("airfoil: derived quantity " + d.Name + " declared before its dependency " + dep)
			}
		}
	}
	return &Graph{derived: derived}
}

// Recompute recomputes, in declaration order, every derived quantity whose
// dependency set transitively includes one of the changed names. It stops
// at the first compute error: quantities recomputed before the failure keep
// their new values, the failed one and everything downstream keep their
// previous ones.
func (g *Graph) Recompute(changed ...string) error {
	stale := make(map[string]bool, len(changed))
	for _, name := range changed {
		stale[name] = true
	}
	for _, d := range g.derived {
		if !anyStale(d.Deps, stale) {
			continue
		}
		if err := d.Compute(); err != nil {
			return err
		}
		stale[d.Name] = true
	}
	return nil
}

// RecomputeAll recomputes every derived quantity once, in declaration
// order.
func (g *Graph) RecomputeAll() error {
	for _, d := range g.derived {
		if err := d.Compute(); err != nil {
			return err
		}
	}
	return nil
}

func anyStale(deps []string, stale map[string]bool) bool {
	for _, dep := range deps {
		if stale[dep] {
			return true
		}
	}
	return false
}
