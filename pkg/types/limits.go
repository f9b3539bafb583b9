package types

// GraphLimits bounds the shape of the entity graph a Workspace will
// accept, mirroring the teacher's ast.Limits trio repurposed from
// registry-tree shape to entity-graph shape. Workspace.AddChildren and
// CreateEntity consult these before mutating the graph.
type GraphLimits struct {
	// MaxDepth bounds Group nesting depth measured from the root group.
	MaxDepth int
	// MaxChildrenPerContainer bounds the number of direct children a
	// single Group or Object may hold.
	MaxChildrenPerContainer int
	// MaxEntities bounds the total number of entities (of any kind) a
	// single Workspace may hold.
	MaxEntities int
}

// DefaultLimits is permissive enough for ordinary project files while
// still catching pathological or adversarial input (e.g. a cyclic
// children list smuggled in through a corrupt file).
func DefaultLimits() GraphLimits {
	return GraphLimits{
		MaxDepth:                64,
		MaxChildrenPerContainer: 1 << 20,
		MaxEntities:             1 << 24,
	}
}

// StrictLimits is appropriate for untrusted input: small, deeply-nested
// files are more likely to be malicious than real survey data.
func StrictLimits() GraphLimits {
	return GraphLimits{
		MaxDepth:                16,
		MaxChildrenPerContainer: 1 << 16,
		MaxEntities:             1 << 18,
	}
}

// RelaxedLimits removes the bounds entirely. Intended for trusted batch
// pipelines operating on known-good files.
func RelaxedLimits() GraphLimits {
	return GraphLimits{
		MaxDepth:                0,
		MaxChildrenPerContainer: 0,
		MaxEntities:             0,
	}
}

// Within reports whether depth, childCount, and entityCount all satisfy
// l. A zero field is treated as unbounded, matching RelaxedLimits.
func (l GraphLimits) Within(depth, childCount, entityCount int) bool {
	if l.MaxDepth != 0 && depth > l.MaxDepth {
		return false
	}
	if l.MaxChildrenPerContainer != 0 && childCount > l.MaxChildrenPerContainer {
		return false
	}
	if l.MaxEntities != 0 && entityCount > l.MaxEntities {
		return false
	}
	return true
}
