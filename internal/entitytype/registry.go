package entitytype

import (
	"sync"

	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Registry interns Types by uid within a single workspace, so two
// entities that reference "the same" type (by uid, or by
// name+primitive for DataType) share one Type value rather than each
// getting its own copy — spec §3's find_or_create contract.
type Registry struct {
	mu    sync.RWMutex
	byUID map[types.UID]*Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byUID: make(map[types.UID]*Type)}
}

// Find returns the type registered under uid, if any.
func (r *Registry) Find(uid types.UID) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byUID[uid]
	return t, ok
}

// Register interns t under t.UID, generating a uid if t.UID is nil.
// Returns the type actually stored in the registry: if a type with the
// same uid is already registered, the existing one is returned and t is
// discarded, matching find_or_create's "share existing" contract.
func (r *Registry) Register(t *Type) *Type {
	if t.UID.IsNil() {
		t.UID = types.NewUID()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byUID[t.UID]; ok {
		return existing
	}
	r.byUID[t.UID] = t
	return t
}

// FindOrCreate returns the registered type for uid if present;
// otherwise it registers and returns build().
func (r *Registry) FindOrCreate(uid types.UID, build func() *Type) *Type {
	if !uid.IsNil() {
		if t, ok := r.Find(uid); ok {
			return t
		}
	}
	return r.Register(build())
}

// FindByNameAndKind returns a registered type matching name and kind.
// When several types share that name and kind, which one is returned is
// not defined.
func (r *Registry) FindByNameAndKind(name string, kind Kind) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.byUID {
		if t.Kind == kind && t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// All returns every registered type, in no particular order.
func (r *Registry) All() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, 0, len(r.byUID))
	for _, t := range r.byUID {
		out = append(out, t)
	}
	return out
}
