package permissions

// Registry maps resource kinds to their policy. Kinds are registered at
// startup; lookups for unknown kinds deny everything, which is the safe
// default for a mis-wired handler.
type Registry struct {
	policies map[string]Policy
}

// NewRegistry returns an empty policy registry.
func NewRegistry() *Registry {
	return &Registry{policies: make(map[string]Policy)}
}

// Register attaches a policy to a resource kind, replacing any previous one.
func (r *Registry) Register(kind string, policy Policy) {
	r.policies[kind] = policy
}

// For returns the policy registered for kind.
func (r *Registry) For(kind string) Policy {
	if p, ok := r.policies[kind]; ok {
		return p
	}
	return denyAll
}

// Allowed applies the policy for kind in one call.
func (r *Registry) Allowed(kind string, requesterID uint, obj Object, op OpClass) bool {
	return r.For(kind)(requesterID, obj, op)
}

func denyAll(uint, Object, OpClass) bool {
	return false
}

// Default returns the registry used by the API: profiles are visible to
// the owner and graph neighbors, posts and comments are world-readable
// and owner-writable.
func Default() *Registry {
	r := NewRegistry()
	r.Register("profile", OwnerOrFollower)
	r.Register("post", OwnerOrReadOnly)
	r.Register("comment", OwnerOrReadOnly)
	return r
}
