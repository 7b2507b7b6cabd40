// Package permissions decides whether a requester may perform an action
// on an object. Policies are pure predicates over (requester, object,
// operation class); they never touch storage and never have side effects.
// Callers load whatever graph context a policy needs before asking.
package permissions

// OpClass classifies an operation as safe (read-only) or unsafe
// (write/delete), mirroring HTTP safe methods.
type OpClass int

const (
	// OpSafe is a read-only operation (list, retrieve).
	OpSafe OpClass = iota
	// OpUnsafe is a mutating operation (create on, update, delete).
	OpUnsafe
)

// Object is anything with a single owning user.
type Object interface {
	OwnerID() uint
}

// GraphObject is an object whose read visibility depends on the follow
// graph. The two ID sets are owner user IDs derived from the follows
// edge table: who follows this object's owner, and who its owner follows.
type GraphObject interface {
	Object
	FollowerOwnerIDs() []uint
	FollowingOwnerIDs() []uint
}

// Policy reports whether requester may perform an operation of the given
// class on obj.
type Policy func(requesterID uint, obj Object, op OpClass) bool

// OwnerOrReadOnly allows anyone to read and only the owner to write.
// Applied to posts and comments.
func OwnerOrReadOnly(requesterID uint, obj Object, op OpClass) bool {
	if op == OpSafe {
		return true
	}
	return requesterID == obj.OwnerID()
}

// OwnerOrFollower restricts writes to the owner and reads to the owner
// plus anyone connected to the owner in either direction of the follow
// graph. Applied to profiles. Objects that do not carry graph context
// fall back to owner-only.
func OwnerOrFollower(requesterID uint, obj Object, op OpClass) bool {
	if requesterID == obj.OwnerID() {
		return true
	}
	if op == OpUnsafe {
		return false
	}
	graph, ok := obj.(GraphObject)
	if !ok {
		return false
	}
	return contains(graph.FollowerOwnerIDs(), requesterID) ||
		contains(graph.FollowingOwnerIDs(), requesterID)
}

func contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
