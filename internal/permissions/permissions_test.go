package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type ownedObject struct {
	owner uint
}

func (o ownedObject) OwnerID() uint { return o.owner }

type graphObject struct {
	ownedObject
	followers []uint
	following []uint
}

func (g graphObject) FollowerOwnerIDs() []uint  { return g.followers }
func (g graphObject) FollowingOwnerIDs() []uint { return g.following }

func TestOwnerOrReadOnly(t *testing.T) {
	obj := ownedObject{owner: 1}

	assert.True(t, OwnerOrReadOnly(2, obj, OpSafe), "anyone may read")
	assert.True(t, OwnerOrReadOnly(1, obj, OpUnsafe), "owner may write")
	assert.False(t, OwnerOrReadOnly(2, obj, OpUnsafe), "non-owner may not write")
}

func TestOwnerOrFollower(t *testing.T) {
	obj := graphObject{
		ownedObject: ownedObject{owner: 1},
		followers:   []uint{2},
		following:   []uint{3},
	}

	tests := []struct {
		name      string
		requester uint
		op        OpClass
		want      bool
	}{
		{"owner reads", 1, OpSafe, true},
		{"owner writes", 1, OpUnsafe, true},
		{"follower reads", 2, OpSafe, true},
		{"followee reads", 3, OpSafe, true},
		{"stranger reads", 4, OpSafe, false},
		{"follower writes", 2, OpUnsafe, false},
		{"followee writes", 3, OpUnsafe, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OwnerOrFollower(tt.requester, obj, tt.op))
		})
	}
}

func TestOwnerOrFollowerWithoutGraphContext(t *testing.T) {
	// A plain owned object carries no graph context; reads collapse to
	// owner-only rather than guessing.
	obj := ownedObject{owner: 1}

	assert.True(t, OwnerOrFollower(1, obj, OpSafe))
	assert.False(t, OwnerOrFollower(2, obj, OpSafe))
}

func TestRegistryUnknownKindDeniesAll(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Allowed("mystery", 1, ownedObject{owner: 1}, OpSafe))
	assert.False(t, r.Allowed("mystery", 1, ownedObject{owner: 1}, OpUnsafe))
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	post := ownedObject{owner: 1}
	profile := graphObject{ownedObject: ownedObject{owner: 1}, followers: []uint{2}}

	assert.True(t, r.Allowed("post", 5, post, OpSafe))
	assert.False(t, r.Allowed("post", 5, post, OpUnsafe))
	assert.True(t, r.Allowed("comment", 1, post, OpUnsafe))
	assert.True(t, r.Allowed("profile", 2, profile, OpSafe))
	assert.False(t, r.Allowed("profile", 3, profile, OpSafe))
}
