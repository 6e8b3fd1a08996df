package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHierarchy(t *testing.T) {
	ordered := []Role{RoleAnonymous, RoleUser, RoleAdmin, RoleSuperAdmin}

	for i, lower := range ordered {
		for _, higher := range ordered[i+1:] {
			assert.Truef(t, higher.AtLeast(lower), "%s should satisfy %s", higher, lower)
			assert.Falsef(t, lower.AtLeast(higher), "%s should not satisfy %s", lower, higher)
		}
		assert.True(t, lower.AtLeast(lower))
	}
}

func TestRoleUnknown(t *testing.T) {
	bogus := Role("superadmin") // common typo must never pass any gate
	assert.False(t, bogus.Valid())
	assert.False(t, bogus.AtLeast(RoleAnonymous))
}
