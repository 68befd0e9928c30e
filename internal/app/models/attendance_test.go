package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, StatusPresent, NormalizeStatus("PRESENT"))
	assert.Equal(t, StatusAbsent, NormalizeStatus("ABSENT"))
	assert.Equal(t, StatusODInternal, NormalizeStatus("OD_INTERNAL"))
	assert.Equal(t, StatusODExternal, NormalizeStatus("OD_EXTERNAL"))

	// The lenient policy: anything unrecognized becomes PRESENT
	assert.Equal(t, StatusPresent, NormalizeStatus(""))
	assert.Equal(t, StatusPresent, NormalizeStatus("SICK"))
	assert.Equal(t, StatusPresent, NormalizeStatus("absent"))
}

func TestRoleTypeIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleFaculty.IsValid())
	assert.True(t, RoleStudent.IsValid())
	assert.False(t, RoleType("INSTRUCTOR").IsValid())
	assert.False(t, RoleType("").IsValid())
}
