package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleUser.Valid())
	assert.True(t, RolePremium.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_CanCreateQuizzes(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleAdmin.CanCreateQuizzes())
	assert.True(t, RolePremium.CanCreateQuizzes())
	assert.False(t, RoleUser.CanCreateQuizzes())
	assert.False(t, Role("").CanCreateQuizzes())
}

func TestDifficulty_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, DifficultyEasy.Valid())
	assert.True(t, DifficultyMedium.Valid())
	assert.True(t, DifficultyHard.Valid())
	assert.False(t, Difficulty("brutal").Valid())
}
