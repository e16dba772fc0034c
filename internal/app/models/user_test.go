package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("student"))
	assert.True(t, ValidRole("institute"))
	assert.True(t, ValidRole("company"))

	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole("Student"))
	assert.False(t, ValidRole(""))
}
