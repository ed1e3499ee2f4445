package uia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stravex/internal/core/domain"
)

func TestRoleOf(t *testing.T) {
	tests := []struct {
		controlType int32
		want        domain.Role
	}{
		{50000, domain.RoleButton},
		{50029, domain.RoleDataItem},
		{50032, domain.RoleWindow},
		{50033, domain.RolePane},
		{50002, "CheckBox"},
		{49999, domain.RoleUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roleOf(tt.controlType), "control type %d", tt.controlType)
	}
}

func TestFormatRuntimeID(t *testing.T) {
	id, ok := formatRuntimeID([]int32{42, 1180, -3})
	assert.True(t, ok)
	assert.Equal(t, "42.1180.-3", id)

	_, ok = formatRuntimeID(nil)
	assert.False(t, ok)
}

func TestRectCenter(t *testing.T) {
	x, y, ok := rect{Left: 100, Top: 20, Right: 200, Bottom: 60}.center()
	assert.True(t, ok)
	assert.Equal(t, 150, x)
	assert.Equal(t, 40, y)

	_, _, ok = rect{}.center()
	assert.False(t, ok)
}
