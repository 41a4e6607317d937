package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayrollStatusTransitions(t *testing.T) {
	tests := []struct {
		from PayrollStatus
		to   PayrollStatus
		ok   bool
	}{
		{PayrollStatusOpen, PayrollStatusProcessing, true},
		{PayrollStatusOpen, PayrollStatusClosed, false},
		{PayrollStatusProcessing, PayrollStatusOpen, true},
		{PayrollStatusProcessing, PayrollStatusClosed, true},
		{PayrollStatusClosed, PayrollStatusReopened, true},
		{PayrollStatusClosed, PayrollStatusOpen, false},
		{PayrollStatusReopened, PayrollStatusProcessing, true},
		{PayrollStatusReopened, PayrollStatusClosed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPayrollStatusAcceptsEntries(t *testing.T) {
	assert.True(t, PayrollStatusOpen.AcceptsEntries())
	assert.True(t, PayrollStatusReopened.AcceptsEntries())
	assert.False(t, PayrollStatusProcessing.AcceptsEntries())
	assert.False(t, PayrollStatusClosed.AcceptsEntries())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleCredentialing.IsValid())
	assert.False(t, Role("root").IsValid())
	assert.True(t, ModalityPregao.IsValid())
	assert.False(t, Modality("leilao").IsValid())
}

func TestPositionKindIsValid(t *testing.T) {
	assert.True(t, PositionKindCommissioned.IsValid())
	assert.False(t, PositionKind("intern").IsValid())
}
