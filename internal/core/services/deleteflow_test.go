package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parassrivastav/traqcheck-cli/internal/core/domain"
)

func TestDeleteFlowConfirmAndCommit(t *testing.T) {
	f := NewDeleteFlow()
	assert.Equal(t, DeleteIdle, f.Phase())

	f.Request(&domain.Candidate{ID: "c-1", Name: "asha rao"})
	assert.Equal(t, DeleteAwaitingConfirmation, f.Phase())
	require.NotNil(t, f.Pending())
	assert.Equal(t, "Asha Rao", f.Pending().DisplayName)

	target := f.Confirm()
	require.NotNil(t, target)
	assert.Equal(t, "c-1", target.CandidateID)
	assert.Equal(t, DeleteCommitting, f.Phase())

	result := f.Finish(nil)
	assert.Equal(t, "c-1", result.Removed)
	assert.True(t, result.SilentRefresh)
	require.NotNil(t, result.Notify)
	assert.Equal(t, "Deleted Asha Rao", result.Notify.Message)
	assert.Equal(t, domain.SeveritySuccess, result.Notify.Severity)
	assert.Equal(t, DeleteIdle, f.Phase())
}

func TestDeleteFlowCancelHasNoRemoteEffect(t *testing.T) {
	f := NewDeleteFlow()
	f.Request(&domain.Candidate{ID: "c-1", Name: "Asha Rao"})

	f.Cancel()

	assert.Equal(t, DeleteIdle, f.Phase())
	assert.Nil(t, f.Pending())
	assert.Nil(t, f.Confirm())
}

func TestDeleteFlowFailureKeepsListUntouched(t *testing.T) {
	f := NewDeleteFlow()
	f.Request(&domain.Candidate{ID: "c-1", Name: "Asha Rao"})
	require.NotNil(t, f.Confirm())

	result := f.Finish(errors.New("boom"))

	assert.Empty(t, result.Removed)
	assert.False(t, result.SilentRefresh)
	require.NotNil(t, result.Notify)
	assert.Equal(t, "Error deleting candidate", result.Notify.Message)
	assert.Equal(t, domain.SeverityError, result.Notify.Severity)
	assert.Equal(t, DeleteIdle, f.Phase())
}

func TestDeleteFlowFailurePrefersServerMessage(t *testing.T) {
	f := NewDeleteFlow()
	f.Request(&domain.Candidate{ID: "c-1", Name: "Asha Rao"})
	require.NotNil(t, f.Confirm())

	result := f.Finish(&serverError{message: "Candidate not found"})

	require.NotNil(t, result.Notify)
	assert.Equal(t, "Candidate not found", result.Notify.Message)
}

func TestDeleteFlowSecondRequestReplacesPending(t *testing.T) {
	f := NewDeleteFlow()
	f.Request(&domain.Candidate{ID: "c-1", Name: "Asha Rao"})
	f.Request(&domain.Candidate{ID: "c-2", Name: "Vikram Mehta"})

	require.NotNil(t, f.Pending())
	assert.Equal(t, "c-2", f.Pending().CandidateID)
}

func TestDeleteFlowIgnoresRequestsWhileCommitting(t *testing.T) {
	f := NewDeleteFlow()
	f.Request(&domain.Candidate{ID: "c-1", Name: "Asha Rao"})
	require.NotNil(t, f.Confirm())

	f.Request(&domain.Candidate{ID: "c-2", Name: "Vikram Mehta"})
	f.Cancel()

	assert.Equal(t, DeleteCommitting, f.Phase())
	require.NotNil(t, f.Pending())
	assert.Equal(t, "c-1", f.Pending().CandidateID)
}

func TestDeleteFlowConfirmWithoutPending(t *testing.T) {
	f := NewDeleteFlow()
	assert.Nil(t, f.Confirm())

	result := f.Finish(nil)
	assert.Empty(t, result.Removed)
	assert.Nil(t, result.Notify)
}
