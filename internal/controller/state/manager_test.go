package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerDialogLifecycle(t *testing.T) {
	sm := NewManager()
	assert.Equal(t, StateNone, sm.GetState(1))

	sm.SetState(1, StateLoginEmail)
	sm.SetData(1, KeyEmail, "a@b.edu")
	assert.Equal(t, StateLoginEmail, sm.GetState(1))
	assert.Equal(t, "a@b.edu", sm.GetString(1, KeyEmail))

	sm.SetState(1, StateLoginPassword)
	assert.Equal(t, "a@b.edu", sm.GetString(1, KeyEmail))

	data := sm.GetAllData(1)
	data[KeyEmail] = "changed"
	assert.Equal(t, "a@b.edu", sm.GetString(1, KeyEmail))

	sm.SetState(1, StateNone)
	assert.Empty(t, sm.GetString(1, KeyEmail))
	assert.Nil(t, sm.GetAllData(1))
}

func TestManagerClearStateIsPerChat(t *testing.T) {
	sm := NewManager()
	sm.SetState(1, StateOutpassSearch)
	sm.SetState(2, StateStudentSearch)

	sm.ClearState(1)
	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Equal(t, StateStudentSearch, sm.GetState(2))
}

func TestAdapterConvertsStates(t *testing.T) {
	sm := NewManager()
	a := NewAdapter(sm)

	a.SetState(5, "decision_remarks")
	assert.Equal(t, StateDecisionRemarks, sm.GetState(5))
	assert.EqualValues(t, StateDecisionRemarks, a.GetState(5))
}
