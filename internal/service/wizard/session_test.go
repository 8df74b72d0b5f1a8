package wizard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/identity"
)

type fakeStaleRecorder struct {
	kinds []string
}

func (f *fakeStaleRecorder) IncStaleResponse(kind string) {
	f.kinds = append(f.kinds, kind)
}

func TestSession_StaleTablesResponseIsDiscarded(t *testing.T) {
	recorder := &fakeStaleRecorder{}
	sess := NewSession("s1", recorder)
	require.NoError(t, sess.Apply(func(st *State) error { return st.SelectBranch(siam) }))

	ticket, err := sess.BeginQuery(QueryTables, nil)
	require.NoError(t, err)
	assert.True(t, sess.View().IsLoading)

	// Гость меняет дату, пока запрос в пути
	require.NoError(t, sess.Apply(func(st *State) error { return st.SelectDate("2025-03-11") }))

	applied := sess.FinishQuery(ticket, func(st *State) {
		st.SetTables([]domain.Table{{ID: 1, Available: true}}, false, "")
	})
	assert.False(t, applied)
	assert.Empty(t, sess.View().AvailableTables)
	assert.False(t, sess.View().IsLoading)
	assert.Equal(t, []string{"tables"}, recorder.kinds)
}

func TestSession_LatestQueryWins(t *testing.T) {
	sess := NewSession("s1", nil)

	first, err := sess.BeginQuery(QueryHistory, nil)
	require.NoError(t, err)
	second, err := sess.BeginQuery(QueryHistory, nil)
	require.NoError(t, err)

	assert.True(t, sess.FinishQuery(second, func(st *State) {
		st.SetHistory([]*domain.BookingRecord{{ID: 2}})
	}))
	assert.True(t, sess.View().IsLoading)

	assert.False(t, sess.FinishQuery(first, func(st *State) {
		st.SetHistory([]*domain.BookingRecord{{ID: 1}})
	}))
	view := sess.View()
	assert.False(t, view.IsLoading)
	require.Len(t, view.BookingHistory, 1)
	assert.Equal(t, int64(2), view.BookingHistory[0].ID)
}

func TestSession_MutationOutsideInputsKeepsTablesToken(t *testing.T) {
	sess := NewSession("s1", nil)

	ticket, err := sess.BeginQuery(QueryTables, nil)
	require.NoError(t, err)
	require.NoError(t, sess.Apply(func(st *State) error {
		name := "Somchai"
		return st.UpdateCustomerInfo(domain.CustomerInfoPatch{Name: &name})
	}))

	assert.True(t, sess.FinishQuery(ticket, nil))
}

func TestSession_AnyDraftChangeInvalidatesCreate(t *testing.T) {
	sess := NewSession("s1", nil)

	tables, err := sess.BeginQuery(QueryTables, nil)
	require.NoError(t, err)
	create, err := sess.BeginExclusive(QueryCreate, nil)
	require.NoError(t, err)

	// Шаг и сообщение не относятся к черновику
	require.NoError(t, sess.Apply(func(st *State) error {
		st.SetError("x")
		return st.EnterStep(domain.StepBranch)
	}))
	require.NoError(t, sess.Apply(func(st *State) error {
		phone := "0899999999"
		return st.UpdateCustomerInfo(domain.CustomerInfoPatch{Phone: &phone})
	}))

	assert.False(t, sess.FinishQuery(create, nil))
	assert.True(t, sess.FinishQuery(tables, nil))
}

func TestSession_MergeIdentityInvalidatesCreate(t *testing.T) {
	sess := NewSession("s1", nil)

	create, err := sess.BeginExclusive(QueryCreate, nil)
	require.NoError(t, err)
	require.True(t, sess.MergeIdentity(&identity.Profile{UserID: "U1", DisplayName: "Somchai"}))

	assert.False(t, sess.FinishQuery(create, nil))
}

func TestSession_BeginExclusive(t *testing.T) {
	sess := NewSession("s1", nil)

	ticket, err := sess.BeginExclusive(QueryCreate, nil)
	require.NoError(t, err)

	_, err = sess.BeginExclusive(QueryCreate, nil)
	assert.ErrorIs(t, err, ErrBusy)

	sess.FinishQuery(ticket, nil)
	_, err = sess.BeginExclusive(QueryCreate, nil)
	assert.NoError(t, err)
}

func TestSession_BeginQueryReadError(t *testing.T) {
	sess := NewSession("s1", nil)

	_, err := sess.BeginQuery(QueryTables, func(st *State) error { return ErrStepLocked })
	assert.ErrorIs(t, err, ErrStepLocked)
	assert.False(t, sess.View().IsLoading)
}

func TestSession_MergeIdentityOncePerUser(t *testing.T) {
	sess := NewSession("s1", nil)

	assert.False(t, sess.MergeIdentity(nil))
	assert.True(t, sess.MergeIdentity(&identity.Profile{UserID: "U1", DisplayName: "Nok"}))
	assert.Equal(t, "Nok", sess.View().Draft.Customer.Name)

	// Гость поменял имя, повторный merge того же пользователя его не трогает
	require.NoError(t, sess.Apply(func(st *State) error {
		st.Draft.Customer.Name = ""
		return nil
	}))
	assert.False(t, sess.MergeIdentity(&identity.Profile{UserID: "U1", DisplayName: "Nok"}))
	assert.Empty(t, sess.View().Draft.Customer.Name)

	assert.True(t, sess.MergeIdentity(&identity.Profile{UserID: "U2", DisplayName: "Ploy"}))
	assert.Equal(t, "U2", sess.View().Draft.Customer.LineUserID)
}

func TestSession_ViewIsACopy(t *testing.T) {
	sess := NewSession("s1", nil)
	require.NoError(t, sess.Apply(func(st *State) error {
		st.SetBranches([]domain.Branch{siam})
		return nil
	}))

	view := sess.View()
	view.Branches[0].Name = "changed"

	assert.Equal(t, "Siam", sess.View().Branches[0].Name)
}

func TestSession_SnapshotRoundTrip(t *testing.T) {
	sess := NewSession("s1", nil)
	require.NoError(t, sess.Apply(func(st *State) error {
		st.SetBranches([]domain.Branch{siam})
		if err := st.SelectBranch(siam); err != nil {
			return err
		}
		return st.SelectDate("2025-03-10")
	}))
	sess.MergeIdentity(&identity.Profile{UserID: "U1"})
	_, err := sess.BeginQuery(QueryTables, nil)
	require.NoError(t, err)

	raw, err := json.Marshal(sess.Snapshot())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	restored := RestoreSession(snap, nil)

	view := restored.View()
	assert.Equal(t, "s1", restored.ID())
	assert.Equal(t, domain.StepTime, view.Step)
	assert.Equal(t, "2025-03-10", view.Draft.Date)
	assert.Equal(t, int64(1), view.Draft.Branch.ID)
	assert.False(t, view.IsLoading)

	// Идентичность запомнена, повторный merge ничего не делает
	assert.False(t, restored.MergeIdentity(&identity.Profile{UserID: "U1"}))
}
