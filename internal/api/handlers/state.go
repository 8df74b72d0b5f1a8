package handlers

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

// TableView стол с признаком "вмещает компанию"
type TableView struct {
	domain.Table
	FitsParty bool `json:"fitsParty"`
}

// StateView состояние мастера бронирования для фронтенда
type StateView struct {
	SessionID                  string                  `json:"sessionId"`
	Step                       domain.Step             `json:"step"`
	Draft                      domain.BookingDraft     `json:"draft"`
	RequiresManualCoordination bool                    `json:"requiresManualCoordination"`
	Branches                   []domain.Branch         `json:"branches"`
	AvailableTables            []TableView             `json:"availableTables"`
	TablesDegraded             bool                    `json:"tablesDegraded"`
	BookingHistory             []*domain.BookingRecord `json:"bookingHistory"`
	IsLoading                  bool                    `json:"isLoading"`
	Error                      string                  `json:"error,omitempty"`
}

// NewStateView строит представление текущего состояния сессии
func NewStateView(sess *wizard.Session) StateView {
	st := sess.View()

	tables := make([]TableView, 0, len(st.AvailableTables))
	for _, t := range st.AvailableTables {
		tables = append(tables, TableView{Table: t, FitsParty: t.FitsParty(st.Draft.GuestCount)})
	}

	return StateView{
		SessionID:                  sess.ID(),
		Step:                       st.Step,
		Draft:                      st.Draft,
		RequiresManualCoordination: st.Draft.RequiresManualCoordination(),
		Branches:                   st.Branches,
		AvailableTables:            tables,
		TablesDegraded:             st.TablesDegraded,
		BookingHistory:             st.BookingHistory,
		IsLoading:                  st.IsLoading,
		Error:                      st.Error,
	}
}
