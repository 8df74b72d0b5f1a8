package update_draft

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type SelectBranchRequest struct {
	BranchID int64 `json:"branchId" validate:"required,gt=0"`
}

type SelectDateRequest struct {
	Date string `json:"date" validate:"required"`
}

type SelectTimeRequest struct {
	Time string `json:"time" validate:"required"`
}

type SetGuestCountRequest struct {
	GuestCount int `json:"guestCount"`
}

// SelectTableRequest tableId = null означает "стол назначит ресторан"
type SelectTableRequest struct {
	TableID *int64 `json:"tableId"`
}

type EnterStepRequest struct {
	Step string `json:"step" validate:"required"`
}

// RequirementsRequest HTTP request model
type RequirementsRequest struct {
	HighChair  bool `json:"highchair"`
	Wheelchair bool `json:"wheelchair"`
	WindowSeat bool `json:"windowSeat"`
	QuietArea  bool `json:"quietArea"`
}

// CustomerPatchRequest частичное обновление контактных данных
type CustomerPatchRequest struct {
	Name         *string              `json:"name" validate:"omitempty,min=2,max=100"`
	Phone        *string              `json:"phone" validate:"omitempty,numeric,len=10"`
	Email        *string              `json:"email" validate:"omitempty,email"`
	Notes        *string              `json:"notes" validate:"omitempty,max=500"`
	Requirements *RequirementsRequest `json:"requirements"`
}

// DetailsRequest контактные данные перед подтверждением, имя и телефон обязательны
type DetailsRequest struct {
	Name         string               `json:"name" validate:"required,min=2,max=100"`
	Phone        string               `json:"phone" validate:"required,numeric,len=10"`
	Email        string               `json:"email" validate:"omitempty,email"`
	Notes        string               `json:"notes" validate:"max=500"`
	Requirements *RequirementsRequest `json:"requirements"`
}

// ToPatch конвертирует HTTP request в патч домена
func (r *CustomerPatchRequest) ToPatch() domain.CustomerInfoPatch {
	return domain.CustomerInfoPatch{
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Notes:        r.Notes,
		Requirements: r.Requirements.toDomain(),
	}
}

// ToPatch все поля формы перезаписываются
func (r *DetailsRequest) ToPatch() domain.CustomerInfoPatch {
	return domain.CustomerInfoPatch{
		Name:         &r.Name,
		Phone:        &r.Phone,
		Email:        &r.Email,
		Notes:        &r.Notes,
		Requirements: r.Requirements.toDomain(),
	}
}

func (r *RequirementsRequest) toDomain() *domain.Requirements {
	if r == nil {
		return nil
	}
	return &domain.Requirements{
		HighChair:  r.HighChair,
		Wheelchair: r.Wheelchair,
		WindowSeat: r.WindowSeat,
		QuietArea:  r.QuietArea,
	}
}
