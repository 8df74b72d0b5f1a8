package domain

// Requirements are optional structured seating requests
type Requirements struct {
	HighChair  bool `json:"highchair"`
	Wheelchair bool `json:"wheelchair"`
	WindowSeat bool `json:"windowSeat"`
	QuietArea  bool `json:"quietArea"`
}

// CustomerInfo contact details of the diner
type CustomerInfo struct {
	Name         string       `json:"name"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	Requirements Requirements `json:"requirements"`
	LineUserID   string       `json:"lineUserId,omitempty"`
}

// CustomerInfoPatch a partial update, nil fields are left untouched
type CustomerInfoPatch struct {
	Name         *string
	Phone        *string
	Email        *string
	Notes        *string
	Requirements *Requirements
	LineUserID   *string
}

// Merge returns info with every non-nil patch field applied
func (c CustomerInfo) Merge(p CustomerInfoPatch) CustomerInfo {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Requirements != nil {
		c.Requirements = *p.Requirements
	}
	if p.LineUserID != nil {
		c.LineUserID = *p.LineUserID
	}
	return c
}

// HasContact returns true if the required contact fields are filled
func (c CustomerInfo) HasContact() bool {
	return c.Name != "" && c.Phone != ""
}
