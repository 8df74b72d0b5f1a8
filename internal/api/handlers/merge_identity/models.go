package merge_identity

import "github.com/m04kA/SMC-TableBooking/internal/service/identity"

// MergeIdentityRequest HTTP request model
// accessToken проверяется через LINE, profile принимается как есть (профиль уже получен LIFF SDK)
type MergeIdentityRequest struct {
	AccessToken string          `json:"accessToken"`
	Profile     *ProfileRequest `json:"profile"`
}

type ProfileRequest struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

func (p *ProfileRequest) toIdentity() *identity.Profile {
	return &identity.Profile{
		UserID:      p.UserID,
		DisplayName: p.DisplayName,
	}
}
