package identity

import (
	"strings"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Profile идентичность пользователя, полученная от LINE
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// Merge переносит данные профиля в контактные данные гостя
// Имя заполняется только если пользователь его еще не ввел, LINE user id перезаписывается всегда.
// Второй результат показывает, изменились ли данные.
func Merge(info domain.CustomerInfo, profile *Profile) (domain.CustomerInfo, bool) {
	if profile == nil {
		return info, false
	}

	merged := info
	if strings.TrimSpace(merged.Name) == "" && strings.TrimSpace(profile.DisplayName) != "" {
		merged.Name = strings.TrimSpace(profile.DisplayName)
	}
	if profile.UserID != "" {
		merged.LineUserID = profile.UserID
	}

	return merged, merged != info
}
