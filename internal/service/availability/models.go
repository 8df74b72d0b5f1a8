package availability

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// Request модель запроса доступных столов
type Request struct {
	Branch     *domain.Branch   // Выбранный филиал
	Date       string           // Дата (любая поддерживаемая форма, приводится к YYYY-MM-DD)
	Time       types.TimeString // Время из каталога слотов
	GuestCount int              // Количество гостей
}

// Result результат запроса доступных столов
type Result struct {
	Date     string         // Каноническая дата запроса
	DateTime string         // Момент, отправленный бэкенду
	Tables   []domain.Table // Нормализованные столы
	Degraded bool           // true, если показана резервная схема
	Message  string         // Сообщение пользователю (только при деградации)
}
