package restaurantapi

// Branch модель филиала из бэкенда
type Branch struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Table модель стола из бэкенда
// Бэкенд отдает поля под разными именами в разных версиях, поэтому все варианты опциональны
type Table struct {
	ID          *int64 `json:"id,omitempty"`
	TableID     *int64 `json:"table_id,omitempty"`
	Number      string `json:"number,omitempty"`
	TableNumber string `json:"table_number,omitempty"`
	Seats       *int   `json:"seats,omitempty"`
	Capacity    *int   `json:"capacity,omitempty"`
	Type        string `json:"type,omitempty"`
	Zone        string `json:"zone,omitempty"`
	IsAvailable *bool  `json:"is_available,omitempty"`
	Available   *bool  `json:"available,omitempty"`
}

// AvailabilityRequest тело запроса POST /tables/availability
type AvailabilityRequest struct {
	BranchID   int64  `json:"branchId"`
	DateTime   string `json:"dateTime"` // "2025-03-10T19:00:00+07:00"
	GuestCount int    `json:"guestCount"`
}

// CreateBookingRequest тело запроса POST /bookings
type CreateBookingRequest struct {
	BranchID      int64  `json:"branch_id"`
	TableID       *int64 `json:"table_id"` // null = стол назначает ресторан
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	BookingDate   string `json:"booking_date"` // "2025-03-10"
	BookingTime   string `json:"booking_time"` // "19:00"
	GuestCount    int    `json:"guest_count"`
	Notes         string `json:"notes"`
	Requirements  string `json:"requirements"` // сериализованный JSON
	LineUserID    string `json:"line_user_id,omitempty"`
}

// Booking модель бронирования из бэкенда
type Booking struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	BookingRef    string `json:"booking_ref"`
	BranchName    string `json:"branch_name"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	GuestCount    int    `json:"guest_count"`
	TableNumber   string `json:"table_number"`
	TableSeats    int    `json:"table_seats"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"created_at"`
}

// ErrorResponse модель ошибки от бэкенда
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Text возвращает текст ошибки бэкенда
func (e ErrorResponse) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
