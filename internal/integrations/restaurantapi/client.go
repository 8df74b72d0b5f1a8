package restaurantapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const maxBodySize = 1 << 20

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer интерфейс для метрик вызовов бэкенда
type Observer interface {
	ObserveUpstream(operation, outcome string, duration time.Duration)
}

// Client клиент REST бэкенда ресторана
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда
// observer может быть nil
func NewClient(baseURL string, timeout time.Duration, observer Observer, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		observer: observer,
		log:      log,
	}
}

// GetBranches получает список филиалов
func (c *Client) GetBranches(ctx context.Context) ([]Branch, error) {
	body, err := c.do(ctx, "get_branches", http.MethodGet, "/branches", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Branch](body)
}

// CheckTableAvailability получает столы с флагами доступности на указанный момент
func (c *Client) CheckTableAvailability(ctx context.Context, req *AvailabilityRequest) ([]Table, error) {
	body, err := c.do(ctx, "check_availability", http.MethodPost, "/tables/availability", req)
	if err != nil {
		return nil, err
	}
	return decodeList[Table](body)
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	body, err := c.do(ctx, "create_booking", http.MethodPost, "/bookings", req)
	if err != nil {
		return nil, err
	}
	booking, err := decodeObject[Booking](body)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: empty create booking response", ErrInvalidResponse)
	}
	return booking, nil
}

// GetBooking получает бронирование по ID
func (c *Client) GetBooking(ctx context.Context, id int64) (*Booking, error) {
	path := "/bookings/" + strconv.FormatInt(id, 10)
	body, err := c.do(ctx, "get_booking", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	booking, err := decodeObject[Booking](body)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrNotFound
	}
	return booking, nil
}

// GetCustomerBookings получает историю бронирований по номеру телефона
func (c *Client) GetCustomerBookings(ctx context.Context, phone string) ([]Booking, error) {
	path := "/bookings/customer/" + url.PathEscape(phone)
	body, err := c.do(ctx, "get_customer_bookings", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Booking](body)
}

// GetRecentBookings получает последние бронирования
func (c *Client) GetRecentBookings(ctx context.Context, limit int) ([]Booking, error) {
	path := "/bookings?limit=" + strconv.Itoa(limit)
	body, err := c.do(ctx, "get_recent_bookings", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Booking](body)
}

// CancelBooking отменяет бронирование
// Бэкенд может вернуть пустое тело, тогда возвращается nil без ошибки
func (c *Client) CancelBooking(ctx context.Context, id int64) (*Booking, error) {
	path := "/bookings/" + strconv.FormatInt(id, 10) + "/cancel"
	body, err := c.do(ctx, "cancel_booking", http.MethodPut, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeObject[Booking](body)
}

// do выполняет запрос и возвращает тело успешного ответа
func (c *Client) do(ctx context.Context, operation, method, path string, payload interface{}) ([]byte, error) {
	started := time.Now()
	body, err := c.execute(ctx, method, path, payload)
	c.observe(operation, err, time.Since(started))
	if err != nil {
		c.log.Warn("restaurantapi: %s %s failed: %v", method, path, err)
	}
	return body, err
}

func (c *Client) execute(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, backendMessage(body))
	}
}

func (c *Client) observe(operation string, err error, duration time.Duration) {
	if c.observer == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.observer.ObserveUpstream(operation, outcome, duration)
}

// backendMessage извлекает текст ошибки из тела, не пропуская сырой payload дальше логов
func backendMessage(body []byte) string {
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Text() != "" {
		return resp.Text()
	}
	if len(body) > 200 {
		return string(body[:200])
	}
	return string(body)
}
