package bookingstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/venuebook/booking-engine/internal/domain"
)

// SlotTakenError конфликт слота, о котором сообщил Booking Store.
// Хранит detail из ответа сервера: он показывается пользователю дословно,
// неотличимо от результата клиентской предварительной проверки.
type SlotTakenError struct {
	Detail string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("bookingstore client: slot taken: %s", e.Detail)
}

// Is позволяет errors.Is(err, ErrSlotTaken)
func (e *SlotTakenError) Is(target error) bool {
	return target == ErrSlotTaken
}

// Client клиент для работы с Booking Store
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Booking Store
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NewClientWithTransport создает клиент с кастомным транспортом
// (используется для обёртки метрик исходящих запросов)
func NewClientWithTransport(baseURL string, timeout time.Duration, rt http.RoundTripper, log Logger) *Client {
	c := NewClient(baseURL, timeout, log)
	c.httpClient.Transport = rt
	return c
}

// GetHallBookings получает все бронирования зала.
// Некорректные записи (start >= end, неизвестный статус) пропускаются с
// предупреждением в лог — выборка остаётся тотальной по входному списку.
func (c *Client) GetHallBookings(ctx context.Context, hallID int64) ([]domain.Booking, error) {
	url := fmt.Sprintf("%s/bookings/hall/%d", c.baseURL, hallID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrNetwork, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrHallNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dtos []BookingDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, ok := dto.ToDomain()
		if !ok {
			c.log.Warn("GetHallBookings: skipping malformed booking id=%d hall_id=%d (start=%s, end=%s, status=%s)",
				dto.ID, dto.HallID, dto.StartTime, dto.EndTime, dto.Status)
			continue
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// CreateBooking отправляет бронирование в Booking Store.
// Store выполняет собственную авторитетную проверку доступности слота:
// конфликт (проигрыш гонки) возвращается как SlotTakenError с detail сервера.
func (c *Client) CreateBooking(ctx context.Context, userID int64, body CreateBookingRequest) (*CreateBookingResponse, error) {
	url := fmt.Sprintf("%s/bookings/create", c.baseURL)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrNetwork, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrNetwork, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusConflict:
		detail := c.decodeErrorDetail(resp.Body)
		if isSlotConflictDetail(detail) {
			return nil, &SlotTakenError{Detail: detail}
		}
		return nil, fmt.Errorf("%w: store rejected booking: %s", ErrInvalidResponse, detail)
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrHallNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrNetwork, resp.StatusCode, string(body))
	}

	var created CreateBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &created, nil
}

// decodeErrorDetail извлекает человекочитаемый detail из тела ошибки.
// Если тело не распарсилось, возвращает сырой текст ответа.
func (c *Client) decodeErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(body)
	if err != nil {
		return ""
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Detail != "" {
		return errResp.Detail
	}
	return string(raw)
}

// isSlotConflictDetail распознаёт серверный отказ по конфликту слота.
// Booking Store возвращает 400 с detail вида "Time slot not available".
func isSlotConflictDetail(detail string) bool {
	return strings.Contains(strings.ToLower(detail), "slot")
}
