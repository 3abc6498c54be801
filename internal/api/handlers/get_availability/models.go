package get_availability

import (
	"time"

	getAvailability "github.com/venuebook/booking-engine/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	HallID        int64    `json:"hall_id"`
	OccupiedDates []string `json:"occupied_dates"` // YYYY-MM-DD в таймзоне площадки
	Available     *bool    `json:"available,omitempty"`
	FetchedAt     string   `json:"fetched_at"`
}

// ToUseCaseRequest собирает запрос use case из параметров URL.
// start/end — опциональный интервал-кандидат в ISO-8601.
func ToUseCaseRequest(hallID int64, startStr, endStr string) (*getAvailability.Request, error) {
	req := &getAvailability.Request{HallID: hallID}

	if startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return nil, err
		}
		req.CandidateStart = &start
	}

	if endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return nil, err
		}
		req.CandidateEnd = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	dates := make([]string, len(resp.OccupiedDates))
	for i, d := range resp.OccupiedDates {
		dates[i] = d.String()
	}

	return &AvailabilityResponse{
		HallID:        resp.HallID,
		OccupiedDates: dates,
		Available:     resp.CandidateAvailable,
		FetchedAt:     resp.FetchedAt.Format(time.RFC3339),
	}
}
