package quote_booking

import (
	"context"

	"github.com/venuebook/booking-engine/internal/integrations/hallservice"
)

// HallServiceClient интерфейс клиента каталога залов
type HallServiceClient interface {
	GetHall(ctx context.Context, hallID int64) (*hallservice.Hall, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
