package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/venuebook/booking-engine/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/venuebook/booking-engine/internal/api/handlers/get_availability"
	getHallBookingsHandler "github.com/venuebook/booking-engine/internal/api/handlers/get_hall_bookings"
	quoteBookingHandler "github.com/venuebook/booking-engine/internal/api/handlers/quote_booking"
	"github.com/venuebook/booking-engine/internal/api/middleware"
	"github.com/venuebook/booking-engine/internal/config"
	"github.com/venuebook/booking-engine/internal/infra/snapshot"
	bookingStoreClient "github.com/venuebook/booking-engine/internal/integrations/bookingstore"
	hallServiceClient "github.com/venuebook/booking-engine/internal/integrations/hallservice"
	bookingsService "github.com/venuebook/booking-engine/internal/service/bookings"
	createBookingUC "github.com/venuebook/booking-engine/internal/usecase/create_booking"
	getAvailabilityUC "github.com/venuebook/booking-engine/internal/usecase/get_availability"
	quoteBookingUC "github.com/venuebook/booking-engine/internal/usecase/quote_booking"
	"github.com/venuebook/booking-engine/pkg/clientmetrics"
	"github.com/venuebook/booking-engine/pkg/logger"
	"github.com/venuebook/booking-engine/pkg/metrics"
	"github.com/venuebook/booking-engine/pkg/money"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting VenueBook booking engine...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона отображения площадки (для занятости календаря)
	displayLoc, err := time.LoadLocation(cfg.Calendar.DisplayTimezone)
	if err != nil {
		log.Fatal("Failed to load display timezone %s: %v", cfg.Calendar.DisplayTimezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов (с метриками или без)
	var (
		storeClient *bookingStoreClient.Client
		hallClient  *hallServiceClient.Client
	)

	if cfg.Metrics.Enabled {
		storeClient = bookingStoreClient.NewClientWithTransport(
			cfg.BookingStore.URL,
			cfg.BookingStore.TimeoutDuration(),
			clientmetrics.Wrap("bookingstore", nil, metricsCollector),
			log,
		)
		hallClient = hallServiceClient.NewClientWithTransport(
			cfg.HallCatalog.URL,
			cfg.HallCatalog.TimeoutDuration(),
			clientmetrics.Wrap("hallcatalog", nil, metricsCollector),
			log,
		)
	} else {
		storeClient = bookingStoreClient.NewClient(cfg.BookingStore.URL, cfg.BookingStore.TimeoutDuration(), log)
		hallClient = hallServiceClient.NewClient(cfg.HallCatalog.URL, cfg.HallCatalog.TimeoutDuration(), log)
	}
	log.Info("Integration clients initialized (BookingStore=%s timeout=%ds, HallCatalog=%s timeout=%ds)",
		cfg.BookingStore.URL, cfg.BookingStore.Timeout, cfg.HallCatalog.URL, cfg.HallCatalog.Timeout)

	// Снапшот бронирований по залам
	snapshots := snapshot.NewStore()

	// Параметры расчёта цены
	serviceFee := money.FromRupees(cfg.Pricing.ServiceFeeRupees)

	// Инициализируем сервисы и use cases
	bookingsSvc := bookingsService.NewService(storeClient, snapshots, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		storeClient,
		hallClient,
		snapshots,
		createBookingUC.PricingPolicy{
			TaxRateBasisPoints: cfg.Pricing.TaxRateBasisPoints,
			ServiceFee:         serviceFee,
		},
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(storeClient, snapshots, displayLoc, log)

	quoteBookingUseCase := quoteBookingUC.NewUseCase(
		hallClient,
		quoteBookingUC.PricingPolicy{
			TaxRateBasisPoints: cfg.Pricing.TaxRateBasisPoints,
			ServiceFee:         serviceFee,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	getHallBookings := getHallBookingsHandler.NewHandler(bookingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// PUBLIC ROUTES (без аутентификации)

	// Бронирования зала для страницы календаря
	api.HandleFunc("/halls/{hallId}/bookings", getHallBookings.Handle).Methods(http.MethodGet)

	// Занятость календаря и консультативная проверка слота
	api.HandleFunc("/halls/{hallId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расчёт стоимости для виджета
	api.HandleFunc("/bookings/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// PROTECTED ROUTES (требуют X-User-ID header)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
