package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	cancelBookingHandler "github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers/cancel_booking"
	computeQuoteHandler "github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers/compute_quote"
	createBookingHandler "github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers/get_booking"
	listActivitiesHandler "github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers/list_activities"
	listAddOnsHandler "github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers/list_add_ons"
	listBookingsHandler "github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers/list_bookings"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/middleware"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/config"
	bookingRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/hartvaneindhoven/HVE-BookingService/internal/infra/storage/catalog"
	"github.com/hartvaneindhoven/HVE-BookingService/internal/integrations/notifications"
	bookingsService "github.com/hartvaneindhoven/HVE-BookingService/internal/service/bookings"
	catalogService "github.com/hartvaneindhoven/HVE-BookingService/internal/service/catalog"
	pricingService "github.com/hartvaneindhoven/HVE-BookingService/internal/service/pricing"
	createBookingUC "github.com/hartvaneindhoven/HVE-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/hartvaneindhoven/HVE-BookingService/internal/usecase/get_available_slots"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/dbmetrics"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/logger"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/metrics"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/simpletxmanager"
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/txmanager"
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

	log.Info("Starting HVE-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем publisher уведомлений (или заглушку)
	var publisher createBookingUC.NotificationPublisher = notifications.NopPublisher{}
	if cfg.Notifications.Enabled {
		amqpPublisher, err := notifications.NewPublisher(cfg.Notifications.URL, cfg.Notifications.Exchange, log)
		if err != nil {
			log.Fatal("Failed to connect to notification broker: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Info("Notification publisher connected (exchange=%s)", cfg.Notifications.Exchange)
	} else {
		log.Info("Notifications disabled, using nop publisher")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(
		catalogRepository,
		cfg.RateRules(),
		cfg.FallbackRate(),
		cfg.PeakSchedule(),
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		catalogRepository,
		log,
	)
	catalogSvc := catalogService.NewService(
		catalogRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		catalogRepository,
		bookingRepository,
		pricingSvc,
		txMgr,
		publisher,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		bookingRepository,
		cfg.WeekSchedule(),
		cfg.Venue.SlotIntervalMinutes,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	computeQuote := computeQuoteHandler.NewHandler(pricingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listActivities := listActivitiesHandler.NewHandler(catalogSvc, log)
	listAddOns := listAddOnsHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/activities", listActivities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/add-ons", listAddOns.Handle).Methods(http.MethodGet)

	// --- Доступность и цены ---
	api.HandleFunc("/activities/{activityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/quote", computeQuote.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Создание бронирования идёт через rate limiter
	rateLimiter := middleware.NewRateLimiter(cfg.Venue.RateLimitPerMinute)
	api.Handle("/bookings",
		rateLimiter.Handler(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{reference}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Браузерные клиенты ходят в API напрямую
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
