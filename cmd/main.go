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
	"github.com/redis/go-redis/v9"

	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers"
	createBookingHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/get_availability"
	getReservationHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/get_reservation"
	getRoomsHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/get_rooms"
	listReservationsHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/list_reservations"
	moveBookingHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/move_booking"
	operationsHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/operations"
	quoteStayHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/quote_stay"
	selectionHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/selection"
	updateBookingHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/update_booking"
	validateBookingHandler "github.com/sokol-matija/hotel-inventory-sub003/internal/api/handlers/validate_booking"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/api/middleware"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/config"
	reservationRepo "github.com/sokol-matija/hotel-inventory-sub003/internal/infra/storage/reservation"
	roomRepo "github.com/sokol-matija/hotel-inventory-sub003/internal/infra/storage/room"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/integrations/notifyservice"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/selection"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/availability"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/horizon"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/optimistic"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/pricing"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/reservations"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/rooms"
	"github.com/sokol-matija/hotel-inventory-sub003/internal/service/seasons"
	createBookingUC "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/create_booking"
	getAvailabilityUC "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/get_availability"
	moveBookingUC "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/move_booking"
	quoteStayUC "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/quote_stay"
	updateBookingUC "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/update_booking"
	validateBookingUC "github.com/sokol-matija/hotel-inventory-sub003/internal/usecase/validate_booking"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/dbmetrics"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/logger"
	"github.com/sokol-matija/hotel-inventory-sub003/pkg/metrics"
)

// notifier общий интерфейс клиентов уведомлений
type notifier interface {
	Success(title, message string)
	Error(title, message string)
	Warning(title, message string)
}

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

	log.Info("Starting hotel front-desk service...")

	loc, err := cfg.Hotel.Location()
	if err != nil {
		log.Fatal("Invalid hotel timezone: %v", err)
	}

	// Таблица сезонов должна покрывать каждый день года ровно один раз
	classifier := seasons.NewDefaultClassifier()
	if err := classifier.Validate(); err != nil {
		log.Fatal("Season table is invalid: %v", err)
	}
	calculator := pricing.NewCalculator(classifier, cfg.Pricing.ToPricing())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}
	reservationRepository := reservationRepo.NewRepository(executor, loc)

	// Каталог номеров
	var roomSource rooms.RoomSource
	switch cfg.Rooms.Source {
	case config.RoomsSourceDatabase:
		roomSource = roomRepo.NewRepository(executor)
	default:
		catalog, err := config.LoadRoomsConfig(cfg.Rooms.Path, cfg.Pricing)
		if err != nil {
			log.Fatal("Failed to load room catalog: %v", err)
		}
		roomSource = catalog
	}
	roomSvc := rooms.NewService(roomSource, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := roomSvc.Reload(ctx); err != nil {
		log.Fatal("Failed to load rooms from %s: %v", cfg.Rooms.Source, err)
	}

	// Уведомления оператора
	var notify notifier
	if cfg.Notifications.WebhookURL != "" {
		client := notifyservice.NewClient(
			cfg.Notifications.WebhookURL,
			cfg.Notifications.Source,
			time.Duration(cfg.Notifications.TimeoutSeconds)*time.Second,
			cfg.Notifications.RatePerSecond,
			cfg.Notifications.Burst,
			log,
			metricsCollector,
		)
		defer client.Wait()
		notify = client
		log.Info("Notifications sent to webhook (rate=%.1f/s, burst=%d)",
			cfg.Notifications.RatePerSecond, cfg.Notifications.Burst)
	} else {
		notify = notifyservice.NewLogNotifier(log)
	}

	// Живая коллекция бронирований и координатор оптимистичных операций
	store := availability.NewStore()
	coordinator := optimistic.NewCoordinator(
		notify,
		metricsCollector,
		log,
		time.Duration(cfg.Optimistic.RetentionMinutes)*time.Minute,
	)
	go coordinator.RunCleanup(ctx, time.Duration(cfg.Optimistic.CleanupIntervalSeconds)*time.Second)

	refresher := horizon.NewRefresher(
		reservationRepository,
		store,
		coordinator,
		nil,
		loc,
		cfg.Hotel.HorizonPastDays,
		cfg.Hotel.HorizonFutureDays,
		log,
	)
	if err := refresher.Refresh(ctx); err != nil {
		log.Fatal("Failed to load reservations: %v", err)
	}
	go refresher.Run(ctx, time.Duration(cfg.Hotel.RefreshIntervalSeconds)*time.Second)

	reservationSvc := reservations.NewService(reservationRepository, store, coordinator, notify, log)

	// Кэш расчетов в Redis (опционально)
	var quoteCache quoteStayUC.QuoteCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("Redis is unavailable, quotes will not be cached until it recovers: %v", err)
		}
		quoteCache = quoteStayUC.NewRedisCache(redisClient, time.Duration(cfg.Redis.QuoteTTLSeconds)*time.Second)
		log.Info("Quote cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Address, cfg.Redis.QuoteTTLSeconds)
	}

	// Инициализируем use cases
	validateBookingUseCase := validateBookingUC.NewUseCase(roomSvc, store, calculator, metricsCollector, log)
	quoteStayUseCase := quoteStayUC.NewUseCase(roomSvc, calculator, quoteCache, metricsCollector, log)
	createBookingUseCase := createBookingUC.NewUseCase(validateBookingUseCase, reservationSvc, log)
	moveBookingUseCase := moveBookingUC.NewUseCase(validateBookingUseCase, store, reservationSvc, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(validateBookingUseCase, store, reservationSvc, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(roomSvc, store, log)

	sessions := selection.NewSessionStore(
		time.Duration(cfg.Hotel.SelectionTimeoutMinutes)*time.Minute,
		loc,
		cfg.Hotel.CheckInHour,
		cfg.Hotel.CheckOutHour,
	)
	clock := handlers.NewStayClock(loc, cfg.Hotel.CheckInHour, cfg.Hotel.CheckOutHour)

	// Инициализируем handlers
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, clock, log)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, clock, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, clock, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, clock, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, clock, log)
	moveBooking := moveBookingHandler.NewHandler(moveBookingUseCase, clock, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(reservationSvc, log)
	operations := operationsHandler.NewHandler(coordinator, log)
	selectRange := selectionHandler.NewHandler(sessions, clock, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log), middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// READ ROUTES
	// ============================================================

	api.HandleFunc("/quotes", quoteStay.Handle).Methods(http.MethodPost)
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/validate", validateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/operations", operations.List).Methods(http.MethodGet)
	api.HandleFunc("/operations/stats", operations.Stats).Methods(http.MethodGet)

	// ============================================================
	// OPERATOR ROUTES (требуют X-Operator-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/reservations", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}/move", moveBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{id}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

	protected.HandleFunc("/operations/rollback-all", operations.RollbackAll).Methods(http.MethodPost)
	protected.HandleFunc("/operations/{operationId}/rollback", operations.Rollback).Methods(http.MethodPost)

	protected.HandleFunc("/selection", selectRange.Get).Methods(http.MethodGet)
	protected.HandleFunc("/selection", selectRange.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/selection/events", selectRange.HandleEvent).Methods(http.MethodPost)

	// Чистим брошенные сессии выбора
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sessions.Cleanup(); n > 0 {
					log.Info("Removed %d expired selection sessions", n)
				}
			}
		}
	}()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	// Останавливаем фоновые задачи
	cancel()

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if n := coordinator.RollbackAllPending(); n > 0 {
		log.Warn("Rolled back %d operations still pending at shutdown", n)
	}

	log.Info("Server stopped gracefully")
}
