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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/confirm_booking"
	getBookingHistoryHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_booking_history"
	getBranchesHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_branches"
	getSessionHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_session"
	getTimeSlotsHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_time_slots"
	loadTablesHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/load_tables"
	mergeIdentityHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/merge_identity"
	updateDraftHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/update_draft"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/config"
	branchesCache "github.com/m04kA/SMC-TableBooking/internal/infra/cache/branches"
	sessionRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/lineprofile"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
	"github.com/m04kA/SMC-TableBooking/internal/service/availability"
	branchesService "github.com/m04kA/SMC-TableBooking/internal/service/branches"
	"github.com/m04kA/SMC-TableBooking/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableBooking/internal/service/sessions"
	"github.com/m04kA/SMC-TableBooking/internal/service/timeslots"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
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

	log.Info("Starting SMC-TableBooking...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load time zone %s: %v", cfg.Booking.TimeZone, err)
	}

	// Инициализируем метрики (если включены)
	// nil *metrics.Metrics безопасен: все методы проверяют получателя
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог временных слотов
	labels := cfg.Booking.TimeSlots
	if len(labels) == 0 {
		labels = timeslots.DefaultLabels()
	}
	catalog, err := timeslots.NewCatalog(labels, loc)
	if err != nil {
		log.Fatal("Failed to build time slot catalog: %v", err)
	}
	log.Info("Time slot catalog loaded (%d slots, zone=%s)", len(catalog.All()), loc)

	// Инициализируем интеграционных клиентов
	restaurantClient := restaurantapi.NewClient(
		cfg.RestaurantAPI.URL,
		time.Duration(cfg.RestaurantAPI.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	lineClient := lineprofile.NewClient(
		cfg.Line.URL,
		time.Duration(cfg.Line.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (RestaurantAPI=%s timeout=%ds, LINE=%s timeout=%ds)",
		cfg.RestaurantAPI.URL, cfg.RestaurantAPI.Timeout, cfg.Line.URL, cfg.Line.Timeout)

	// Кэш филиалов в Redis (если включен)
	var cache branchesService.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unreachable, branches cache disabled: %v", err)
		} else {
			cache = branchesCache.NewCache(redisClient, time.Duration(cfg.Redis.BranchesTTL)*time.Second)
			log.Info("Branches cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.BranchesTTL)
		}
		pingCancel()
	}

	// Хранилище снимков сессий
	var repo sessions.Repository
	if cfg.Database.Enabled {
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

		repo = sessionRepo.NewRepository(db)
	} else {
		repo = sessionRepo.NewMemoryRepository()
		log.Info("Database disabled, session snapshots are kept in memory")
	}

	// Инициализируем сервисы
	branchesSvc := branchesService.NewService(restaurantClient, cache, log)
	resolver := availability.NewResolver(restaurantClient, catalog, metricsCollector, loc, log)
	machine := wizard.NewMachine(branchesSvc, resolver, catalog, loc, log)
	manager := lifecycle.NewManager(restaurantClient, loc, log)

	registry := sessions.NewRegistry(
		repo,
		metricsCollector,
		time.Duration(cfg.Session.IdleTTL)*time.Minute,
		time.Duration(cfg.Session.Retention)*time.Minute,
		log,
	)

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	go registry.Run(sweepCtx, time.Duration(cfg.Session.SweepInterval)*time.Second)
	log.Info("Session sweeper started (idle_ttl=%dm, retention=%dm, interval=%ds)",
		cfg.Session.IdleTTL, cfg.Session.Retention, cfg.Session.SweepInterval)

	// Инициализируем handlers
	getSession := getSessionHandler.NewHandler(log)
	getBranches := getBranchesHandler.NewHandler(machine, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(catalog, loc, log)
	updateDraft := updateDraftHandler.NewHandler(machine, log)
	loadTables := loadTablesHandler.NewHandler(machine, log)
	mergeIdentity := mergeIdentityHandler.NewHandler(machine, lineClient, log)
	confirmBooking := confirmBookingHandler.NewHandler(manager, log)
	getBookingHistory := getBookingHistoryHandler.NewHandler(manager, log)
	cancelBooking := cancelBookingHandler.NewHandler(manager, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(mux.MiddlewareFunc(middleware.Metrics(metricsCollector)))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, все маршруты работают в рамках сессии мастера (X-Session-ID)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(mux.MiddlewareFunc(middleware.Session(registry, log)))

	// --- Сессия ---
	api.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/identity", mergeIdentity.Handle).Methods(http.MethodPost)

	// --- Справочники ---
	api.HandleFunc("/branches", getBranches.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// --- Черновик бронирования ---
	draft := api.PathPrefix("/draft").Subrouter()
	draft.HandleFunc("/branch", updateDraft.HandleBranch).Methods(http.MethodPost)
	draft.HandleFunc("/date", updateDraft.HandleDate).Methods(http.MethodPost)
	draft.HandleFunc("/time", updateDraft.HandleTime).Methods(http.MethodPost)
	draft.HandleFunc("/guests", updateDraft.HandleGuests).Methods(http.MethodPost)
	draft.HandleFunc("/table", updateDraft.HandleTable).Methods(http.MethodPost)
	draft.HandleFunc("/customer", updateDraft.HandleCustomer).Methods(http.MethodPatch)
	draft.HandleFunc("/details", updateDraft.HandleDetails).Methods(http.MethodPost)
	draft.HandleFunc("/step", updateDraft.HandleStep).Methods(http.MethodPost)
	draft.HandleFunc("/reset", updateDraft.HandleReset).Methods(http.MethodPost)
	draft.HandleFunc("/clear-error", updateDraft.HandleClearError).Methods(http.MethodPost)
	draft.HandleFunc("/tables", loadTables.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/history", getBookingHistory.HandleHistory).Methods(http.MethodGet)
	api.HandleFunc("/bookings/recent", getBookingHistory.HandleRecent).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPut)

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

	// Останавливаем очистку и сохраняем живые сессии
	stopSweeper()
	registry.Flush(shutdownCtx)
	log.Info("Session snapshots flushed")

	log.Info("Server stopped gracefully")
}
