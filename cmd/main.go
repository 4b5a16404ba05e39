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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/cancel_booking"
	changeStageHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/change_stage"
	createBookingHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/create_booking"
	getBookingsHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/get_bookings"
	getRoomsHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/get_rooms"
	getSessionHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/get_session"
	getWizardHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/get_wizard"
	loginHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/register"
	resetWizardHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/reset_wizard"
	seedRoomsHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/seed_rooms"
	selectRoomHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/select_room"
	updateContactHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/update_contact"
	updateStayHandler "github.com/m04kA/SMC-LuxoraClient/internal/api/handlers/update_stay"
	"github.com/m04kA/SMC-LuxoraClient/internal/api/middleware"
	"github.com/m04kA/SMC-LuxoraClient/internal/config"
	"github.com/m04kA/SMC-LuxoraClient/internal/infra/storage/credential"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
	bookingsService "github.com/m04kA/SMC-LuxoraClient/internal/service/bookings"
	roomsService "github.com/m04kA/SMC-LuxoraClient/internal/service/rooms"
	sessionService "github.com/m04kA/SMC-LuxoraClient/internal/service/session"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
	"github.com/m04kA/SMC-LuxoraClient/pkg/logger"
	"github.com/m04kA/SMC-LuxoraClient/pkg/metrics"
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

	log.Info("Starting SMC-LuxoraClient (env=%s)...", cfg.App.Env)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	registry := prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, registry)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище токена и запомненного email
	backends := credential.Backends{
		FilePath:    cfg.Storage.FilePath,
		RedisPrefix: cfg.Storage.RedisPrefix,
	}

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		if err := credential.NewPostgresStore(db).EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to prepare storage schema: %v", err)
		}
		log.Info("Credential storage: postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		backends.DB = db

	case config.StorageDriverRedis:
		rdb := credential.NewRedisClient(cfg.Storage.RedisAddr, cfg.Storage.RedisPassword, cfg.Storage.RedisDB)
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Credential storage: redis (addr=%s, db=%d)", cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
		backends.Redis = rdb

	default:
		log.Info("Credential storage: file (%s)", cfg.Storage.FilePath)
	}

	store, err := credential.NewStore(cfg.Storage.Driver, backends)
	if err != nil {
		log.Fatal("Failed to initialize credential storage: %v", err)
	}
	sessionStore := credential.NewSessionStore(store)

	// Инициализируем клиента Luxora API
	clientOpts := []luxoraapi.ClientOption{
		luxoraapi.WithSeedingAllowed(!cfg.App.IsProduction()),
	}
	if metricsCollector != nil {
		clientOpts = append(clientOpts, luxoraapi.WithMetrics(metricsCollector))
	}
	apiClient := luxoraapi.NewClient(cfg.API.BaseURL, cfg.API.TimeoutDuration(), sessionStore, log, clientOpts...)
	log.Info("Luxora API client initialized (base_url=%s, timeout=%ds)", cfg.API.BaseURL, cfg.API.Timeout)

	// Инициализируем сервисы
	sessionSvc := sessionService.NewService(apiClient, sessionStore, log)
	roomsSvc := roomsService.NewService(apiClient, log)
	bookingSvc := bookingsService.NewService(apiClient, log)

	// Инициализируем мастер бронирования
	wizardOpts := []booking_wizard.Option{
		booking_wizard.WithRefresher(bookingSvc),
	}
	if metricsCollector != nil {
		wizardOpts = append(wizardOpts, booking_wizard.WithMetrics(metricsCollector))
	}
	wizard := booking_wizard.NewWizard(apiClient, apiClient, cfg.Wizard.Debounce(), log, wizardOpts...)
	defer wizard.Close()

	// Восстанавливаем сессию в фоне, пока идет восстановление защищенные маршруты отвечают 503
	initCtx, cancelInit := context.WithCancel(context.Background())
	defer cancelInit()
	go sessionSvc.Init(initCtx)

	// Инициализируем handlers
	getSession := getSessionHandler.NewHandler(sessionSvc)
	login := loginHandler.NewHandler(sessionSvc, wizard, bookingSvc, log)
	register := registerHandler.NewHandler(sessionSvc, log)
	logout := logoutHandler.NewHandler(sessionSvc, wizard, bookingSvc, log)
	getRooms := getRoomsHandler.NewHandler(roomsSvc, log)
	seedRooms := seedRoomsHandler.NewHandler(roomsSvc, log)
	getWizard := getWizardHandler.NewHandler(wizard, roomsSvc, log)
	selectRoom := selectRoomHandler.NewHandler(wizard, roomsSvc, log)
	updateStay := updateStayHandler.NewHandler(wizard, log)
	updateContact := updateContactHandler.NewHandler(wizard, log)
	changeStage := changeStageHandler.NewHandler(wizard, log)
	createBooking := createBookingHandler.NewHandler(wizard, log)
	resetWizard := resetWizardHandler.NewHandler(wizard)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID())

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	rateLimiter := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, log,
		middleware.WithTrustedProxy(cfg.Server.TrustProxy),
		middleware.WithIdleTTL(cfg.Server.RateLimitIdleDuration()),
	)
	api.Use(rateLimiter.Middleware())

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/session", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/session/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/session/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/session/logout", logout.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют авторизованную сессию)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.SessionGuard(sessionSvc, log))

	// --- Каталог номеров ---
	protected.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/seed", seedRooms.Handle).Methods(http.MethodPost)

	// --- Мастер бронирования ---
	protected.HandleFunc("/wizard", getWizard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/room", selectRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/stay", updateStay.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/wizard/contact", updateContact.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/wizard/stage", changeStage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/submit", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/reset", resetWizard.Handle).Methods(http.MethodPost)

	// --- Мои бронирования ---
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

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
