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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	createBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_booking"
	exportCalendarHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/export_calendar"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	listBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_bookings"
	reloadScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/reload_schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingStore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/notify"
	bookingsService "github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

func main() {
	// .env опционален: локальная разработка держит в нем SENDGRID_API_KEY
	_ = godotenv.Load()

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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог слотов: строится при старте, атомарно подменяется при
	// перезагрузке расписания
	catalog, err := cfg.Schedule.BuildCatalog(time.Now())
	if err != nil {
		log.Fatal("Failed to build slot catalog: %v", err)
	}
	minDate, maxDate := catalog.Bounds()
	log.Info("Slot catalog built: policy=%s, minDate=%s, maxDate=%s, dates=%d",
		cfg.Schedule.Policy, minDate, maxDate, len(catalog.DaysConfigured()))
	catalogHolder := domain.NewCatalogHolder(catalog)

	// Выбираем backend хранилища
	store, closeStore, err := buildStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize storage backend: %v", err)
	}
	defer closeStore()
	log.Info("Storage backend initialized: %s", cfg.Storage.Backend)

	// Уведомления: SendGrid, если включены и есть API-ключ, иначе заглушка
	notifier, closeNotifier := buildNotifier(cfg, log, metricsCollector)
	defer closeNotifier()

	// Правила валидации анкеты
	rules := createBookingUC.Rules{
		MinAge:               cfg.Form.MinAge,
		MaxAge:               cfg.Form.MaxAge,
		RequireEducation:     cfg.Form.RequireEducation,
		RequireNativeSpeaker: cfg.Form.RequireNativeSpeaker,
		MaxTotalBookings:     cfg.Form.MaxTotalBookings,
	}

	// Инициализируем сервисы и use cases
	bookingSvc := bookingsService.NewService(store, log)
	createBookingUseCase := createBookingUC.NewUseCase(store, catalogHolder, notifier, rules, log, metricsCollector)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store, catalogHolder, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	exportCalendar := exportCalendarHandler.NewHandler(bookingSvc, log)
	reloadSchedule := reloadScheduleHandler.NewHandler(cfg.Schedule, catalogHolder, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	r.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	r.HandleFunc("/calendar.ics", exportCalendar.Handle).Methods(http.MethodGet)
	r.HandleFunc("/admin/reload-schedule", reloadSchedule.Handle).Methods(http.MethodPost)

	// CORS: форма записи живет на отдельном origin'е
	corsOptions := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsOptions.AllowedOrigins = cfg.Server.AllowedOrigins
	} else {
		corsOptions.AllowedOrigins = []string{"*"}
	}
	handler := cors.New(corsOptions).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

// buildStore выбирает backend хранилища по конфигурации.
// Возвращает store и функцию освобождения ресурсов backend'а.
func buildStore(cfg *config.Config, log *logger.Logger) (bookingStore.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.BackendFile:
		return bookingStore.NewFileStore(cfg.Storage.File.Path, log), noop, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, noop, fmt.Errorf("redis ping failed: %w", err)
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Error("Failed to close redis client: %v", err)
			}
		}
		return bookingStore.NewRedisStore(client, cfg.Storage.Redis.Key, log), closeFn, nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("postgres open failed: %w", err)
		}
		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("postgres ping failed: %w", err)
		}
		store := bookingStore.NewPostgresStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		closeFn := func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close postgres connection: %v", err)
			}
		}
		return store, closeFn, nil

	case config.BackendSheets:
		store, err := bookingStore.NewSheetStore(
			context.Background(),
			cfg.Storage.Sheets.CredentialsFile,
			cfg.Storage.Sheets.SpreadsheetID,
			cfg.Storage.Sheets.Range,
			log,
		)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// buildNotifier собирает отправитель уведомлений.
// При выключенных уведомлениях или отсутствии ключа возвращает заглушку:
// бронирование никогда не зависит от доставки письма.
func buildNotifier(cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (createBookingUC.Notifier, func()) {
	noop := func() {}

	if !cfg.Notifier.Enabled {
		log.Info("Email notifications disabled")
		return notify.Discard{}, noop
	}

	apiKey := os.Getenv("SENDGRID_API_KEY")
	sender, err := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    apiKey,
		FromEmail: cfg.Notifier.FromEmail,
		FromName:  cfg.Notifier.FromName,
	})
	if err != nil {
		log.Warn("Email notifications unavailable: %v", err)
		return notify.Discard{}, noop
	}

	dispatcher := notify.NewDispatcher(sender, cfg.Notifier.Subject, cfg.Notifier.QueueSize, log, m)
	log.Info("Email notifications enabled: from=%s, queue=%d", cfg.Notifier.FromEmail, cfg.Notifier.QueueSize)
	return dispatcher, dispatcher.Close
}
