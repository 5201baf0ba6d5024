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

	createAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_appointment"
	createCustomerHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/create_customer"
	deleteAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_appointment"
	deleteCustomerHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_customer"
	getAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_appointment"
	getCustomerHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_customer"
	getTimeSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_time_slots"
	getUpcomingHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_upcoming_appointments"
	healthHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_appointments"
	listCustomersHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_customers"
	referenceHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/reference"
	reportsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/reports"
	updateAppointmentHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_appointment"
	updateCustomerHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_customer"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/appointment"
	contactRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/contact"
	customerRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/customer"
	locationRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/location"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/migrations"
	userRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/user"
	appointmentsService "github.com/m04kA/SMC-ScheduleService/internal/service/appointments"
	customersService "github.com/m04kA/SMC-ScheduleService/internal/service/customers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/overlap"
	referenceService "github.com/m04kA/SMC-ScheduleService/internal/service/reference"
	reportsService "github.com/m04kA/SMC-ScheduleService/internal/service/reports"
	"github.com/m04kA/SMC-ScheduleService/internal/service/slots"
	createAppointmentUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/create_appointment"
	deleteCustomerUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/delete_customer"
	getTimeSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_time_slots"
	updateAppointmentUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/txmanager"
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

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). Методы *metrics.Metrics безопасны для nil.
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

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

	// Применяем миграции
	if cfg.Database.RunMigrations {
		if err := migrations.Up(context.Background(), db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Оборачиваем БД: с метриками запросы и пул попадают в Prometheus, без них обертка только прозрачна
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	contactRepository := contactRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	locationRepository := locationRepo.NewRepository(wrappedDB)

	// Рабочие часы и генератор слотов
	slotGenerator, err := slots.NewGenerator(cfg.Schedule.BusinessHours())
	if err != nil {
		log.Fatal("Failed to initialize slot generator: %v", err)
	}
	businessZone := slotGenerator.Location()
	log.Info("Business hours: %02d:00-%02d:00 %s, step %d min",
		cfg.Schedule.OpenHour, cfg.Schedule.CloseHour, businessZone, cfg.Schedule.StepMinutes)

	overlapChecker := overlap.NewChecker(appointmentRepository)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, txMgr, businessZone, log)
	customerSvc := customersService.NewService(customerRepository, txMgr, log)
	referenceSvc := referenceService.NewService(contactRepository, userRepository, locationRepository, log)
	reportSvc := reportsService.NewService(
		appointmentRepository,
		contactRepository,
		customerRepository,
		locationRepository,
		businessZone,
		log,
	)

	// Инициализируем use cases
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(slotGenerator, businessZone, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		userRepository,
		contactRepository,
		overlapChecker,
		slotGenerator,
		txMgr,
		metricsCollector,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		userRepository,
		contactRepository,
		overlapChecker,
		slotGenerator,
		txMgr,
		metricsCollector,
		log,
	)

	deleteCustomerUseCase := deleteCustomerUC.NewUseCase(customerRepository, appointmentRepository, txMgr, log)

	// Инициализируем handlers
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getUpcoming := getUpcomingHandler.NewHandler(
		appointmentSvc,
		time.Duration(cfg.Schedule.UpcomingMinutes)*time.Minute,
		log,
	)
	listCustomers := listCustomersHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(customerSvc, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(deleteCustomerUseCase, log)
	reference := referenceHandler.NewHandler(referenceSvc, log)
	reports := reportsHandler.NewHandler(reportSvc, log)
	health := healthHandler.NewHandler(wrappedDB, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов по IP
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		if err := limiter.SetTrustedProxies(cfg.RateLimit.TrustedProxies); err != nil {
			log.Fatal("Invalid rate_limit.trusted_proxies: %v", err)
		}
		limiter.StartCleanup(
			time.Duration(cfg.RateLimit.CleanupInterval)*time.Second,
			time.Duration(cfg.RateLimit.IdleTimeout)*time.Second,
			stopCh,
		)
		r.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Слоты начала и окончания встречи
	api.HandleFunc("/time-slots/start", getTimeSlots.HandleStart).Methods(http.MethodGet)
	api.HandleFunc("/time-slots/end", getTimeSlots.HandleEnd).Methods(http.MethodGet)

	// Справочники для форм
	api.HandleFunc("/contacts", reference.HandleContacts).Methods(http.MethodGet)
	api.HandleFunc("/countries", reference.HandleCountries).Methods(http.MethodGet)
	api.HandleFunc("/countries/{countryId}/divisions", reference.HandleDivisions).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(userRepository, log))

	protected.HandleFunc("/users", reference.HandleUsers).Methods(http.MethodGet)

	// --- Встречи ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Ближайшие встречи пользователя (предупреждение после входа)
	protected.HandleFunc("/users/{userId}/appointments/upcoming", getUpcoming.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	protected.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", updateCustomer.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{customerId}", deleteCustomer.Handle).Methods(http.MethodDelete)

	// --- Отчеты ---
	protected.HandleFunc("/reports/types", reports.HandleTypes).Methods(http.MethodGet)
	protected.HandleFunc("/reports/type-month", reports.HandleTypeMonth).Methods(http.MethodGet)
	protected.HandleFunc("/reports/contacts/{contactId}/schedule", reports.HandleContactSchedule).Methods(http.MethodGet)
	protected.HandleFunc("/reports/countries/{countryId}/customers", reports.HandleCountryCustomers).Methods(http.MethodGet)
	protected.HandleFunc("/reports/export", reports.HandleExport).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик пула и очистку rate limiter
	close(stopCh)

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
