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

	activatePlanHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/activate_plan"
	adjustCreditsHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/adjust_credits"
	createConsultationHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/create_consultation"
	deleteConsultationHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/delete_consultation"
	exportCalendarHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/export_calendar"
	exportReportHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/export_report"
	getAvailableSlotsHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/get_available_slots"
	getBlocksHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/get_blocks"
	getConsultationHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/get_consultation"
	getCreditsHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/get_credits"
	getUserConsultationsHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/get_user_consultations"
	listConsultationsHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/list_consultations"
	topupCreditsHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/topup_credits"
	updateStatusHandler "github.com/wang2185/daylawyer-booking/internal/api/handlers/update_consultation_status"
	"github.com/wang2185/daylawyer-booking/internal/api/middleware"
	"github.com/wang2185/daylawyer-booking/internal/config"
	blockRepo "github.com/wang2185/daylawyer-booking/internal/infra/storage/block"
	consultationRepo "github.com/wang2185/daylawyer-booking/internal/infra/storage/consultation"
	creditRepo "github.com/wang2185/daylawyer-booking/internal/infra/storage/credit"
	holidayServiceClient "github.com/wang2185/daylawyer-booking/internal/integrations/holidayservice"
	notifyServiceClient "github.com/wang2185/daylawyer-booking/internal/integrations/notifyservice"
	consultationsService "github.com/wang2185/daylawyer-booking/internal/service/consultations"
	creditsService "github.com/wang2185/daylawyer-booking/internal/service/credits"
	reportsService "github.com/wang2185/daylawyer-booking/internal/service/reports"
	createConsultationUC "github.com/wang2185/daylawyer-booking/internal/usecase/create_consultation"
	getAvailableSlotsUC "github.com/wang2185/daylawyer-booking/internal/usecase/get_available_slots"
	"github.com/wang2185/daylawyer-booking/pkg/dbmetrics"
	"github.com/wang2185/daylawyer-booking/pkg/logger"
	"github.com/wang2185/daylawyer-booking/pkg/metrics"
	"github.com/wang2185/daylawyer-booking/pkg/simpletxmanager"
	"github.com/wang2185/daylawyer-booking/pkg/txmanager"
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

	log.Info("Starting DayLawyer-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс календаря кабинета
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Calendar timezone: %s", cfg.Booking.Timezone)

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

	// Инициализируем интеграционных клиентов
	holidayClient := holidayServiceClient.NewClient(
		cfg.HolidayService.URL,
		time.Duration(cfg.HolidayService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (HolidayService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.HolidayService.URL, cfg.HolidayService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		consultationRepository *consultationRepo.Repository
		blockRepository        *blockRepo.Repository
		creditRepository       *creditRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		consultationRepository = consultationRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		creditRepository = creditRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		consultationRepository = consultationRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		creditRepository = creditRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	consultationsSvc := consultationsService.NewService(
		consultationRepository,
		blockRepository,
		creditRepository,
		notifyClient,
		txMgr,
		log,
	)
	creditsSvc := creditsService.NewService(creditRepository, log)
	reportsSvc := reportsService.NewService(consultationRepository, location, log)

	// Инициализируем use cases
	createConsultationUseCase := createConsultationUC.NewUseCase(
		consultationRepository,
		blockRepository,
		creditRepository,
		holidayClient,
		notifyClient,
		txMgr,
		location,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		consultationRepository,
		blockRepository,
		holidayClient,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createConsultation := createConsultationHandler.NewHandler(createConsultationUseCase, log)
	getConsultation := getConsultationHandler.NewHandler(consultationsSvc, log)
	getUserConsultations := getUserConsultationsHandler.NewHandler(consultationsSvc, log)
	listConsultations := listConsultationsHandler.NewHandler(consultationsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(consultationsSvc, log)
	deleteConsultation := deleteConsultationHandler.NewHandler(consultationsSvc, log)
	getBlocks := getBlocksHandler.NewHandler(consultationsSvc, log)
	getCredits := getCreditsHandler.NewHandler(creditsSvc, log)
	adjustCredits := adjustCreditsHandler.NewHandler(creditsSvc, log)
	activatePlan := activatePlanHandler.NewHandler(creditsSvc, log)
	topupCredits := topupCreditsHandler.NewHandler(creditsSvc, log)
	exportReport := exportReportHandler.NewHandler(reportsSvc, log)
	exportCalendar := exportCalendarHandler.NewHandler(consultationsSvc, cfg.Booking.Location, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/consultations/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки на консультацию ---
	protected.HandleFunc("/consultations", createConsultation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/consultations/{consultationId}", getConsultation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/consultations/{consultationId}/calendar.ics", exportCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/consultations", getUserConsultations.Handle).Methods(http.MethodGet)

	// --- Кредиты и тарифы ---
	protected.HandleFunc("/users/{userId}/credits", getCredits.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/plan", activatePlan.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/credits/topup", topupCredits.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	admin.HandleFunc("/consultations", listConsultations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/consultations/{consultationId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/consultations/{consultationId}", deleteConsultation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/blocks", getBlocks.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/users/{userId}/credits/adjust", adjustCredits.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reports/completed", exportReport.Handle).Methods(http.MethodGet)

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
