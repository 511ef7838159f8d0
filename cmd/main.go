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

	addWorkingHoursHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/add_working_hours"
	bookSessionHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/book_session"
	cancelSessionHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/cancel_session"
	changeSessionStatusHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/change_session_status"
	checkinQRHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/checkin_qr"
	completeSessionHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/complete_session"
	deleteWorkingHoursHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/delete_working_hours"
	generateQRCodeHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/generate_qr_code"
	getDistrictHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/get_district"
	getEmployeeScheduleHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/get_employee_schedule"
	getNotificationsHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/get_notifications"
	getUserSessionsHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/get_user_sessions"
	listDirectionsHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/list_directions"
	markNotificationReadHandler "github.com/m04kA/MCN-SessionService/internal/api/handlers/mark_notification_read"
	"github.com/m04kA/MCN-SessionService/internal/api/middleware"
	"github.com/m04kA/MCN-SessionService/internal/config"
	"github.com/m04kA/MCN-SessionService/internal/events"
	catalogRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/catalog"
	notificationRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/notification"
	outboxRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/outbox"
	qrtokenRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/qrtoken"
	sessionRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/session"
	userRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/user"
	workingHoursRepo "github.com/m04kA/MCN-SessionService/internal/infra/storage/workinghours"
	"github.com/m04kA/MCN-SessionService/internal/integrations/mailer"
	catalogService "github.com/m04kA/MCN-SessionService/internal/service/catalog"
	notificationsService "github.com/m04kA/MCN-SessionService/internal/service/notifications"
	qrcodesService "github.com/m04kA/MCN-SessionService/internal/service/qrcodes"
	scheduleService "github.com/m04kA/MCN-SessionService/internal/service/schedule"
	sessionsService "github.com/m04kA/MCN-SessionService/internal/service/sessions"
	bookSessionUC "github.com/m04kA/MCN-SessionService/internal/usecase/book_session"
	"github.com/m04kA/MCN-SessionService/internal/worker"
	"github.com/m04kA/MCN-SessionService/pkg/dbmetrics"
	"github.com/m04kA/MCN-SessionService/pkg/logger"
	"github.com/m04kA/MCN-SessionService/pkg/metrics"
	"github.com/m04kA/MCN-SessionService/pkg/simpletxmanager"
	"github.com/m04kA/MCN-SessionService/pkg/txmanager"
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

	log.Info("Starting MCN-SessionService...")
	log.Info("Configuration loaded from config.toml")

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

	// SMTP клиент для воркера доставки уведомлений
	mailClient := mailer.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		log,
	)
	log.Info("Mailer initialized (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository         *workingHoursRepo.Repository
		sessionRepository      *sessionRepo.Repository
		catalogRepository      *catalogRepo.Repository
		userRepository         *userRepo.Repository
		notificationRepository *notificationRepo.Repository
		qrTokenRepository      *qrtokenRepo.Repository
		outboxRepository       *outboxRepo.Repository
	)

	// Интерфейс transaction manager, общий для usecase и сервисов
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = workingHoursRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		qrTokenRepository = qrtokenRepo.NewRepository(wrappedDB)
		outboxRepository = outboxRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = workingHoursRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		qrTokenRepository = qrtokenRepo.NewRepository(db)
		outboxRepository = outboxRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Эмиттер событий жизненного цикла
	emitter := events.NewEmitter(outboxRepository, log)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(
		sessionRepository,
		slotRepository,
		emitter,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(slotRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	qrSvc := qrcodesService.NewService(
		sessionRepository,
		qrTokenRepository,
		cfg.QR.BaseURL,
		time.Duration(cfg.QR.TokenTTL)*time.Minute,
		log,
	)

	// Инициализируем use cases
	bookSessionUseCase := bookSessionUC.NewUseCase(
		slotRepository,
		sessionRepository,
		catalogRepository,
		userRepository,
		emitter,
		txMgr,
		log,
	)

	// Инициализируем handlers
	bookSession := bookSessionHandler.NewHandler(bookSessionUseCase, log)
	completeSession := completeSessionHandler.NewHandler(sessionSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(sessionSvc, log)
	changeSessionStatus := changeSessionStatusHandler.NewHandler(sessionSvc, log)
	getUserSessions := getUserSessionsHandler.NewHandler(sessionSvc, log)
	addWorkingHours := addWorkingHoursHandler.NewHandler(scheduleSvc, log)
	getEmployeeSchedule := getEmployeeScheduleHandler.NewHandler(scheduleSvc, log)
	deleteWorkingHours := deleteWorkingHoursHandler.NewHandler(scheduleSvc, log)
	listDirections := listDirectionsHandler.NewHandler(catalogSvc, log)
	getDistrict := getDistrictHandler.NewHandler(catalogSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	generateQRCode := generateQRCodeHandler.NewHandler(qrSvc, log)
	checkinQR := checkinQRHandler.NewHandler(qrSvc, log)

	// Фоновый воркер доставки событий из outbox
	var workerMetrics worker.Metrics
	if cfg.Metrics.Enabled {
		workerMetrics = metricsCollector
	}
	outboxWorker := worker.New(
		outboxRepository,
		notificationRepository,
		userRepository,
		qrSvc,
		mailClient,
		workerMetrics,
		log,
		worker.Config{
			BatchSize:   cfg.Worker.BatchSize,
			MaxAttempts: cfg.Worker.MaxAttempts,
		},
	)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	go worker.Start(workerCtx, time.Duration(cfg.Worker.Interval)*time.Second, outboxWorker)
	log.Info("Outbox worker started (interval=%ds, batch=%d)", cfg.Worker.Interval, cfg.Worker.BatchSize)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Чек-ин по QR-токену: терминал на стойке не авторизован
	api.HandleFunc("/qr/access/{token}", checkinQR.Handle).Methods(http.MethodPost)

	// Справочник направлений и отделений
	api.HandleFunc("/directions", listDirections.Handle).Methods(http.MethodGet)
	api.HandleFunc("/districts/{id}", getDistrict.Handle).Methods(http.MethodGet)

	// Расписание сотрудника: клиент выбирает свободный слот
	api.HandleFunc("/employees/{id}/working-hours", getEmployeeSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	// --- Сессии ---
	protected.HandleFunc("/sessions", bookSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{id}/complete", completeSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{id}/cancel", cancelSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions/{id}/status", changeSessionStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/sessions/{id}/qr", generateQRCode.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}/sessions", getUserSessions.Handle).Methods(http.MethodGet)

	// --- Расписание (для сотрудников и админов) ---
	protected.HandleFunc("/working-hours", addWorkingHours.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/working-hours/{id}", deleteWorkingHours.Handle).Methods(http.MethodDelete)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

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

	// Останавливаем воркер и сбор метрик connection pool
	stopWorker()
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
