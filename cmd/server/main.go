package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/config"
	"github.com/EleazarRosete/lolos-place-backend/internal/connections/database"
	"github.com/EleazarRosete/lolos-place-backend/internal/connections/rabbitmq"
	"github.com/EleazarRosete/lolos-place-backend/internal/connections/redisconn"
	"github.com/EleazarRosete/lolos-place-backend/internal/httpx"
	"github.com/EleazarRosete/lolos-place-backend/internal/logging"
	"github.com/EleazarRosete/lolos-place-backend/internal/metrics"
	analyticshandlers "github.com/EleazarRosete/lolos-place-backend/internal/services/analytics/handlers"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/analytics/mlproxy"
	analyticsrepo "github.com/EleazarRosete/lolos-place-backend/internal/services/analytics/repository"
	analyticsservice "github.com/EleazarRosete/lolos-place-backend/internal/services/analytics/service"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/feedback"
	menuhandlers "github.com/EleazarRosete/lolos-place-backend/internal/services/menu/handlers"
	menurepo "github.com/EleazarRosete/lolos-place-backend/internal/services/menu/repository"
	menuservice "github.com/EleazarRosete/lolos-place-backend/internal/services/menu/service"
	notifierhandlers "github.com/EleazarRosete/lolos-place-backend/internal/services/notifier/handlers"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/notifier/mailer"
	notifierservice "github.com/EleazarRosete/lolos-place-backend/internal/services/notifier/service"
	orderhandlers "github.com/EleazarRosete/lolos-place-backend/internal/services/orders/handlers"
	orderrepo "github.com/EleazarRosete/lolos-place-backend/internal/services/orders/repository"
	orderservice "github.com/EleazarRosete/lolos-place-backend/internal/services/orders/service"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/gateway"
	paymenthandlers "github.com/EleazarRosete/lolos-place-backend/internal/services/payments/handlers"
	paymentrepo "github.com/EleazarRosete/lolos-place-backend/internal/services/payments/repository"
	paymentservice "github.com/EleazarRosete/lolos-place-backend/internal/services/payments/service"
	userhandlers "github.com/EleazarRosete/lolos-place-backend/internal/services/users/handlers"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/otp"
	userrepo "github.com/EleazarRosete/lolos-place-backend/internal/services/users/repository"
	userservice "github.com/EleazarRosete/lolos-place-backend/internal/services/users/service"
)

func main() {
	cfg := config.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "production"
	}
	lg := logging.New("lolos-place-backend", env)
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	broker, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		lg.Fatal("rabbitmq connection failed", zap.Error(err))
	}
	defer broker.Close()
	if err := broker.DeclareTopology(); err != nil {
		lg.Fatal("rabbitmq topology declaration failed", zap.Error(err))
	}

	rdb, err := redisconn.Connect(ctx, cfg.Redis)
	if err != nil {
		lg.Fatal("redis connection failed", zap.Error(err))
	}
	defer rdb.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	mail := mailer.New(cfg.SMTP)

	usersRepo := userrepo.NewUsersRepository(pool)
	otpStore := otp.NewStore(rdb, 0)
	usersSvc := userservice.NewUsersService(usersRepo, otpStore, mail, lg)

	ordersRepo := orderrepo.NewOrdersRepository(pool)
	publisher := orderservice.NewRabbitPublisher(broker)
	ordersSvc := orderservice.NewOrdersService(ordersRepo, publisher, lg)

	paymentsRepo := paymentrepo.NewPaymentsRepository(pool)
	gw := gateway.NewClient(cfg.Payment.CheckoutURL, cfg.Payment.SecretKey)
	paymentsSvc := paymentservice.NewPaymentsService(paymentsRepo, gw, cfg.Payment, lg)

	menuRepo := menurepo.NewMenuRepository(pool)
	menuSvc := menuservice.NewMenuService(menuRepo)

	analyticsRepo := analyticsrepo.NewAnalyticsRepository(pool)
	analyticsSvc := analyticsservice.NewAnalyticsService(analyticsRepo)
	proxy := mlproxy.NewClient(cfg.Analytics.BaseURL)

	feedbackRepo := feedback.NewFeedbackRepository(pool)
	feedbackSvc := feedback.NewFeedbackService(feedbackRepo, lg)

	mux := http.NewServeMux()
	orderhandlers.NewOrderHandler(ordersSvc).Register(mux)
	paymenthandlers.NewPaymentHandler(paymentsSvc).Register(mux)
	menuhandlers.NewMenuHandler(menuSvc).Register(mux)
	userhandlers.NewUserHandler(usersSvc).Register(mux)
	analyticshandlers.NewAnalyticsHandler(analyticsSvc, proxy).Register(mux)
	feedback.NewFeedbackHandler(feedbackSvc).Register(mux)
	notifierhandlers.NewNotifierHandler(mail, lg).Register(mux)

	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			httpx.WriteProblem(w, http.StatusServiceUnavailable, "unhealthy", "database unreachable")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	notifier := notifierservice.NewNotifierService(broker, usersRepo, mail, lg)
	go func() {
		if err := notifier.Run(ctx); err != nil && ctx.Err() == nil {
			lg.Error("notifier stopped", zap.Error(err))
		}
	}()

	srv := httpx.New(":"+cfg.Port, httpx.Instrument(lg, m, mux))
	lg.Info("server listening", zap.String("port", cfg.Port))
	if err := srv.Run(ctx); err != nil {
		lg.Fatal("server failed", zap.Error(err))
	}
	lg.Info("server stopped")
}
