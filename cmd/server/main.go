package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"storepay/internal/config"
	"storepay/internal/httpapi"
	"storepay/internal/logger"
	"storepay/internal/middleware"
	"storepay/internal/payment"
	"storepay/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	processor, err := payment.CreatePaymentService(cfg)
	if err != nil {
		logger.L().Fatal("payment processor setup failed", zap.Error(err))
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.L().Fatal("view renderer setup failed", zap.Error(err))
	}

	handler := httpapi.NewHandler(processor, cfg, renderer)

	var srv http.Handler = handler.Routes()
	srv = middleware.RateLimit(srv)
	srv = middleware.Auth(cfg.JWTSecret)(srv)
	srv = middleware.CORS(cfg.PublicHostname)(srv)
	srv = middleware.Logging(srv)
	srv = middleware.RequestID(srv)

	logger.L().Info("server listening",
		zap.String("port", cfg.AppPort),
		zap.String("processor", processor.Type()),
	)
	if err := http.ListenAndServe(":"+cfg.AppPort, srv); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
