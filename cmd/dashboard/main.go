// cmd/dashboard/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"dashboard-service/internal/api"
	"dashboard-service/internal/api/handlers"
	"dashboard-service/internal/api/responses"
	"dashboard-service/internal/config"
	"dashboard-service/internal/core/dashboard"
	"dashboard-service/internal/core/sessions"
	"dashboard-service/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Falha ao carregar configuração: ", err)
	}

	logger, err := responses.InitLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Falha ao iniciar o logger: ", err)
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("fuso horário inválido", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)

	m := metrics.New()
	dashboardService := dashboard.NewService(logger, loc, m)
	store := sessions.NewStore(cfg.SessionTTL, cfg.MaxSessions)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, store, m, cfg.MaxUploadBytes())

	router := api.NewRouter(dashboardHandler, m)
	router.MaxMultipartMemory = cfg.MaxUploadBytes()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("🚀 Dashboard Service (Go) iniciado", zap.String("port", cfg.Port), zap.String("timezone", cfg.Timezone))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Falha ao iniciar o servidor do painel", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("erro ao encerrar o servidor", zap.Error(err))
	}
}
