// Package server собирает HTTP-сервис регистрации пользователей:
// базу, сервис регистрации, наблюдателей и роутер.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/config"
	"github.com/kazakovdmitriy/go-idioms/internal/database"
	"github.com/kazakovdmitriy/go-idioms/internal/handler"
	"github.com/kazakovdmitriy/go-idioms/internal/handler/users"
	"github.com/kazakovdmitriy/go-idioms/internal/observers"
	"github.com/kazakovdmitriy/go-idioms/internal/registration"
	"github.com/kazakovdmitriy/go-idioms/internal/service/signerservice"
)

type Server struct {
	cfg       *config.ServerFlags
	log       *zap.Logger
	resources *ResourceGroup
	server    *http.Server
}

func NewApp(cfg *config.ServerFlags, log *zap.Logger) (*Server, error) {
	app := &Server{
		cfg:       cfg,
		log:       log,
		resources: NewResourceGroup(log),
	}
	return app, nil
}

// newRegistration создаёт сервис регистрации и подписывает на него наблюдателей по конфигурации.
func (a *Server) newRegistration(db *database.Database, reg prometheus.Registerer) (*registration.Service, error) {
	service := registration.NewService(db, a.log)
	events := service.Events()

	events.Attach(observers.NewLogObserver(a.log))

	metricsObserver, err := observers.NewMetricsObserver(reg)
	if err != nil {
		return nil, fmt.Errorf("metrics observer: %w", err)
	}
	events.Attach(metricsObserver)

	if a.cfg.AuditFile != "" {
		fileObserver, err := observers.NewFileObserver(a.cfg.AuditFile, a.log)
		if err != nil {
			return nil, fmt.Errorf("audit file observer: %w", err)
		}
		a.resources.Register(fileObserver)
		events.Attach(fileObserver)
		a.log.Info("audit file enabled", zap.String("path", a.cfg.AuditFile))
	}

	if a.cfg.WebhookURL != "" {
		var signer observers.Signer
		if a.cfg.SecretKey != "" {
			signer = signerservice.NewSHA256Signer(a.cfg.SecretKey)
		}
		events.Attach(observers.NewHTTPObserver(a.cfg.WebhookURL, signer, a.log))
		a.log.Info("webhook enabled", zap.String("url", a.cfg.WebhookURL))
	}

	return service, nil
}

// buildHandler собирает роутер со всеми зависимостями.
func (a *Server) buildHandler(activeRequests *sync.WaitGroup, shutdownCh chan struct{}) (http.Handler, error) {
	db := database.NewDatabase()
	reg := prometheus.NewRegistry()

	service, err := a.newRegistration(db, reg)
	if err != nil {
		return nil, err
	}

	return handler.SetupHandler(
		users.NewUsersHandler(service, db, a.log),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		activeRequests,
		shutdownCh,
		a.log,
	), nil
}

// Run обслуживает запросы до сигнала остановки.
// Если сервер не смог начать слушать адрес, Run сразу возвращает ошибку.
func (a *Server) Run() error {
	ctx := context.Background()

	var activeRequests sync.WaitGroup
	shutdownCh := make(chan struct{})

	router, err := a.buildHandler(&activeRequests, shutdownCh)
	if err != nil {
		return fmt.Errorf("router initialization error: %w", err)
	}

	a.server = &http.Server{
		Addr:    a.cfg.ServerAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		a.log.Info("server starting", zap.String("addr", a.cfg.ServerAddr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("server failed to start", zap.Error(err))
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		close(shutdownCh)
		return fmt.Errorf("serve on %s: %w", a.cfg.ServerAddr, err)
	case <-ctx.Done():
	}

	a.log.Info("graceful shutdown initiated")
	close(shutdownCh)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.log.Error("server shutdown failed", zap.Error(err))
	}

	a.log.Info("waiting for active requests to complete...")
	waitDone := make(chan struct{})
	go func() {
		activeRequests.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
		a.log.Info("all requests completed")
	case <-time.After(10 * time.Second):
		a.log.Warn("timeout waiting for requests")
	}

	a.log.Info("server stopped gracefully")
	return nil
}

// Close освобождает ресурсы наблюдателей, например файл аудита.
func (a *Server) Close() {
	if err := a.resources.CloseAll(); err != nil {
		a.log.Error("resources close failed", zap.Error(err))
	}
}
