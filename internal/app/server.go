package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Start слушает настроенный адрес и обслуживает запросы до отмены контекста
func (a *App) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.ServerAddress.String())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.ServerAddress, err)
	}

	return a.Serve(ctx, ln)
}

// Serve обслуживает запросы на переданном listener. После отмены контекста
// сервер дожидается завершения активных запросов в пределах ShutdownTimeout.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:      a.router,
		ReadTimeout:  a.config.HTTP.ReadTimeout,
		WriteTimeout: a.config.HTTP.WriteTimeout,
		IdleTimeout:  a.config.HTTP.IdleTimeout,
		ErrorLog:     zap.NewStdLog(a.logger),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Starting server", zap.String("address", ln.Addr().String()))

		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.HTTP.ShutdownTimeout)
		defer cancel()

		a.logger.Info("Shutting down server", zap.Int("records", a.store.Len()))

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
