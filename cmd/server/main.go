package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"boxdrop/internal/app"
	"boxdrop/internal/auth"
	"boxdrop/internal/config"
	"boxdrop/internal/service"
	"boxdrop/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	conn, err := storage.NewConnector(cfg.RedisURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer conn.Close()

	signer := auth.NewSigner(cfg.HashSecret)
	tokens := auth.NewTokenIssuer(signer)

	boxes := service.NewBoxService(storage.NewBoxRepository(conn), auth.NewCodeIssuer(signer))
	login := service.NewLoginService(
		auth.NewOTPIssuer(signer),
		tokens,
		service.LogNotifier{},
		cfg.AdminUser,
		cfg.AdminPasswordHash,
	)

	handler := app.NewHandler(boxes, login)

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           app.NewRouter(handler, tokens),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
