/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command httperrd is a reference server showing how the error normalizer is
// registered as the terminal stage of an HTTP pipeline: handlers return
// status-bearing errors and never write error bodies themselves.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	"github.com/lmittmann/tint"

	"dirpx.dev/httperrors"
	"dirpx.dev/httperrors/apis"
	"dirpx.dev/httperrors/detailcode"
	"dirpx.dev/httperrors/httpx"
	"dirpx.dev/httperrors/mode"
)

type config struct {
	LogFormat string     `default:"json" split_words:"true"`
	LogLevel  slog.Level `default:"info" split_words:"true"`

	Mode mode.Mode `default:"development"`

	ServerAddr            string        `default:":8080" split_words:"true"`
	ServerWriteTimeout    time.Duration `default:"15s" split_words:"true"`
	ServerReadTimeout     time.Duration `default:"15s" split_words:"true"`
	ServerIdleTimeout     time.Duration `default:"5m" split_words:"true"`
	ServerShutdownTimeout time.Duration `default:"30s" split_words:"true"`
}

func main() {
	var cfg config
	err := envconfig.Process("httperrd", &cfg)
	if err != nil {
		slog.Error("unable to parse config", slog.Any("error", err))
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var logHandler slog.Handler
	switch cfg.LogFormat {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stdout, logOpts)
	default:
		logHandler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.Kitchen,
		})
	}

	log := slog.New(logHandler).With(slog.String("mode", cfg.Mode.String()))

	if err := mainErr(&cfg, log); err != nil {
		log.Error("Service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("Service terminated gracefully")
}

func mainErr(cfg *config, log *slog.Logger) error {
	norm := httpx.New(
		httpx.WithLogger(log),
		httpx.WithMode(cfg.Mode),
	)

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           newRouter(log, norm),
		ReadTimeout:       cfg.ServerReadTimeout,
		ReadHeaderTimeout: cfg.ServerReadTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", slog.String("addr", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("start server: %w", err)
			return
		}
		serverErr <- nil
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-shutdown:
		log.Info("Received termination signal - service will shutdown")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("stop server: %w", err)
		}
		return nil
	}
}

// newRouter registers the demo routes. Every handler is wrapped by the
// normalizer, so it terminates each chain — the "after all routes"
// placement the error contract requires.
func newRouter(log *slog.Logger, norm *httpx.Normalizer) http.Handler {
	r := mux.NewRouter()

	r.Handle("/api/v1/users/{id}", norm.Wrap(getUser)).Methods(http.MethodGet)
	r.Handle("/api/v1/login", norm.Wrap(login)).Methods(http.MethodPost)
	r.Handle("/api/v1/admin", norm.Wrap(admin)).Methods(http.MethodGet)
	r.Handle("/api/v1/signup", norm.Wrap(signup)).Methods(http.MethodPost)
	r.Handle("/api/v1/search", norm.Wrap(search)).Methods(http.MethodGet)

	r.Use(httpx.RequestID, httpx.RequestLogging(log), httpx.Recovery(log))

	return r
}

func getUser(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]
	if id != "42" {
		return httperrors.E(http.StatusNotFound)
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{"id": id, "name": "Arthur"})
}

func login(http.ResponseWriter, *http.Request) error {
	return httperrors.E(http.StatusUnauthorized)
}

func admin(http.ResponseWriter, *http.Request) error {
	return httperrors.E(http.StatusForbidden,
		httperrors.WithMessageOption("admin area requires elevated access"))
}

func signup(http.ResponseWriter, *http.Request) error {
	return httperrors.E(http.StatusUnprocessableEntity,
		httperrors.WithMessageOption("Cannot register"),
		httperrors.WithDetailOption(apis.Detail{
			Code:     detailcode.AlreadyExists,
			Field:    "username",
			Resource: "Login",
		}))
}

func search(w http.ResponseWriter, r *http.Request) error {
	if r.URL.Query().Get("limit") == "" {
		return httperrors.E(http.StatusBadRequest,
			httperrors.WithFieldOption("limit", ""))
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{"results": []string{}})
}
