package main

import (
	batch "Canopy/internal/calc/batch"
	design "Canopy/internal/calc/design"
	pattern "Canopy/internal/calc/pattern"
	physics "Canopy/internal/calc/physics"
	report "Canopy/internal/calc/report"
	topview "Canopy/internal/calc/topview"
	config "Canopy/internal/config"
	limit "Canopy/internal/limit"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config) {
	limiter := limit.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	physicsH := &physics.Handler{}
	patternH := &pattern.Handler{}
	topviewH := &topview.Handler{}
	designH := &design.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}

	tools := api.PathPrefix("/tools").Subrouter()
	tools.HandleFunc("/physics/calc", physicsH.Calc).Methods("POST")
	tools.HandleFunc("/pattern/calc", patternH.Calc).Methods("POST")
	tools.HandleFunc("/pattern/svg", reportH.PatternSVG).Methods("POST")
	tools.HandleFunc("/pattern/xlsx", reportH.PatternXLSX).Methods("POST")
	tools.HandleFunc("/topview/calc", topviewH.Calc).Methods("POST")
	tools.HandleFunc("/topview/svg", reportH.TopViewSVG).Methods("POST")
	tools.HandleFunc("/design/calc", designH.Calc).Methods("POST")
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")
	tools.HandleFunc("/batch/calc", batchH.Calc).Methods("POST")
	tools.HandleFunc("/batch/import", batchH.Import).Methods("POST")

	if cfg.StaticDir != "" {
		mux.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	router := mux.NewRouter()
	HandleList(router, cfg)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on %s (tls=%v)", cfg.Addr, cfg.TLS())
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
