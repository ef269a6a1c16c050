package main

import (
	"context"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/petsisters/sitter-finder/pkg/catalog"
	"github.com/petsisters/sitter-finder/pkg/chat"
	"github.com/petsisters/sitter-finder/pkg/common"
	"github.com/petsisters/sitter-finder/pkg/index"
	"github.com/petsisters/sitter-finder/pkg/server"
	"github.com/petsisters/sitter-finder/pkg/session"
	"github.com/petsisters/sitter-finder/pkg/tracking"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()

	listenAddress := env("LISTEN_ADDRESS", ":8080")
	debugAddress := env("DEBUG_ADDRESS", ":8081")

	sitters := catalog.MustLoad()
	idx := index.NewIndex(sitters)
	log.Printf("loaded %d sitters, price bounds %v", idx.Len(), idx.Bounds())

	ws := &server.WebServer{
		Index:    idx,
		Sessions: session.NewStore(idx),
	}

	var hooks []common.ShutdownHook

	if redisUrl := os.Getenv("REDIS_URL"); redisUrl != "" {
		cache := server.NewCache(redisUrl, os.Getenv("REDIS_PASSWORD"), 5*time.Minute)
		ws.Cache = cache
		hooks = append(hooks, func(ctx context.Context) error {
			return cache.Close()
		})
		log.Printf("response cache enabled on %s", redisUrl)
	}

	if rabbitUrl := os.Getenv("RABBIT_URL"); rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl)
		if err != nil {
			log.Fatalf("connecting to rabbitmq: %v", err)
		}
		ws.Tracking = trk
		hooks = append(hooks, func(ctx context.Context) error {
			return trk.Close()
		})
		log.Printf("tracking enabled")
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		client, err := chat.NewClient(apiKey, os.Getenv("ANTHROPIC_MODEL"))
		if err != nil {
			log.Fatalf("configuring chat: %v", err)
		}
		ws.Chat = client
		log.Printf("chat assistant enabled")
	}

	go func() {
		debugMux := http.NewServeMux()
		debugMux.Handle("/metrics", promhttp.Handler())
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
		log.Printf("starting debug server on %s", debugAddress)
		if err := http.ListenAndServe(debugAddress, debugMux); err != nil {
			log.Printf("debug server error: %v", err)
		}
	}()

	common.RunServerWithShutdown(ws.StartApi(listenAddress), "api server", 10*time.Second, hooks...)
}
