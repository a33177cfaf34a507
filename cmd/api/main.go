package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/trinity-got/member-query-api/internal/adapters/httpapi"
	memmembersource "github.com/trinity-got/member-query-api/internal/adapters/memory/membersource"
	postgres "github.com/trinity-got/member-query-api/internal/adapters/postgres"
	pgmembersource "github.com/trinity-got/member-query-api/internal/adapters/postgres/membersource"
	"github.com/trinity-got/member-query-api/internal/app/memberquery"
	"github.com/trinity-got/member-query-api/internal/platform/config"
	membersourceport "github.com/trinity-got/member-query-api/internal/ports/out/membersource"
)

func main() {
	cfg, err := config.LoadServerConfigFromEnv()
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var (
		source  membersourceport.Source
		cleanup func()
	)
	switch cfg.RosterBackend {
	case config.RosterBackendPostgres:
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Fatalf("invalid postgres config: %v", err)
		}
		cleanup = pool.Close
		source = pgmembersource.NewSource(pool)
	default:
		source = memmembersource.NewSource()
	}

	// The roster is loaded exactly once, before the first query is served.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.LoadTimeout)
	members, err := source.GetAllMembers(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatalf("load roster: %v", err)
	}
	log.Printf("loaded %d members from %s roster", len(members), cfg.RosterBackend)

	// The query service owns its copy; the pool is only needed for the load.
	if cleanup != nil {
		cleanup()
	}

	queries := memberquery.NewService(members)
	handler := httpapi.NewRouter(httpapi.NewServer(queries))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("api listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
