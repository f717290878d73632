package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	agentrepo "github.com/meatsuits/bountyboard/internal/agent/repositoryimpl"
	bountyrepo "github.com/meatsuits/bountyboard/internal/bounty/repositoryimpl"
	"github.com/meatsuits/bountyboard/internal/browse"
	claimrepo "github.com/meatsuits/bountyboard/internal/claim/repositoryimpl"
	"github.com/meatsuits/bountyboard/internal/config"
	"github.com/meatsuits/bountyboard/internal/fixture"
	"github.com/meatsuits/bountyboard/internal/rpc"
	workerrepo "github.com/meatsuits/bountyboard/internal/worker/repositoryimpl"
	"github.com/meatsuits/bountyboard/pkg/clog"
	"github.com/meatsuits/bountyboard/pkg/storage"

	server "github.com/meatsuits/bountyboard/internal"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	// Setup logger
	level := env.SlogLevel()
	var handler slog.Handler
	if env.Env == "local" {
		handler = clog.NewHTTPTextHandler(os.Stderr, clog.WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(clog.NewAttributesHandler(handler)))

	// Load fixture
	store, err := openStorage(context.Background(), &env.StorageEnv)
	if err != nil {
		slog.Error("failed to open fixture storage", "type", env.StorageEnv.Type, "error", err)
		os.Exit(1)
	}
	st, err := fixture.Load(context.Background(), store, "")
	if err != nil {
		slog.Error("failed to load fixture", "type", env.StorageEnv.Type, "error", err)
		os.Exit(1)
	}
	slog.Info("fixture loaded",
		"agents", len(st.Agents()),
		"workers", len(st.Workers()),
		"bounties", len(st.Bounties()),
		"claims", len(st.Claims()),
	)

	// Setup repositories
	agentRepo := agentrepo.NewFixtureRepository(st)
	workerRepo := workerrepo.NewFixtureRepository(st)
	bountyRepo := bountyrepo.NewFixtureRepository(st)
	claimRepo := claimrepo.NewFixtureRepository(st)

	// Setup handlers
	rpcHandler, err := rpc.NewHandler(rpc.NewDispatcher(bountyRepo, workerRepo), env.MaxBodyBytes)
	if err != nil {
		slog.Error("failed to create rpc handler", "error", err)
		os.Exit(1)
	}
	browseServer := browse.NewServer(agentRepo, workerRepo, bountyRepo, claimRepo)

	srv := server.NewServer(env, rpcHandler, browseServer)

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func openStorage(ctx context.Context, env *config.StorageEnv) (storage.Storage, error) {
	switch env.Type {
	case config.StorageTypeS3:
		return storage.NewS3Storage(ctx, env.S3Bucket, env.S3Prefix, env.S3Region)
	case config.StorageTypeLocal:
		return storage.NewLocalStorage(env.BaseDir)
	case config.StorageTypeEmbedded:
		return fixture.EmbeddedStorage(), nil
	}
	return nil, fmt.Errorf("unknown storage type %q", env.Type)
}
