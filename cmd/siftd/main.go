// siftd is the orchestration server: it serves the HTTP API, runs the
// queue workers, and streams job status over WebSockets.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/siftstack/sift/pkg/agent"
	"github.com/siftstack/sift/pkg/api"
	"github.com/siftstack/sift/pkg/catalog"
	"github.com/siftstack/sift/pkg/cleanup"
	"github.com/siftstack/sift/pkg/config"
	"github.com/siftstack/sift/pkg/database"
	"github.com/siftstack/sift/pkg/events"
	"github.com/siftstack/sift/pkg/jobs"
	"github.com/siftstack/sift/pkg/queue"
	"github.com/siftstack/sift/pkg/redact"
	"github.com/siftstack/sift/pkg/synthesis"
	"github.com/siftstack/sift/pkg/tool"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(2)
	}

	slog.Info("Starting siftd",
		"pod_id", podID,
		"port", cfg.Server.Port,
		"config_dir", *configDir)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup for this pod
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal, continue
	}

	// 4. Streaming infrastructure
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewSQLCatchup(dbClient.DB()), 10*time.Second)

	listener := events.NewListener(dbConfig.DSN(), connManager)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	connManager.SetListener(listener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Catalog services
	agentService := catalog.NewAgentService(dbClient.Client)
	playbookService := catalog.NewPlaybookService(dbClient.Client)
	graphService := catalog.NewGraphService(dbClient.Client, playbookService)
	planService := catalog.NewPlanService(dbClient.Client, playbookService, graphService)
	templateService := catalog.NewTemplateService(dbClient.Client)

	if _, err := templateService.SeedBuiltin(ctx); err != nil {
		slog.Error("Failed to seed builtin template", "error", err)
		os.Exit(1)
	}

	// 6. Tool broker and adapters
	redactor := redact.NewRedactor(cfg.Defaults.Redaction)
	broker := tool.NewBroker(cfg.Tools, agentService, publisher, redactor)
	agentService.OnPermissionChange(broker.InvalidatePermissions)

	llmClient, err := tool.NewLLMClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	vectorStore, err := tool.NewVectorStore(cfg.Tools, cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize vector store", "error", err)
		os.Exit(1)
	}

	dataStore := tool.NewDataStore(dbClient.DB(), cfg.Tools.DataRowCap)

	broker.Register(tool.NewLLMAdapter(llmClient))
	broker.Register(tool.NewEntityNLPAdapter(llmClient))
	broker.Register(tool.NewGeocodeAdapter(cfg.Tools.Geocode))
	broker.Register(tool.NewWebSearchAdapter(cfg.Tools.WebSearch))
	broker.Register(tool.NewDataRetrievalAdapter(dataStore))
	broker.Register(tool.NewDataAggregationAdapter(dataStore))
	broker.Register(tool.NewDataSpatialAdapter(dataStore))
	broker.Register(tool.NewDataAnalyticsAdapter(dataStore))
	broker.Register(tool.NewVectorSearchAdapter(vectorStore))
	broker.Register(tool.NewCustomHTTPAdapter(cfg.Tools.CustomHTTPAllowedHosts))
	slog.Info("Tool broker initialized", "adapters", len(config.AllTools))

	// 7. Execution pipeline
	runtime := agent.NewRuntime(broker, publisher, cfg.Defaults)
	synthesizer := synthesis.NewSynthesizer(llmClient, cfg.LLM)
	executor := queue.NewExecutor(dbClient.Client, planService, runtime, synthesizer, publisher, vectorStore)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, publisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention cleanup
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.DB())
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 9. HTTP server
	jobService := jobs.NewService(dbClient.Client, cfg.Queue, publisher, workerPool)

	server := api.NewServer(api.Deps{
		DB:          dbClient,
		Jobs:        jobService,
		Agents:      agentService,
		Playbooks:   playbookService,
		Graphs:      graphService,
		Plans:       planService,
		Templates:   templateService,
		Pool:        workerPool,
		ConnManager: connManager,
		ServerCfg:   cfg.Server,
	})

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	server.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("siftd started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: workers first, then the HTTP surface
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
