package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MikeMC777/vendas-whatsapp/internal/apitoken"
	"github.com/MikeMC777/vendas-whatsapp/internal/auth"
	"github.com/MikeMC777/vendas-whatsapp/internal/company"
	"github.com/MikeMC777/vendas-whatsapp/internal/config"
	"github.com/MikeMC777/vendas-whatsapp/internal/customer"
	"github.com/MikeMC777/vendas-whatsapp/internal/database"
	"github.com/MikeMC777/vendas-whatsapp/internal/importer"
	"github.com/MikeMC777/vendas-whatsapp/internal/notification"
	ord "github.com/MikeMC777/vendas-whatsapp/internal/order"
	"github.com/MikeMC777/vendas-whatsapp/internal/payment"
	prod "github.com/MikeMC777/vendas-whatsapp/internal/product"
	"github.com/MikeMC777/vendas-whatsapp/internal/storage"
	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var migrateFirst bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, migrateFirst)
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending migrations before serving")
	return cmd
}

// realtime picks Redis when configured and the in-process hub otherwise.
func realtime(ctx context.Context, cfg config.Config, log *zap.Logger) (notification.Bus, apitoken.Cache, func(), error) {
	if cfg.RedisAddr == "" {
		log.Warn("REDIS_ADDR not set: realtime and token cache stay in this process")
		return notification.NewHub(), apitoken.NewMemoryCache(), func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	bus, err := notification.NewRedisBus(ctx, rdb, log)
	if err != nil {
		_ = rdb.Close()
		return nil, nil, nil, err
	}
	return bus, apitoken.NewRedisCache(rdb), func() { _ = rdb.Close() }, nil
}

// objectStore picks S3 when configured; otherwise files live in memory and
// are served under /arquivos.
func objectStore(ctx context.Context, cfg config.Config, log *zap.Logger) (storage.Store, *storage.Memory, error) {
	if !cfg.S3Enabled() {
		log.Warn("S3 not configured: uploads are kept in memory")
		m := storage.NewMemory("/arquivos")
		return m, m, nil
	}
	s3, err := storage.NewS3(ctx, storage.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		PublicURL: cfg.S3PublicURL,
		PathStyle: cfg.S3PathStyle,
	}, log)
	if err != nil {
		return nil, nil, err
	}
	if err := s3.Ping(ctx); err != nil {
		log.Warn("bucket not reachable yet", zap.String("bucket", cfg.S3Bucket), zap.Error(err))
	}
	return s3, nil, nil
}

func runServe(ctx context.Context, opts *rootOptions, migrateFirst bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, pool, err := bootstrap(ctx, opts)
	defer func() { _ = log.Sync() }()
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("starting vendas", cfg.LogFields()...)

	if migrateFirst {
		mg, err := database.NewMigrator(cfg.PostgresDSN, log)
		if err != nil {
			return err
		}
		err = mg.Up()
		_ = mg.Close()
		if err != nil {
			log.Error("migrations failed", zap.Error(err))
			return err
		}
	}

	bus, cache, closeRedis, err := realtime(ctx, cfg, log)
	if err != nil {
		log.Error("redis unavailable", zap.Error(err))
		return err
	}
	defer closeRedis()
	defer func() { _ = bus.Close() }()

	store, files, err := objectStore(ctx, cfg, log)
	if err != nil {
		log.Error("object storage unavailable", zap.Error(err))
		return err
	}

	notifications := notification.NewService(notification.NewPGRepo(pool), bus, log, cfg.NotifyPollInterval)
	products := prod.NewService(prod.NewPGRepo(pool)).WithNotifier(notifications)
	customers := customer.NewService(customer.NewPGRepo(pool))
	a := &app{
		log:           log,
		db:            pool,
		corsOrigins:   cfg.CORSOrigins,
		maxUpload:     cfg.MaxUploadBytes,
		heartbeat:     sseHeartbeat,
		jwt:           auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer),
		users:         user.NewService(user.NewPGRepo(pool)),
		companies:     company.NewPGRepo(pool),
		products:      products,
		customers:     customers,
		orders:        ord.NewService(ord.NewPGRepo(pool), notifications),
		notifications: notifications,
		tokens:        apitoken.NewService(apitoken.NewPGRepo(pool), cache, cfg.TokenCacheTTL, log),
		payments:      payment.NewService(payment.NewPGRepo(pool)),
		importer:      importer.NewService(products, customers, notifications, log),
		uploader:      storage.NewUploader(store, cfg.MaxUploadBytes),
		files:         files,
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	hs := health.NewServer()
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	lis, err := net.Listen("tcp", cfg.GRPCHealthAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCHealthAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		log.Info("grpc health listening", zap.String("addr", cfg.GRPCHealthAddr))
		return gs.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		hs.Shutdown()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(sctx)
		gs.GracefulStop()
		return err
	})

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}
	log.Info("bye")
	return nil
}
