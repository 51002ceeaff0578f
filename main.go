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

	"github.com/sirupsen/logrus"
	_ "github.com/umalmyha/loyalty/docs"
	"github.com/umalmyha/loyalty/internal/auth"
	"github.com/umalmyha/loyalty/internal/config"
	"github.com/umalmyha/loyalty/internal/infra"
	"github.com/umalmyha/loyalty/internal/repository"
	"github.com/umalmyha/loyalty/internal/service"
	"github.com/umalmyha/loyalty/pkg/db/transactor"
	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/grpc/health"
)

// @title                     Loyalty API
// @version                   1.0
// @description               Customers and gifts of loyalty program
// @BasePath                  /
// @securityDefinitions.basic BasicAuth
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := configureLogger(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logrus.Fatal(err)
	}
}

func configureLogger(cfg config.LogCfg) error {
	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level - %w", err)
	}
	logrus.SetLevel(lvl)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

//nolint:funlen // function wires all application components
func run(ctx context.Context, cfg config.Config) error {
	mongoClient, err := infra.Mongodb(ctx, cfg.MongoCfg)
	if err != nil {
		return err
	}
	defer disconnectMongo(mongoClient)

	db := mongoClient.Database(cfg.MongoCfg.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	probes := []infra.Probe{infra.MongoProbe(mongoClient)}

	var verifier auth.CredentialVerifier
	accounts := auth.DefaultAccounts(cfg.AuthCfg.UserPassword, cfg.AuthCfg.AdminPassword)

	switch cfg.AuthCfg.Store {
	case config.AuthStorePostgres:
		pgPool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return err
		}
		defer pgPool.Close()

		userRps := repository.NewPostgresUserRepository(transactor.NewPgxWithinTransactionExecutor(pgPool))
		authSvc, err := service.NewAuthService(cfg.AuthCfg.BcryptCost, transactor.NewPgxTransactor(pgPool), userRps)
		if err != nil {
			return err
		}
		if err := authSvc.Provision(ctx, accounts...); err != nil {
			return fmt.Errorf("failed to provision accounts - %w", err)
		}

		verifier = authSvc
		probes = append(probes, infra.PostgresProbe(pgPool))
	default:
		static, err := auth.NewStaticCredentials(cfg.AuthCfg.BcryptCost, accounts...)
		if err != nil {
			return err
		}
		verifier = static
	}
	logrus.Infof("%d accounts provisioned in %s credential store", len(accounts), cfg.AuthCfg.Store)

	customerSvc := service.NewCustomerService(repository.NewMongoCustomerRepository(db))
	giftSvc := service.NewGiftService(repository.NewMongoGiftRepository(db))

	e, err := infra.Router(cfg.HTTPCfg, cfg.AuthCfg.Realm, verifier, customerSvc, giftSvc)
	if err != nil {
		return err
	}

	// health
	healthSrv := health.NewServer()
	grpcSrv := infra.HealthServer(healthSrv)
	checker := infra.NewHealthChecker(healthSrv, cfg.GrpcCfg.HealthInterval, probes...)

	checkerCtx, stopChecker := context.WithCancel(ctx)
	defer stopChecker()
	go checker.Run(checkerCtx)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GrpcCfg.HealthPort))
	if err != nil {
		return fmt.Errorf("failed to listen on health port - %w", err)
	}

	errorCh := make(chan error, 2)

	go func() {
		logrus.Infof("gRPC health server listens on port %d", cfg.GrpcCfg.HealthPort)
		errorCh <- grpcSrv.Serve(lis)
	}()

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.HTTPCfg.Port))
	}()

	select {
	case <-ctx.Done():
		logrus.Info("shutdown signal has been sent, stopping the servers...")
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the servers, unexpected error occurred - %v", err)
		}
	}

	stopChecker()
	grpcSrv.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server gracefully - %w", err)
	}
	return nil
}

func disconnectMongo(client *mongo.Client) {
	if err := client.Disconnect(context.Background()); err != nil {
		logrus.Errorf("failed to disconnect from mongo - %v", err)
	}
}
