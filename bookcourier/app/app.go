package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/bookcourier/bookcourier/config"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/handler"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/repository"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/server"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/service"
	"github.com/Astemirdum/bookcourier/bookcourier/migrations"
	"github.com/Astemirdum/bookcourier/pkg/auth0"
	"github.com/Astemirdum/bookcourier/pkg/kafka"
	"github.com/Astemirdum/bookcourier/pkg/logger"
	"github.com/Astemirdum/bookcourier/pkg/postgres"
)

const shutdownTimeout = 5 * time.Second

func Run(ctx context.Context, cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "bookcourier")
	defer log.Sync() //nolint:errcheck

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			log.Error("sentry init", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repository")
	}

	var publisher service.Publisher = service.NopPublisher{}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return errors.Wrap(err, "kafka.NewProducer")
		}
		defer producer.Close()
		publisher = service.NewKafkaPublisher(producer)
	} else {
		log.Warn("KAFKA_ADDRS is empty, lifecycle events are dropped")
	}
	svc := service.NewService(repo, publisher, log)

	verifier, err := auth0.NewVerifier(cfg.Auth0)
	if err != nil {
		return errors.Wrap(err, "auth0.NewVerifier")
	}

	var group sarama.ConsumerGroup
	if cfg.Kafka.Enabled() {
		if group, err = kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup); err != nil {
			return errors.Wrap(err, "kafka.NewConsumer")
		}
	}

	h := handler.New(svc, verifier, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server start ON: ",
			zap.String("addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
		return srv.Run()
	})

	if group != nil {
		g.Go(func() error {
			return kafka.Consume(gctx, group, handler.NewConsumer(svc.SaveEvent, log), kafka.EventsTopic)
		})
		g.Go(func() error {
			<-gctx.Done()
			return group.Close()
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")

		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	err = g.Wait()
	log.Info("Graceful shutdown finished")
	return err
}
