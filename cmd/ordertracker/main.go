package main

import (
	"context"

	"github.com/avGenie/go-order-tracker/internal/app/config"
	server "github.com/avGenie/go-order-tracker/internal/app/controller/http/server"
	"github.com/avGenie/go-order-tracker/internal/app/events"
	"github.com/avGenie/go-order-tracker/internal/app/logger"
	storage "github.com/avGenie/go-order-tracker/internal/app/storage/api"
	"github.com/avGenie/go-order-tracker/internal/app/tracing"
	"github.com/avGenie/go-order-tracker/internal/app/usecase/order"
	"go.uber.org/zap"
)

const serviceName = "order-tracker"

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}
	defer zap.L().Sync()

	tracerProvider, err := tracing.InitTracerProvider(serviceName, config.JaegerEndpoint)
	if err != nil {
		zap.L().Fatal("error while initializing tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			zap.L().Error("error while shutting down tracer provider", zap.Error(err))
		}
	}()

	orderStorage, err := storage.InitStorage(config)
	if err != nil {
		zap.L().Fatal("error while initializing storage", zap.Error(err))
	}
	defer orderStorage.Close()

	publisher := initPublisher(config)
	defer func() {
		if err := publisher.Close(); err != nil {
			zap.L().Error("error while closing order events publisher", zap.Error(err))
		}
	}()

	service := order.New(orderStorage, publisher)

	err = server.New(config, service).StartHTTPServer()
	if err != nil {
		zap.L().Error("HTTP server stopped with error", zap.Error(err))
	}
}

func initPublisher(config config.Config) events.Publisher {
	brokers := config.Brokers()
	if len(brokers) == 0 {
		zap.L().Info("kafka brokers are not configured, order events are not published")
		return events.NopPublisher{}
	}

	return events.NewKafkaPublisher(brokers, config.KafkaTopic)
}
