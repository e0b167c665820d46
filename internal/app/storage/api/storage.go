package storage

import (
	"github.com/avGenie/go-order-tracker/internal/app/config"
	"github.com/avGenie/go-order-tracker/internal/app/storage/api/model"
	storage "github.com/avGenie/go-order-tracker/internal/app/storage/memory"
	"go.uber.org/zap"
)

func InitStorage(config config.Config) (model.Storage, error) {
	zap.L().Info("orders are kept in memory and dropped on shutdown", zap.String("address", config.NetAddr))

	return storage.NewMemoryStorage(), nil
}
