package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
)

// appInfoService reports the release the binary was configured with.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		logger.Error().Str("func", "NewAppInfoService").Err(ErrVersionIsNotSpecified).Msg("app version is empty")
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
