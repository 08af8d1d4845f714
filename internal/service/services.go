package service

import (
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/internal/validators"
)

type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	SeedService    SeedService
	WisdomService  WisdomService
	MessageService MessageService
	CheckinService CheckinService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	v := validators.NewDocumentValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, v, cfg.App, logger),
		ProfileService: NewProfileService(storages.ProfileRepository, v, logger),
		SeedService:    NewSeedService(storages.SeedRepository, v, logger),
		WisdomService:  NewWisdomService(storages.WisdomRepository, v, logger),
		MessageService: NewMessageService(storages.MessageRepository, v, logger),
		CheckinService: NewCheckinService(storages.CheckinRepository, v, logger),
		AppInfoService: appInfo,
	}, nil
}
