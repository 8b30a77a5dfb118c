package service

import (
	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type Services struct {
	AuthService        AuthService
	IdentityService    IdentityService
	TrustCookieService TrustCookieService
	DraftService       DraftService
	RestoreService     RestoreService
	PageService        PageService
	PingService        PingService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	diag := logger.Diagnostic(cfg.Rescue.LogEnabled)

	identity := NewIdentityService(storages.PageRepository, storages.UserRepository, cfg.Rescue, logger)
	cookies := NewTrustCookieService(storages.CookieShadowStorage, cfg.Rescue, logger)
	drafts := NewDraftService(storages.DraftStorage, identity, cookies, cfg.Rescue, diag)
	auth := NewAuthService(storages.UserRepository, cookies, drafts, cfg.App, logger)

	return &Services{
		AuthService:        auth,
		IdentityService:    identity,
		TrustCookieService: cookies,
		DraftService:       drafts,
		RestoreService:     NewRestoreService(drafts, storages.PageRepository, logger),
		PageService:        NewPageService(storages.PageRepository, logger),
		PingService:        NewPingService(auth, logger),
		AppInfoService:     appInfo,
	}, nil
}
