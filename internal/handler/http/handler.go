package http

import (
	"html/template"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
)

// Options are the transport settings taken from the server and rescue
// configuration groups.
type Options struct {
	SecureCookies           bool
	PingIntervalSeconds     int
	AnonymousPostsPerMinute int
}

// OptionsFromConfig extracts Options from the structured configuration.
func OptionsFromConfig(cfg config.StructuredConfig) Options {
	return Options{
		SecureCookies:           cfg.Server.SecureCookies,
		PingIntervalSeconds:     cfg.Rescue.PingIntervalSeconds,
		AnonymousPostsPerMinute: cfg.Rescue.AnonymousPostsPerMinute,
	}
}

type Handler struct {
	services *service.Services
	options  Options

	templates *template.Template
	limiter   *clientLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, options Options, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		options:   options,
		templates: templates,
		limiter:   newClientLimiter(options.AnonymousPostsPerMinute),
		logger:    logger,
	}
}
