package app

import (
	"log"
	"os"

	"ai-jobmatch/internal/client"
	"ai-jobmatch/internal/config"
	"ai-jobmatch/internal/infrastructure/sessioncache"
	"ai-jobmatch/internal/pkg/jwt"
	"ai-jobmatch/internal/upstream"
)

// Container wires the long-lived pieces once: the upstream API client,
// the session cache, token validation, and the session registry built on
// top of them.
type Container struct {
	Config   config.Config
	Logger   *log.Logger
	Upstream *upstream.Client
	Cache    *sessioncache.Redis
	JWT      jwt.Service
	Sessions *client.Registry
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	up := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)
	cache := sessioncache.NewRedis(logger)
	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTSecret)
	sessions := client.NewRegistry(up, cache, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Upstream: up,
		Cache:    cache,
		JWT:      jwtSvc,
		Sessions: sessions,
	}, nil
}

func (c *Container) Close() error {
	return nil
}
