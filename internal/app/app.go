package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adilkhan-sa/bluelink-gateway/config"
	"github.com/adilkhan-sa/bluelink-gateway/internal/adapter/bluelink"
	httpserver "github.com/adilkhan-sa/bluelink-gateway/internal/adapter/http/server"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
	"github.com/adilkhan-sa/bluelink-gateway/internal/service/gateway"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
)

type App struct {
	httpServer *httpserver.API

	cfg config.Config
	log logger.Logger
}

func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	client := bluelink.New(cfg.Bluelink, log)
	gatewayService := gateway.New(vendorClient{client}, log)

	server, err := httpserver.New(cfg, gatewayService, log)
	if err != nil {
		return nil, err
	}

	return &App{
		httpServer: server,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "gateway closed")
	}()

	errCh := make(chan error, 1)
	a.httpServer.Run(ctx, errCh)

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "gateway started")
	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error(ctx, "failed to shutdown HTTP server", err)
	}
}

// vendorClient adapts the concrete bluelink types to the gateway's vendor
// interfaces.
type vendorClient struct {
	client *bluelink.Client
}

func (c vendorClient) Login(ctx context.Context, creds models.Credentials) (gateway.VendorSession, error) {
	session, err := c.client.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return vendorSession{session}, nil
}

type vendorSession struct {
	session *bluelink.Session
}

func (s vendorSession) Vehicles(ctx context.Context) ([]gateway.VendorVehicle, error) {
	vehicles, err := s.session.Vehicles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]gateway.VendorVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, v)
	}
	return out, nil
}
