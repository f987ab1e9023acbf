package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/adilkhan-sa/bluelink-gateway/config"
	"github.com/adilkhan-sa/bluelink-gateway/internal/adapter/http/handler"
	"github.com/adilkhan-sa/bluelink-gateway/internal/adapter/http/middleware"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/types"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
	wrap "github.com/adilkhan-sa/bluelink-gateway/pkg/logger/wrapper"
)

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	session *handler.Session
	vehicle *handler.Vehicle
	health  *handler.Health
}

func New(cfg config.Config, gatewayService handler.GatewayService, log logger.Logger) (*API, error) {
	if gatewayService == nil {
		return nil, errors.New("gateway service is required")
	}

	routes := &handlers{
		session: handler.NewSession(gatewayService, log),
		vehicle: handler.NewVehicle(gatewayService, log),
		health:  handler.NewHealth(types.ServiceName, log),
	}

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      middleware.NewMiddleware(log),
		addr:   cfg.Server.Addr(),
		cfg:    cfg,
		log:    log,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	metrics := a.m.Metrics(types.ServiceName)
	return a.m.Recover(a.m.RequestID(a.m.CORS(a.m.Logging(metrics(a.mux)))))
}
