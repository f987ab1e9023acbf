package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/adilkhan-sa/bluelink-gateway/internal/adapter/http/handler/dto"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/models"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/types"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
	wrap "github.com/adilkhan-sa/bluelink-gateway/pkg/logger/wrapper"
)

// statusHint explains an empty vendor status payload to the caller; it is
// deliberately more helpful than a bare 500.
const statusHint = "the vehicle reported no status data; it may be asleep or out of coverage, try again shortly"

type GatewayService interface {
	Login(ctx context.Context, creds models.Credentials) error
	ListVehicles(ctx context.Context) ([]models.VehicleSummary, error)
	Status(ctx context.Context, vin string) (*models.VehicleStatus, error)
	Location(ctx context.Context, vin string) (*models.Location, error)
	Lock(ctx context.Context, vin string) (map[string]any, error)
	Unlock(ctx context.Context, vin string) (map[string]any, error)
	Start(ctx context.Context, vin string, cfg models.StartConfig) (map[string]any, error)
	Stop(ctx context.Context, vin string) (map[string]any, error)
}

type Vehicle struct {
	gateway GatewayService
	l       logger.Logger
}

func NewVehicle(gateway GatewayService, l logger.Logger) *Vehicle {
	return &Vehicle{
		gateway: gateway,
		l:       l,
	}
}

// List godoc
// @Summary      List vehicles
// @Description  Enumerates the account's vehicles and registers their handles
// @Tags         Vehicles
// @Produce      json
// @Success      200  {array}   models.VehicleSummary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/vehicles [get]
func (h *Vehicle) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionListVehicles)

	summaries, err := h.gateway.ListVehicles(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to list vehicles", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, summaries, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Status godoc
// @Summary      Vehicle status
// @Description  Fetches and translates the vehicle's current status. The refresh flag is accepted but a vendor refresh is always forced.
// @Tags         Vehicles
// @Accept       json
// @Produce      json
// @Param        vin     path  string            true   "Vehicle identification number"
// @Param        request body  dto.StatusRequest false  "Options"
// @Success      200  {object}  models.VehicleStatus
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/vehicles/{vin}/status [post]
func (h *Vehicle) Status(w http.ResponseWriter, r *http.Request) {
	vin := r.PathValue("vin")
	ctx := wrap.WithAction(wrap.WithVIN(r.Context(), vin), types.ActionVehicleStatus)

	req := &dto.StatusRequest{}
	if err := readOptionalJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	status, err := h.gateway.Status(ctx, vin)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get vehicle status", err)
		switch {
		case errors.Is(err, types.ErrNoStatusData):
			response := envelope{
				"error": err.Error(),
				"hint":  statusHint,
			}
			if err := writeJSON(w, http.StatusInternalServerError, response, nil); err != nil {
				internalErrorResponse(w, "failed to write JSON response")
			}
		case errors.Is(err, types.ErrNotAuthenticated), errors.Is(err, types.ErrVehicleNotFound):
			errorResponse(w, GetCode(err), err.Error())
		default:
			response := envelope{
				"error":   "failed to get vehicle status",
				"details": err.Error(),
			}
			if err := writeJSON(w, http.StatusInternalServerError, response, nil); err != nil {
				internalErrorResponse(w, "failed to write JSON response")
			}
		}
		return
	}

	if err := writeJSON(w, http.StatusOK, status, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Location godoc
// @Summary      Vehicle location
// @Tags         Vehicles
// @Produce      json
// @Param        vin path string true "Vehicle identification number"
// @Success      200  {object}  models.Location
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/vehicles/{vin}/location [get]
func (h *Vehicle) Location(w http.ResponseWriter, r *http.Request) {
	vin := r.PathValue("vin")
	ctx := wrap.WithAction(wrap.WithVIN(r.Context(), vin), types.ActionVehicleLocation)

	location, err := h.gateway.Location(ctx, vin)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get vehicle location", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, location, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Lock godoc
// @Summary      Lock doors
// @Tags         Commands
// @Produce      json
// @Param        vin path string true "Vehicle identification number"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/vehicles/{vin}/lock [post]
func (h *Vehicle) Lock(w http.ResponseWriter, r *http.Request) {
	h.runCommand(w, r, "lock", h.gateway.Lock)
}

// Unlock godoc
// @Summary      Unlock doors
// @Tags         Commands
// @Produce      json
// @Param        vin path string true "Vehicle identification number"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/vehicles/{vin}/unlock [post]
func (h *Vehicle) Unlock(w http.ResponseWriter, r *http.Request) {
	h.runCommand(w, r, "unlock", h.gateway.Unlock)
}

// Start godoc
// @Summary      Remote start
// @Description  Starts the vehicle remotely; without a body the default configuration is used (climate on, 10 minutes)
// @Tags         Commands
// @Accept       json
// @Produce      json
// @Param        vin     path  string           true   "Vehicle identification number"
// @Param        request body  dto.StartRequest false  "Start options"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/vehicles/{vin}/start [post]
func (h *Vehicle) Start(w http.ResponseWriter, r *http.Request) {
	vin := r.PathValue("vin")
	ctx := wrap.WithAction(wrap.WithVIN(r.Context(), vin), types.ActionRemoteCommand)

	req := &dto.StartRequest{}
	if err := readOptionalJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	result, err := h.gateway.Start(ctx, vin, req.ToModel())
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "remote start failed", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	h.writeCommandResult(ctx, w, result)
}

// Stop godoc
// @Summary      Remote stop
// @Tags         Commands
// @Produce      json
// @Param        vin path string true "Vehicle identification number"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/vehicles/{vin}/stop [post]
func (h *Vehicle) Stop(w http.ResponseWriter, r *http.Request) {
	h.runCommand(w, r, "stop", h.gateway.Stop)
}

func (h *Vehicle) runCommand(w http.ResponseWriter, r *http.Request, name string, op func(context.Context, string) (map[string]any, error)) {
	vin := r.PathValue("vin")
	ctx := wrap.WithAction(wrap.WithVIN(r.Context(), vin), types.ActionRemoteCommand)

	result, err := op(ctx, vin)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "remote command failed", err, "command", name)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	h.writeCommandResult(ctx, w, result)
}

func (h *Vehicle) writeCommandResult(ctx context.Context, w http.ResponseWriter, result map[string]any) {
	response := envelope{
		"success": true,
		"result":  result,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
