package handler

import (
	"net/http"

	"github.com/adilkhan-sa/bluelink-gateway/internal/adapter/http/handler/dto"
	"github.com/adilkhan-sa/bluelink-gateway/internal/domain/types"
	"github.com/adilkhan-sa/bluelink-gateway/pkg/logger"
	wrap "github.com/adilkhan-sa/bluelink-gateway/pkg/logger/wrapper"
)

type Session struct {
	gateway GatewayService
	l       logger.Logger
}

func NewSession(gateway GatewayService, l logger.Logger) *Session {
	return &Session{
		gateway: gateway,
		l:       l,
	}
}

// Login godoc
// @Summary      Login
// @Description  Authenticates against the telematics vendor and stores the session for the process lifetime
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Vendor credentials"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Router       /api/login [post]
func (h *Session) Login(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionLogin)

	req := &dto.LoginRequest{}
	if err := readJSON(w, r, req); err != nil {
		h.l.Error(ctx, "failed to read request JSON data", err)
		badRequestResponse(w, err.Error())
		return
	}

	if errs := req.Validate(); errs != nil {
		failedValidationResponse(w, errs)
		return
	}

	if err := h.gateway.Login(ctx, req.ToModel()); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "vendor login failed", err)
		response := envelope{
			"error":   "authentication failed",
			"details": err.Error(),
		}
		if err := writeJSON(w, http.StatusUnauthorized, response, nil); err != nil {
			internalErrorResponse(w, "failed to write JSON response")
		}
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"success": true}, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
