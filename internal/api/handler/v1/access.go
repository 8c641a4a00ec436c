package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/econopapi/terraza-zocalo-hosts/internal/api/handler/v1/request"
	"github.com/econopapi/terraza-zocalo-hosts/internal/api/handler/v1/response"
	"github.com/econopapi/terraza-zocalo-hosts/internal/config"
	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/jwthelper"
	"github.com/econopapi/terraza-zocalo-hosts/internal/service"
)

type AccessService interface {
	Resolve(ctx context.Context, role domain.Role, key string) (domain.Identity, error)
}

type AccessHandler struct {
	conf *config.APIConfig
	svc  AccessService
}

func NewAccessHandler(conf *config.APIConfig, svc AccessService) *AccessHandler {
	return &AccessHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleAccess godoc
// @Summary      Resolve a secret key to a staff identity
// @Tags         access
// @Produce      json
// @Param        request  body      request.AccessRequest true "request body"
// @Success      200      {object}  response.AccessResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /access [post]
func (h *AccessHandler) HandleAccess(ctx *gin.Context) {
	req := request.AccessRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	identity, err := h.svc.Resolve(ctx.Request.Context(), domain.Role(req.Role), req.Key)
	if err != nil {
		if errors.Is(err, service.ErrKeyNotFound) || errors.Is(err, service.ErrUnknownRole) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrKeyNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleAccess -> h.svc.Resolve -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), string(identity.Role), identity.ID, identity.TeamID)
	if err != nil {
		err = fmt.Errorf("v1.HandleAccess -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.AccessResponse{
		Identity: identity,
		Token:    token,
	})
}
