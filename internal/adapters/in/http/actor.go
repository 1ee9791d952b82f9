package http

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of this service.
// Authentication itself happens upstream; these headers are trusted input.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// actorFromRequest builds the acting identity from the request headers.
// Missing or malformed headers mean the gateway did not authenticate the
// caller, which surfaces as 401 through the error mapping.
func actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderActorID)
	rawRole := ctx.Request().Header.Get(HeaderActorRole)
	if rawID == "" || rawRole == "" {
		return kernel.Actor{}, errs.NewUnauthorizedError("identity headers are missing")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.Actor{}, errs.NewUnauthorizedError("actor id is malformed")
	}

	role, err := kernel.RoleFromString(rawRole)
	if err != nil {
		return kernel.Actor{}, errs.NewUnauthorizedError("actor role is unknown")
	}

	return kernel.NewActor(id, role)
}
