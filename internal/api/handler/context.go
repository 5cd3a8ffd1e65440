package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - role must be non-empty (presence proves the middleware ran).
//   - driver role requires a non-empty driver_id; without it the JWT is
//     structurally valid but operationally unusable: reject with 401.
func ctxClaims(c echo.Context) (role, companyID, driverID string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	companyID, _ = c.Get("company_id").(string)
	driverID, _ = c.Get("driver_id").(string)
	if role == domain.RoleDriver && driverID == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing driver identity")
	}

	return role, companyID, driverID, nil
}
