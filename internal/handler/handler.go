package handler

import (
	"github.com/labstack/echo/v4"

	"policyhub/internal/auth"
	"policyhub/internal/errors"
	"policyhub/internal/model"
)

// UserSummary is the identity shape returned to clients. Password material
// never leaves the service layer.
type UserSummary struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

func summarize(u *model.User) UserSummary {
	return UserSummary{ID: u.ID.String(), Email: u.Email, Role: u.Role}
}

// CurrentClaims extracts the verified token claims the JWT middleware stored
// on the request context.
func CurrentClaims(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get("user").(*auth.Claims)
	return claims, ok
}

// respondError translates a domain error into the failure envelope.
func respondError(c echo.Context, err error) error {
	he := errors.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.Envelope())
}
