package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing user id
// means the middleware did not run or the token carried no subject.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	return userID, role, nil
}

// ctxToken extracts the token id and expiry injected by the Auth middleware,
// used when revoking the presented token.
func ctxToken(c echo.Context) (jti string, expiresAt time.Time, err error) {
	jti, _ = c.Get("jti").(string)
	if jti == "" {
		return "", time.Time{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing id")
	}

	expiresAt, _ = c.Get("token_exp").(time.Time)
	return jti, expiresAt, nil
}
