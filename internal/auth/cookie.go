package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"acquisitions/internal/config"
)

// TokenCookieName is the cookie the signed session token travels in.
const TokenCookieName = "token"

// SetTokenCookie attaches the session token to the response. Attributes
// are fixed by configuration: http-only always, Secure in production,
// SameSite=Strict, MaxAge matching the token's validity window.
func SetTokenCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, token, int(cfg.TokenTTL.Seconds()), "/", "", cfg.IsProduction(), true)
}

// ClearTokenCookie expires the session cookie immediately. There is no
// server-side state to revoke; logout is cookie removal only.
func ClearTokenCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, "", -1, "/", "", cfg.IsProduction(), true)
}
