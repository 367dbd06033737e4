package cookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const AuthCookieName = "authorization"

func SetAuthCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		AuthCookieName,
		token,
		int(ttl.Seconds()),
		"/",
		"",
		false,
		true, // HttpOnly
	)
}

func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		AuthCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)
}

func GetAuthToken(c *gin.Context) string {
	token, _ := c.Cookie(AuthCookieName)
	return token
}
