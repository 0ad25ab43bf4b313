package utils

import "github.com/gin-gonic/gin"

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// GetTokenFromCookie reads a token cookie, returning "" when absent.
func GetTokenFromCookie(c *gin.Context, name string) string {
	token, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return token
}
