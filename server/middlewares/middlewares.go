package middlewares

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/circlehub/circlehub/utils"
	Logger "github.com/circlehub/circlehub/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// jwtSecret is the HMAC key used to validate bearer tokens. Before any
	// middleware is used, make sure Setup has initialized it.
	jwtSecret []byte
)

// Setup initializes all package scoped variables that are needed to perform
// middleware functionalities. This function must be called before any
// middleware is used.
func Setup() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Abort directly if the secret isn't configured, which is crucial for
		// server side authorization.
		Logger.Log.Fatal("JWT_SECRET is not set")
	}
	jwtSecret = []byte(secret)
}

// extractToken looks for the credential in the Authorization header first
// ("Bearer <token>"), then falls back to the "token" query parameter.
func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.Query("token")
}

// JWT middleware fetches the caller's jwt, validates it against the shared
// HMAC secret and adds a new header field "sub" storing the acting user's id.
// It returns error on token not provided or token is invalid (wrong token or
// expired).
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "empty jwt token",
			})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "invalid jwt token",
			})
			c.Abort()
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code": utils.ErrorTokenAuthFail,
				"msg":  "jwt token has no subject",
			})
			c.Abort()
			return
		}

		// Successfully validated the jwt token, replace any client supplied
		// "sub" header with the token's subject (the acting user's id).
		c.Request.Header.Del("sub")
		c.Request.Header.Add("sub", sub)

		c.Next()
	}
}

// RequestId tags each request with a generated id so log lines from one
// request can be correlated.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Writer.Header().Set("X-Request-Id", id)
		c.Set("request_id", id)
		c.Next()
	}
}

// CurrentUserId resolves the acting user id injected by the JWT middleware.
// Returns false when the request carries no usable identity.
func CurrentUserId(c *gin.Context) (uint, bool) {
	sub := c.Request.Header.Get("sub")
	if sub == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
