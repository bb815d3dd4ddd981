package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthPatientMiddleware authenticates a patient from a Bearer token and
// sets "patientID" on the request context. Revoked tokens are tracked in the
// auth cache by hash; if the cache is unreachable the signature check alone
// decides.
func JWTAuthPatientMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		// Retrieve token from header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		// Extract the patient ID from the token.
		patientID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || patientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		// Check the revocation list keyed by token hash.
		computedHash := utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()
		if authCache == nil {
			log.Printf("WARNING: Auth cache client not available. Skipping revocation check.")
		} else {
			revokedKey := utils.AuthCachePrefix + "revoked:" + computedHash
			if _, err := authCache.Get(ctx, revokedKey).Result(); err == nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token revoked",
					"code":  0,
				})
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error checking token revocation: %v. Proceeding without it.", err)
			}
		}

		c.Set("patientID", patientID)
		c.Next()
	}
}
