package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bureau/internal/shared/constants"
	"bureau/internal/shared/logger"
	"bureau/internal/shared/utils"
)

// PrincipalMiddleware extracts the acting user from the X-Principal-ID
// header. The header is stamped by the gateway in front of this service,
// which has already authenticated the request; no credential is validated
// here.
type PrincipalMiddleware struct {
	logger logger.Interface
}

func NewPrincipalMiddleware(logger logger.Interface) *PrincipalMiddleware {
	return &PrincipalMiddleware{logger: logger}
}

// RequirePrincipal rejects requests without a parseable principal header.
func (m *PrincipalMiddleware) RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(constants.HeaderXPrincipalID)
		if raw == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing principal header")
			c.Abort()
			return
		}

		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			m.logger.Warnw("unparseable principal header", "value", raw)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid principal header")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActorID, uint(id))

		c.Next()
	}
}

// ActorID returns the principal stored by RequirePrincipal.
func ActorID(c *gin.Context) uint {
	value, ok := c.Get(constants.ContextKeyActorID)
	if !ok {
		return 0
	}
	id, _ := value.(uint)
	return id
}
