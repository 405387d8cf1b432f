package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/orderdesk/internal/authz"
	"github.com/orderdesk/orderdesk/internal/server/http/middleware"
)

// CurrentCaller returns the caller stored by the auth middleware. The
// zero caller is returned on unauthenticated routes.
func CurrentCaller(c *gin.Context) authz.Caller {
	value, ok := c.Get(middleware.CallerKey)
	if !ok {
		return authz.Caller{}
	}
	caller, ok := value.(authz.Caller)
	if !ok {
		return authz.Caller{}
	}
	return caller
}

// pathID parses the numeric id path parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
