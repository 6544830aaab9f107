package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common response/error constants to avoid magic strings and typos.
const (
	errRegisterFailed  = "failed to create user"
	errLoginFailed     = "failed to login"
	errListUsersFailed = "failed to fetch users"
	errListArtsFailed  = "failed to fetch articles"
	errCreateArtFailed = "failed to create article"
	msgArticleCreated  = "article created"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := h.services.Users.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListUsersFailed, "users_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, users)
}
