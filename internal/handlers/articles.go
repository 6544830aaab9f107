package handlers

import (
	"errors"
	"net/http"

	"article_board/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for creating an article.
type articleRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// @Summary      List articles
// @Description  All articles joined with the submitter's email, newest first.
// @Tags         articles
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /articles [get]
func (h *Handler) listArticles(c *gin.Context) {
	ctx := c.Request.Context()
	articles, err := h.services.Articles.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListArtsFailed, "articles_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// @Summary      Create article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body  articleRequest  true  "Article payload"
// @Success      201  {object}  map[string]interface{}  "message, id"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /articles [post]
// @Security     BearerAuth
func (h *Handler) createArticle(c *gin.Context) {
	var req articleRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	userID := c.GetInt(ctxUserIDKey)
	ctx := c.Request.Context()
	id, err := h.services.Articles.Create(ctx, service.NewArticle{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	}, userID)
	if err != nil {
		if errors.Is(err, service.ErrMissingArticleFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateArtFailed, "article_create_failed", err, "user_id", userID)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": msgArticleCreated,
		"id":      id,
	})
}
