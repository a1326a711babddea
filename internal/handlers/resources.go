package handlers

import (
	"net/http"
	"strings"

	"healthscope/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ResourcesHandler struct {
	log     *zap.Logger
	catalog *models.Catalog
}

func NewResourcesHandler(log *zap.Logger, catalog *models.Catalog) *ResourcesHandler {
	return &ResourcesHandler{log: log, catalog: catalog}
}

// List returns the educational library, optionally filtered by a
// case-insensitive search over title and category.
func (h *ResourcesHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	articles := h.catalog.Articles
	videos := h.catalog.Videos
	tools := h.catalog.Tools

	if query != "" {
		articles = filterArticles(articles, query)
		videos = filterVideos(videos, query)
		tools = filterTools(tools, query)
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"videos":   videos,
		"tools":    tools,
	})
}

func matches(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func filterArticles(in []models.Article, query string) []models.Article {
	out := []models.Article{}
	for _, a := range in {
		if matches(query, a.Title, a.Category) {
			out = append(out, a)
		}
	}
	return out
}

func filterVideos(in []models.Video, query string) []models.Video {
	out := []models.Video{}
	for _, v := range in {
		if matches(query, v.Title, v.Category) {
			out = append(out, v)
		}
	}
	return out
}

func filterTools(in []models.Tool, query string) []models.Tool {
	out := []models.Tool{}
	for _, t := range in {
		if matches(query, t.Title, t.Category) {
			out = append(out, t)
		}
	}
	return out
}
