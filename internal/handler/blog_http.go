package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
	"github.com/Xalpha19/chaitravm/internal/core/port"
)

const maxPostCount = 10

type BlogHTTPHandler struct {
	blogService port.BlogService
}

func NewBlogHTTPHandler(blogService port.BlogService) *BlogHTTPHandler {
	return &BlogHTTPHandler{
		blogService: blogService,
	}
}

func (h *BlogHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		count := 0
		if raw := c.QueryParam("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > maxPostCount {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "Invalid count parameter",
				})
			}
			count = n
		}

		posts, err := h.blogService.LatestPosts(c.Request().Context(), count)
		if err != nil {
			log.WithError(err).Error("Failed to fetch blog posts")
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error": "Failed to fetch posts",
			})
		}

		// Return [] not null for empty feeds
		if posts == nil {
			posts = []domain.BlogPost{}
		}

		return c.JSON(http.StatusOK, map[string]any{"posts": posts})
	}
}
