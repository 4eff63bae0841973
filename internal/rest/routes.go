package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"NewsPulse/internal/source"
	"NewsPulse/internal/usecase"
)

// RegisterRoutes mounts the public API onto the echo instance.
func RegisterRoutes(e *echo.Echo, aggregator *usecase.Aggregator) {
	v1 := e.Group("/v1")

	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	v1.GET("/news", handleGetNews(aggregator))
}

func handleGetNews(aggregator *usecase.Aggregator) echo.HandlerFunc {
	return func(c echo.Context) error {
		q := source.Query{
			Category: c.QueryParam("category"),
			Text:     c.QueryParam("q"),
		}

		feed, err := aggregator.Feed(c.Request().Context(), q)
		if err != nil {
			if errors.Is(err, usecase.ErrNoProviders) {
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "failed to fetch news: no provider available",
				})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to fetch news",
			})
		}

		return c.JSON(http.StatusOK, feed)
	}
}
