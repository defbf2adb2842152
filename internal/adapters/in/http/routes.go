package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver records served requests. prommetrics.Metrics satisfies it.
type RequestObserver interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
	Handler() http.Handler
}

// RegisterHandlers mounts the API, /health and, when observer is set, /metrics.
func RegisterHandlers(e *echo.Echo, s *Server, observer RequestObserver) {
	if observer != nil {
		e.Use(ObserveRequests(observer))
		e.GET("/metrics", echo.WrapHandler(observer.Handler()))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.GET("/vehicles", s.GetVehicles)
	api.POST("/vehicles", s.RegisterVehicle)
	api.GET("/tasks", s.GetTasks)
	api.POST("/tasks", s.CreateTask)
	api.POST("/plans", s.PlanRoutes)
	api.GET("/plans/latest", s.GetLatestPlan)
	api.POST("/plans/tasks/:taskId", s.AssignTask)
}

// ObserveRequests reports every request under its route pattern rather than the raw URL.
func ObserveRequests(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			started := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			observer.ObserveHTTP(c.Request().Method, path, c.Response().Status, time.Since(started))
			return nil
		}
	}
}
