package vitals

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/data", h.SubmitBloodPressure)
	api.POST("/spo2", h.SubmitSpO2)
	api.POST("/temp", h.SubmitTemperature)
	api.GET("/latest", h.GetLatest)
	api.POST("/reset", h.Reset)
}

type submitRequest struct {
	Value string `json:"value"`
}

type ackResponse struct {
	Success bool `json:"success"`
}

// The sender is device firmware: it must never see an error, or the
// measurement UI locks up and retries aggressively. Parse misses, missing
// sessions, and store failures all surface in logs only.

func (h *Handler) SubmitBloodPressure(c echo.Context) error {
	var req submitRequest
	_ = c.Bind(&req) // malformed body degrades to an empty payload
	h.svc.RecordBloodPressure(c.Request().Context(), req.Value)
	return c.JSON(http.StatusOK, ackResponse{Success: true})
}

func (h *Handler) SubmitSpO2(c echo.Context) error {
	var req submitRequest
	_ = c.Bind(&req)
	h.svc.RecordSpO2(c.Request().Context(), req.Value)
	return c.JSON(http.StatusOK, ackResponse{Success: true})
}

func (h *Handler) SubmitTemperature(c echo.Context) error {
	var req submitRequest
	_ = c.Bind(&req)
	h.svc.RecordTemperature(c.Request().Context(), req.Value)
	return c.JSON(http.StatusOK, ackResponse{Success: true})
}

func (h *Handler) GetLatest(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Latest())
}

func (h *Handler) Reset(c echo.Context) error {
	h.svc.Reset()
	return c.JSON(http.StatusOK, ackResponse{Success: true})
}
