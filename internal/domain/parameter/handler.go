package parameter

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalsync/vitalsync/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/parameters", h.ListRecords)
	api.GET("/parameters/:sessionId", h.GetRecord)
}

func (h *Handler) GetRecord(c echo.Context) error {
	rec, err := h.svc.GetBySession(c.Request().Context(), c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "parameter record not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rec.ToView())
}

func (h *Handler) ListRecords(c echo.Context) error {
	pg := pagination.FromContext(c)
	recs, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	views := make([]View, len(recs))
	for i, rec := range recs {
		views[i] = rec.ToView()
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(views, total, pg.Limit, pg.Offset))
}
