package patient

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/patientd/patientd/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the patient CRUD routes. Mutating routes get the
// access-key middleware; reads are open.
func (h *Handler) RegisterRoutes(g *echo.Group, requireKey echo.MiddlewareFunc) {
	g.GET("/patients", h.List)
	g.POST("/patients", h.Create, requireKey)
	g.GET("/patients/:patientId", h.GetByID)
	g.PUT("/patients/:patientId", h.Update, requireKey)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Missing patient ID")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Patient{}
	}
	return respond.Data(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	p, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
	}
	if err != nil {
		return err
	}

	// Any query parameter switches the response to a projection.
	params := c.QueryParams()
	if len(params) == 0 {
		return respond.Data(c, http.StatusOK, p)
	}

	flags := make(map[string]string, len(params))
	for name := range params {
		flags[name] = params.Get(name)
	}
	return respond.Data(c, http.StatusOK, p.Project(flags))
}

func (h *Handler) Create(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing request body")
	}

	if err := ValidatePayload(raw, true); err != nil {
		return validationError(true)
	}
	p, err := DecodePayload(raw)
	if err != nil {
		return validationError(true)
	}

	if err := h.svc.Save(c.Request().Context(), p); err != nil {
		return err
	}
	return respond.Message(c, http.StatusOK, "Patient added successfully")
}

func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing request body")
	}

	if err := ValidatePayload(raw, false); err != nil {
		return validationError(false)
	}
	p, err := DecodePayload(raw)
	if err != nil {
		return validationError(false)
	}
	p.ID = id

	if err := h.svc.Replace(c.Request().Context(), p); err != nil {
		return err
	}
	return respond.Message(c, http.StatusOK, "Patient updated successfully")
}

func validationError(requireID bool) error {
	return echo.NewHTTPError(http.StatusBadRequest, respond.ValidationFailure{
		Message: "Incorrect type. Must match the Patient schema",
		Schema:  Schema(requireID),
	})
}
