package translation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/patientd/patientd/internal/domain/patient"
	"github.com/patientd/patientd/internal/platform/translate"
	"github.com/patientd/patientd/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/patients/:patientId/translate", h.Translate)
}

func (h *Handler) Translate(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing patient ID")
	}

	lang := c.QueryParam("language")
	if lang == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing target language code")
	}

	result, err := h.svc.Resolve(c.Request().Context(), id, lang)
	switch {
	case err == nil:
		return respond.Data(c, http.StatusOK, result)
	case errors.Is(err, patient.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Patient not found")
	case errors.Is(err, ErrNoDiagnosis):
		return echo.NewHTTPError(http.StatusNotFound, "No diagnosis information found for this patient")
	case errors.Is(err, translate.ErrUnsupportedLanguagePair):
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported language pair for translation")
	case errors.Is(err, translate.ErrInvalidLanguageCode):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid language code")
	default:
		// store/provider failure; surfaces as 500 and is logged upstream
		return err
	}
}
