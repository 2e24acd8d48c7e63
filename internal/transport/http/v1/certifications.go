package v1

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListCertifications returns the full catalog.
// GET /api/certifications
func (h *Handler) ListCertifications(c echo.Context) error {
	certs, err := h.service.ListCertifications(c.Request().Context())
	if err != nil {
		log.Printf("ERROR: failed to list certifications: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to get certifications"})
	}
	return c.JSON(http.StatusOK, certs)
}

// SearchCertifications filters the catalog by substring match.
// GET /api/certifications/search?q=
func (h *Handler) SearchCertifications(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Query parameter 'q' is required"})
	}

	certs, err := h.service.SearchCertifications(c.Request().Context(), query)
	if err != nil {
		log.Printf("ERROR: failed to search certifications: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to search certifications"})
	}
	return c.JSON(http.StatusOK, certs)
}

// CertificationsByCategory returns the catalog entries in a category.
// GET /api/certifications/category/:category
func (h *Handler) CertificationsByCategory(c echo.Context) error {
	certs, err := h.service.GetCertificationsByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		log.Printf("ERROR: failed to get certifications by category: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to get certifications"})
	}
	return c.JSON(http.StatusOK, certs)
}
