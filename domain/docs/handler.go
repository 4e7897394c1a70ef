package docs

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aks-labs/website/pkg/apperror"
)

// Handler serves the JSON documentation API.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListDocuments handles GET /api/docs. Bodies are omitted; fetch a single
// document for the rendered content.
func (h *Handler) ListDocuments(c echo.Context) error {
	docs := h.svc.List()
	return c.JSON(http.StatusOK, DocumentList{
		Documents: docs,
		Total:     len(docs),
	})
}

// GetDocument handles GET /api/docs/:slug.
func (h *Handler) GetDocument(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return apperror.ErrBadRequest.WithMessage("slug is required")
	}

	doc, err := h.svc.Get(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperror.NewNotFound("document", slug)
		}
		return apperror.ErrInternal.WithMessage("failed to get document").WithInternal(err)
	}

	return c.JSON(http.StatusOK, doc)
}

// GetCategories handles GET /api/docs/categories.
func (h *Handler) GetCategories(c echo.Context) error {
	categories := h.svc.Categories()
	return c.JSON(http.StatusOK, CategoriesResponse{
		Categories: categories,
		Total:      len(categories),
	})
}
