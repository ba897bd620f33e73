package handlers

import (
	"net/http"

	categoryRepo "taskhive/database/repository/category"

	"github.com/gin-gonic/gin"
)

// CategoryHandler exposes the category reference data.
type CategoryHandler struct {
	Repo categoryRepo.CategoryRepository
}

// ListCategoriesHandler handles GET /api/categories.
func (h *CategoryHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
