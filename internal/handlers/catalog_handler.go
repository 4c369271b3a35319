package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadquiz-service/internal/catalog"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

func (h *CatalogHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Questions())
}

func (h *CatalogHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question id must be numeric"})
		return
	}
	question, ok := h.Catalog.Question(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, question)
}
