package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct {
	service *usecase.CategoriesService
}

func NewCategoriesHandler(service *usecase.CategoriesService) *CategoriesHandler {
	return &CategoriesHandler{service: service}
}

func (h *CategoriesHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to fetch categories")
		return
	}

	utils.Success(c, gin.H{
		"categories": categories,
	})
}

func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Icon        string `json:"icon"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	}

	if err := h.service.CreateCategory(c.Request.Context(), category); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, category)
}

func (h *CategoriesHandler) UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Icon        string `json:"icon"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
	}

	if err := h.service.UpdateCategory(c.Request.Context(), categoryID, updates); err != nil {
		if err.Error() == "category not found" {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory removes the category; habits that referenced it become
// uncategorized rather than being deleted.
func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	categoryID := c.Param("id")

	if err := h.service.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		if err.Error() == "category not found" {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Category deleted successfully"})
}
