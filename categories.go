package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Category handler functions

// @Summary Get all categories
// @Description Retrieve all categories
// @Tags categories
// @Produce json
// @Success 200 {array} Category "List of categories"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/categories [get]
func getCategories(c *gin.Context) {
	categories, err := store.Categories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary Create category
// @Description Create a new category. Its type fixes which transactions may reference it.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body Category true "Category data"
// @Success 201 {object} Category "Created category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/categories [post]
func createCategory(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	var category Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(category.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if category.Type != TypeIncome && category.Type != TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
		return
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}

	if err := store.AddCategory(&category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// @Summary Update category
// @Description Update an existing category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body Category true "Updated category data"
// @Success 200 {object} Category "Updated category"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /api/categories/{id} [put]
func updateCategory(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	var category Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(category.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if category.Type != TypeIncome && category.Type != TypeExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be income or expense"})
		return
	}
	category.ID = c.Param("id")

	existing, err := store.Category(category.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing == nil {
		respondError(c, notFound("category not found"))
		return
	}

	if err := store.UpdateCategory(&category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// @Summary Delete category
// @Description Delete a category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{} "Category deleted"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /api/categories/{id} [delete]
func deleteCategory(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	id := c.Param("id")
	existing, err := store.Category(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing == nil {
		respondError(c, notFound("category not found"))
		return
	}

	if err := store.DeleteCategory(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
