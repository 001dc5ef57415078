package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Unit handler functions

// @Summary Get all units
// @Description Retrieve all units of measure
// @Tags units
// @Produce json
// @Success 200 {array} Unit "List of units"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/units [get]
func getUnits(c *gin.Context) {
	units, err := store.Units()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// @Summary Create unit
// @Description Create a new unit of measure
// @Tags units
// @Accept json
// @Produce json
// @Param unit body Unit true "Unit data"
// @Success 201 {object} Unit "Created unit"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/units [post]
func createUnit(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	var unit Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(unit.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if unit.ID == "" {
		unit.ID = uuid.NewString()
	}

	if err := store.AddUnit(&unit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, unit)
}

// @Summary Update unit
// @Description Update an existing unit
// @Tags units
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param unit body Unit true "Updated unit data"
// @Success 200 {object} Unit "Updated unit"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Unit not found"
// @Router /api/units/{id} [put]
func updateUnit(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	var unit Unit
	if err := c.ShouldBindJSON(&unit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(unit.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unit.ID = c.Param("id")

	existing, err := store.Unit(unit.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing == nil {
		respondError(c, notFound("unit not found"))
		return
	}

	if err := store.UpdateUnit(&unit); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, unit)
}

// @Summary Delete unit
// @Description Delete a unit by ID
// @Tags units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} map[string]interface{} "Unit deleted"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Unit not found"
// @Router /api/units/{id} [delete]
func deleteUnit(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	id := c.Param("id")
	existing, err := store.Unit(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing == nil {
		respondError(c, notFound("unit not found"))
		return
	}

	if err := store.DeleteUnit(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unit deleted"})
}
