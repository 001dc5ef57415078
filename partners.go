package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Partner handler functions

func validPartnerType(t string) bool {
	switch t {
	case "", PartnerCustomer, PartnerSupplier, PartnerBoth:
		return true
	}
	return false
}

// @Summary Get all partners
// @Description Retrieve all partners (customers and suppliers)
// @Tags partners
// @Produce json
// @Success 200 {array} Partner "List of partners"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/partners [get]
func getPartners(c *gin.Context) {
	partners, err := store.Partners()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

// @Summary Create partner
// @Description Create a new partner. Customers go with income, suppliers with expense; "both" or no type allows either.
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body Partner true "Partner data"
// @Success 201 {object} Partner "Created partner"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/partners [post]
func createPartner(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	var partner Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(partner.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validPartnerType(partner.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be customer, supplier, both or empty"})
		return
	}
	if partner.ID == "" {
		partner.ID = uuid.NewString()
	}

	if err := store.AddPartner(&partner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// @Summary Update partner
// @Description Update an existing partner
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "Partner ID"
// @Param partner body Partner true "Updated partner data"
// @Success 200 {object} Partner "Updated partner"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Partner not found"
// @Router /api/partners/{id} [put]
func updatePartner(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	var partner Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(partner.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validPartnerType(partner.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be customer, supplier, both or empty"})
		return
	}
	partner.ID = c.Param("id")

	existing, err := store.Partner(partner.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing == nil {
		respondError(c, notFound("partner not found"))
		return
	}

	if err := store.UpdatePartner(&partner); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, partner)
}

// @Summary Delete partner
// @Description Delete a partner by ID
// @Tags partners
// @Produce json
// @Param id path string true "Partner ID"
// @Success 200 {object} map[string]interface{} "Partner deleted"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Partner not found"
// @Router /api/partners/{id} [delete]
func deletePartner(c *gin.Context) {
	if !currentIdentity(c).Can(PermMasterDataManage) {
		respondError(c, permissionDenied("you are not allowed to manage master data"))
		return
	}

	id := c.Param("id")
	existing, err := store.Partner(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing == nil {
		respondError(c, notFound("partner not found"))
		return
	}

	if err := store.DeletePartner(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted"})
}
