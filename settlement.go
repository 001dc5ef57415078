package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Settlement handler functions

// @Summary List settlement candidates
// @Description List visible transactions for the settlement screen. Rejected transactions are excluded; filter by settlement status and type.
// @Tags settlement
// @Produce json
// @Param status query string false "settled | unsettled (default unsettled)"
// @Param type query string false "income | expense | all (default all)"
// @Success 200 {array} Transaction "Filtered transactions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/settlements [get]
func getSettlements(c *gin.Context) {
	transactions, err := wf.Visible(currentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}

	status := c.DefaultQuery("status", "unsettled")
	txType := c.DefaultQuery("type", "all")

	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Status == StatusRejected {
			continue
		}
		if status == "settled" && !t.IsSettled {
			continue
		}
		if status == "unsettled" && t.IsSettled {
			continue
		}
		if txType != "all" && t.Type != txType {
			continue
		}
		filtered = append(filtered, t)
	}

	c.JSON(http.StatusOK, filtered)
}

// @Summary Settle transaction
// @Description Mark an approved transaction as settled
// @Tags settlement
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} Transaction "Settled transaction"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 409 {object} map[string]interface{} "Transaction is not approved"
// @Router /api/settlements/{id}/settle [post]
func settleTransaction(c *gin.Context) {
	t, err := wf.Settle(currentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Unsettle transaction
// @Description Reopen a settled transaction
// @Tags settlement
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} Transaction "Reopened transaction"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 409 {object} map[string]interface{} "Transaction is not settled"
// @Router /api/settlements/{id}/unsettle [post]
func unsettleTransaction(c *gin.Context) {
	t, err := wf.Unsettle(currentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type batchSettleRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// @Summary Settle transactions in batch
// @Description Settle every listed transaction. Ids that do not exist are skipped silently.
// @Tags settlement
// @Accept json
// @Produce json
// @Param ids body batchSettleRequest true "Transaction ids"
// @Success 200 {object} map[string]interface{} "Settled transactions and count"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 409 {object} map[string]interface{} "A listed transaction is not approved"
// @Router /api/settlements/batch [post]
func settleBatch(c *gin.Context) {
	var req batchSettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	settled, err := wf.SettleBatch(currentIdentity(c), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"settled": settled,
		"count":   len(settled),
	})
}
