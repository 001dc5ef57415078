package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Transaction handler functions. The handlers are thin: every rule lives in
// the workflow, which receives the request's identity explicitly.

// @Summary List transactions
// @Description List the transactions visible to the caller. Employees only see their own records; soft-deleted records are admin-only.
// @Tags transactions
// @Produce json
// @Success 200 {array} Transaction "List of transactions"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/transactions [get]
func getTransactions(c *gin.Context) {
	transactions, err := wf.Visible(currentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// @Summary Get transaction
// @Description Fetch a single transaction by id, subject to the caller's visibility
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} Transaction "Transaction"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/transactions/{id} [get]
func getTransaction(c *gin.Context) {
	t, err := wf.Get(currentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Create transaction
// @Description Record a new income or expense voucher; it starts in pending state
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body TransactionInput true "Transaction fields"
// @Success 201 {object} Transaction "Created transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 409 {object} map[string]interface{} "Validation failure"
// @Router /api/transactions [post]
func createTransaction(c *gin.Context) {
	var in TransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	t, err := wf.Create(currentIdentity(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary Update transaction
// @Description Rewrite the editable fields. Approved transactions may only be edited by admin.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body TransactionInput true "Updated fields"
// @Success 200 {object} Transaction "Updated transaction"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/transactions/{id} [put]
func updateTransaction(c *gin.Context) {
	var in TransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	t, err := wf.Update(currentIdentity(c), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Delete transaction
// @Description Soft-delete a transaction. The record stays in the ledger and remains visible to admin.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]interface{} "Transaction deleted"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/transactions/{id} [delete]
func deleteTransaction(c *gin.Context) {
	if err := wf.SoftDelete(currentIdentity(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// @Summary Restore transaction
// @Description Clear the soft-delete flag. Admin only.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} Transaction "Restored transaction"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 409 {object} map[string]interface{} "Transaction is not deleted"
// @Router /api/transactions/{id}/restore [post]
func restoreTransaction(c *gin.Context) {
	t, err := wf.Restore(currentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Approve transaction
// @Description Move a pending transaction to approved and stamp the decision
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} Transaction "Approved transaction"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 409 {object} map[string]interface{} "Transaction is not pending"
// @Router /api/transactions/{id}/approve [post]
func approveTransaction(c *gin.Context) {
	t, err := wf.Approve(currentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Reject transaction
// @Description Move a pending transaction to rejected and stamp the decision
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} Transaction "Rejected transaction"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 409 {object} map[string]interface{} "Transaction is not pending"
// @Router /api/transactions/{id}/reject [post]
func rejectTransaction(c *gin.Context) {
	t, err := wf.Reject(currentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Revoke decision
// @Description Return an approved or rejected transaction to pending. Settled transactions must be unsettled first.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} Transaction "Transaction back in pending state"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Failure 409 {object} map[string]interface{} "Guard failure"
// @Router /api/transactions/{id}/revoke [post]
func revokeDecision(c *gin.Context) {
	t, err := wf.RevokeDecision(currentIdentity(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
