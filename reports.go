package main

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Report handler functions. Reports run over the caller's visible set, so an
// employee's numbers only cover their own vouchers.

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Total      decimal.Decimal `json:"total"`
}

// Summary aggregates the visible ledger. Rejected and deleted vouchers are
// left out: no money moved.
type Summary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Balance      decimal.Decimal `json:"balance"`
	Count        int             `json:"count"`
	ByCategory   []CategoryTotal `json:"byCategory"`
}

func inRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

// @Summary Ledger summary
// @Description Income, expense and balance totals plus a per-category breakdown over the caller's visible transactions
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} Summary "Ledger summary"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/summary [get]
func getSummary(c *gin.Context) {
	transactions, err := wf.Visible(currentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	categories, err := store.Categories()
	if err != nil {
		respondError(c, err)
		return
	}
	catByID := make(map[string]Category, len(categories))
	for _, cat := range categories {
		catByID[cat.ID] = cat
	}

	from := c.Query("from")
	to := c.Query("to")

	summary := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
		ByCategory:   []CategoryTotal{},
	}
	byCat := make(map[string]*CategoryTotal)

	for _, t := range transactions {
		if t.IsDeleted || t.Status == StatusRejected {
			continue
		}
		if !inRange(t.Date, from, to) {
			continue
		}

		summary.Count++
		if t.Type == TypeIncome {
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		} else {
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		}

		ct, ok := byCat[t.CategoryID]
		if !ok {
			ct = &CategoryTotal{CategoryID: t.CategoryID, Type: t.Type, Total: decimal.Zero}
			if cat, found := catByID[t.CategoryID]; found {
				ct.Name = cat.Name
			}
			byCat[t.CategoryID] = ct
		}
		ct.Total = ct.Total.Add(t.Amount)
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	for _, ct := range byCat {
		summary.ByCategory = append(summary.ByCategory, *ct)
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Export transactions as CSV
// @Description Stream the caller's visible transactions as a CSV file
// @Tags reports
// @Produce text/csv
// @Param from query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param to query string false "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {string} string "CSV data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/reports/export [get]
func exportTransactions(c *gin.Context) {
	transactions, err := wf.Visible(currentIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}

	from := c.Query("from")
	to := c.Query("to")

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	w := csv.NewWriter(c.Writer)
	header := []string{"Date", "Type", "Category", "Content", "Partner", "Receiver", "Quantity", "Unit Price", "Amount", "Status", "Settled"}
	if err := w.Write(header); err != nil {
		return
	}

	for _, t := range transactions {
		if !inRange(t.Date, from, to) {
			continue
		}
		settled := "no"
		if t.IsSettled {
			settled = "yes"
		}
		record := []string{
			t.Date,
			t.Type,
			t.CategoryID,
			t.Content,
			t.Partner,
			t.Receiver,
			fmt.Sprintf("%d", t.Quantity),
			t.UnitPrice.String(),
			t.Amount.String(),
			t.Status,
			settled,
		}
		if err := w.Write(record); err != nil {
			return
		}
	}
	w.Flush()
}
