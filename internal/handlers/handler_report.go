package handlers

import (
	"net/http"
	"strconv"

	"github.com/Namer-kimhyojin/Budget-sub000/internal/core/domain"
	portsrepo "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/repositories"
	portssvc "github.com/Namer-kimhyojin/Budget-sub000/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// reportHandler exposes aggregated budget views and raw entry listings.
type reportHandler struct {
	aggregationService portssvc.AggregationSvcFacade
}

func newReportHandler(as portssvc.AggregationSvcFacade) *reportHandler {
	return &reportHandler{aggregationService: as}
}

func registerReportRoutes(rg *gin.RouterGroup, aggregationService portssvc.AggregationSvcFacade) {
	h := newReportHandler(aggregationService)

	rg.GET("/reports/aggregate", h.aggregateEntries)
	rg.GET("/entries", h.listEntries)
}

func entryScopeFromQuery(c *gin.Context) (portsrepo.EntryScope, bool) {
	scope := portsrepo.EntryScope{OrgID: c.Query("orgID")}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return scope, false
	}
	round, err := strconv.Atoi(c.Query("round"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "round must be an integer"})
		return scope, false
	}
	scope.FiscalYear = year
	scope.Round = round
	return scope, true
}

// aggregateEntries godoc
// @Summary Aggregate budget entries into the subject tree
// @Description Buckets entries under their subjects and sums amounts bottom-up; entries whose subject cannot be resolved land in a placeholder bucket
// @Tags reports
// @Produce  json
// @Param   category query string true "INCOME or EXPENSE"
// @Param   orgID query string true "Organization ID"
// @Param   year query int true "Fiscal year"
// @Param   round query int true "Budgeting round"
// @Success 200 {object} domain.AggregateResult
// @Failure 400 {object} map[string]string "Invalid scope"
// @Router /reports/aggregate [get]
func (h *reportHandler) aggregateEntries(c *gin.Context) {
	category := domain.Category(c.Query("category"))
	if category != domain.CategoryIncome && category != domain.CategoryExpense {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be INCOME or EXPENSE"})
		return
	}

	scope, ok := entryScopeFromQuery(c)
	if !ok {
		return
	}

	result, err := h.aggregationService.AggregateEntries(c.Request.Context(), category, scope)
	if err != nil {
		respondNodeError(c, err, "Failed to aggregate entries")
		return
	}
	c.JSON(http.StatusOK, result)
}

// listEntries godoc
// @Summary List raw budget entries for a scope
// @Tags reports
// @Produce  json
// @Param   orgID query string true "Organization ID"
// @Param   year query int true "Fiscal year"
// @Param   round query int true "Budgeting round"
// @Success 200 {array} domain.BudgetEntry
// @Router /entries [get]
func (h *reportHandler) listEntries(c *gin.Context) {
	scope, ok := entryScopeFromQuery(c)
	if !ok {
		return
	}

	entries, err := h.aggregationService.ListEntries(c.Request.Context(), scope)
	if err != nil {
		respondNodeError(c, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}
