package handlers

import (
	"encoding/json"
	"net/http"

	mw "github.com/yeasin-dev/shopmate/internal/http/middleware"
	"github.com/yeasin-dev/shopmate/internal/inventory"
	"github.com/yeasin-dev/shopmate/internal/repo"
)

// DailySalesHandler godoc
// @Summary Sales grouped by calendar day
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repo.PeriodTotal
// @Router /sales/days [get]
func DailySalesHandler(w http.ResponseWriter, r *http.Request) {
	reportHandler(w, r, repo.PeriodDay)
}

// WeeklySalesHandler godoc
// @Summary Sales grouped by ISO week
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repo.PeriodTotal
// @Router /sales/weeks [get]
func WeeklySalesHandler(w http.ResponseWriter, r *http.Request) {
	reportHandler(w, r, repo.PeriodWeek)
}

// MonthlySalesHandler godoc
// @Summary Sales grouped by calendar month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repo.PeriodTotal
// @Router /sales/months [get]
func MonthlySalesHandler(w http.ResponseWriter, r *http.Request) {
	reportHandler(w, r, repo.PeriodMonth)
}

// YearlySalesHandler godoc
// @Summary Sales grouped by calendar year
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repo.PeriodTotal
// @Router /sales/years [get]
func YearlySalesHandler(w http.ResponseWriter, r *http.Request) {
	reportHandler(w, r, repo.PeriodYear)
}

// reportHandler serves one report period, going through the cache when
// one is wired.
func reportHandler(w http.ResponseWriter, r *http.Request, period repo.Period) {
	ownerID := mw.OwnerID(r)

	if payload, ok := reportCache.Get(r.Context(), ownerID, string(period)); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
		return
	}

	totals, err := inventory.SalesReport(r.Context(), store(), ownerID, period)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	payload, err := json.Marshal(totals)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	reportCache.Set(r.Context(), ownerID, string(period), payload)

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

// GetOverviewHandler godoc
// @Summary Dashboard overview
// @Description Total stock on hand plus overall sale count and revenue
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} inventory.Overview
// @Router /overview [get]
func GetOverviewHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := inventory.GetOverview(r.Context(), store(), mw.OwnerID(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
