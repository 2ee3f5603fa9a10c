package handlers

import (
	"net/http"

	mw "github.com/yeasin-dev/shopmate/internal/http/middleware"
	"github.com/yeasin-dev/shopmate/internal/models"
)

// GetPurchasesHandler godoc
// @Summary Search and paginate the purchase ledger
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on seller or product name"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} PurchasesSearchResult
// @Failure 400 {object} errorResponse
// @Router /purchases [get]
func GetPurchasesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	purchases, total, err := purchaseRepo.Search(r.Context(), mw.OwnerID(r), filter)
	if err != nil {
		http.Error(w, "could not fetch purchases", http.StatusInternalServerError)
		return
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}

	writeJSON(w, http.StatusOK, PurchasesSearchResult{
		Data: purchases,
		Meta: Meta{Total: total, TotalPage: totalPages(total, filter.Limit)},
	})
}
