package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	mw "github.com/yeasin-dev/shopmate/internal/http/middleware"
	"github.com/yeasin-dev/shopmate/internal/inventory"
	"github.com/yeasin-dev/shopmate/internal/models"
	"github.com/yeasin-dev/shopmate/internal/repo"
)

// CreateSaleHandler godoc
// @Summary Create a sale
// @Description Decrements product stock and persists the sale record
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} models.Sale
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			http.Error(w, "invalid date format", http.StatusBadRequest)
			return
		}
	}

	ownerID := mw.OwnerID(r)
	sale, err := inventory.CreateSale(r.Context(), store(), ownerID, inventory.NewSale{
		ProductID:    req.ProductID,
		ProductPrice: req.ProductPrice,
		Quantity:     req.Quantity,
		BuyerName:    req.BuyerName,
		Date:         date,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	reportCache.Invalidate(r.Context(), ownerID)
	writeJSON(w, http.StatusCreated, sale)
}

// GetSalesHandler godoc
// @Summary Search and paginate sales
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on buyer or product name"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param sort_by query string false "Sort key"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} SalesSearchResult
// @Failure 400 {object} errorResponse
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sales, total, err := saleRepo.Search(r.Context(), mw.OwnerID(r), filter)
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	if sales == nil {
		sales = []models.Sale{}
	}

	writeJSON(w, http.StatusOK, SalesSearchResult{
		Data: sales,
		Meta: Meta{Total: total, TotalPage: totalPages(total, filter.Limit)},
	})
}

// GetSaleByIDHandler godoc
// @Summary Get sale by ID
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sale ID"
// @Success 200 {object} models.Sale
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} errorResponse
// @Router /sales/{id} [get]
func GetSaleByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}

	sale, err := saleRepo.GetByID(r.Context(), id, mw.OwnerID(r))
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Sale not found"})
			return
		}
		http.Error(w, "could not fetch sale", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

// DeleteSaleHandler godoc
// @Summary Delete a sale
// @Tags sales
// @Security BearerAuth
// @Param id path int true "Sale ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} errorResponse
// @Router /sales/{id} [delete]
func DeleteSaleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid sale ID", http.StatusBadRequest)
		return
	}

	ownerID := mw.OwnerID(r)
	if err := inventory.DeleteSale(r.Context(), store(), ownerID, id); err != nil {
		writeDomainError(w, err)
		return
	}

	reportCache.Invalidate(r.Context(), ownerID)
	w.WriteHeader(http.StatusNoContent)
}
