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

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product and records its initial stock in the purchase ledger
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} models.Product
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := inventory.CreateProduct(r.Context(), store(), mw.OwnerID(r), inventory.NewProduct{
		SellerID:   req.SellerID,
		CategoryID: req.CategoryID,
		BrandID:    req.BrandID,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// GetProductsHandler godoc
// @Summary Search and paginate products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring match on name"
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param sort_by query string false "Sort key"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} errorResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, total, err := productRepo.Search(r.Context(), mw.OwnerID(r), filter)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, ProductsSearchResult{
		Data: products,
		Meta: Meta{Total: total, TotalPage: totalPages(total, filter.Limit)},
	})
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} errorResponse
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(r.Context(), id, mw.OwnerID(r))
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Product not found"})
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Updates descriptive fields; stock changes only through the stock endpoints
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} models.Product
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id} [patch]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	updated, err := productRepo.Update(r.Context(), models.Product{
		ID:         id,
		OwnerID:    mw.OwnerID(r),
		SellerID:   req.SellerID,
		CategoryID: req.CategoryID,
		BrandID:    req.BrandID,
		Name:       req.Name,
		Price:      req.Price,
		UpdatedAt:  time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Product not found"})
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {object} errorResponse
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if err := productRepo.Delete(r.Context(), id, mw.OwnerID(r)); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Product not found"})
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BulkDeleteProductsHandler godoc
// @Summary Delete multiple products
// @Tags products
// @Accept json
// @Security BearerAuth
// @Param ids body BulkDeleteRequest true "Product IDs"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid input"
// @Router /products/bulk-delete [post]
func BulkDeleteProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := productRepo.DeleteMany(r.Context(), req.IDs, mw.OwnerID(r)); err != nil {
		http.Error(w, "could not delete products", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddToStockHandler godoc
// @Summary Replenish product stock
// @Description Increments stock and appends a purchase ledger entry
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param stock body StockRequest true "Seller and quantity"
// @Success 200 {object} models.Product
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /products/{id}/stock [patch]
func AddToStockHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req StockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	product, err := inventory.AddToStock(r.Context(), store(), mw.OwnerID(r), id, inventory.StockRefill{
		SellerID: req.SellerID,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
