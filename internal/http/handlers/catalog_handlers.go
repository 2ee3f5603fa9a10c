package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	mw "github.com/yeasin-dev/shopmate/internal/http/middleware"
	"github.com/yeasin-dev/shopmate/internal/models"
	"github.com/yeasin-dev/shopmate/internal/repo"
)

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func requireName(w http.ResponseWriter, name string) bool {
	if strings.TrimSpace(name) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: "validation failed",
			Errors:  map[string]string{"name": "Name is required"},
		})
		return false
	}
	return true
}

// CreateSellerHandler godoc
// @Summary Create a seller
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param seller body SellerRequest true "Seller to add"
// @Success 201 {object} models.Seller
// @Failure 400 {object} errorResponse
// @Router /sellers [post]
func CreateSellerHandler(w http.ResponseWriter, r *http.Request) {
	var req SellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !requireName(w, req.Name) {
		return
	}

	now := time.Now().UTC()
	seller, err := sellerRepo.Create(r.Context(), models.Seller{
		OwnerID:   mw.OwnerID(r),
		Name:      req.Name,
		ContactNo: req.ContactNo,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		http.Error(w, "could not create seller", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, seller)
}

// GetSellersHandler godoc
// @Summary List sellers
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Seller
// @Router /sellers [get]
func GetSellersHandler(w http.ResponseWriter, r *http.Request) {
	sellers, err := sellerRepo.GetAll(r.Context(), mw.OwnerID(r))
	if err != nil {
		http.Error(w, "could not fetch sellers", http.StatusInternalServerError)
		return
	}
	if sellers == nil {
		sellers = []models.Seller{}
	}
	writeJSON(w, http.StatusOK, sellers)
}

// GetSellerByIDHandler godoc
// @Summary Get seller by ID
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seller ID"
// @Success 200 {object} models.Seller
// @Failure 404 {object} errorResponse
// @Router /sellers/{id} [get]
func GetSellerByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	seller, err := sellerRepo.GetByID(r.Context(), id, mw.OwnerID(r))
	if err != nil {
		if errors.Is(err, repo.ErrSellerNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Seller not found"})
			return
		}
		http.Error(w, "could not fetch seller", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, seller)
}

// UpdateSellerHandler godoc
// @Summary Update a seller
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Seller ID"
// @Param seller body SellerRequest true "Updated seller"
// @Success 200 {object} models.Seller
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /sellers/{id} [patch]
func UpdateSellerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req SellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !requireName(w, req.Name) {
		return
	}

	seller, err := sellerRepo.Update(r.Context(), models.Seller{
		ID:        id,
		OwnerID:   mw.OwnerID(r),
		Name:      req.Name,
		ContactNo: req.ContactNo,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrSellerNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Seller not found"})
			return
		}
		http.Error(w, "could not update seller", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, seller)
}

// DeleteSellerHandler godoc
// @Summary Delete a seller
// @Tags sellers
// @Security BearerAuth
// @Param id path int true "Seller ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {object} errorResponse
// @Router /sellers/{id} [delete]
func DeleteSellerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := sellerRepo.Delete(r.Context(), id, mw.OwnerID(r)); err != nil {
		if errors.Is(err, repo.ErrSellerNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Seller not found"})
			return
		}
		http.Error(w, "could not delete seller", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateCategoryHandler godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body NamedRequest true "Category to add"
// @Success 201 {object} models.Category
// @Failure 400 {object} errorResponse
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req NamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !requireName(w, req.Name) {
		return
	}

	now := time.Now().UTC()
	category, err := categoryRepo.Create(r.Context(), models.Category{
		OwnerID:   mw.OwnerID(r),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// GetCategoriesHandler godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Category
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll(r.Context(), mw.OwnerID(r))
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetCategoryByIDHandler godoc
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} errorResponse
// @Router /categories/{id} [get]
func GetCategoryByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	category, err := categoryRepo.GetByID(r.Context(), id, mw.OwnerID(r))
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Category not found"})
			return
		}
		http.Error(w, "could not fetch category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// UpdateCategoryHandler godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param category body NamedRequest true "Updated category"
// @Success 200 {object} models.Category
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /categories/{id} [patch]
func UpdateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req NamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !requireName(w, req.Name) {
		return
	}

	category, err := categoryRepo.Update(r.Context(), models.Category{
		ID:        id,
		OwnerID:   mw.OwnerID(r),
		Name:      req.Name,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Category not found"})
			return
		}
		http.Error(w, "could not update category", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Tags categories
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {object} errorResponse
// @Router /categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := categoryRepo.Delete(r.Context(), id, mw.OwnerID(r)); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Category not found"})
			return
		}
		http.Error(w, "could not delete category", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateBrandHandler godoc
// @Summary Create a brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body NamedRequest true "Brand to add"
// @Success 201 {object} models.Brand
// @Failure 400 {object} errorResponse
// @Router /brands [post]
func CreateBrandHandler(w http.ResponseWriter, r *http.Request) {
	var req NamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !requireName(w, req.Name) {
		return
	}

	now := time.Now().UTC()
	brand, err := brandRepo.Create(r.Context(), models.Brand{
		OwnerID:   mw.OwnerID(r),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		http.Error(w, "could not create brand", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, brand)
}

// GetBrandsHandler godoc
// @Summary List brands
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Brand
// @Router /brands [get]
func GetBrandsHandler(w http.ResponseWriter, r *http.Request) {
	brands, err := brandRepo.GetAll(r.Context(), mw.OwnerID(r))
	if err != nil {
		http.Error(w, "could not fetch brands", http.StatusInternalServerError)
		return
	}
	if brands == nil {
		brands = []models.Brand{}
	}
	writeJSON(w, http.StatusOK, brands)
}

// GetBrandByIDHandler godoc
// @Summary Get brand by ID
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Success 200 {object} models.Brand
// @Failure 404 {object} errorResponse
// @Router /brands/{id} [get]
func GetBrandByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	brand, err := brandRepo.GetByID(r.Context(), id, mw.OwnerID(r))
	if err != nil {
		if errors.Is(err, repo.ErrBrandNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Brand not found"})
			return
		}
		http.Error(w, "could not fetch brand", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

// UpdateBrandHandler godoc
// @Summary Update a brand
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Param brand body NamedRequest true "Updated brand"
// @Success 200 {object} models.Brand
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /brands/{id} [patch]
func UpdateBrandHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req NamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !requireName(w, req.Name) {
		return
	}

	brand, err := brandRepo.Update(r.Context(), models.Brand{
		ID:        id,
		OwnerID:   mw.OwnerID(r),
		Name:      req.Name,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrBrandNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Brand not found"})
			return
		}
		http.Error(w, "could not update brand", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

// DeleteBrandHandler godoc
// @Summary Delete a brand
// @Tags brands
// @Security BearerAuth
// @Param id path int true "Brand ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {object} errorResponse
// @Router /brands/{id} [delete]
func DeleteBrandHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := brandRepo.Delete(r.Context(), id, mw.OwnerID(r)); err != nil {
		if errors.Is(err, repo.ErrBrandNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "Brand not found"})
			return
		}
		http.Error(w, "could not delete brand", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
