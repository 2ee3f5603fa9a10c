package handlers_test_suite

import (
	"fmt"
	"net/http"
	"testing"

	handler "github.com/yeasin-dev/shopmate/internal/http/handlers"
	"github.com/yeasin-dev/shopmate/internal/models"
)

func TestSellerCRUDEndpoints(t *testing.T) {
	resetState()

	w := doRequest(http.MethodPost, "/sellers", handler.SellerRequest{
		Name:      "Acme Traders",
		ContactNo: "018-555-0101",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", w.Code, w.Body.String())
	}
	var seller models.Seller
	decodeInto(t, w, &seller)
	if seller.ID == 0 || seller.ContactNo != "018-555-0101" {
		t.Errorf("unexpected seller %+v", seller)
	}

	w = doRequest(http.MethodPatch, fmt.Sprintf("/sellers/%d", seller.ID), handler.SellerRequest{
		Name: "Acme Traders Ltd",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeInto(t, w, &seller)
	if seller.Name != "Acme Traders Ltd" {
		t.Errorf("expected updated name, got %q", seller.Name)
	}

	w = doRequest(http.MethodGet, fmt.Sprintf("/sellers/%d", seller.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doRequest(http.MethodDelete, fmt.Sprintf("/sellers/%d", seller.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doRequest(http.MethodGet, fmt.Sprintf("/sellers/%d", seller.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
	if msg := decodeError(t, w).Message; msg != "Seller not found" {
		t.Errorf("expected Seller not found, got %q", msg)
	}
}

func TestCreateSellerRequiresName(t *testing.T) {
	resetState()

	w := doRequest(http.MethodPost, "/sellers", handler.SellerRequest{Name: "  "})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for blank name, got %d", w.Code)
	}
}

func TestCategoryEndpoints(t *testing.T) {
	resetState()

	w := doRequest(http.MethodPost, "/categories", handler.NamedRequest{Name: "Electronics"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var category models.Category
	decodeInto(t, w, &category)

	w = doRequest(http.MethodGet, "/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var categories []models.Category
	decodeInto(t, w, &categories)
	found := false
	for _, c := range categories {
		if c.ID == category.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("created category missing from listing: %+v", categories)
	}
}

func TestBrandEndpoints(t *testing.T) {
	resetState()

	w := doRequest(http.MethodPost, "/brands", handler.NamedRequest{Name: "Logitech"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var brand models.Brand
	decodeInto(t, w, &brand)

	w = doRequest(http.MethodPatch, fmt.Sprintf("/brands/%d", brand.ID), handler.NamedRequest{Name: "Logi"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	decodeInto(t, w, &brand)
	if brand.Name != "Logi" {
		t.Errorf("expected renamed brand, got %q", brand.Name)
	}

	w = doRequest(http.MethodDelete, "/brands/9999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown brand, got %d", w.Code)
	}
}
