package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/yeasin-dev/shopmate/internal/http/handlers"
	rl "github.com/yeasin-dev/shopmate/internal/http/rate_limiter"
	apirouter "github.com/yeasin-dev/shopmate/internal/http/router"
	"github.com/yeasin-dev/shopmate/internal/models"
	"github.com/yeasin-dev/shopmate/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// adminID is the id assigned to the seeded admin user, whose token
// authorizes every request in this suite.
const adminID = 1

var (
	token        string
	testRouter   http.Handler
	productRepo  *repo.InMemoryProductRepository
	sellerRepo   *repo.InMemorySellerRepository
	categoryRepo *repo.InMemoryCategoryRepository
	brandRepo    *repo.InMemoryBrandRepository
	purchaseRepo *repo.InMemoryPurchaseRepository
	saleRepo     *repo.InMemorySaleRepository
)

func init() {
	setupTestRepos("secret")
	testRouter = apirouter.New()

	var err error
	token, err = generateToken(testRouter, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	sellerRepo = repo.NewInMemorySellerRepository()
	handler.SetSellerRepo(sellerRepo)

	categoryRepo = repo.NewInMemoryCategoryRepository()
	handler.SetCategoryRepo(categoryRepo)

	brandRepo = repo.NewInMemoryBrandRepository()
	handler.SetBrandRepo(brandRepo)

	purchaseRepo = repo.NewInMemoryPurchaseRepository()
	handler.SetPurchaseRepo(purchaseRepo)

	saleRepo = repo.NewInMemorySaleRepository()
	handler.SetSaleRepo(saleRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(context.Background(), models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "user",
	})
}

// resetState empties the mutable repositories and the rate limiter so
// tests do not bleed into each other. The catalog entries accumulate
// instead; each test seeds its own and refers to them by id.
func resetState() {
	rl.CleanupAllVisitors()
	productRepo.Clear()
	purchaseRepo.Clear()
	saleRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doRequest sends an authorized JSON request through the full router.
func doRequest(method, target string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

// doRequestUnauthenticated sends a request without an Authorization header.
func doRequestUnauthenticated(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

// seedCatalog inserts a seller and a category for the admin user.
func seedCatalog(t *testing.T) (models.Seller, models.Category) {
	t.Helper()
	seller, err := sellerRepo.Create(context.Background(), models.Seller{OwnerID: adminID, Name: "Default Trader"})
	if err != nil {
		t.Fatalf("seeding seller: %v", err)
	}
	category, err := categoryRepo.Create(context.Background(), models.Category{OwnerID: adminID, Name: "General"})
	if err != nil {
		t.Fatalf("seeding category: %v", err)
	}
	return seller, category
}

// createProduct posts a product and returns the decoded response.
func createProduct(t *testing.T, req handler.ProductRequest) models.Product {
	t.Helper()
	w := doRequest(http.MethodPost, "/products", req)
	if w.Code != http.StatusCreated {
		t.Fatalf("creating product: got status %d, body %s", w.Code, w.Body.String())
	}
	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("decoding product: %v", err)
	}
	return product
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decoding response: %v (body %s)", err, w.Body.String())
	}
}

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var e errorBody
	decodeInto(t, w, &e)
	return e
}
