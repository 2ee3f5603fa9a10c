package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/yeasin-dev/shopmate/internal/http/handlers"
	mw "github.com/yeasin-dev/shopmate/internal/http/middleware"
)

func New() http.Handler {
	r := chi.NewRouter()
	r.Use(mw.RateLimit)

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)
	r.Post("/refresh", handlers.RefreshHandler)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.Auth)

		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Patch("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/bulk-delete", handlers.BulkDeleteProductsHandler)
		r.Patch("/products/{id}/stock", handlers.AddToStockHandler)

		r.Post("/sales", handlers.CreateSaleHandler)
		r.Get("/sales", handlers.GetSalesHandler)
		r.Get("/sales/days", handlers.DailySalesHandler)
		r.Get("/sales/weeks", handlers.WeeklySalesHandler)
		r.Get("/sales/months", handlers.MonthlySalesHandler)
		r.Get("/sales/years", handlers.YearlySalesHandler)
		r.Get("/sales/{id}", handlers.GetSaleByIDHandler)
		r.Delete("/sales/{id}", handlers.DeleteSaleHandler)

		r.Get("/purchases", handlers.GetPurchasesHandler)

		r.Post("/sellers", handlers.CreateSellerHandler)
		r.Get("/sellers", handlers.GetSellersHandler)
		r.Get("/sellers/{id}", handlers.GetSellerByIDHandler)
		r.Patch("/sellers/{id}", handlers.UpdateSellerHandler)
		r.Delete("/sellers/{id}", handlers.DeleteSellerHandler)

		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)
		r.Patch("/categories/{id}", handlers.UpdateCategoryHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

		r.Post("/brands", handlers.CreateBrandHandler)
		r.Get("/brands", handlers.GetBrandsHandler)
		r.Get("/brands/{id}", handlers.GetBrandByIDHandler)
		r.Patch("/brands/{id}", handlers.UpdateBrandHandler)
		r.Delete("/brands/{id}", handlers.DeleteBrandHandler)

		r.Get("/overview", handlers.GetOverviewHandler)
	})

	return r
}
