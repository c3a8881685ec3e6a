package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetProductsHandler godoc
// @Summary List all products with their live stock
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products := machine.Products()
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	respond(w, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, ok := machine.Product(id)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, toProductResponse(product))
}

// GetCreditHandler godoc
// @Summary Current credit awaiting spend
// @Tags machine
// @Produce json
// @Success 200 {object} CreditResponse
// @Router /credit [get]
func GetCreditHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, CreditResponse{Credit: machine.Credit(), Currency: machine.Currency()})
}
