package handlers

import (
	"time"

	"github.com/rogerio-castellano/vending-machine/internal/models"
)

type ProductResponse struct {
	Id       int          `json:"id"`
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Price    models.Money `json:"price"`
	Stock    int          `json:"stock"`
	SoldOut  bool         `json:"sold_out"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:       p.ID,
		Name:     p.Name,
		Category: p.Category.String(),
		Price:    p.Price,
		Stock:    p.Stock,
		SoldOut:  !p.InStock(),
	}
}

type CreditResponse struct {
	Credit   models.Money `json:"credit"`
	Currency string       `json:"currency"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MovementResponse struct {
	ID          string       `json:"id"`
	Kind        string       `json:"kind"`
	ProductID   int          `json:"product_id,omitempty"`
	Amount      models.Money `json:"amount"`
	CreditAfter models.Money `json:"credit_after"`
	CreatedAt   string       `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta"`
}

func toMovementResponse(m models.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID.String(),
		Kind:        string(m.Kind),
		ProductID:   m.ProductID,
		Amount:      m.Amount,
		CreditAfter: m.CreditAfter,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
