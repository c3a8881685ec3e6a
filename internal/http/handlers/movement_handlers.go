package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/vending-machine/internal/models"
	repo "github.com/rogerio-castellano/vending-machine/internal/repo"
)

// GetMovementsHandler godoc
// @Summary Get the deposit, refund and sale journal
// @Tags movements
// @Produce json
// @Param kind query string false "deposit, refund or sale"
// @Param product_id query int false "Only movements of this product"
// @Param since query string false "Filter movements from this timestamp (RFC3339)"
// @Param until query string false "Filter movements until this timestamp (RFC3339)"
// @Param limit query int false "Keep only the most recent entries"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var mf repo.MovementFilter

	switch kind := models.MovementKind(q.Get("kind")); kind {
	case "", models.MovementDeposit, models.MovementRefund, models.MovementSale:
		mf.Kind = kind
	default:
		http.Error(w, "invalid kind", http.StatusBadRequest)
		return
	}

	if s := q.Get("product_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "invalid product_id", http.StatusBadRequest)
			return
		}
		mf.ProductID = id
	}

	for key, dst := range map[string]**time.Time{"since": &mf.Since, "until": &mf.Until} {
		s := q.Get(key)
		if s == "" {
			continue
		}
		// URL query decoding turns the + of a timezone offset into a space.
		if len(s) > 6 && s[len(s)-6] == ' ' {
			s = s[:len(s)-6] + "+" + s[len(s)-5:]
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid "+key+" timestamp", http.StatusBadRequest)
			return
		}
		*dst = &t
	}

	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		mf.Limit = &limit
	}

	movements, err := machine.Movements(r.Context(), mf)
	if err != nil {
		http.Error(w, "could not fetch movements", http.StatusInternalServerError)
		return
	}

	result := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: len(movements)},
	}
	for i, m := range movements {
		result.Data[i] = toMovementResponse(m)
	}
	respond(w, http.StatusOK, result)
}
