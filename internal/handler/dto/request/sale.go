package request

import (
	"pos-engine/internal/domain/discount"

	"github.com/google/uuid"
)

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity"`
}

type SelectDiscountTypeRequest struct {
	Type string `json:"type" binding:"required,oneof=percentage fixed code"`
}

func (r *SelectDiscountTypeRequest) ToDomain() discount.Type {
	return discount.Type(r.Type)
}

type SetDiscountValueRequest struct {
	Value string `json:"value"`
}

type SetDiscountCodeRequest struct {
	Code string `json:"code"`
}

type CheckoutRequest struct {
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash credit debit"`
	Tendered      float64 `json:"tendered" binding:"gte=0"`
}
