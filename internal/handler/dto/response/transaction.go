package response

import (
	"pos-engine/internal/domain/refund"
	"pos-engine/internal/domain/transaction"
)

type TransactionItemResponse struct {
	ProductID string  `json:"product_id"`
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

type TransactionResponse struct {
	ID            string                    `json:"id"`
	Timestamp     int64                     `json:"timestamp"`
	Items         []TransactionItemResponse `json:"items"`
	Total         float64                   `json:"total"`
	PaymentMethod string                    `json:"payment_method"`
	Status        string                    `json:"status"`
}

func FromTransaction(t transaction.Transaction) *TransactionResponse {
	items := make([]TransactionItemResponse, len(t.Items))
	for i, it := range t.Items {
		items[i] = TransactionItemResponse{
			ProductID: it.ProductID.String(),
			SKU:       it.SKU,
			Name:      it.Name,
			Category:  it.Category,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		}
	}
	return &TransactionResponse{
		ID:            t.ID.String(),
		Timestamp:     t.Timestamp.Unix(),
		Items:         items,
		Total:         t.Total,
		PaymentMethod: t.PaymentMethod,
		Status:        string(t.Status),
	}
}

func FromTransactionList(txns []transaction.Transaction) []*TransactionResponse {
	res := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = FromTransaction(t)
	}
	return res
}

type SelectedItemResponse struct {
	TransactionID string `json:"transaction_id"`
	ItemID        string `json:"item_id"`
}

type SelectionResponse struct {
	Items  []SelectedItemResponse `json:"items"`
	Amount float64                `json:"amount"`
}

func FromSelection(keys []refund.Key, amount float64) *SelectionResponse {
	items := make([]SelectedItemResponse, len(keys))
	for i, k := range keys {
		items[i] = SelectedItemResponse{
			TransactionID: k.TransactionID.String(),
			ItemID:        k.ItemID.String(),
		}
	}
	return &SelectionResponse{Items: items, Amount: amount}
}

type RefundRecordResponse struct {
	ID           string                 `json:"id"`
	Timestamp    int64                  `json:"timestamp"`
	Amount       float64                `json:"amount"`
	Transactions []*TransactionResponse `json:"transactions"`
	Items        []SelectedItemResponse `json:"items"`
	Reason       string                 `json:"reason,omitempty"`
}

func FromRefundRecord(r *refund.Record) *RefundRecordResponse {
	items := make([]SelectedItemResponse, len(r.Items))
	for i, k := range r.Items {
		items[i] = SelectedItemResponse{
			TransactionID: k.TransactionID.String(),
			ItemID:        k.ItemID.String(),
		}
	}
	return &RefundRecordResponse{
		ID:           r.ID.String(),
		Timestamp:    r.Timestamp.Unix(),
		Amount:       r.Amount,
		Transactions: FromTransactionList(r.Transactions),
		Items:        items,
		Reason:       r.Reason,
	}
}
