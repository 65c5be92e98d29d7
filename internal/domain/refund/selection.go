package refund

import "github.com/google/uuid"

// Key identifies one refundable line item across the ledger.
type Key struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	ItemID        uuid.UUID `json:"item_id"`
}

// Selection is the in-progress refund's set of selected item keys. Pairs are
// unique; membership is toggled, never duplicated. The workflow owns the
// selection and discards it on cancel or successful submission.
type Selection struct {
	keys map[Key]struct{}
	order []Key
}

func NewSelection() *Selection {
	return &Selection{keys: make(map[Key]struct{})}
}

// Toggle flips membership of the pair. Toggling twice returns the selection
// to its prior state.
func (s *Selection) Toggle(transactionID, itemID uuid.UUID) {
	k := Key{TransactionID: transactionID, ItemID: itemID}
	if _, ok := s.keys[k]; ok {
		delete(s.keys, k)
		next := make([]Key, 0, len(s.order)-1)
		for _, o := range s.order {
			if o != k {
				next = append(next, o)
			}
		}
		s.order = next
		return
	}
	s.keys[k] = struct{}{}
	s.order = append(s.order, k)
}

func (s *Selection) Contains(transactionID, itemID uuid.UUID) bool {
	_, ok := s.keys[Key{TransactionID: transactionID, ItemID: itemID}]
	return ok
}

func (s *Selection) IsEmpty() bool {
	return len(s.keys) == 0
}

func (s *Selection) Len() int {
	return len(s.keys)
}

// Keys returns the selected pairs in toggle order.
func (s *Selection) Keys() []Key {
	out := make([]Key, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Selection) Clear() {
	s.keys = make(map[Key]struct{})
	s.order = nil
}
