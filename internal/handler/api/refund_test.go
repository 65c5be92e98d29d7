//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"pos-engine/internal/domain/actor"
	"pos-engine/internal/domain/refund"
	"pos-engine/internal/domain/transaction"
	"pos-engine/internal/handler/api"
	reqdto "pos-engine/internal/handler/dto/request"
	resdto "pos-engine/internal/handler/dto/response"
	"pos-engine/internal/usecase/commands"
	"pos-engine/internal/usecase/queries"
	"pos-engine/tests/common/builder"
	"pos-engine/tests/common/httptest"
	"pos-engine/tests/common/testutil"
	commandsmock "pos-engine/tests/mock/commands"
	queriesmock "pos-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RefundHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRefundCommands
	mockQueries  *queriesmock.MockTransactionQueries
	handler      *api.RefundHandler
}

func (s *RefundHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRefundCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTransactionQueries(s.mockCtrl)
	s.handler = api.NewRefundHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("auth_actor", actor.Actor{ID: uuid.New(), Email: "manager@store.test", Role: actor.RoleManager})
		c.Next()
	}

	s.router.GET("/transactions", authMiddleware, s.handler.ListTransactions)
	s.router.GET("/transactions/:id", authMiddleware, s.handler.GetTransaction)
	s.router.GET("/refunds/selection", authMiddleware, s.handler.GetSelection)
	s.router.POST("/refunds/selection", authMiddleware, s.handler.ToggleItem)
	s.router.DELETE("/refunds/selection", authMiddleware, s.handler.CancelSelection)
	s.router.POST("/refunds", authMiddleware, s.handler.Process)
}

func (s *RefundHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRefundHandlerSuite(t *testing.T) {
	suite.Run(t, new(RefundHandlerTestSuite))
}

// ================================================================================
// TestListTransactions
// ================================================================================

func (s *RefundHandlerTestSuite) TestListTransactions() {
	s.Run("success: returns 200 OK with full history for no filter", func() {
		txn := builder.NewTransactionBuilder().Build()
		s.mockQueries.EXPECT().List(gomock.Any(), refund.Filter{}).
			Return([]transaction.Transaction{txn}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions", nil, "bearer-token")

		var body struct {
			Transactions []*resdto.TransactionResponse `json:"transactions"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Transactions, 1)
		s.Equal(txn.ID.String(), body.Transactions[0].ID)
	})

	s.Run("success: passes filters through to the query layer", func() {
		from := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2023, 5, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
		expected := refund.Filter{
			DateFrom:    &from,
			DateTo:      &to,
			ProductName: "coffee",
			SKU:         "COF",
			Category:    "Beverages",
		}
		s.mockQueries.EXPECT().List(gomock.Any(), expected).Return(nil, nil).Times(1)

		url := "/transactions?date_from=2023-05-01&date_to=2023-05-31&product_name=coffee&sku=COF&category=Beverages"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions?date_from=05-01-2023", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date filter")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), refund.Filter{}).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list transactions")
	})
}

// ================================================================================
// TestGetTransaction
// ================================================================================

func (s *RefundHandlerTestSuite) TestGetTransaction() {
	txn := builder.NewTransactionBuilder().Build()
	url := "/transactions/" + txn.ID.String()

	s.Run("success: returns 200 OK with transaction", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), txn.ID).Return(txn, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.TransactionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(txn.ID.String(), response.ID)
		s.Equal("completed", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/transactions/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing transaction", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), txn.ID).
			Return(transaction.Transaction{}, queries.ErrTransactionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestToggleItem
// ================================================================================

func (s *RefundHandlerTestSuite) TestToggleItem() {
	url := "/refunds/selection"
	txnID := uuid.New()
	itemID := uuid.New()
	reqBody := reqdto.ToggleItemRequest{TransactionID: txnID, ItemID: itemID}

	s.Run("success: returns 200 OK with selection and amount", func() {
		s.mockCommands.EXPECT().ToggleItem(txnID, itemID).Times(1)
		s.mockCommands.EXPECT().Amount(gomock.Any()).Return(9.98, nil).Times(1)
		s.mockCommands.EXPECT().SelectedItems().
			Return([]refund.Key{{TransactionID: txnID, ItemID: itemID}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Equal(txnID.String(), response.Items[0].TransactionID)
		s.InDelta(9.98, response.Amount, 1e-9)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: transaction_id", mutate: testutil.Field("transaction_id", nil)},
			{name: "missing field: item_id", mutate: testutil.Field("item_id", nil)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 500 Internal Server Error when amount calculation fails", func() {
		s.mockCommands.EXPECT().ToggleItem(txnID, itemID).Times(1)
		s.mockCommands.EXPECT().Amount(gomock.Any()).
			Return(0.0, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to calculate amount")
	})
}

// ================================================================================
// TestProcess
// ================================================================================

func (s *RefundHandlerTestSuite) TestProcess() {
	url := "/refunds"
	reqBody := reqdto.ProcessRefundRequest{Reason: "damaged packaging"}

	s.Run("success: returns 201 Created with refund record", func() {
		txn := builder.NewTransactionBuilder().Build()
		record := &refund.Record{
			ID:           uuid.New(),
			Timestamp:    txn.Timestamp,
			Amount:       txn.Total,
			Transactions: []transaction.Transaction{txn},
			Items:        []refund.Key{{TransactionID: txn.ID, ItemID: txn.Items[0].ProductID}},
			Reason:       reqBody.Reason,
		}
		s.mockCommands.EXPECT().Process(gomock.Any(), gomock.Any(), reqBody.Reason).
			Return(record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.RefundRecordResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(record.ID.String(), response.ID)
		s.InDelta(record.Amount, response.Amount, 1e-9)
		s.Len(response.Transactions, 1)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty selection",
				commandsError:  commands.ErrEmptySelection,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "No items selected",
			},
			{
				name:           "duplicate refund",
				commandsError:  commands.ErrDuplicateRefund,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Refund already recorded",
			},
			{
				name:           "store failure",
				commandsError:  commands.ErrDatabaseOperationFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Refund failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Process(gomock.Any(), gomock.Any(), reqBody.Reason).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancelSelection
// ================================================================================

func (s *RefundHandlerTestSuite) TestCancelSelection() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel().Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/refunds/selection", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
