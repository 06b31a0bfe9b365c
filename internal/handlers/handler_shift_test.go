package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/SscSPs/shift_cashbox_app/internal/handlers"
	"github.com/SscSPs/shift_cashbox_app/internal/middleware"
	"github.com/SscSPs/shift_cashbox_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

type HandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockSvc  *MockShiftService
	token    string
	cashier  string
	recorder *httptest.ResponseRecorder
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockSvc = new(MockShiftService)
	suite.cashier = "cashier-1"

	token, err := utils.GenerateCashierJWT(suite.cashier, "Ana", "ana@example.com", testJWTSecret, time.Hour, "test")
	suite.Require().NoError(err)
	suite.token = token

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterShiftRoutes(v1, suite.mockSvc, nil)
	handlers.RegisterMovementRoutes(v1, suite.mockSvc)
	handlers.RegisterIncidentRoutes(v1, suite.mockSvc)
	handlers.RegisterBreakdownRoutes(v1)
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		suite.Require().NoError(err)
	}
	req, err := http.NewRequest(method, path, bytes.NewReader(payload))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if suite.token != "" {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func sampleShift() *domain.Shift {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	return &domain.Shift{
		ShiftID:     "shift-1",
		Date:        "2024-01-01",
		Period:      domain.PeriodMorning,
		CashierName: "Ana",
		Boxes: map[domain.BoxID]domain.Box{
			domain.BoxCounter:    {InitialFund: decimal.NewFromInt(1000)},
			domain.BoxGamingDesk: {InitialFund: decimal.NewFromInt(500)},
		},
		AuditFields: domain.NewAuditFields("cashier-1", now),
	}
}

func (suite *HandlerTestSuite) TestStartShift_UsesTokenIdentityAsDefault() {
	suite.mockSvc.On("StartShift", mock.Anything, mock.MatchedBy(func(req dto.StartShiftRequest) bool {
		return req.CashierName == "Ana" && req.CashierEmail == "ana@example.com" && req.ShiftPeriod == domain.PeriodMorning
	}), suite.cashier).Return(sampleShift(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts", map[string]any{
		"date":        "2024-01-01",
		"shiftPeriod": "morning",
		"boxes": map[string]any{
			"counter":     map[string]any{"initialFund": "1000"},
			"gaming-desk": map[string]any{"initialFund": "500"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Equal("shift-1", suite.decode(w)["shiftID"])
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestStartShift_Duplicate() {
	suite.mockSvc.On("StartShift", mock.Anything, mock.Anything, suite.cashier).
		Return(nil, apperrors.ErrDuplicateActiveShift).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts", map[string]any{"date": "2024-01-01", "shiftPeriod": "morning"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(suite.decode(w)["error"], "open shift already exists")
}

func (suite *HandlerTestSuite) TestStartShift_ValidationDetails() {
	suite.mockSvc.On("StartShift", mock.Anything, mock.Anything, suite.cashier).
		Return(nil, apperrors.NewValidationError([]string{"date is required", "shiftPeriod must be one of: morning, afternoon"})).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts", map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decode(w)
	suite.Equal("Validation failed", body["error"])
	suite.Len(body["details"], 2)
}

func (suite *HandlerTestSuite) TestStartShift_RequiresToken() {
	suite.token = ""

	w := suite.do(http.MethodPost, "/api/v1/shifts", map[string]any{"date": "2024-01-01"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "StartShift", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestStartShift_RejectsForeignSignature() {
	token, err := utils.GenerateCashierJWT(suite.cashier, "Ana", "", "another-secret", time.Hour, "test")
	suite.Require().NoError(err)
	suite.token = token

	w := suite.do(http.MethodPost, "/api/v1/shifts", map[string]any{"date": "2024-01-01"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestGetShift_NotFound() {
	suite.mockSvc.On("GetShift", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/shifts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetActiveShift() {
	suite.mockSvc.On("GetActiveShift", mock.Anything, "2024-01-01", domain.PeriodMorning).Return(sampleShift(), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shifts/active?date=2024-01-01&period=morning", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("shift-1", suite.decode(w)["shiftID"])
}

func (suite *HandlerTestSuite) TestListShifts_RejectsOversizedLimit() {
	w := suite.do(http.MethodGet, "/api/v1/shifts?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ListShifts", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListShifts() {
	next := "token"
	suite.mockSvc.On("ListShifts", mock.Anything, mock.MatchedBy(func(p dto.ListShiftsParams) bool {
		return p.Limit == 5 && p.OnlyOpen
	})).Return(&dto.ListShiftsResponse{Shifts: dto.ToShiftResponses([]domain.Shift{*sampleShift()}), NextToken: &next}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shifts?limit=5&open=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Len(body["shifts"], 1)
	suite.Equal("token", body["nextToken"])
}

func (suite *HandlerTestSuite) TestCloseShift_MismatchNeedsConfirmation() {
	mismatch := domain.ReconciliationResult{
		Box:        domain.BoxCounter,
		Status:     domain.ReconciliationMismatch,
		Declared:   decimal.NewFromInt(300),
		Expected:   decimal.NewFromInt(345),
		Difference: decimal.NewFromInt(45),
		Direction:  domain.DirectionUnder,
	}
	results := []domain.ReconciliationResult{mismatch}
	suite.mockSvc.On("CloseShift", mock.Anything, "shift-1", mock.Anything, suite.cashier).
		Return(nil, results, &apperrors.ReconciliationError{Mismatches: results}).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts/shift-1/close", map[string]any{
		"boxes": map[string]any{"counter": map[string]any{"collectedCash": "345"}},
	})

	suite.Equal(http.StatusConflict, w.Code)
	body := suite.decode(w)
	mismatches, ok := body["mismatches"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(mismatches, 1)
	suite.Equal("under", mismatches[0].(map[string]any)["direction"])
}

func (suite *HandlerTestSuite) TestCloseShift_AlreadyClosed() {
	suite.mockSvc.On("CloseShift", mock.Anything, "shift-1", mock.Anything, suite.cashier).
		Return(nil, nil, apperrors.ErrShiftClosed).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts/shift-1/close", map[string]any{})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal(apperrors.ErrShiftClosed.Error(), suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestCloseShift_Success() {
	closed := sampleShift()
	closed.Closed = true
	results := []domain.ReconciliationResult{{Box: domain.BoxCounter, Status: domain.ReconciliationAccepted}}
	suite.mockSvc.On("CloseShift", mock.Anything, "shift-1", mock.MatchedBy(func(req dto.CloseShiftRequest) bool {
		return req.Boxes[domain.BoxCounter].AcceptOverride
	}), suite.cashier).Return(closed, results, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts/shift-1/close", map[string]any{
		"boxes": map[string]any{"counter": map[string]any{"collectedCash": "345", "acceptOverride": true}},
	})

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal(true, body["shift"].(map[string]any)["closed"])
	suite.Len(body["reconciliations"], 1)
}

func (suite *HandlerTestSuite) TestGetBoxBalance() {
	suite.mockSvc.On("GetBoxBalance", mock.Anything, "shift-1", domain.BoxCounter).Return(decimal.NewFromInt(345), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shifts/shift-1/balances/counter", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("345", suite.decode(w)["balance"])
}

func (suite *HandlerTestSuite) TestReconcileBox_RequiresBody() {
	w := suite.do(http.MethodPost, "/api/v1/shifts/shift-1/reconcile", map[string]any{"box": "counter"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "ReconcileBox", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestEvaluateBreakdown() {
	w := suite.do(http.MethodPost, "/api/v1/breakdowns/evaluate", map[string]any{
		"breakdown": map[string]any{"counts": map[string]int{"100": 3, "coin_5": 2}},
	})

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal("310", body["total"])
	suite.Equal("$100: 3, $5 (coin): 2", body["text"])
}

func (suite *HandlerTestSuite) TestEvaluateBreakdown_UnknownDenomination() {
	w := suite.do(http.MethodPost, "/api/v1/breakdowns/evaluate", map[string]any{
		"breakdown": map[string]any{"counts": map[string]int{"3": 1}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Len(suite.decode(w)["details"], 1)
}

func (suite *HandlerTestSuite) TestListDenominations() {
	w := suite.do(http.MethodGet, "/api/v1/breakdowns/denominations", nil)

	suite.Equal(http.StatusOK, w.Code)
	var denominations []domain.Denomination
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &denominations))
	suite.Len(denominations, len(domain.Denominations))
	suite.Equal("2000", denominations[0].Key)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
