package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func sampleMovement() *domain.Movement {
	return &domain.Movement{
		MovementID:  "mov-1",
		ShiftID:     "shift-1",
		Box:         domain.BoxCounter,
		Type:        domain.Inflow,
		Amount:      decimal.NewFromInt(100),
		Reason:      "sale",
		Moment:      domain.MomentDuring,
		AuditFields: domain.NewAuditFields("cashier-1", time.Now()),
	}
}

func (suite *HandlerTestSuite) TestRecordMovement_Created() {
	suite.mockSvc.On("RecordMovement", mock.Anything, "shift-1", mock.MatchedBy(func(req dto.MovementRequest) bool {
		return req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(100)) && req.Type == domain.Inflow
	}), suite.cashier).Return(sampleMovement(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts/shift-1/movements", map[string]any{
		"box": "counter", "type": "inflow", "amount": "100", "reason": "sale",
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	body := suite.decode(w)
	suite.Equal("mov-1", body["movementID"])
	suite.Equal("during", body["moment"])
}

func (suite *HandlerTestSuite) TestRecordMovement_ShiftClosed() {
	suite.mockSvc.On("RecordMovement", mock.Anything, "shift-1", mock.Anything, suite.cashier).
		Return(nil, apperrors.ErrShiftClosed).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts/shift-1/movements", map[string]any{
		"box": "counter", "type": "inflow", "amount": "10", "reason": "late sale",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestRecordMovement_MalformedAmount() {
	w := suite.do(http.MethodPost, "/api/v1/shifts/shift-1/movements", map[string]any{
		"box": "counter", "type": "inflow", "amount": "ten",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "RecordMovement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListMovements() {
	suite.mockSvc.On("ListMovements", mock.Anything, "shift-1").Return([]domain.Movement{*sampleMovement()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/shifts/shift-1/movements", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"movementID":"mov-1"`)
}

func (suite *HandlerTestSuite) TestUpdateMovement() {
	updated := sampleMovement()
	updated.Amount = decimal.NewFromInt(80)
	suite.mockSvc.On("UpdateMovement", mock.Anything, "mov-1", mock.Anything, suite.cashier).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/movements/mov-1", map[string]any{
		"box": "counter", "type": "inflow", "amount": "80", "reason": "sale",
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("80", suite.decode(w)["amount"])
}

func (suite *HandlerTestSuite) TestDeleteMovement() {
	suite.mockSvc.On("DeleteMovement", mock.Anything, "mov-1", suite.cashier).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/movements/mov-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDeleteMovement_NotFound() {
	suite.mockSvc.On("DeleteMovement", mock.Anything, "gone", suite.cashier).Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/movements/gone", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestRecordIncident() {
	amount := decimal.NewFromInt(5)
	incident := &domain.Incident{
		IncidentID:  "inc-1",
		ShiftID:     "shift-1",
		Type:        domain.IncidentIncompletePayment,
		Box:         domain.BoxCounter,
		Description: "customer left 5 short",
		Amount:      &amount,
	}
	suite.mockSvc.On("RecordIncident", mock.Anything, "shift-1", mock.Anything, suite.cashier).Return(incident, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/shifts/shift-1/incidents", map[string]any{
		"type": "customer-incomplete-payment", "box": "counter", "description": "customer left 5 short", "amount": "5",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("customer-incomplete-payment", suite.decode(w)["displayType"])
}

func (suite *HandlerTestSuite) TestGetIncident_NotFound() {
	suite.mockSvc.On("GetIncident", mock.Anything, "inc-x").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/incidents/inc-x", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}
