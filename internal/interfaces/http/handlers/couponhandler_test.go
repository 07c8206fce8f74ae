package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/application/checkout/usecases"
)

type mockValidateCouponUseCase struct {
	mock.Mock
}

func (m *mockValidateCouponUseCase) Execute(ctx context.Context, code string, planID *uint) (*usecases.CouponValidationResult, error) {
	args := m.Called(ctx, code, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.CouponValidationResult), args.Error(1)
}

type mockGetCouponUseCase struct {
	mock.Mock
}

func (m *mockGetCouponUseCase) Execute(ctx context.Context, id uint) (*dto.CouponDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CouponDTO), args.Error(1)
}

type mockListCouponsUseCase struct {
	mock.Mock
}

func (m *mockListCouponsUseCase) Execute(ctx context.Context, planID *uint) ([]*dto.CouponDTO, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.CouponDTO), args.Error(1)
}

func newCouponRouter(validate *mockValidateCouponUseCase, get *mockGetCouponUseCase, list *mockListCouponsUseCase) *gin.Engine {
	handler := NewCouponHandler(validate, get, list)
	router := gin.New()
	router.POST("/coupons-validate", handler.ValidateCoupon)
	router.GET("/coupons", handler.ListCoupons)
	router.GET("/coupons/:id", handler.GetCoupon)
	return router
}

func TestValidateCouponEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		result   *usecases.CouponValidationResult
		wantCode int
	}{
		{"valid", &usecases.CouponValidationResult{Valid: true, Message: "Valid coupon."}, http.StatusOK},
		{"rejected", &usecases.CouponValidationResult{Valid: false, Message: "Expired coupon!"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate := new(mockValidateCouponUseCase)
			router := newCouponRouter(validate, new(mockGetCouponUseCase), new(mockListCouponsUseCase))

			planID := uint(1)
			validate.On("Execute", mock.Anything, "OFF10", &planID).Return(tt.result, nil)

			w := performJSON(t, router, http.MethodPost, "/coupons-validate", gin.H{
				"coupon":  "OFF10",
				"plan_id": 1,
			})

			// The validation answer is a bare {valid, message} document,
			// not wrapped in the standard envelope.
			assert.Equal(t, tt.wantCode, w.Code)
			var body usecases.CouponValidationResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, *tt.result, body)
		})
	}
}

func TestValidateCouponEndpointPlanOptional(t *testing.T) {
	validate := new(mockValidateCouponUseCase)
	router := newCouponRouter(validate, new(mockGetCouponUseCase), new(mockListCouponsUseCase))

	validate.On("Execute", mock.Anything, "OFF10", (*uint)(nil)).
		Return(&usecases.CouponValidationResult{Valid: true, Message: "Valid coupon."}, nil)

	w := performJSON(t, router, http.MethodPost, "/coupons-validate", gin.H{
		"coupon": "OFF10",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	validate.AssertExpectations(t)
}

func TestValidateCouponEndpointRequiresCode(t *testing.T) {
	validate := new(mockValidateCouponUseCase)
	router := newCouponRouter(validate, new(mockGetCouponUseCase), new(mockListCouponsUseCase))

	w := performJSON(t, router, http.MethodPost, "/coupons-validate", gin.H{
		"plan_id": 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	validate.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestListCouponsEndpoint(t *testing.T) {
	list := new(mockListCouponsUseCase)
	router := newCouponRouter(new(mockValidateCouponUseCase), new(mockGetCouponUseCase), list)

	list.On("Execute", mock.Anything, (*uint)(nil)).Return([]*dto.CouponDTO{{ID: 5, Name: "OFF10"}}, nil)

	w := performJSON(t, router, http.MethodGet, "/coupons", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	assert.Len(t, body["data"], 1)
}

func TestListCouponsEndpointFilteredByPlan(t *testing.T) {
	list := new(mockListCouponsUseCase)
	router := newCouponRouter(new(mockValidateCouponUseCase), new(mockGetCouponUseCase), list)

	planID := uint(1)
	list.On("Execute", mock.Anything, &planID).Return([]*dto.CouponDTO{}, nil)

	w := performJSON(t, router, http.MethodGet, "/coupons?plan_id=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	list.AssertExpectations(t)
}

func TestListCouponsEndpointRejectsBadPlanID(t *testing.T) {
	list := new(mockListCouponsUseCase)
	router := newCouponRouter(new(mockValidateCouponUseCase), new(mockGetCouponUseCase), list)

	w := performJSON(t, router, http.MethodGet, "/coupons?plan_id=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	list.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestGetCouponEndpoint(t *testing.T) {
	get := new(mockGetCouponUseCase)
	router := newCouponRouter(new(mockValidateCouponUseCase), get, new(mockListCouponsUseCase))

	get.On("Execute", mock.Anything, uint(5)).Return(&dto.CouponDTO{ID: 5, Name: "OFF10"}, nil)

	w := performJSON(t, router, http.MethodGet, "/coupons/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	data := body["data"].(map[string]any)
	assert.Equal(t, "OFF10", data["name"])
}
