package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/caixa-inc/caixa/internal/application/checkout/dto"
	"github.com/caixa-inc/caixa/internal/application/checkout/usecases"
	apperrors "github.com/caixa-inc/caixa/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockCreateSubscriptionUseCase struct {
	mock.Mock
}

func (m *mockCreateSubscriptionUseCase) Execute(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubscriptionDTO), args.Error(1)
}

type mockGetSubscriptionUseCase struct {
	mock.Mock
}

func (m *mockGetSubscriptionUseCase) Execute(ctx context.Context, id uint) (*dto.SubscriptionDetailDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubscriptionDetailDTO), args.Error(1)
}

type mockListSubscriptionsUseCase struct {
	mock.Mock
}

func (m *mockListSubscriptionsUseCase) Execute(ctx context.Context) ([]*dto.SubscriptionDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.SubscriptionDTO), args.Error(1)
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newSubscriptionRouter(create *mockCreateSubscriptionUseCase, get *mockGetSubscriptionUseCase, list *mockListSubscriptionsUseCase) *gin.Engine {
	handler := NewSubscriptionHandler(create, get, list)
	router := gin.New()
	router.POST("/subscriptions", handler.CreateSubscription)
	router.GET("/subscriptions", handler.ListSubscriptions)
	router.GET("/subscriptions/:id", handler.GetSubscription)
	return router
}

func TestCreateSubscriptionEndpoint(t *testing.T) {
	create := new(mockCreateSubscriptionUseCase)
	router := newSubscriptionRouter(create, new(mockGetSubscriptionUseCase), new(mockListSubscriptionsUseCase))

	create.On("Execute", mock.Anything, usecases.CreateSubscriptionCommand{
		PlanID: 1,
		Email:  "client@example.com",
	}).Return(&dto.SubscriptionDTO{ID: 10, PlanID: 1, Email: "client@example.com", PricePaid: "49.90"}, nil)

	w := performJSON(t, router, http.MethodPost, "/subscriptions", gin.H{
		"plan_id": 1,
		"email":   "client@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(10), data["id"])
	create.AssertExpectations(t)
}

func TestCreateSubscriptionEndpointInvalidBody(t *testing.T) {
	create := new(mockCreateSubscriptionUseCase)
	router := newSubscriptionRouter(create, new(mockGetSubscriptionUseCase), new(mockListSubscriptionsUseCase))

	w := performJSON(t, router, http.MethodPost, "/subscriptions", gin.H{
		"plan_id": 1,
		"email":   "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	create.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCreateSubscriptionEndpointBusinessRejection(t *testing.T) {
	create := new(mockCreateSubscriptionUseCase)
	router := newSubscriptionRouter(create, new(mockGetSubscriptionUseCase), new(mockListSubscriptionsUseCase))

	create.On("Execute", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewUnprocessableError("Invalid coupon!"))

	w := performJSON(t, router, http.MethodPost, "/subscriptions", gin.H{
		"plan_id": 1,
		"email":   "client@example.com",
		"coupon":  "NOPE",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeResponse(t, w)
	assert.Equal(t, false, body["success"])
	errInfo := body["error"].(map[string]any)
	assert.Equal(t, "Invalid coupon!", errInfo["message"])
}

func TestGetSubscriptionEndpoint(t *testing.T) {
	get := new(mockGetSubscriptionUseCase)
	router := newSubscriptionRouter(new(mockCreateSubscriptionUseCase), get, new(mockListSubscriptionsUseCase))

	get.On("Execute", mock.Anything, uint(10)).Return(&dto.SubscriptionDetailDTO{
		SubscriptionDTO: dto.SubscriptionDTO{ID: 10, PlanID: 1, Email: "client@example.com"},
	}, nil)

	w := performJSON(t, router, http.MethodGet, "/subscriptions/10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetSubscriptionEndpointNotFound(t *testing.T) {
	get := new(mockGetSubscriptionUseCase)
	router := newSubscriptionRouter(new(mockCreateSubscriptionUseCase), get, new(mockListSubscriptionsUseCase))

	get.On("Execute", mock.Anything, uint(99)).
		Return(nil, apperrors.NewNotFoundError("Subscription not found."))

	w := performJSON(t, router, http.MethodGet, "/subscriptions/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSubscriptionEndpointInvalidID(t *testing.T) {
	get := new(mockGetSubscriptionUseCase)
	router := newSubscriptionRouter(new(mockCreateSubscriptionUseCase), get, new(mockListSubscriptionsUseCase))

	w := performJSON(t, router, http.MethodGet, "/subscriptions/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	get.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestListSubscriptionsEndpoint(t *testing.T) {
	list := new(mockListSubscriptionsUseCase)
	router := newSubscriptionRouter(new(mockCreateSubscriptionUseCase), new(mockGetSubscriptionUseCase), list)

	list.On("Execute", mock.Anything).Return([]*dto.SubscriptionDTO{
		{ID: 10, PlanID: 1, Email: "a@example.com"},
		{ID: 11, PlanID: 2, Email: "b@example.com"},
	}, nil)

	w := performJSON(t, router, http.MethodGet, "/subscriptions", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	assert.Len(t, body["data"], 2)
}
