package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	producterrors "github.com/nidhis234/electronicsstore/internal/errors"
	"github.com/nidhis234/electronicsstore/internal/service"
	"github.com/stretchr/testify/assert"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product   *service.ProductDto
	products  []service.ProductDto
	inventory int32
	error     error
}

func (m *mockProductService) Add(_ context.Context, _ service.ProductCreateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) UpdateInventory(_ context.Context, _ string, _ int32) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) UpdateProduct(_ context.Context, _ string, _ service.ProductUpdateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) FindByProductID(_ context.Context, _ string) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) FindAll(_ context.Context) ([]service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductService) InventoryCount(_ context.Context, _ string) (int32, error) {
	if m.error != nil {
		return 0, m.error
	}
	return m.inventory, nil
}

func (m *mockProductService) Remove(_ context.Context, _ string) error {
	return m.error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func newTestHandler(mockService service.ProductService) *Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandler(mockService, logger)
}

var cableDto = service.ProductDto{
	ProductID:    "A1",
	Name:         "Cable",
	Manufacturer: "Acme",
	Price:        9.99,
	Inventory:    5,
}

func Test_StoreAPI_AddNewProduct(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product added",
			mockService:  mockProductService{product: &cableDto},
			body:         toJSON(t, cableDto),
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, cableDto),
		},
		{
			name:         "Error - duplicate product id",
			mockService:  mockProductService{error: producterrors.ErrProductAlreadyExists},
			body:         toJSON(t, cableDto),
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with id A1 already exists"}),
		},
		{
			name:         "Error - invalid request body",
			mockService:  mockProductService{},
			body:         "{not json",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid request body"}),
		},
		{
			name:         "Error - missing product id",
			mockService:  mockProductService{},
			body:         `{"name":"Cable","price":9.99,"inventory":5}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"ProductID":"failed on rule: required"}}`,
		},
		{
			name:         "Error - negative price",
			mockService:  mockProductService{},
			body:         `{"productId":"A1","name":"Cable","price":-1,"inventory":5}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"Price":"failed on rule: gte"}}`,
		},
		{
			name:         "Error - negative inventory",
			mockService:  mockProductService{},
			body:         `{"productId":"A1","name":"Cable","price":9.99,"inventory":-5}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"Inventory":"failed on rule: gte"}}`,
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			body:         toJSON(t, cableDto),
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to add product"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPost, "/v1/addNewProduct", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			// when
			api.AddNewProduct(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_StoreAPI_UpdateInventory(t *testing.T) {
	updatedCable := cableDto
	updatedCable.Inventory = 20

	testCases := []struct {
		name         string
		mockService  mockProductService
		pid          string
		quantity     string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - inventory updated",
			mockService:  mockProductService{product: &updatedCable},
			pid:          "A1",
			quantity:     "20",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, updatedCable),
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{error: producterrors.ErrProductNotFound},
			pid:          "A1",
			quantity:     "20",
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with id A1 not found"}),
		},
		{
			name:         "Error - quantity not a number",
			mockService:  mockProductService{},
			pid:          "A1",
			quantity:     "lots",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid quantity number: lots"}),
		},
		{
			name:         "Error - quantity must be positive",
			mockService:  mockProductService{},
			pid:          "A1",
			quantity:     "0",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid quantity number: 0"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			pid:          "A1",
			quantity:     "20",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to update inventory for product A1"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPut, "/v1/updateInventory/"+tc.pid+"/"+tc.quantity, nil)
			req.SetPathValue("pid", tc.pid)
			req.SetPathValue("quantity", tc.quantity)
			rr := httptest.NewRecorder()

			// when
			api.UpdateInventory(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_StoreAPI_UpdateProduct(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		pid          string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product updated",
			mockService:  mockProductService{product: &cableDto},
			pid:          "A1",
			body:         toJSON(t, cableDto),
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, cableDto),
		},
		{
			name:         "Error - product not found (or id mismatch)",
			mockService:  mockProductService{error: producterrors.ErrProductNotFound},
			pid:          "A1",
			body:         toJSON(t, cableDto),
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with id A1 not found"}),
		},
		{
			name:         "Error - missing name",
			mockService:  mockProductService{},
			pid:          "A1",
			body:         `{"productId":"A1","price":9.99,"inventory":5}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"validation_errors":{"Name":"failed on rule: required"}}`,
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			pid:          "A1",
			body:         toJSON(t, cableDto),
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to update product A1"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPut, "/v1/updateProduct/"+tc.pid, strings.NewReader(tc.body))
			req.SetPathValue("pid", tc.pid)
			rr := httptest.NewRecorder()

			// when
			api.UpdateProduct(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_StoreAPI_GetProductByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		pid          string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product found",
			mockService:  mockProductService{product: &cableDto},
			pid:          "A1",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, cableDto),
		},
		{
			name:         "Error - product not found",
			mockService:  mockProductService{error: producterrors.ErrProductNotFound},
			pid:          "A1",
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with id A1 not found"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			pid:          "A1",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to retrieve product A1"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/v1/product/"+tc.pid, nil)
			req.SetPathValue("pid", tc.pid)
			rr := httptest.NewRecorder()

			// when
			api.GetProductByID(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_StoreAPI_GetAllProducts(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - products found",
			mockService:  mockProductService{products: []service.ProductDto{cableDto}},
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, []service.ProductDto{cableDto}),
		},
		{
			name:         "Error - empty catalog maps to 404",
			mockService:  mockProductService{error: producterrors.ErrNoProductsFound},
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "No products present"}),
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to fetch products"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
			rr := httptest.NewRecorder()

			// when
			api.GetAllProducts(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_StoreAPI_GetInventory(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		pid          string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - inventory returned as plain integer",
			mockService:  mockProductService{inventory: 5},
			pid:          "A1",
			expectedCode: http.StatusOK,
			expectedBody: "5",
		},
		{
			name:         "Success - missing product yields zero",
			mockService:  mockProductService{inventory: 0},
			pid:          "missing",
			expectedCode: http.StatusOK,
			expectedBody: "0",
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			pid:          "A1",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to retrieve inventory for product A1"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/v1/inventory/"+tc.pid, nil)
			req.SetPathValue("pid", tc.pid)
			rr := httptest.NewRecorder()

			// when
			api.GetInventory(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_StoreAPI_RemoveProduct(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockProductService
		pid          string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product removed",
			mockService:  mockProductService{},
			pid:          "A1",
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Success - removing a nonexistent product is 204 too",
			mockService:  mockProductService{},
			pid:          "missing",
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Error - service error",
			mockService:  mockProductService{error: errors.New("db down")},
			pid:          "A1",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to remove product A1"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodDelete, "/v1/product/"+tc.pid, nil)
			req.SetPathValue("pid", tc.pid)
			rr := httptest.NewRecorder()

			// when
			api.RemoveProduct(rr, req)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func Test_StoreAPI_HealthCheck(t *testing.T) {
	api := newTestHandler(&mockProductService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	api.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
