package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpdelivery "github.com/TukaHeba/Optional-Task6/internal/delivery/http"
	"github.com/TukaHeba/Optional-Task6/internal/models"
	"github.com/TukaHeba/Optional-Task6/internal/service"
)

type customerSvcStub struct {
	list   func(f models.CustomerFilter, page, perPage int) (service.CustomerPage, error)
	create func(c models.Customer) (models.Customer, error)
	show   func(id uint) (models.Customer, error)
	update func(id uint, updates map[string]interface{}) (models.Customer, error)
	delete func(id uint) error
	exists func(id uint) (bool, error)
}

func (s *customerSvcStub) ListCustomers(f models.CustomerFilter, page, perPage int) (service.CustomerPage, error) {
	return s.list(f, page, perPage)
}
func (s *customerSvcStub) CreateCustomer(c models.Customer) (models.Customer, error) {
	return s.create(c)
}
func (s *customerSvcStub) ShowCustomer(id uint) (models.Customer, error) { return s.show(id) }
func (s *customerSvcStub) UpdateCustomer(id uint, updates map[string]interface{}) (models.Customer, error) {
	return s.update(id, updates)
}
func (s *customerSvcStub) DeleteCustomer(id uint) error { return s.delete(id) }
func (s *customerSvcStub) CustomerExists(id uint) (bool, error) {
	if s.exists != nil {
		return s.exists(id)
	}
	return true, nil
}

type orderSvcStub struct {
	list   func(f models.OrderFilter, page, perPage int) (service.OrderPage, error)
	create func(o models.Order) (models.Order, error)
	show   func(id uint) (models.Order, error)
	update func(id uint, updates map[string]interface{}) (models.Order, error)
	delete func(id uint) error
	place  func(customerID uint, o models.Order) (models.Order, error)
}

func (s *orderSvcStub) ListOrders(f models.OrderFilter, page, perPage int) (service.OrderPage, error) {
	return s.list(f, page, perPage)
}
func (s *orderSvcStub) CreateOrder(o models.Order) (models.Order, error) { return s.create(o) }
func (s *orderSvcStub) ShowOrder(id uint) (models.Order, error)          { return s.show(id) }
func (s *orderSvcStub) UpdateOrder(id uint, updates map[string]interface{}) (models.Order, error) {
	return s.update(id, updates)
}
func (s *orderSvcStub) DeleteOrder(id uint) error { return s.delete(id) }
func (s *orderSvcStub) PlaceOrder(customerID uint, o models.Order) (models.Order, error) {
	return s.place(customerID, o)
}

var _ service.Customer = (*customerSvcStub)(nil)
var _ service.Order = (*orderSvcStub)(nil)

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
}

func doJSON(t *testing.T, router http.Handler, method, target string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func validOrderBody() map[string]interface{} {
	return map[string]interface{}{
		"product_name": "Blue Shirt",
		"quantity":     3,
		"price":        19.99,
		"status":       "pending",
		"customer_id":  1,
		"order_date":   futureDate(),
	}
}

func TestListCustomers_EnvelopeAndMeta(t *testing.T) {
	customers := &customerSvcStub{
		list: func(f models.CustomerFilter, page, perPage int) (service.CustomerPage, error) {
			require.Equal(t, "completed", f.OrderStatus)
			require.NotNil(t, f.StartDate)
			require.NotNil(t, f.EndDate)
			return service.CustomerPage{
				Customers:  []models.Customer{{ID: 1, Name: "Alice"}},
				Pagination: service.Pagination{Total: 1, PerPage: 5, CurrentPage: 1, LastPage: 1},
			}, nil
		},
	}
	h := httpdelivery.NewHandler(customers, &orderSvcStub{})
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodGet,
		"/api/customers?status=completed&startDate=2025-01-01&endDate=2025-02-01", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)
	require.Equal(t, 200, env.StatusCode)
	require.Equal(t, "Customers retrieved successfully", env.Message)

	var data struct {
		Items []map[string]interface{} `json:"items"`
		Meta  service.Pagination       `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Items, 1)
	require.Equal(t, 1, data.Meta.Total)
}

func TestCreateCustomer_ValidationFailure_403(t *testing.T) {
	h := httpdelivery.NewHandler(&customerSvcStub{}, &orderSvcStub{})
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodPost, "/api/customers",
		map[string]interface{}{"email": "bob@example.com"})

	require.Equal(t, http.StatusForbidden, w.Code)
	require.False(t, env.Success)
	require.Equal(t, 403, env.StatusCode)

	var msgs []string
	require.NoError(t, json.Unmarshal(env.Data, &msgs))
	require.Equal(t, []string{
		"The name field is required.",
		"The phone field is required.",
	}, msgs)
}

func TestCreateCustomer_Created_201(t *testing.T) {
	customers := &customerSvcStub{
		create: func(c models.Customer) (models.Customer, error) {
			c.ID = 10
			return c, nil
		},
	}
	h := httpdelivery.NewHandler(customers, &orderSvcStub{})
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodPost, "/api/customers",
		map[string]interface{}{"name": "Bob", "email": "bob@example.com", "phone": "0555"})

	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)
	require.Equal(t, "Customer created successfully", env.Message)
}

func TestGetCustomerById_NotFound_404(t *testing.T) {
	customers := &customerSvcStub{
		show: func(id uint) (models.Customer, error) { return models.Customer{}, service.ErrNotFound },
	}
	h := httpdelivery.NewHandler(customers, &orderSvcStub{})
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodGet, "/api/customers/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.False(t, env.Success)
	require.Equal(t, "customer not found", env.Message)
}

func TestGetCustomerById_IncludesOrders(t *testing.T) {
	orderDate := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	customers := &customerSvcStub{
		show: func(id uint) (models.Customer, error) {
			return models.Customer{
				ID:   1,
				Name: "Alice",
				Orders: []models.Order{
					{ID: 2, ProductName: "Pen", OrderDate: orderDate, CustomerID: 1},
				},
			}, nil
		},
	}
	h := httpdelivery.NewHandler(customers, &orderSvcStub{})
	r := h.InitRoutes()

	_, env := doJSON(t, r, http.MethodGet, "/api/customers/1", nil)

	var data struct {
		Orders []struct {
			OrderDate string `json:"order_date"`
		} `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Orders, 1)
	require.Equal(t, "15-03-2025", data.Orders[0].OrderDate)
}

func TestUpdateCustomer_StoreFailure_500_Generic(t *testing.T) {
	customers := &customerSvcStub{
		update: func(id uint, updates map[string]interface{}) (models.Customer, error) {
			return models.Customer{}, service.ErrInternal
		},
	}
	h := httpdelivery.NewHandler(customers, &orderSvcStub{})
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodPatch, "/api/customers/1",
		map[string]interface{}{"name": "Bob"})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "an error occurred on the server", env.Message)
}

func TestListOrders_StoreFailure_500_Generic(t *testing.T) {
	orders := &orderSvcStub{
		list: func(f models.OrderFilter, page, perPage int) (service.OrderPage, error) {
			return service.OrderPage{}, service.ErrInternal
		},
	}
	h := httpdelivery.NewHandler(&customerSvcStub{}, orders)
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.False(t, env.Success)
	require.Equal(t, "an error occurred on the server", env.Message)
}

func TestDeleteCustomer_SecondDeleteIs404(t *testing.T) {
	customers := &customerSvcStub{
		delete: func(id uint) error { return service.ErrNotFound },
	}
	h := httpdelivery.NewHandler(customers, &orderSvcStub{})
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodDelete, "/api/customers/42", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.False(t, env.Success)
}

func TestCreateOrder_RendersDisplayDate(t *testing.T) {
	orders := &orderSvcStub{
		create: func(o models.Order) (models.Order, error) {
			o.ID = 5
			return o, nil
		},
	}
	h := httpdelivery.NewHandler(&customerSvcStub{}, orders)
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		OrderDate string `json:"order_date"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	want, err := time.Parse("2006-01-02", futureDate())
	require.NoError(t, err)
	require.Equal(t, want.Format("02-01-2006"), data.OrderDate)
}

func TestCreateOrder_PastDate_403(t *testing.T) {
	h := httpdelivery.NewHandler(&customerSvcStub{}, &orderSvcStub{})
	r := h.InitRoutes()

	body := validOrderBody()
	body["order_date"] = "2020-01-01"

	w, env := doJSON(t, r, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusForbidden, w.Code)

	var msgs []string
	require.NoError(t, json.Unmarshal(env.Data, &msgs))
	require.Contains(t, msgs, "The order date must be a date after or equal to today.")
}

func TestCreateOrder_UnknownCustomerInPayload_403(t *testing.T) {
	customers := &customerSvcStub{
		exists: func(id uint) (bool, error) { return false, nil },
	}
	h := httpdelivery.NewHandler(customers, &orderSvcStub{})
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodPost, "/api/orders", validOrderBody())
	require.Equal(t, http.StatusForbidden, w.Code)

	var msgs []string
	require.NoError(t, json.Unmarshal(env.Data, &msgs))
	require.Equal(t, []string{"The selected customer ID is invalid."}, msgs)
}

func TestListOrders_ProductFilterPassedThrough(t *testing.T) {
	orders := &orderSvcStub{
		list: func(f models.OrderFilter, page, perPage int) (service.OrderPage, error) {
			require.Equal(t, "shirt", f.Product)
			require.Equal(t, 2, page)
			require.Equal(t, 10, perPage)
			return service.OrderPage{}, nil
		},
	}
	h := httpdelivery.NewHandler(&customerSvcStub{}, orders)
	r := h.InitRoutes()

	w, _ := doJSON(t, r, http.MethodGet, "/api/orders?product_name=shirt&page=2&perPage=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMakeOrder_UsesQueryCustomerId(t *testing.T) {
	var gotCustomerID uint
	var gotPayloadCustomer uint
	orders := &orderSvcStub{
		place: func(customerID uint, o models.Order) (models.Order, error) {
			gotCustomerID = customerID
			gotPayloadCustomer = o.CustomerID
			o.ID = 1
			o.CustomerID = customerID
			return o, nil
		},
	}
	h := httpdelivery.NewHandler(&customerSvcStub{}, orders)
	r := h.InitRoutes()

	body := validOrderBody()
	body["customer_id"] = 7

	w, env := doJSON(t, r, http.MethodPost, "/api/make_order?customerId=42", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Order placed successfully", env.Message)
	require.Equal(t, uint(42), gotCustomerID)
	require.Equal(t, uint(7), gotPayloadCustomer)
}

func TestMakeOrder_UnknownCustomer_404(t *testing.T) {
	orders := &orderSvcStub{
		place: func(customerID uint, o models.Order) (models.Order, error) {
			return models.Order{}, service.ErrNotFound
		},
	}
	h := httpdelivery.NewHandler(&customerSvcStub{}, orders)
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodPost, "/api/make_order?customerId=42", validOrderBody())
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "customer not found", env.Message)
}

func TestMakeOrder_MissingCustomerId_400(t *testing.T) {
	h := httpdelivery.NewHandler(&customerSvcStub{}, &orderSvcStub{})
	r := h.InitRoutes()

	w, _ := doJSON(t, r, http.MethodPost, "/api/make_order", validOrderBody())
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrder_MergePatchBody(t *testing.T) {
	var gotUpdates map[string]interface{}
	orders := &orderSvcStub{
		update: func(id uint, updates map[string]interface{}) (models.Order, error) {
			gotUpdates = updates
			return models.Order{ID: id, Status: "completed"}, nil
		},
	}
	h := httpdelivery.NewHandler(&customerSvcStub{}, orders)
	r := h.InitRoutes()

	w, _ := doJSON(t, r, http.MethodPatch, "/api/orders/5",
		map[string]interface{}{"status": "completed", "product_name": nil})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, map[string]interface{}{"status": "completed"}, gotUpdates)
}

func TestUnknownApiRoute_404Envelope(t *testing.T) {
	h := httpdelivery.NewHandler(&customerSvcStub{}, &orderSvcStub{})
	r := h.InitRoutes()

	w, env := doJSON(t, r, http.MethodGet, "/api/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.False(t, env.Success)
}

func TestInvalidId_400(t *testing.T) {
	h := httpdelivery.NewHandler(&customerSvcStub{}, &orderSvcStub{})
	r := h.InitRoutes()

	w, _ := doJSON(t, r, http.MethodGet, "/api/customers/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		err := s.Run(":0", handler)
		if err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
}
