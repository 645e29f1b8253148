package orders

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/azazahmad08/kayesbackend/models"
	"github.com/azazahmad08/kayesbackend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	mu       sync.Mutex
	products map[uint]*models.Product
	err      error
	lookups  int
}

func (f *fakeCatalog) FindByID(_ context.Context, id uint) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeCatalog) FindByCode(_ context.Context, code string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeOrderStore struct {
	mu        sync.Mutex
	nextID    uint
	orders    map[uint]*models.Order
	createErr error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{nextID: 1, orders: map[uint]*models.Order{}}
}

func (f *fakeOrderStore) Create(_ context.Context, o *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	o.ID = f.nextID
	f.nextID++
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id uint) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderStore) Replace(_ context.Context, o *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	o.Status = status
	cp := *o
	return &cp, nil
}

func (f *fakeOrderStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

func ptr(v float64) *float64 { return &v }

func testCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[uint]*models.Product{
		1: {
			ID: 1, Code: "SHIRT-01", Title: "Printed Shirt",
			Price: 100, PriceAfterDiscount: ptr(80),
			ImageURL:   "/uploads/products/shirt01.jpg",
			Categories: models.StringList{"men", "featured"},
			Sizes:      models.StringList{"M", "L", "XL"},
		},
		2: {
			ID: 2, Code: "PANT-02", Title: "Denim Pant",
			Price:    250,
			ImageURL: "/uploads/products/pant02.jpg",
		},
		3: {
			ID: 3, Code: "CAP-03", Title: "Baseball Cap",
			Price: 50, PriceAfterDiscount: ptr(0),
		},
	}}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	catalog := testCatalog()
	st := newFakeOrderStore()
	svc := NewService(catalog, st, nil)

	for _, req := range []CreateOrderRequest{
		{},
		{Products: []CartLine{}},
	} {
		_, err := svc.CreateOrder(context.Background(), req)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.EqualError(t, err, "products are required")
	}

	// Rejected before any catalog access and before any write.
	assert.Equal(t, 0, catalog.lookups)
	assert.Equal(t, 0, st.count())
}

func TestCreateOrder_UsesDiscountedPrice(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{{ProductID: "1", Quantity: 2.0}},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 80.0, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 160.0, order.TotalValue)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestCreateOrder_FallsBackToRegularPrice(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{{ProductID: "2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 250.0, order.Items[0].Price)
	assert.Equal(t, 250.0, order.TotalValue)
}

func TestCreateOrder_ZeroDiscountIsAPrice(t *testing.T) {
	// priceAfterDiscount == 0 is a real (free) price, not "absent".
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{{ProductID: "3", Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, order.Items[0].Price)
	assert.Equal(t, 0.0, order.TotalValue)
}

func TestCreateOrder_QuantityNormalization(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	cases := []struct {
		name string
		qty  any
		want int
	}{
		{"absent", nil, 1},
		{"zero", 0.0, 1},
		{"negative", -3.0, 1},
		{"non-numeric string", "abc", 1},
		{"numeric string", "4", 4},
		{"number", 3.0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
				Products: []CartLine{{ProductID: "2", Quantity: tc.qty}},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, order.Items[0].Quantity)
			assert.Equal(t, 250.0*float64(tc.want), order.TotalValue)
		})
	}
}

func TestCreateOrder_UnknownProductAbortsWholeOrder(t *testing.T) {
	st := newFakeOrderStore()
	svc := NewService(testCatalog(), st, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{
			{ProductID: "1"},
			{ProductID: "999"},
		},
	})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "999")
	assert.Equal(t, 0, st.count(), "no partial order may be persisted")
}

func TestCreateOrder_InvalidProductID(t *testing.T) {
	st := newFakeOrderStore()
	svc := NewService(testCatalog(), st, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{
			{ProductID: "1"},
			{ProductID: "not-an-id"},
		},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "not-an-id")
	assert.Equal(t, 0, st.count())
}

func TestCreateOrder_MissingProductID(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{{Quantity: 2.0}},
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "productId is required")
}

func TestCreateOrder_LineOrderMatchesInput(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{
			{ProductID: "3"},
			{ProductID: "1"},
			{ProductID: "2"},
		},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 3)
	assert.Equal(t, "CAP-03", order.Items[0].Code)
	assert.Equal(t, "SHIRT-01", order.Items[1].Code)
	assert.Equal(t, "PANT-02", order.Items[2].Code)
}

func TestCreateOrder_SnapshotPrecedence(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{
			{
				ProductID: "1",
				Size:      "L",
				Color:     "  navy  ",
				Category:  "new-arrival",
				ImageURL:  "/uploads/custom/navy.jpg",
				CustomFields: models.JSONMap{
					"giftWrap": true,
				},
			},
			{ProductID: "1"}, // no overrides: falls back to the product
			{ProductID: "2"}, // product without categories
		},
		Color: " red ",
	})
	require.NoError(t, err)

	withOverrides := order.Items[0]
	assert.Equal(t, "new-arrival", withOverrides.Category, "cart category override wins")
	assert.Equal(t, "/uploads/custom/navy.jpg", withOverrides.ImageURL, "cart image override wins")
	assert.Equal(t, "navy", withOverrides.Color, "line color is trimmed")
	assert.Equal(t, "L", withOverrides.Size)
	assert.Equal(t, models.JSONMap{"giftWrap": true}, withOverrides.CustomFields)

	fallback := order.Items[1]
	assert.Equal(t, "men", fallback.Category, "falls back to the product's first category")
	assert.Equal(t, "/uploads/products/shirt01.jpg", fallback.ImageURL)
	assert.Equal(t, "", fallback.Color)

	noCategory := order.Items[2]
	assert.Equal(t, "", noCategory.Category)

	// Order-level color is trimmed and independent of any line color.
	assert.Equal(t, "red", order.Color)
}

func TestCreateOrder_SnapshotCopiesProductData(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{{ProductID: "1"}},
	})
	require.NoError(t, err)

	item := order.Items[0]
	assert.Equal(t, uint(1), item.ProductID)
	assert.Equal(t, "Printed Shirt", item.Title)
	assert.Equal(t, "SHIRT-01", item.Code)
	assert.NotEmpty(t, order.OrderRef)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateOrder_DeliveryCharge(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	cases := []struct {
		name   string
		charge any
		want   float64
	}{
		{"absent", nil, 0},
		{"number", 60.0, 60},
		{"numeric string", "60", 60},
		{"garbage", "free", 0},
		{"negative", -10.0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
				Products:       []CartLine{{ProductID: "2"}},
				DeliveryCharge: tc.charge,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, order.DeliveryCharge)
			// totalValue is the sum over lines only; the charge is separate.
			assert.Equal(t, 250.0, order.TotalValue)
		})
	}
}

func TestCreateOrder_CatalogFailureIsStoreError(t *testing.T) {
	catalog := testCatalog()
	catalog.err = errors.New("connection refused")
	st := newFakeOrderStore()
	svc := NewService(catalog, st, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{{ProductID: "1"}},
	})
	require.Error(t, err)
	var se *StoreError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, 0, st.count())
}

func TestCreateOrder_PersistFailureIsStoreError(t *testing.T) {
	st := newFakeOrderStore()
	st.createErr = errors.New("write timeout")
	svc := NewService(testCatalog(), st, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{{ProductID: "1"}},
	})
	require.Error(t, err)
	var se *StoreError
	assert.ErrorAs(t, err, &se)
}

func createTestOrder(t *testing.T, svc *Service) *models.Order {
	t.Helper()
	order, err := svc.CreateOrder(context.Background(), CreateOrderRequest{
		Products: []CartLine{{ProductID: "1", Quantity: 2.0}},
	})
	require.NoError(t, err)
	return order
}

func TestSetStatus(t *testing.T) {
	st := newFakeOrderStore()
	svc := NewService(testCatalog(), st, nil)
	order := createTestOrder(t, svc)

	updated, err := svc.SetStatus(context.Background(), order.ID, "processing")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	// No transition graph: delivered may go back to pending.
	_, err = svc.SetStatus(context.Background(), order.ID, "delivered")
	require.NoError(t, err)
	updated, err = svc.SetStatus(context.Background(), order.ID, "PENDING")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, updated.Status)
}

func TestSetStatus_InvalidValue(t *testing.T) {
	st := newFakeOrderStore()
	svc := NewService(testCatalog(), st, nil)
	order := createTestOrder(t, svc)

	_, err := svc.SetStatus(context.Background(), order.ID, "shipped")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Stored order is unchanged.
	stored, err := st.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestSetStatus_UnknownOrder(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	_, err := svc.SetStatus(context.Background(), 42, "processing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "42")
}

func TestReplaceOrder(t *testing.T) {
	st := newFakeOrderStore()
	svc := NewService(testCatalog(), st, nil)
	order := createTestOrder(t, svc)

	updated, err := svc.ReplaceOrder(context.Background(), order.ID, UpdateOrderRequest{
		CustomerName:   "Rahim Uddin",
		Phone:          "01712345678",
		Division:       "Dhaka",
		District:       "Gazipur",
		Address:        "House 12, Road 3",
		Color:          " black ",
		DeliveryCharge: "120",
		Status:         "processing",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", updated.CustomerName)
	assert.Equal(t, "black", updated.Color)
	assert.Equal(t, 120.0, updated.DeliveryCharge)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)
	// Line-items and the computed total survive the replace untouched.
	assert.Equal(t, order.TotalValue, updated.TotalValue)
}

func TestReplaceOrder_InvalidStatus(t *testing.T) {
	st := newFakeOrderStore()
	svc := NewService(testCatalog(), st, nil)
	order := createTestOrder(t, svc)

	_, err := svc.ReplaceOrder(context.Background(), order.ID, UpdateOrderRequest{
		Status: "returned",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	stored, err := st.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestReplaceOrder_UnknownOrder(t *testing.T) {
	svc := NewService(testCatalog(), newFakeOrderStore(), nil)

	_, err := svc.ReplaceOrder(context.Background(), 7, UpdateOrderRequest{})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
