package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/acmedash/invoice_dashboard_app/internal/apperrors"
	"github.com/acmedash/invoice_dashboard_app/internal/core/domain"
	portsrepo "github.com/acmedash/invoice_dashboard_app/internal/core/ports/repositories"
	"github.com/acmedash/invoice_dashboard_app/internal/core/services"
	"github.com/acmedash/invoice_dashboard_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) InsertInvoice(ctx context.Context, inv portsrepo.NewInvoice) (string, error) {
	args := m.Called(ctx, inv)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoiceID string, customerID string, amountCents int64, status domain.InvoiceStatus) error {
	args := m.Called(ctx, invoiceID, customerID, amountCents, status)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindFilteredInvoices(ctx context.Context, query string, limit, offset int) ([]domain.InvoiceWithCustomer, error) {
	args := m.Called(ctx, query, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceWithCustomer), args.Error(1)
}

func (m *MockInvoiceRepository) CountFilteredInvoices(ctx context.Context, query string) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ListingCache ---
type MockListingCache struct {
	mock.Mock
}

func (m *MockListingCache) Get(ctx context.Context, listingPath, pageKey string, dest any) (bool, error) {
	args := m.Called(ctx, listingPath, pageKey, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockListingCache) Set(ctx context.Context, listingPath, pageKey string, value any) error {
	args := m.Called(ctx, listingPath, pageKey, value)
	return args.Error(0)
}

func (m *MockListingCache) Invalidate(ctx context.Context, listingPath string) error {
	args := m.Called(ctx, listingPath)
	return args.Error(0)
}

func validForm() map[string]string {
	return map[string]string{
		"customerId": "cust-1",
		"amount":     "19.99",
		"status":     "pending",
	}
}

func TestCreateInvoice_Success(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	// Persist must complete before invalidation, invalidation before the
	// result (and therefore the navigation transfer) is produced.
	var order []string
	repo.On("InsertInvoice", mock.Anything, mock.MatchedBy(func(inv portsrepo.NewInvoice) bool {
		return inv.CustomerID == "cust-1" &&
			inv.AmountCents == 1999 &&
			inv.Status == domain.InvoiceStatusPending &&
			inv.Date == time.Now().Format("2006-01-02")
	})).Run(func(mock.Arguments) {
		order = append(order, "insert")
	}).Return("inv-1", nil)
	cache.On("Invalidate", mock.Anything, services.InvoicesListingPath).Run(func(mock.Arguments) {
		order = append(order, "invalidate")
	}).Return(nil)

	res := svc.CreateInvoice(context.Background(), validForm())

	require.True(t, res.Succeeded)
	assert.Equal(t, services.InvoicesListingPath, res.Redirect)
	assert.Empty(t, res.State.Errors)
	assert.Equal(t, []string{"insert", "invalidate"}, order)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	cache.AssertNumberOfCalls(t, "Invalidate", 1)
}

func TestCreateInvoice_RoundsAmountToCents(t *testing.T) {
	testCases := []struct {
		amount    string
		wantCents int64
	}{
		{"10.00", 1000},
		{"19.99", 1999},
		{"0.01", 1},
		{"10.005", 1001}, // round, not truncate
		{"250", 25000},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			repo := new(MockInvoiceRepository)
			cache := new(MockListingCache)
			svc := services.NewInvoiceService(repo, cache, nil)

			repo.On("InsertInvoice", mock.Anything, mock.MatchedBy(func(inv portsrepo.NewInvoice) bool {
				return inv.AmountCents == tc.wantCents
			})).Return("inv-1", nil)
			cache.On("Invalidate", mock.Anything, mock.Anything).Return(nil)

			form := validForm()
			form["amount"] = tc.amount
			res := svc.CreateInvoice(context.Background(), form)

			require.True(t, res.Succeeded)
			repo.AssertExpectations(t)
		})
	}
}

func TestCreateInvoice_ValidationFailureSkipsPersistence(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	res := svc.CreateInvoice(context.Background(), map[string]string{"amount": "-1"})

	require.False(t, res.Succeeded)
	assert.Empty(t, res.Redirect)
	assert.Equal(t, "Missing Fields. Failed to Create Invoice.", res.State.Message)
	assert.Contains(t, res.State.Errors, "customerId")
	assert.Contains(t, res.State.Errors, "amount")
	assert.Contains(t, res.State.Errors, "status")
	repo.AssertNotCalled(t, "InsertInvoice", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestCreateInvoice_PersistenceFailure(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	repo.On("InsertInvoice", mock.Anything, mock.Anything).Return("", assert.AnError)

	res := svc.CreateInvoice(context.Background(), validForm())

	require.False(t, res.Succeeded)
	assert.Empty(t, res.Redirect)
	assert.Equal(t, "Database Error: Failed to create invoice", res.State.Message)
	assert.Empty(t, res.State.Errors)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestUpdateInvoice_Success(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	var order []string
	// The update statement carries only the mutable fields: no date, no new id.
	repo.On("UpdateInvoice", mock.Anything, "inv-7", "cust-1", int64(1999), domain.InvoiceStatusPending).
		Run(func(mock.Arguments) { order = append(order, "update") }).
		Return(nil)
	cache.On("Invalidate", mock.Anything, services.InvoicesListingPath).
		Run(func(mock.Arguments) { order = append(order, "invalidate") }).
		Return(nil)

	res := svc.UpdateInvoice(context.Background(), "inv-7", validForm())

	require.True(t, res.Succeeded)
	assert.Equal(t, services.InvoicesListingPath, res.Redirect)
	assert.Equal(t, []string{"update", "invalidate"}, order)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUpdateInvoice_ValidationFailure(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	form := validForm()
	form["status"] = "overdue"
	res := svc.UpdateInvoice(context.Background(), "inv-7", form)

	require.False(t, res.Succeeded)
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", res.State.Message)
	assert.Equal(t, map[string][]string{"status": {"Please select an invoice status."}}, res.State.Errors)
	repo.AssertNotCalled(t, "UpdateInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateInvoice_PersistenceFailure(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	repo.On("UpdateInvoice", mock.Anything, "inv-7", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	res := svc.UpdateInvoice(context.Background(), "inv-7", validForm())

	require.False(t, res.Succeeded)
	assert.Equal(t, "Database Error: Failed to update invoice", res.State.Message)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestDeleteInvoice_Success(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	var order []string
	repo.On("DeleteInvoice", mock.Anything, "inv-9").
		Run(func(mock.Arguments) { order = append(order, "delete") }).
		Return(nil)
	cache.On("Invalidate", mock.Anything, services.InvoicesListingPath).
		Run(func(mock.Arguments) { order = append(order, "invalidate") }).
		Return(nil)

	res := svc.DeleteInvoice(context.Background(), "inv-9")

	require.True(t, res.Succeeded)
	assert.Empty(t, res.Redirect, "delete reports in place, no navigation transfer")
	assert.Equal(t, "Invoice deleted successfully", res.State.Message)
	assert.Equal(t, []string{"delete", "invalidate"}, order)
}

func TestDeleteInvoice_NotFound(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	repo.On("DeleteInvoice", mock.Anything, "missing").Return(apperrors.ErrNotFound)

	res := svc.DeleteInvoice(context.Background(), "missing")

	require.False(t, res.Succeeded)
	assert.Equal(t, "Database Error: Failed to delete invoice", res.State.Message)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestListInvoices_CacheHitSkipsStore(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	cached := dto.ListInvoicesResponse{TotalPages: 3, Query: "lee", Page: 1}
	cache.On("Get", mock.Anything, services.InvoicesListingPath, "query=lee&page=1", mock.Anything).
		Run(func(args mock.Arguments) {
			*(args.Get(3).(*dto.ListInvoicesResponse)) = cached
		}).
		Return(true, nil)

	resp, err := svc.ListInvoices(context.Background(), "lee", 1)

	require.NoError(t, err)
	assert.Equal(t, cached, *resp)
	repo.AssertNotCalled(t, "FindFilteredInvoices", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListInvoices_CacheMissReadsStoreAndBackfills(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	rows := []domain.InvoiceWithCustomer{
		{
			Invoice: domain.Invoice{
				InvoiceID:   "inv-1",
				CustomerID:  "cust-1",
				AmountCents: 1999,
				Status:      domain.InvoiceStatusPaid,
				Date:        "2026-08-31",
			},
			CustomerName:  "Lee Robinson",
			CustomerEmail: "lee@example.com",
		},
	}
	cache.On("Get", mock.Anything, services.InvoicesListingPath, "query=lee&page=2", mock.Anything).Return(false, nil)
	repo.On("FindFilteredInvoices", mock.Anything, "lee", services.InvoicesPerPage, services.InvoicesPerPage).Return(rows, nil)
	repo.On("CountFilteredInvoices", mock.Anything, "lee").Return(int64(13), nil)
	cache.On("Set", mock.Anything, services.InvoicesListingPath, "query=lee&page=2", mock.Anything).Return(nil)

	resp, err := svc.ListInvoices(context.Background(), "lee", 2)

	require.NoError(t, err)
	require.Len(t, resp.Invoices, 1)
	assert.Equal(t, "19.99", resp.Invoices[0].Amount)
	assert.Equal(t, 3, resp.TotalPages) // ceil(13 / 6)
	assert.Equal(t, 2, resp.Page)
	cache.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestGetInvoiceByID_NotFoundPropagates(t *testing.T) {
	repo := new(MockInvoiceRepository)
	cache := new(MockListingCache)
	svc := services.NewInvoiceService(repo, cache, nil)

	repo.On("FindInvoiceByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	inv, err := svc.GetInvoiceByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, inv)
}
