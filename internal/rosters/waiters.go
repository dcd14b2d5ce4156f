package rosters

import (
	"context"
	"fmt"

	"github.com/emrekoca/restopos-admin/internal/api"
	"github.com/google/uuid"
)

// WaiterInput is the validated payload to create or update a waiter.
type WaiterInput struct {
	Name      string `json:"waiterName" validate:"required"`
	Phone     string `json:"phone"`
	BranchID  string `json:"branchId" validate:"required"`
	CompanyID string `json:"companyId" validate:"required"`
	Active    bool   `json:"status"`
}

type waiterAPI interface {
	GetWaiters(ctx context.Context) ([]api.WaiterRecord, error)
	CreateWaiter(ctx context.Context, waiter api.WaiterRecord) error
	UpdateWaiter(ctx context.Context, waiter api.WaiterRecord) error
	DeleteWaiter(ctx context.Context, waiterID string) error
}

// WaiterManager manages the waiter roster.
type WaiterManager struct {
	client waiterAPI
}

// NewWaiterManager constructs a waiter manager instance.
func NewWaiterManager(client waiterAPI) (*WaiterManager, error) {
	if client == nil {
		return nil, fmt.Errorf("api client required")
	}
	return &WaiterManager{client: client}, nil
}

// List returns the waiter roster.
func (m *WaiterManager) List(ctx context.Context) ([]api.WaiterRecord, error) {
	return m.client.GetWaiters(ctx)
}

// Create validates the input, assigns a client-side identity and registers
// the waiter.
func (m *WaiterManager) Create(ctx context.Context, input WaiterInput) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", formatValidationErrors(err)
	}
	record := api.WaiterRecord{
		WaiterID:  uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		BranchID:  input.BranchID,
		CompanyID: input.CompanyID,
		Status:    input.Active,
	}
	if err := m.client.CreateWaiter(ctx, record); err != nil {
		return "", err
	}
	return record.WaiterID, nil
}

// Update validates and replaces a waiter's fields.
func (m *WaiterManager) Update(ctx context.Context, waiterID string, input WaiterInput) error {
	if waiterID == "" {
		return fmt.Errorf("waiter id required")
	}
	if err := validate.Struct(input); err != nil {
		return formatValidationErrors(err)
	}
	return m.client.UpdateWaiter(ctx, api.WaiterRecord{
		WaiterID:  waiterID,
		Name:      input.Name,
		Phone:     input.Phone,
		BranchID:  input.BranchID,
		CompanyID: input.CompanyID,
		Status:    input.Active,
	})
}

// Delete removes a waiter from the roster.
func (m *WaiterManager) Delete(ctx context.Context, waiterID string) error {
	if waiterID == "" {
		return fmt.Errorf("waiter id required")
	}
	return m.client.DeleteWaiter(ctx, waiterID)
}
