package rosters

import (
	"context"
	"fmt"

	"github.com/emrekoca/restopos-admin/internal/api"
	"github.com/google/uuid"
)

// PilotInput is the validated payload to create or update a pilot.
type PilotInput struct {
	Name      string `json:"pilotName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	BranchID  string `json:"branchId" validate:"required"`
	CompanyID string `json:"companyId" validate:"required"`
	Active    bool   `json:"status"`
}

type pilotAPI interface {
	GetPilots(ctx context.Context) ([]api.PilotRecord, error)
	CreatePilot(ctx context.Context, pilot api.PilotRecord) error
	UpdatePilot(ctx context.Context, pilot api.PilotRecord) error
	DeletePilot(ctx context.Context, pilotID string) error
}

// PilotManager manages the delivery courier roster.
type PilotManager struct {
	client pilotAPI
}

// NewPilotManager constructs a pilot manager instance.
func NewPilotManager(client pilotAPI) (*PilotManager, error) {
	if client == nil {
		return nil, fmt.Errorf("api client required")
	}
	return &PilotManager{client: client}, nil
}

// List returns the pilot roster.
func (m *PilotManager) List(ctx context.Context) ([]api.PilotRecord, error) {
	return m.client.GetPilots(ctx)
}

// Create validates the input, assigns a client-side identity and registers
// the pilot.
func (m *PilotManager) Create(ctx context.Context, input PilotInput) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", formatValidationErrors(err)
	}
	record := api.PilotRecord{
		PilotID:   uuid.NewString(),
		Name:      input.Name,
		Phone:     input.Phone,
		BranchID:  input.BranchID,
		CompanyID: input.CompanyID,
		Status:    input.Active,
	}
	if err := m.client.CreatePilot(ctx, record); err != nil {
		return "", err
	}
	return record.PilotID, nil
}

// Update validates and replaces a pilot's fields.
func (m *PilotManager) Update(ctx context.Context, pilotID string, input PilotInput) error {
	if pilotID == "" {
		return fmt.Errorf("pilot id required")
	}
	if err := validate.Struct(input); err != nil {
		return formatValidationErrors(err)
	}
	return m.client.UpdatePilot(ctx, api.PilotRecord{
		PilotID:   pilotID,
		Name:      input.Name,
		Phone:     input.Phone,
		BranchID:  input.BranchID,
		CompanyID: input.CompanyID,
		Status:    input.Active,
	})
}

// Delete removes a pilot from the roster.
func (m *PilotManager) Delete(ctx context.Context, pilotID string) error {
	if pilotID == "" {
		return fmt.Errorf("pilot id required")
	}
	return m.client.DeletePilot(ctx, pilotID)
}
