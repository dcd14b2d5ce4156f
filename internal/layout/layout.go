package layout

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/emrekoca/restopos-admin/internal/api"
	pkgerrors "github.com/emrekoca/restopos-admin/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// SectionInput is the validated payload to create or update a section.
type SectionInput struct {
	Name      string `json:"sectionName" validate:"required"`
	BranchID  string `json:"branchId" validate:"required"`
	CompanyID string `json:"companyId" validate:"required"`
	Active    bool   `json:"status"`
}

// TableInput is the validated payload to create or update a table.
type TableInput struct {
	Name      string `json:"tableName" validate:"required"`
	SectionID string `json:"sectionId" validate:"required"`
	Seats     int    `json:"seats" validate:"min=1"`
	Active    bool   `json:"status"`
}

type layoutAPI interface {
	GetSections(ctx context.Context) ([]api.SectionRecord, error)
	CreateSection(ctx context.Context, section api.SectionRecord) error
	UpdateSection(ctx context.Context, section api.SectionRecord) error
	DeleteSection(ctx context.Context, sectionID string) error
	GetTables(ctx context.Context) ([]api.TableRecord, error)
	CreateTable(ctx context.Context, table api.TableRecord) error
	UpdateTable(ctx context.Context, table api.TableRecord) error
	DeleteTable(ctx context.Context, tableID string) error
}

// Manager manages the section and table layout of a branch.
type Manager struct {
	client layoutAPI
}

// NewManager constructs a layout manager instance.
func NewManager(client layoutAPI) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("api client required")
	}
	return &Manager{client: client}, nil
}

// Sections lists the seating sections.
func (m *Manager) Sections(ctx context.Context) ([]api.SectionRecord, error) {
	return m.client.GetSections(ctx)
}

// Tables lists the tables of every section.
func (m *Manager) Tables(ctx context.Context) ([]api.TableRecord, error) {
	return m.client.GetTables(ctx)
}

// CreateSection validates and registers a new section.
func (m *Manager) CreateSection(ctx context.Context, input SectionInput) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", asValidationError(err)
	}
	record := api.SectionRecord{
		SectionID: uuid.NewString(),
		Name:      input.Name,
		BranchID:  input.BranchID,
		CompanyID: input.CompanyID,
		Status:    input.Active,
	}
	if err := m.client.CreateSection(ctx, record); err != nil {
		return "", err
	}
	return record.SectionID, nil
}

// UpdateSection validates and replaces a section's fields.
func (m *Manager) UpdateSection(ctx context.Context, sectionID string, input SectionInput) error {
	if sectionID == "" {
		return fmt.Errorf("section id required")
	}
	if err := validate.Struct(input); err != nil {
		return asValidationError(err)
	}
	return m.client.UpdateSection(ctx, api.SectionRecord{
		SectionID: sectionID,
		Name:      input.Name,
		BranchID:  input.BranchID,
		CompanyID: input.CompanyID,
		Status:    input.Active,
	})
}

// DeleteSection removes a section after checking no table still points at
// it; deleting a section under live tables would orphan them on screen.
func (m *Manager) DeleteSection(ctx context.Context, sectionID string) error {
	if sectionID == "" {
		return fmt.Errorf("section id required")
	}
	tables, err := m.client.GetTables(ctx)
	if err != nil {
		return err
	}
	for _, table := range tables {
		if table.SectionID == sectionID {
			return pkgerrors.New(pkgerrors.CodeConflict, "section still has tables assigned")
		}
	}
	return m.client.DeleteSection(ctx, sectionID)
}

// CreateTable validates the input and checks the target section exists.
func (m *Manager) CreateTable(ctx context.Context, input TableInput) (string, error) {
	if err := validate.Struct(input); err != nil {
		return "", asValidationError(err)
	}
	if err := m.ensureSection(ctx, input.SectionID); err != nil {
		return "", err
	}
	record := api.TableRecord{
		TableID:   uuid.NewString(),
		Name:      input.Name,
		SectionID: input.SectionID,
		Seats:     input.Seats,
		Status:    input.Active,
	}
	if err := m.client.CreateTable(ctx, record); err != nil {
		return "", err
	}
	return record.TableID, nil
}

// UpdateTable validates and replaces a table's fields.
func (m *Manager) UpdateTable(ctx context.Context, tableID string, input TableInput) error {
	if tableID == "" {
		return fmt.Errorf("table id required")
	}
	if err := validate.Struct(input); err != nil {
		return asValidationError(err)
	}
	if err := m.ensureSection(ctx, input.SectionID); err != nil {
		return err
	}
	return m.client.UpdateTable(ctx, api.TableRecord{
		TableID:   tableID,
		Name:      input.Name,
		SectionID: input.SectionID,
		Seats:     input.Seats,
		Status:    input.Active,
	})
}

// DeleteTable removes a table.
func (m *Manager) DeleteTable(ctx context.Context, tableID string) error {
	if tableID == "" {
		return fmt.Errorf("table id required")
	}
	return m.client.DeleteTable(ctx, tableID)
}

func (m *Manager) ensureSection(ctx context.Context, sectionID string) error {
	sections, err := m.client.GetSections(ctx)
	if err != nil {
		return err
	}
	for _, section := range sections {
		if section.SectionID == sectionID {
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "section not found")
}

func asValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = "is invalid"
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}
