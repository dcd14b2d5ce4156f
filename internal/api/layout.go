package api

import (
	"context"
	"net/http"
)

// SectionRecord is one seating section of a branch.
type SectionRecord struct {
	SectionID string `json:"sectionId"`
	Name      string `json:"sectionName"`
	BranchID  string `json:"branchId"`
	CompanyID string `json:"companyId"`
	Status    bool   `json:"status"`
}

// TableRecord is one table assigned to a section.
type TableRecord struct {
	TableID   string `json:"tableId"`
	Name      string `json:"tableName"`
	SectionID string `json:"sectionId"`
	Seats     int    `json:"seats"`
	Status    bool   `json:"status"`
}

// GetSections lists the seating sections.
func (c *Client) GetSections(ctx context.Context) ([]SectionRecord, error) {
	var records []SectionRecord
	if err := c.do(ctx, http.MethodGet, "/Section/GetSections", nil, "", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateSection registers a new section.
func (c *Client) CreateSection(ctx context.Context, section SectionRecord) error {
	return c.postJSON(ctx, "/Section/CreateSection", section, nil)
}

// UpdateSection replaces a section's fields.
func (c *Client) UpdateSection(ctx context.Context, section SectionRecord) error {
	return c.postJSON(ctx, "/Section/UpdateSection", section, nil)
}

// DeleteSection removes a section; the body carries the identifier.
func (c *Client) DeleteSection(ctx context.Context, sectionID string) error {
	return c.deleteJSON(ctx, "/Section/DeleteSection", map[string]string{"sectionId": sectionID})
}

// GetTables lists the tables of every section.
func (c *Client) GetTables(ctx context.Context) ([]TableRecord, error) {
	var records []TableRecord
	if err := c.do(ctx, http.MethodGet, "/Table/GetTables", nil, "", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateTable registers a new table.
func (c *Client) CreateTable(ctx context.Context, table TableRecord) error {
	return c.postJSON(ctx, "/Table/CreateTable", table, nil)
}

// UpdateTable replaces a table's fields.
func (c *Client) UpdateTable(ctx context.Context, table TableRecord) error {
	return c.postJSON(ctx, "/Table/UpdateTable", table, nil)
}

// DeleteTable removes a table; the body carries the identifier.
func (c *Client) DeleteTable(ctx context.Context, tableID string) error {
	return c.deleteJSON(ctx, "/Table/DeleteTable", map[string]string{"tableId": tableID})
}
