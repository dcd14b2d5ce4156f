package api

import (
	"context"
	"net/http"
)

// PilotRecord is a delivery courier as the backend reports it.
type PilotRecord struct {
	PilotID   string `json:"pilotId"`
	Name      string `json:"pilotName"`
	Phone     string `json:"phone"`
	BranchID  string `json:"branchId"`
	CompanyID string `json:"companyId"`
	Status    bool   `json:"status"`
}

// WaiterRecord is a waiter as the backend reports it.
type WaiterRecord struct {
	WaiterID  string `json:"waiterId"`
	Name      string `json:"waiterName"`
	Phone     string `json:"phone"`
	BranchID  string `json:"branchId"`
	CompanyID string `json:"companyId"`
	Status    bool   `json:"status"`
}

// GetPilots lists the pilot roster.
func (c *Client) GetPilots(ctx context.Context) ([]PilotRecord, error) {
	var records []PilotRecord
	if err := c.do(ctx, http.MethodGet, "/Pilot/GetPilots", nil, "", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreatePilot registers a new pilot.
func (c *Client) CreatePilot(ctx context.Context, pilot PilotRecord) error {
	return c.postJSON(ctx, "/Pilot/CreatePilot", pilot, nil)
}

// UpdatePilot replaces a pilot's fields.
func (c *Client) UpdatePilot(ctx context.Context, pilot PilotRecord) error {
	return c.postJSON(ctx, "/Pilot/UpdatePilot", pilot, nil)
}

// DeletePilot removes a pilot; the body carries the identifier.
func (c *Client) DeletePilot(ctx context.Context, pilotID string) error {
	return c.deleteJSON(ctx, "/Pilot/DeletePilot", map[string]string{"pilotId": pilotID})
}

// GetWaiters lists the waiter roster.
func (c *Client) GetWaiters(ctx context.Context) ([]WaiterRecord, error) {
	var records []WaiterRecord
	if err := c.do(ctx, http.MethodGet, "/Waiter/GetWaiters", nil, "", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateWaiter registers a new waiter.
func (c *Client) CreateWaiter(ctx context.Context, waiter WaiterRecord) error {
	return c.postJSON(ctx, "/Waiter/CreateWaiter", waiter, nil)
}

// UpdateWaiter replaces a waiter's fields.
func (c *Client) UpdateWaiter(ctx context.Context, waiter WaiterRecord) error {
	return c.postJSON(ctx, "/Waiter/UpdateWaiter", waiter, nil)
}

// DeleteWaiter removes a waiter; the body carries the identifier.
func (c *Client) DeleteWaiter(ctx context.Context, waiterID string) error {
	return c.deleteJSON(ctx, "/Waiter/DeleteWaiter", map[string]string{"waiterId": waiterID})
}
