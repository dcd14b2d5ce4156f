package api

import (
	"context"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
)

// ProductRecord is a catalog product as the backend reports it.
type ProductRecord struct {
	ProductID     string `json:"productId"`
	Name          string `json:"productName"`
	SecondaryName string `json:"productSecondaryName"`
	GroupID       string `json:"productGroupId"`
	BranchID      string `json:"branchId"`
	CompanyID     string `json:"companyId"`
	Status        bool   `json:"status"`
}

// ProductPriceRow is one flattened (product, price) pair from the full
// catalog, the raw material of the selection picker.
type ProductPriceRow struct {
	ProductID      string          `json:"productId"`
	ProductPriceID string          `json:"productPriceId"`
	ProductName    string          `json:"productName"`
	PriceName      string          `json:"priceName"`
	Price          decimal.Decimal `json:"price"`
	Status         bool            `json:"status"`
}

// GetProducts lists the product catalog.
func (c *Client) GetProducts(ctx context.Context) ([]ProductRecord, error) {
	var records []ProductRecord
	if err := c.do(ctx, http.MethodGet, "/Product/GetProducts", nil, "", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetAllProductPrices lists every (product, price) pair system-wide.
func (c *Client) GetAllProductPrices(ctx context.Context) ([]ProductPriceRow, error) {
	var rows []ProductPriceRow
	if err := c.do(ctx, http.MethodGet, "/Product/GetAllProductPrices", nil, "", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateProduct POSTs an encoded multipart payload.
func (c *Client) CreateProduct(ctx context.Context, body io.Reader, contentType string) error {
	return c.do(ctx, http.MethodPost, "/Product/CreateProduct", body, contentType, nil)
}

// UpdateProduct POSTs an encoded multipart payload carrying productId.
func (c *Client) UpdateProduct(ctx context.Context, body io.Reader, contentType string) error {
	return c.do(ctx, http.MethodPost, "/Product/UpdateProduct", body, contentType, nil)
}

// DeleteProduct soft-deletes a product; the body carries the identifier.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return c.deleteJSON(ctx, "/Product/DeleteProduct", map[string]string{"productId": productID})
}
