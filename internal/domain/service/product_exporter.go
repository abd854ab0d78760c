package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductExporter renders a product listing as a downloadable spreadsheet.
type ProductExporter interface {
	Export(ctx context.Context, products []*entity.Product) ([]byte, error)

	// ContentType is the MIME type of the exported document.
	ContentType() string

	// FileName is the suggested download name.
	FileName() string
}
