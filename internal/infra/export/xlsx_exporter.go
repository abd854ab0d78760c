// Package export renders catalog data as spreadsheets.
package export

import (
	"bytes"
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	sheetName      = "Products"
	timeLayout     = "2006-01-02 15:04:05"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileName = "products.xlsx"
)

var productHeaders = []string{
	"ID", "Name", "Description", "Price", "Category", "Stock", "Brand",
	"Weight", "Length", "Width", "Height", "Images", "Active", "CreatedAt", "UpdatedAt",
}

type xlsxExporter struct{}

// NewXLSXExporter creates the spreadsheet product exporter.
func NewXLSXExporter() service.ProductExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) Export(ctx context.Context, products []*entity.Product) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}

	headerRow := sheet.AddRow()
	for _, h := range productHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetFloat(p.Price)
		row.AddCell().SetString(p.CategoryID)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.Brand)
		row.AddCell().SetFloat(p.Weight)
		row.AddCell().SetFloat(p.Dimensions.Length)
		row.AddCell().SetFloat(p.Dimensions.Width)
		row.AddCell().SetFloat(p.Dimensions.Height)
		row.AddCell().SetString(strings.Join(p.Images, ","))
		row.AddCell().SetBool(p.IsActive)
		row.AddCell().SetString(p.CreatedAt.UTC().Format(timeLayout))
		row.AddCell().SetString(p.UpdatedAt.UTC().Format(timeLayout))
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write spreadsheet")
	}

	return buf.Bytes(), nil
}

func (e *xlsxExporter) ContentType() string {
	return xlsxMIME
}

// FileName includes the export date, e.g. products-2024-05-01.xlsx.
func (e *xlsxExporter) FileName() string {
	return strings.TrimSuffix(exportFileName, ".xlsx") + "-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
}
