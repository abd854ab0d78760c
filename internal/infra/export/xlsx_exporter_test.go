package export

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestXLSXExporter_Export(t *testing.T) {
	exporter := NewXLSXExporter()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	products := []*entity.Product{
		{ID: entity.NewID(), Name: "Desk Lamp", Price: 24.5, Stock: 7, Images: []string{"a.png", "b.png"}, IsActive: true, CreatedAt: now, UpdatedAt: now},
		{ID: entity.NewID(), Name: "Chair", Price: 80, Stock: 0, IsActive: false, CreatedAt: now, UpdatedAt: now},
	}

	data, err := exporter.Export(context.Background(), products)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Products", sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Name", sheet.Rows[0].Cells[1].String())
	assert.Equal(t, "Desk Lamp", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "a.png,b.png", sheet.Rows[1].Cells[11].String())
	assert.Equal(t, "2024-05-01 12:00:00", sheet.Rows[2].Cells[13].String())
}

func TestXLSXExporter_Metadata(t *testing.T) {
	exporter := NewXLSXExporter()

	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", exporter.ContentType())
	assert.Regexp(t, `^products-\d{4}-\d{2}-\d{2}\.xlsx$`, exporter.FileName())
}

func TestXLSXExporter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewXLSXExporter().Export(ctx, []*entity.Product{{ID: entity.NewID()}})
	assert.Error(t, err)
}
