package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/shinelaptops/storefront/internal/catalog"
)

func TestWrite_Workbook(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Write(&buf, catalog.Default(), now))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetDashboard, SheetComplaints, SheetWarranties, SheetEmployees, SheetSales}, f.GetSheetList())

	rows, err := f.GetRows(SheetDashboard)
	require.NoError(t, err)
	assert.Equal(t, []string{"Metric", "Value"}, rows[0])
	assert.Equal(t, []string{"Active complaints", "2"}, rows[1])
	assert.Equal(t, []string{"Available technicians", "1"}, rows[3])

	rows, err = f.GetRows(SheetComplaints)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "comp-001", rows[1][0])
	assert.Equal(t, "Pending", rows[1][3])

	rows, err = f.GetRows(SheetWarranties)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"war-001", "HP Pavilion 15", "Alice Cooper", "2023-06-15", "2024-06-15", "active", "active", "14"}, rows[1])

	rows, err = f.GetRows(SheetSales)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Jun", "210", "140"}, rows[6])
}

func TestWrite_BadWarrantyDate(t *testing.T) {
	data := catalog.Seed()
	data.Warranties[0].ExpiryDate = "soon"

	var buf bytes.Buffer
	err := Write(&buf, catalog.MustNewStore(data), time.Now())
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
