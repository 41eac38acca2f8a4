package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	browseSearch, browseCategory, browseBrand = "", "", ""
	browseMinPrice, browseMaxPrice, browseSort = "", "", ""
	browseOutput = "table"

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestProductsCommand_JSON(t *testing.T) {
	out, err := execute(t, "products", "--sort", "price-high", "--output", "json")
	require.NoError(t, err)

	var products []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 4)
	assert.Equal(t, "lenovo-thinkpad-x1", products[0].ID)
	assert.Equal(t, "hp-pavilion-15", products[3].ID)
}

func TestProductsCommand_Table(t *testing.T) {
	out, err := execute(t, "products", "--brand", "dell")
	require.NoError(t, err)
	assert.Contains(t, out, "dell-xps-13")
	assert.Contains(t, out, "1299.00")
	assert.NotContains(t, out, "hp-pavilion-15")
}

func TestProductsCommand_NoResults(t *testing.T) {
	out, err := execute(t, "products", "--min-price", "5000", "--max-price", "6000")
	require.NoError(t, err)
	assert.Contains(t, out, "No results")
}

func TestProductsCommand_BadInput(t *testing.T) {
	_, err := execute(t, "products", "--sort", "cheapest")
	assert.Error(t, err)

	_, err = execute(t, "products", "--min-price", "abc")
	assert.Error(t, err)

	_, err = execute(t, "products", "--output", "yaml")
	assert.Error(t, err)
}

func TestAccessoriesCommand_NameSort(t *testing.T) {
	out, err := execute(t, "accessories", "--output", "json")
	require.NoError(t, err)

	var items []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 4)
	assert.Equal(t, "usb-hub", items[0].ID)
}

func TestServicesCommand_Category(t *testing.T) {
	out, err := execute(t, "services", "--category", "Repairs", "--sort", "price-low")
	require.NoError(t, err)
	assert.Contains(t, out, "laptop-repair")
	assert.Contains(t, out, "screen-replacement")
	assert.NotContains(t, out, "ram-upgrade")
}

func TestValidateCommand(t *testing.T) {
	_, err := execute(t, "validate")
	assert.NoError(t, err)
}

func TestReportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	_, err := execute(t, "report", "--out", path, "--date", "2024-06-01")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Warranties")

	_, err = execute(t, "report", "--out", filepath.Join(t.TempDir(), "bad.xlsx"), "--date", "June")
	assert.Error(t, err)
}
