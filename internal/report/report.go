// Package report renders the admin overview as an XLSX workbook.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shinelaptops/storefront/internal/catalog"
)

// Sheet names in workbook order.
const (
	SheetDashboard  = "Dashboard"
	SheetComplaints = "Complaints"
	SheetWarranties = "Warranties"
	SheetEmployees  = "Employees"
	SheetSales      = "Sales"
)

// ContentType is the MIME type of the workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type sheet struct {
	name   string
	header []any
	rows   [][]any
}

// Write renders the admin workbook for store as of now.
func Write(w io.Writer, store *catalog.Store, now time.Time) error {
	sheets, err := buildSheets(store, now)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, bold); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	header := s.header
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", s.name, err)
	}
	if err := f.SetRowStyle(s.name, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", s.name, err)
	}
	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(s.name, cell, &r); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", s.name, i+2, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(s.header))
	if err != nil {
		return err
	}
	return f.SetColWidth(s.name, "A", last, 20)
}

func buildSheets(store *catalog.Store, now time.Time) ([]sheet, error) {
	d := store.Dashboard()

	dashboard := sheet{
		name:   SheetDashboard,
		header: []any{"Metric", "Value"},
		rows: [][]any{
			{"Active complaints", d.ActiveComplaints},
			{"Resolved complaints", d.ResolvedComplaints},
			{"Available technicians", d.AvailableTechnicians},
			{"Total employees", d.TotalEmployees},
		},
	}
	for _, s := range d.ComplaintsByStatus {
		dashboard.rows = append(dashboard.rows, []any{"Complaints " + string(s.Name), s.Value})
	}

	complaints := sheet{
		name:   SheetComplaints,
		header: []any{"ID", "Customer", "Issue Area", "Status", "Technician", "Created", "Description"},
	}
	for _, c := range store.Complaints() {
		complaints.rows = append(complaints.rows, []any{
			c.ID, c.Customer, c.IssueArea, string(c.Status), c.AssignedTechnician, c.CreatedAt, c.Description,
		})
	}

	views, err := store.WarrantyViews(now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute warranties: %w", err)
	}
	warranties := sheet{
		name:   SheetWarranties,
		header: []any{"ID", "Product", "Customer", "Purchased", "Expires", "Status", "Derived Status", "Days Left"},
	}
	for _, v := range views {
		warranties.rows = append(warranties.rows, []any{
			v.ID, v.ProductName, v.CustomerName, v.PurchaseDate, v.ExpiryDate, string(v.Status), string(v.DerivedStatus), v.DaysRemaining,
		})
	}

	employees := sheet{
		name:   SheetEmployees,
		header: []any{"ID", "Name", "Role", "Email", "Phone", "Available"},
	}
	for _, e := range store.Employees() {
		available := "No"
		if e.Availability {
			available = "Yes"
		}
		employees.rows = append(employees.rows, []any{e.ID, e.Name, e.Role, e.Email, e.Phone, available})
	}

	sales := sheet{
		name:   SheetSales,
		header: []any{"Month", "Sales", "Services"},
	}
	for _, m := range d.SalesSeries {
		sales.rows = append(sales.rows, []any{m.Month, m.Sales, m.Services})
	}

	return []sheet{dashboard, complaints, warranties, employees, sales}, nil
}
