package catalog

import "strings"

// StatusColors are the chart colors of each complaint status.
var StatusColors = map[ComplaintStatus]string{
	ComplaintPending:  "#f59e0b",
	ComplaintAssigned: "#3b82f6",
	ComplaintResolved: "#10b981",
}

// StatusSlice is one slice of the complaint status pie chart.
type StatusSlice struct {
	Name  ComplaintStatus `json:"name"`
	Value int             `json:"value"`
	Color string          `json:"color"`
}

// Dashboard is the admin overview.
type Dashboard struct {
	ActiveComplaints     int             `json:"activeComplaints"`
	ResolvedComplaints   int             `json:"resolvedComplaints"`
	AvailableTechnicians int             `json:"availableTechnicians"`
	TotalEmployees       int             `json:"totalEmployees"`
	ComplaintsByStatus   []StatusSlice   `json:"complaintsByStatus"`
	SalesSeries          []MonthlyVolume `json:"salesSeries"`
}

// Dashboard aggregates complaint and staff records for the admin page.
func (s *Store) Dashboard() Dashboard {
	counts := make(map[ComplaintStatus]int, len(ComplaintStatuses))
	for _, c := range s.data.Complaints {
		counts[c.Status]++
	}

	d := Dashboard{
		TotalEmployees:     len(s.data.Employees),
		ComplaintsByStatus: make([]StatusSlice, 0, len(ComplaintStatuses)),
		SalesSeries:        s.data.SalesSeries,
	}
	for _, st := range ComplaintStatuses {
		d.ComplaintsByStatus = append(d.ComplaintsByStatus, StatusSlice{
			Name:  st,
			Value: counts[st],
			Color: StatusColors[st],
		})
	}
	for _, c := range s.data.Complaints {
		if c.Status == ComplaintResolved {
			d.ResolvedComplaints++
		} else {
			d.ActiveComplaints++
		}
	}
	for _, e := range s.data.Employees {
		if e.IsAvailableTechnician() {
			d.AvailableTechnicians++
		}
	}
	return d
}

// IsAvailableTechnician reports whether the employee can take a complaint.
func (e Employee) IsAvailableTechnician() bool {
	return e.Availability && strings.Contains(e.Role, "Technician")
}

// IsAssigned reports whether a technician has been assigned.
func (c Complaint) IsAssigned() bool {
	return c.AssignedTechnician != "" && c.AssignedTechnician != NotAssigned
}
