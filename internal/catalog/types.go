// Package catalog holds the read-only storefront data: laptops, service
// offerings, accessories and the back-office records shown on the warranty
// and admin pages.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Category groups brands (gaming, business, student, ultrabook)
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Brand is a laptop manufacturer and the category it is listed under
type Brand struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Icon       string   `json:"icon"`
	Series     []string `json:"series"`
	CategoryID string   `json:"categoryId"`
}

// Specs is the fixed spec sheet shown for every laptop
type Specs struct {
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	Display   string `json:"display"`
	Graphics  string `json:"graphics"`
}

// Product is a laptop model offered for sale
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	BrandID     string          `json:"brandId"`
	Specs       Specs           `json:"specs"`
}

// Available reports whether the product can be added to a cart.
func (p Product) Available() bool {
	return p.Stock > 0
}

// SubProduct is a color/storage variant of a Product
type SubProduct struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Price      decimal.Decimal `json:"price"`
	Quality    string          `json:"quality"`
	ModelPrice decimal.Decimal `json:"modelPrice"`
	SellPrice  decimal.Decimal `json:"sellPrice"`
	Color      string          `json:"color"`
	Storage    string          `json:"storage"`
	ProductID  string          `json:"productId"`
}

// NoWarranty is the Service.Warranty sentinel for services without cover.
const NoWarranty = "N/A"

// Service is a repair, upgrade, cleaning or software support offering
type Service struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
	EstimatedTime string          `json:"estimatedTime"`
	Warranty      string          `json:"warranty"`
}

// HasWarranty reports whether the service carries any warranty period.
func (s Service) HasWarranty() bool {
	return s.Warranty != "" && s.Warranty != NoWarranty
}

// Accessory is a peripheral or bag sold alongside laptops
type Accessory struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	InStock     bool            `json:"inStock"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image"`
}

// Available reports whether the accessory can be added to a cart. Both the
// stock flag and the quantity have to agree.
func (a Accessory) Available() bool {
	return a.InStock && a.Quantity > 0
}

// ComplaintStatus is the lifecycle state of a customer complaint
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "Pending"
	ComplaintAssigned ComplaintStatus = "Assigned"
	ComplaintResolved ComplaintStatus = "Resolved"
)

// ComplaintStatuses lists the statuses in dashboard order.
var ComplaintStatuses = []ComplaintStatus{ComplaintPending, ComplaintAssigned, ComplaintResolved}

// NotAssigned is the Complaint.AssignedTechnician sentinel.
const NotAssigned = "Not Assigned"

// Complaint is a service issue raised by a customer
type Complaint struct {
	ID                 string          `json:"id"`
	Customer           string          `json:"customer"`
	IssueArea          string          `json:"issueArea"`
	Status             ComplaintStatus `json:"status"`
	AssignedTechnician string          `json:"assignedTechnician"`
	CreatedAt          string          `json:"createdAt"`
	Description        string          `json:"description"`
}

// WarrantyStatus is the stored status of a warranty record
type WarrantyStatus string

const (
	WarrantyActive  WarrantyStatus = "active"
	WarrantyExpired WarrantyStatus = "expired"
	WarrantyClaimed WarrantyStatus = "claimed"
)

// Warranty covers a purchased laptop between PurchaseDate and ExpiryDate
// (both YYYY-MM-DD)
type Warranty struct {
	ID           string         `json:"id"`
	ProductName  string         `json:"productName"`
	CustomerName string         `json:"customerName"`
	PurchaseDate string         `json:"purchaseDate"`
	ExpiryDate   string         `json:"expiryDate"`
	Status       WarrantyStatus `json:"status"`
}

// Employee is a staff member shown on the admin page
type Employee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Availability bool   `json:"availability"`
	Image        string `json:"image"`
}

// Testimonial is a customer quote on the home page
type Testimonial struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Image   string `json:"image"`
}

// Stats are the headline numbers on the home and about pages
type Stats struct {
	Professionals     int `json:"professionals"`
	ServicesCompleted int `json:"servicesCompleted"`
	Branches          int `json:"branches"`
	Sales             int `json:"sales"`
}

// MonthlyVolume is one point of the admin sales/services chart
type MonthlyVolume struct {
	Month    string `json:"month"`
	Sales    int    `json:"sales"`
	Services int    `json:"services"`
}

// Data is the raw content a Store is built from
type Data struct {
	Categories   []Category
	Brands       []Brand
	Products     []Product
	SubProducts  []SubProduct
	Services     []Service
	Accessories  []Accessory
	Complaints   []Complaint
	Warranties   []Warranty
	Employees    []Employee
	Testimonials []Testimonial
	IssueAreas   []string
	Stats        Stats
	SalesSeries  []MonthlyVolume
}
