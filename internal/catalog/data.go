package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"
)

const imageHost = "https://images.pexels.com/photos/"

func img(photo string, width int) string {
	return imageHost + photo + "/pexels-photo-" + photo + ".jpeg?auto=compress&cs=tinysrgb&w=" + strconv.Itoa(width)
}

func usd(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

// Seed returns the storefront content. Each call returns fresh slices.
func Seed() Data {
	return Data{
		Categories: []Category{
			{ID: "gaming", Name: "Gaming Laptops", Image: img("777001", 800), Description: "High-performance laptops for gaming enthusiasts"},
			{ID: "business", Name: "Business Laptops", Image: img("4050315", 800), Description: "Professional laptops for business and productivity"},
			{ID: "student", Name: "Student Laptops", Image: img("4050299", 800), Description: "Affordable and reliable laptops for students"},
			{ID: "ultrabook", Name: "Ultrabooks", Image: img("812264", 800), Description: "Lightweight and portable premium laptops"},
		},
		Brands: []Brand{
			{ID: "hp", Name: "HP", Icon: img("777001", 100), Series: []string{"Pavilion", "Envy", "Omen", "EliteBook"}, CategoryID: "business"},
			{ID: "dell", Name: "Dell", Icon: img("4050315", 100), Series: []string{"Inspiron", "XPS", "Alienware", "Latitude"}, CategoryID: "gaming"},
			{ID: "lenovo", Name: "Lenovo", Icon: img("4050299", 100), Series: []string{"ThinkPad", "IdeaPad", "Legion", "Yoga"}, CategoryID: "student"},
			{ID: "asus", Name: "ASUS", Icon: img("812264", 100), Series: []string{"ROG", "ZenBook", "VivoBook", "TUF"}, CategoryID: "ultrabook"},
		},
		Products: []Product{
			{
				ID: "hp-pavilion-15", Name: "HP Pavilion 15", Image: img("777001", 800), Stock: 25, Price: usd(799),
				Description: "Perfect for everyday computing with style and performance", BrandID: "hp",
				Specs: Specs{Processor: "Intel Core i5-11th Gen", RAM: "8GB DDR4", Storage: "512GB SSD", Display: `15.6" FHD IPS`, Graphics: "Intel Iris Xe"},
			},
			{
				ID: "dell-xps-13", Name: "Dell XPS 13", Image: img("4050315", 800), Stock: 15, Price: usd(1299),
				Description: "Premium ultrabook with stunning design and performance", BrandID: "dell",
				Specs: Specs{Processor: "Intel Core i7-12th Gen", RAM: "16GB LPDDR5", Storage: "1TB SSD", Display: `13.4" UHD+ TouchScreen`, Graphics: "Intel Iris Xe"},
			},
			{
				ID: "lenovo-thinkpad-x1", Name: "Lenovo ThinkPad X1 Carbon", Image: img("4050299", 800), Stock: 8, Price: usd(1599),
				Description: "Business-grade laptop with exceptional durability", BrandID: "lenovo",
				Specs: Specs{Processor: "Intel Core i7-12th Gen", RAM: "16GB LPDDR5", Storage: "1TB SSD", Display: `14" WUXGA IPS`, Graphics: "Intel Iris Xe"},
			},
			{
				ID: "asus-rog-strix", Name: "ASUS ROG Strix G15", Image: img("812264", 800), Stock: 12, Price: usd(1199),
				Description: "Gaming laptop with powerful graphics and RGB lighting", BrandID: "asus",
				Specs: Specs{Processor: "AMD Ryzen 7 5800H", RAM: "16GB DDR4", Storage: "1TB SSD", Display: `15.6" FHD 144Hz`, Graphics: "NVIDIA RTX 3060"},
			},
		},
		SubProducts: []SubProduct{
			{ID: "hp-pavilion-15-silver", Name: "HP Pavilion 15 - Silver", Image: img("777001", 800), Price: usd(799), Quality: "Premium", ModelPrice: usd(899), SellPrice: usd(799), Color: "Silver", Storage: "512GB SSD", ProductID: "hp-pavilion-15"},
			{ID: "hp-pavilion-15-black", Name: "HP Pavilion 15 - Black", Image: img("777001", 800), Price: usd(799), Quality: "Premium", ModelPrice: usd(899), SellPrice: usd(799), Color: "Black", Storage: "512GB SSD", ProductID: "hp-pavilion-15"},
		},
		Services: []Service{
			{ID: "laptop-repair", Name: "Laptop Hardware Repair", Description: "Complete hardware diagnosis and repair service", Price: usd(150), Category: "Repairs", Image: img("4050315", 800), EstimatedTime: "2-3 days", Warranty: "3 months"},
			{ID: "screen-replacement", Name: "Screen Replacement", Description: "LCD/LED screen replacement with original parts", Price: usd(200), Category: "Repairs", Image: img("4050299", 800), EstimatedTime: "1-2 days", Warranty: "6 months"},
			{ID: "ram-upgrade", Name: "RAM Upgrade", Description: "Upgrade your laptop memory for better performance", Price: usd(100), Category: "Upgrades", Image: img("812264", 800), EstimatedTime: "1 day", Warranty: "2 years"},
			{ID: "virus-removal", Name: "Virus Removal & Cleanup", Description: "Complete system cleanup and virus removal", Price: usd(80), Category: "Software Support", Image: img("777001", 800), EstimatedTime: "1 day", Warranty: "1 month"},
			{ID: "deep-cleaning", Name: "Deep Cleaning Service", Description: "Professional laptop cleaning and maintenance", Price: usd(50), Category: "Cleaning", Image: img("4050315", 800), EstimatedTime: "2 hours", Warranty: NoWarranty},
			{ID: "data-recovery", Name: "Data Recovery", Description: "Recover lost or corrupted data from your laptop", Price: usd(250), Category: "Software Support", Image: img("4050299", 800), EstimatedTime: "3-5 days", Warranty: NoWarranty},
		},
		Accessories: []Accessory{
			{ID: "wireless-mouse", Name: "Wireless Optical Mouse", Description: "Ergonomic wireless mouse with 2.4GHz connectivity", Price: usd(25), Category: "Peripherals", InStock: true, Quantity: 50, Image: img("777001", 800)},
			{ID: "laptop-stand", Name: "Adjustable Laptop Stand", Description: "Aluminum laptop stand with adjustable height and angle", Price: usd(45), Category: "Accessories", InStock: true, Quantity: 30, Image: img("4050315", 800)},
			{ID: "laptop-bag", Name: "Professional Laptop Bag", Description: "Premium laptop bag with multiple compartments", Price: usd(60), Category: "Bags", InStock: false, Quantity: 0, Image: img("4050299", 800)},
			{ID: "usb-hub", Name: "7-Port USB 3.0 Hub", Description: "High-speed USB hub with individual power switches", Price: usd(35), Category: "Connectivity", InStock: true, Quantity: 25, Image: img("812264", 800)},
		},
		Complaints: []Complaint{
			{ID: "comp-001", Customer: "John Smith", IssueArea: "Screen Flickering", Status: ComplaintPending, AssignedTechnician: NotAssigned, CreatedAt: "2024-01-15", Description: "Laptop screen flickers intermittently during use"},
			{ID: "comp-002", Customer: "Sarah Johnson", IssueArea: "Battery Issues", Status: ComplaintAssigned, AssignedTechnician: "Mike Wilson", CreatedAt: "2024-01-14", Description: "Battery drains too quickly and does not hold charge"},
			{ID: "comp-003", Customer: "David Brown", IssueArea: "Keyboard Problems", Status: ComplaintResolved, AssignedTechnician: "Lisa Chen", CreatedAt: "2024-01-10", Description: "Several keys not working properly"},
		},
		Warranties: []Warranty{
			{ID: "war-001", ProductName: "HP Pavilion 15", CustomerName: "Alice Cooper", PurchaseDate: "2023-06-15", ExpiryDate: "2024-06-15", Status: WarrantyActive},
			{ID: "war-002", ProductName: "Dell XPS 13", CustomerName: "Bob Wilson", PurchaseDate: "2022-12-20", ExpiryDate: "2023-12-20", Status: WarrantyExpired},
			{ID: "war-003", ProductName: "Lenovo ThinkPad X1", CustomerName: "Carol Davis", PurchaseDate: "2023-08-10", ExpiryDate: "2024-08-10", Status: WarrantyActive},
		},
		Employees: []Employee{
			{ID: "emp-001", Name: "Mike Wilson", Role: "Senior Technician", Email: "mike.wilson@shinelaptops.com", Phone: "+1 (555) 123-4567", Availability: true, Image: img("777001", 300)},
			{ID: "emp-002", Name: "Lisa Chen", Role: "Hardware Specialist", Email: "lisa.chen@shinelaptops.com", Phone: "+1 (555) 234-5678", Availability: true, Image: img("4050315", 300)},
			{ID: "emp-003", Name: "Tom Rodriguez", Role: "Software Engineer", Email: "tom.rodriguez@shinelaptops.com", Phone: "+1 (555) 345-6789", Availability: false, Image: img("4050299", 300)},
		},
		Testimonials: []Testimonial{
			{ID: 1, Name: "Emily Watson", Role: "Business Owner", Content: "Shine Laptops provided exceptional service for my business laptop. Quick, professional, and affordable!", Rating: 5, Image: img("777001", 300)},
			{ID: 2, Name: "Mark Thompson", Role: "Student", Content: "Great selection of laptops and amazing customer service. They helped me find the perfect laptop for my studies.", Rating: 5, Image: img("4050315", 300)},
			{ID: 3, Name: "Jennifer Lee", Role: "Graphic Designer", Content: "Professional repair service and fair pricing. My laptop runs like new after their maintenance.", Rating: 5, Image: img("4050299", 300)},
		},
		IssueAreas: []string{
			"Screen Flickering",
			"Battery Issues",
			"Keyboard Problems",
			"Overheating",
			"Software Crashes",
			"Hardware Failure",
			"Network Connectivity",
			"Audio Problems",
		},
		Stats: Stats{Professionals: 25, ServicesCompleted: 1250, Branches: 8, Sales: 3500},
		SalesSeries: []MonthlyVolume{
			{Month: "Jan", Sales: 120, Services: 80},
			{Month: "Feb", Sales: 145, Services: 95},
			{Month: "Mar", Sales: 180, Services: 110},
			{Month: "Apr", Sales: 165, Services: 102},
			{Month: "May", Sales: 195, Services: 125},
			{Month: "Jun", Sales: 210, Services: 140},
		},
	}
}
