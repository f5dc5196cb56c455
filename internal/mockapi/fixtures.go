package mockapi

// Seed data for the in-memory backend. IDs are stable so CLI demos and
// integration tests can reference them directly.

type adminRow struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Status  string   `json:"status"`
	Trashed bool     `json:"-"`
	Perms   []string `json:"-"`
}

type providerRow struct {
	ID     int     `json:"id"`
	Type   string  `json:"type"`
	Name   string  `json:"name"`
	NameAr string  `json:"name_ar"`
	Status string  `json:"status"`
	Rating float64 `json:"rating"`
}

type bookingRow struct {
	ID            int     `json:"id"`
	Reference     string  `json:"reference"`
	CustomerName  string  `json:"customer_name"`
	ProviderID    int     `json:"provider_id"`
	ProviderName  string  `json:"provider_name"`
	ProviderType  string  `json:"provider_type"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	Price         float64 `json:"price"`
	DataAt        string  `json:"data_at"`
	CreatedAt     string  `json:"created_at"`
}

type categoryRow struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"name_ar"`
	Status string `json:"status"`
}

type customerRow struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type sliderRow struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	TargetType string `json:"target_type"`
	Status     string `json:"status"`
}

func seedAdmins() []adminRow {
	return []adminRow{
		{ID: 1, Name: "Omar Hassan", Email: "omar@mawadk.com", Status: "active"},
		{ID: 2, Name: "Layla Ahmed", Email: "layla@mawadk.com", Status: "active"},
		{ID: 3, Name: "Khaled Noor", Email: "khaled@mawadk.com", Status: "inactive", Trashed: true},
	}
}

func seedProviders() []providerRow {
	return []providerRow{
		{ID: 1, Type: "Hospital", Name: "Al Noor Hospital", NameAr: "مستشفى النور", Status: "active", Rating: 4.6},
		{ID: 2, Type: "Clinic", Name: "Shifa Clinic", NameAr: "عيادة شفاء", Status: "active", Rating: 4.2},
		{ID: 3, Type: "Doctor", Name: "Dr. Mona Saleh", NameAr: "د. منى صالح", Status: "active", Rating: 4.9},
	}
}

func seedBookings() []bookingRow {
	rows := []bookingRow{
		{ID: 1, Reference: "BK-1001", CustomerName: "Huda", ProviderID: 2, ProviderName: "Shifa Clinic", ProviderType: "Clinic", Status: "pending", PaymentMethod: "cash", Price: 150, DataAt: "2026-08-20 10:00:00", CreatedAt: "2026-08-18 09:00:00"},
		{ID: 2, Reference: "BK-1002", CustomerName: "Sami", ProviderID: 1, ProviderName: "Al Noor Hospital", ProviderType: "Hospital", Status: "confirmed", PaymentMethod: "card", Price: 320, DataAt: "2026-08-21 14:30:00", CreatedAt: "2026-08-18 11:00:00"},
		{ID: 3, Reference: "BK-1003", CustomerName: "Aisha", ProviderID: 2, ProviderName: "Shifa Clinic", ProviderType: "Clinic", Status: "completed", PaymentMethod: "wallet", Price: 150, DataAt: "2026-08-15 16:00:00", CreatedAt: "2026-08-12 08:30:00"},
		{ID: 4, Reference: "BK-1004", CustomerName: "Faisal", ProviderID: 3, ProviderName: "Dr. Mona Saleh", ProviderType: "Doctor", Status: "cancelled", PaymentMethod: "online", Price: 250, DataAt: "2026-08-16 12:00:00", CreatedAt: "2026-08-14 10:15:00"},
	}
	return rows
}

func seedCategories() []categoryRow {
	return []categoryRow{
		{ID: 1, Name: "Dermatology", NameAr: "جلدية", Status: "active"},
		{ID: 2, Name: "Dentistry", NameAr: "أسنان", Status: "active"},
		{ID: 3, Name: "Pediatrics", NameAr: "أطفال", Status: "active"},
	}
}

func seedCustomers() []customerRow {
	return []customerRow{
		{ID: 1, Name: "Huda Al Amin", Phone: "+966500000001", Status: "active"},
		{ID: 2, Name: "Sami Qureshi", Phone: "+966500000002", Status: "active"},
		{ID: 3, Name: "Aisha Badr", Phone: "+966500000003", Status: "suspended"},
	}
}

func seedSliders() []sliderRow {
	return []sliderRow{
		{ID: 1, Title: "Summer offers", TargetType: "URL", Status: "active"},
		{ID: 2, Title: "Shifa Clinic spotlight", TargetType: "Clinic", Status: "active"},
	}
}
