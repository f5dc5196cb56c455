// Package providers manages bookable medical entities: hospitals,
// clinics, and standalone doctors.
package providers

// Type classifies a provider. Hospitals and clinics carry a doctor
// roster; standalone doctors carry their own pricing instead.
type Type string

const (
	TypeHospital Type = "Hospital"
	TypeClinic   Type = "Clinic"
	TypeDoctor   Type = "Doctor"
)

// Valid reports whether t is a known provider type.
func (t Type) Valid() bool {
	switch t {
	case TypeHospital, TypeClinic, TypeDoctor:
		return true
	}
	return false
}

// HasRoster reports whether the provider type employs its own doctors.
func (t Type) HasRoster() bool {
	return t == TypeHospital || t == TypeClinic
}

// HasOwnPricing reports whether pricing lives on the provider itself.
func (t Type) HasOwnPricing() bool {
	return t == TypeDoctor
}

// Provider is one bookable entity.
type Provider struct {
	ID          int      `json:"id"`
	Type        Type     `json:"type"`
	Name        string   `json:"name"`
	NameAr      string   `json:"name_ar"`
	Description string   `json:"description"`
	CategoryID  int      `json:"category_id"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Logo        string   `json:"logo"`
	Gallery     []string `json:"gallery"`
	Status      string   `json:"status"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
	PriceAfter  float64  `json:"price_after"`
	CreatedAt   string   `json:"created_at"`
}

// Review is one customer review awaiting or past moderation.
type Review struct {
	ID           int     `json:"id"`
	ProviderID   int     `json:"provider_id"`
	CustomerName string  `json:"customer_name"`
	Rating       float64 `json:"rating"`
	Comment      string  `json:"comment"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}
