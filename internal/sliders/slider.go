// Package sliders manages the promotional banners shown in the consumer
// mobile app.
package sliders

import "time"

// TargetType says where tapping a slider leads.
type TargetType string

const (
	TargetHospital TargetType = "Hospital"
	TargetClinic   TargetType = "Clinic"
	TargetDoctor   TargetType = "Doctor"
	TargetURL      TargetType = "URL"
	TargetNone     TargetType = "None"
)

// Valid reports whether t is a known target type.
func (t TargetType) Valid() bool {
	switch t {
	case TargetHospital, TargetClinic, TargetDoctor, TargetURL, TargetNone:
		return true
	}
	return false
}

// NeedsProvider reports whether the target requires a provider id.
func (t TargetType) NeedsProvider() bool {
	return t == TargetHospital || t == TargetClinic || t == TargetDoctor
}

// Slider is one banner.
type Slider struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	TitleAr    string     `json:"title_ar"`
	Image      string     `json:"image"`
	TargetType TargetType `json:"target_type"`
	TargetURL  string     `json:"target_url,omitempty"`
	ProviderID int        `json:"provider_id,omitempty"`
	StartAt    *time.Time `json:"start_at"`
	EndAt      *time.Time `json:"end_at"`
	Status     string     `json:"status"`
	Order      int        `json:"order"`
}

// InRange reports whether the slider is active at now. A slider with
// neither bound is always in range; each absent bound is open-ended.
func (s Slider) InRange(now time.Time) bool {
	if s.StartAt != nil && now.Before(*s.StartAt) {
		return false
	}
	if s.EndAt != nil && now.After(*s.EndAt) {
		return false
	}
	return true
}
