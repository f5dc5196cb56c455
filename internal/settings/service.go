// Package settings manages platform-wide configuration, FAQs, and the
// static info pages shown in the consumer app.
package settings

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mawadk/dashboard-client/internal/api"
	"github.com/mawadk/dashboard-client/pkg/logging"
)

// General is the platform-wide settings blob.
type General struct {
	AppName        string  `json:"app_name"`
	SupportEmail   string  `json:"support_email"`
	SupportPhone   string  `json:"support_phone"`
	CommissionRate float64 `json:"commission_rate"`
	Currency       string  `json:"currency"`
	Maintenance    bool    `json:"maintenance"`
}

// FAQ is one bilingual question/answer pair.
type FAQ struct {
	ID         int    `json:"id"`
	QuestionEn string `json:"question_en"`
	QuestionAr string `json:"question_ar"`
	AnswerEn   string `json:"answer_en"`
	AnswerAr   string `json:"answer_ar"`
	Order      int    `json:"order"`
}

// InfoPage is one static content page.
type InfoPage struct {
	Slug      string `json:"slug"`
	TitleEn   string `json:"title_en"`
	TitleAr   string `json:"title_ar"`
	ContentEn string `json:"content_en"`
	ContentAr string `json:"content_ar"`
}

// Info page slugs the backend recognizes.
const (
	PageAbout   = "about"
	PageTerms   = "terms"
	PagePrivacy = "privacy"
)

// Service wraps the settings endpoints.
type Service struct {
	client *api.Client
	logger *logging.Logger
}

// NewService creates a settings service.
func NewService(client *api.Client, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{client: client, logger: logger}
}

// GetGeneral fetches the platform settings.
func (s *Service) GetGeneral(ctx context.Context) api.Result[General] {
	return api.FetchOne[General](ctx, s.client, "/settings", nil)
}

// UpdateGeneral saves the platform settings.
func (s *Service) UpdateGeneral(ctx context.Context, g General) api.Result[General] {
	return api.Mutate[General](ctx, s.client, http.MethodPut, "/settings", g)
}

// ListFAQs fetches the FAQ entries.
func (s *Service) ListFAQs(ctx context.Context, params api.ListParams) api.Result[[]FAQ] {
	return api.FetchList[FAQ](ctx, s.client, "/settings/faqs", params.Values())
}

// CreateFAQ adds an entry. FAQs carry no files; the bracket convention
// for the bilingual blocks still applies, so they go out as a form.
func (s *Service) CreateFAQ(ctx context.Context, f FAQ) api.Result[FAQ] {
	return api.SubmitForm[FAQ](ctx, s.client, "/settings/faqs", faqForm(f, false))
}

// UpdateFAQ edits an entry.
func (s *Service) UpdateFAQ(ctx context.Context, id int, f FAQ) api.Result[FAQ] {
	return api.SubmitForm[FAQ](ctx, s.client, "/settings/faqs/"+strconv.Itoa(id), faqForm(f, true))
}

// DeleteFAQ removes an entry.
func (s *Service) DeleteFAQ(ctx context.Context, id int) api.Result[struct{}] {
	return api.Mutate[struct{}](ctx, s.client, http.MethodDelete, "/settings/faqs/"+strconv.Itoa(id), nil)
}

// GetPage fetches one info page by slug.
func (s *Service) GetPage(ctx context.Context, slug string) api.Result[InfoPage] {
	return api.FetchOne[InfoPage](ctx, s.client, "/settings/pages/"+slug, nil)
}

// UpdatePage saves one info page.
func (s *Service) UpdatePage(ctx context.Context, slug string, p InfoPage) api.Result[InfoPage] {
	form := api.NewFormData().
		Set("_method", "PUT").
		SetObject("ar", map[string]string{"title": p.TitleAr, "content": p.ContentAr}).
		SetObject("en", map[string]string{"title": p.TitleEn, "content": p.ContentEn})
	return api.SubmitForm[InfoPage](ctx, s.client, "/settings/pages/"+slug, form)
}

func faqForm(f FAQ, update bool) *api.FormData {
	form := api.NewFormData()
	if update {
		form.Set("_method", "PUT")
	}
	return form.
		SetObject("ar", map[string]string{"question": f.QuestionAr, "answer": f.AnswerAr}).
		SetObject("en", map[string]string{"question": f.QuestionEn, "answer": f.AnswerEn}).
		Set("order", f.Order)
}
