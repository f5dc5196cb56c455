package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// listQuery is the filter/pagination bag every list endpoint honors.
type listQuery struct {
	search  string
	status  string
	typ     string
	page    int
	perPage int
	trashed bool
}

func parseListQuery(r *http.Request) listQuery {
	q := r.URL.Query()
	lq := listQuery{
		search:  q.Get("search"),
		status:  q.Get("status"),
		typ:     q.Get("type"),
		page:    1,
		perPage: 15,
		trashed: q.Get("trashed") == "1",
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		lq.page = v
	}
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil && v > 0 {
		lq.perPage = v
	}
	return lq
}

// paginate slices rows to the requested page and builds the meta block.
func paginate[T any](rows []T, lq listQuery) ([]T, map[string]int) {
	total := len(rows)
	lastPage := (total + lq.perPage - 1) / lq.perPage
	if lastPage < 1 {
		lastPage = 1
	}
	page := lq.page
	if page > lastPage {
		page = lastPage
	}
	start := (page - 1) * lq.perPage
	end := start + lq.perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	meta := map[string]int{
		"current_page": page,
		"last_page":    lastPage,
		"total":        total,
		"per_page":     lq.perPage,
	}
	return rows[start:end], meta
}

func contains(haystack, needle string) bool {
	return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *Server) handleAdminList(w http.ResponseWriter, r *http.Request) {
	lq := parseListQuery(r)

	s.mu.Lock()
	var rows []adminRow
	for _, a := range s.admins {
		if a.Trashed != lq.trashed {
			continue
		}
		if lq.status != "" && a.Status != lq.status {
			continue
		}
		if !contains(a.Name, lq.search) && !contains(a.Email, lq.search) {
			continue
		}
		rows = append(rows, a)
	}
	s.mu.Unlock()

	items, meta := paginate(rows, lq)
	writeList(w, items, meta)
}

func (s *Server) handleAdminCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body")
		return
	}
	name := r.FormValue("name")
	email := r.FormValue("email")
	fields := map[string][]string{}
	if name == "" {
		fields["name"] = []string{"The name field is required."}
	}
	if email == "" {
		fields["email"] = []string{"The email field is required."}
	}
	if len(fields) > 0 {
		writeValidation(w, fields)
		return
	}

	s.mu.Lock()
	s.nextID++
	row := adminRow{ID: s.nextID, Name: name, Email: email, Status: "active"}
	row.Perms = r.MultipartForm.Value["permission_id[]"]
	s.admins = append(s.admins, row)
	s.mu.Unlock()

	writeSuccess(w, "Admin created", row)
}

func (s *Server) handleProviderList(w http.ResponseWriter, r *http.Request) {
	lq := parseListQuery(r)

	s.mu.Lock()
	var rows []providerRow
	for _, p := range s.providers {
		if lq.typ != "" && p.Type != lq.typ {
			continue
		}
		if lq.status != "" && p.Status != lq.status {
			continue
		}
		if !contains(p.Name, lq.search) && !contains(p.NameAr, lq.search) {
			continue
		}
		rows = append(rows, p)
	}
	s.mu.Unlock()

	items, meta := paginate(rows, lq)
	writeList(w, items, meta)
}

func (s *Server) handleBookingList(w http.ResponseWriter, r *http.Request) {
	lq := parseListQuery(r)

	s.mu.Lock()
	var rows []bookingRow
	for _, b := range s.bookings {
		if lq.status != "" && b.Status != lq.status {
			continue
		}
		if !contains(b.Reference, lq.search) && !contains(b.CustomerName, lq.search) {
			continue
		}
		rows = append(rows, b)
	}
	s.mu.Unlock()

	items, meta := paginate(rows, lq)
	writeList(w, items, meta)
}

func (s *Server) handleBookingStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	counts := map[string]int{}
	var revenue float64
	for _, b := range s.bookings {
		counts[b.Status]++
		if b.Status == "completed" {
			revenue += b.Price
		}
	}
	total := len(s.bookings)
	s.mu.Unlock()

	writeSuccess(w, "", map[string]any{
		"total":     total,
		"pending":   counts["pending"],
		"confirmed": counts["confirmed"],
		"completed": counts["completed"],
		"cancelled": counts["cancelled"],
		"no_show":   counts["no_show"],
		"revenue":   revenue,
	})
}

var bookingTransitions = map[string][]string{
	"pending":   {"confirmed", "cancelled"},
	"confirmed": {"completed", "cancelled", "no_show"},
}

func (s *Server) handleBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Booking not found")
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		writeValidation(w, map[string][]string{"status": {"The status field is required."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID != id {
			continue
		}
		allowed := false
		for _, next := range bookingTransitions[b.Status] {
			if next == body.Status {
				allowed = true
				break
			}
		}
		if !allowed {
			writeValidation(w, map[string][]string{"status": {"Illegal status transition."}})
			return
		}
		s.bookings[i].Status = body.Status
		writeSuccess(w, "Booking updated", s.bookings[i])
		return
	}
	writeError(w, http.StatusNotFound, "Booking not found")
}

// handleCategoryList keeps the legacy bare-array data shape.
func (s *Server) handleCategoryList(w http.ResponseWriter, r *http.Request) {
	lq := parseListQuery(r)

	s.mu.Lock()
	rows := make([]categoryRow, 0, len(s.categories))
	for _, c := range s.categories {
		if !contains(c.Name, lq.search) && !contains(c.NameAr, lq.search) {
			continue
		}
		rows = append(rows, c)
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "data": rows})
}

func (s *Server) handleCustomerList(w http.ResponseWriter, r *http.Request) {
	lq := parseListQuery(r)

	s.mu.Lock()
	var rows []customerRow
	for _, c := range s.customers {
		if lq.status != "" && c.Status != lq.status {
			continue
		}
		if !contains(c.Name, lq.search) && !contains(c.Phone, lq.search) {
			continue
		}
		rows = append(rows, c)
	}
	s.mu.Unlock()

	items, meta := paginate(rows, lq)
	writeList(w, items, meta)
}

func (s *Server) handleSliderList(w http.ResponseWriter, r *http.Request) {
	lq := parseListQuery(r)

	s.mu.Lock()
	var rows []sliderRow
	for _, sl := range s.sliders {
		if lq.status != "" && sl.Status != lq.status {
			continue
		}
		if !contains(sl.Title, lq.search) {
			continue
		}
		rows = append(rows, sl)
	}
	s.mu.Unlock()

	items, meta := paginate(rows, lq)
	writeList(w, items, meta)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "success", "message": message, "data": data})
}

func writeList[T any](w http.ResponseWriter, items []T, meta map[string]int) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"data":   map[string]any{"items": items, "meta": meta},
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"status": "error", "message": message})
}

func writeValidation(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"status":  "error",
		"message": "The given data was invalid.",
		"errors":  fields,
	})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
