package web

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"beardball/internal/adapters/http/middleware"
	bookingStore "beardball/internal/adapters/storage/booking"
	contentStore "beardball/internal/adapters/storage/content"
	drillStore "beardball/internal/adapters/storage/drill"
	photoStore "beardball/internal/adapters/storage/photo"
	"beardball/internal/application/orchestrators"
	bookingDomain "beardball/internal/domain/booking"
	contentDomain "beardball/internal/domain/content"
	drillDomain "beardball/internal/domain/drill"
	photoDomain "beardball/internal/domain/photo"
	pricingDomain "beardball/internal/domain/pricing"
	testimonialDomain "beardball/internal/domain/testimonial"
)

// --- Mock stores ---

type mockDocStore struct {
	doc contentDomain.Document
}

func (m *mockDocStore) Load(context.Context) (contentDomain.Document, error) {
	if m.doc == nil {
		return nil, contentStore.ErrNotFound
	}
	return contentDomain.Clone(m.doc), nil
}

func (m *mockDocStore) Save(_ context.Context, doc contentDomain.Document) (contentStore.SaveStatus, error) {
	m.doc = contentDomain.Clone(doc)
	return contentStore.SaveStatus{LocalOK: true}, nil
}

func (m *mockDocStore) Reset(context.Context) error {
	m.doc = nil
	return nil
}

type mockBookingStore struct {
	bookings map[string]bookingDomain.Request
}

func (m *mockBookingStore) GetByID(_ context.Context, id string) (bookingDomain.Request, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return bookingDomain.Request{}, sql.ErrNoRows
}

func (m *mockBookingStore) Save(_ context.Context, b bookingDomain.Request) error {
	m.bookings[b.ID] = b
	return nil
}

func (m *mockBookingStore) List(_ context.Context, filter bookingStore.ListFilter) ([]bookingDomain.Request, error) {
	var list []bookingDomain.Request
	for _, b := range m.bookings {
		if filter.Status == "" || b.Status == filter.Status {
			list = append(list, b)
		}
	}
	return list, nil
}

func (m *mockBookingStore) CountByStatus(_ context.Context, status string) (int, error) {
	n := 0
	for _, b := range m.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

type mockDrillStore struct {
	drills map[string]drillDomain.Drill
}

func (m *mockDrillStore) GetByID(_ context.Context, id string) (drillDomain.Drill, error) {
	if d, ok := m.drills[id]; ok {
		return d, nil
	}
	return drillDomain.Drill{}, sql.ErrNoRows
}

func (m *mockDrillStore) Save(_ context.Context, d drillDomain.Drill) error {
	m.drills[d.ID] = d
	return nil
}

func (m *mockDrillStore) Delete(_ context.Context, id string) error {
	delete(m.drills, id)
	return nil
}

func (m *mockDrillStore) List(_ context.Context, filter drillStore.ListFilter) ([]drillDomain.Drill, error) {
	var list []drillDomain.Drill
	for _, d := range m.drills {
		if filter.Category == "" || d.Category == filter.Category {
			list = append(list, d)
		}
	}
	return list, nil
}

func (m *mockDrillStore) Count(context.Context) (int, error) {
	return len(m.drills), nil
}

type mockPackageStore struct {
	packages map[string]pricingDomain.Package
}

func (m *mockPackageStore) GetByID(_ context.Context, id string) (pricingDomain.Package, error) {
	if p, ok := m.packages[id]; ok {
		return p, nil
	}
	return pricingDomain.Package{}, sql.ErrNoRows
}

func (m *mockPackageStore) Save(_ context.Context, p pricingDomain.Package) error {
	m.packages[p.ID] = p
	return nil
}

func (m *mockPackageStore) Delete(_ context.Context, id string) error {
	delete(m.packages, id)
	return nil
}

func (m *mockPackageStore) List(context.Context) ([]pricingDomain.Package, error) {
	var list []pricingDomain.Package
	for _, p := range m.packages {
		list = append(list, p)
	}
	return list, nil
}

func (m *mockPackageStore) Count(context.Context) (int, error) {
	return len(m.packages), nil
}

type mockTestimonialStore struct {
	testimonials map[string]testimonialDomain.Testimonial
}

func (m *mockTestimonialStore) GetByID(_ context.Context, id string) (testimonialDomain.Testimonial, error) {
	if t, ok := m.testimonials[id]; ok {
		return t, nil
	}
	return testimonialDomain.Testimonial{}, sql.ErrNoRows
}

func (m *mockTestimonialStore) Save(_ context.Context, t testimonialDomain.Testimonial) error {
	m.testimonials[t.ID] = t
	return nil
}

func (m *mockTestimonialStore) Delete(_ context.Context, id string) error {
	delete(m.testimonials, id)
	return nil
}

func (m *mockTestimonialStore) List(context.Context) ([]testimonialDomain.Testimonial, error) {
	var list []testimonialDomain.Testimonial
	for _, t := range m.testimonials {
		list = append(list, t)
	}
	return list, nil
}

func (m *mockTestimonialStore) Count(context.Context) (int, error) {
	return len(m.testimonials), nil
}

type mockPhotoStore struct {
	photos map[string]photoDomain.Photo
}

func (m *mockPhotoStore) GetByID(_ context.Context, id string) (photoDomain.Photo, error) {
	if p, ok := m.photos[id]; ok {
		return p, nil
	}
	return photoDomain.Photo{}, sql.ErrNoRows
}

func (m *mockPhotoStore) Save(_ context.Context, p photoDomain.Photo) error {
	m.photos[p.ID] = p
	return nil
}

func (m *mockPhotoStore) Delete(_ context.Context, id string) error {
	delete(m.photos, id)
	return nil
}

func (m *mockPhotoStore) List(_ context.Context, filter photoStore.ListFilter) ([]photoDomain.Photo, error) {
	var list []photoDomain.Photo
	for _, p := range m.photos {
		if filter.Category == "" || p.Category == filter.Category {
			list = append(list, p)
		}
	}
	return list, nil
}

// --- Test helpers ---

func newTestStores() *Stores {
	return &Stores{
		BookingStore:     &mockBookingStore{bookings: make(map[string]bookingDomain.Request)},
		DrillStore:       &mockDrillStore{drills: make(map[string]drillDomain.Drill)},
		PackageStore:     &mockPackageStore{packages: make(map[string]pricingDomain.Package)},
		TestimonialStore: &mockTestimonialStore{testimonials: make(map[string]testimonialDomain.Testimonial)},
		PhotoStore:       &mockPhotoStore{photos: make(map[string]photoDomain.Photo)},
		ContentService:   orchestrators.NewContentService(&mockDocStore{}),
	}
}

func setupWeb(t *testing.T) {
	t.Helper()
	stores = newTestStores()
	editModes = newEditModeRegistry()
	sessions = middleware.NewSessionStore()
	emailSender = nil
	coachEmailAddress = ""
}

// authRequest returns a request with the given session injected into context.
func authRequest(method, url string, body string, sess middleware.Session) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	ctx := middleware.ContextWithSession(req.Context(), sess)
	return req.WithContext(ctx)
}

var adminSession = middleware.Session{
	AccountID: "admin-001",
	Email:     "coach@beardbasketball.com",
	Role:      "admin",
	CreatedAt: time.Now(),
}

var memberSession = middleware.Session{
	AccountID: "member-001",
	Email:     "marcus@test.com",
	Role:      "member",
	CreatedAt: time.Now(),
}

// --- Tests: content API ---

func TestHandleContentDocument_ServesDefaults(t *testing.T) {
	setupWeb(t)
	req := httptest.NewRequest("GET", "/api/content", nil)
	rec := httptest.NewRecorder()
	handleContentDocument(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}
	var doc map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v, found := contentDomain.Resolve(doc, "hero.title"); !found || v != "Unlock Your Basketball Potential" {
		t.Fatalf("hero.title = %v, %v", v, found)
	}
}

func TestHandleContentValue_FoundFlag(t *testing.T) {
	setupWeb(t)

	req := httptest.NewRequest("GET", "/api/content/value?path=hero.missing", nil)
	rec := httptest.NewRecorder()
	handleContentValue(rec, req)

	var resp struct {
		Found bool `json:"found"`
		Value any  `json:"value"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Found {
		t.Fatal("missing path reported found")
	}
}

func TestHandleContentUpdate_RequiresAdmin(t *testing.T) {
	setupWeb(t)
	body := `{"path":"hero.title","value":"Hacked"}`

	req := httptest.NewRequest("POST", "/api/content/update", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleContentUpdate(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous got %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleContentUpdate(rec, authRequest("POST", "/api/content/update", body, memberSession))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member got %d, want 403", rec.Code)
	}
}

func TestHandleContentUpdate_RoundTrip(t *testing.T) {
	setupWeb(t)
	body := `{"path":"hero.title","value":"Dominate the Court"}`

	rec := httptest.NewRecorder()
	handleContentUpdate(rec, authRequest("POST", "/api/content/update", body, adminSession))
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Saved     bool `json:"saved"`
		Persisted bool `json:"persisted"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Saved || !resp.Persisted {
		t.Fatalf("resp = %+v", resp)
	}

	v, found, err := stores.ContentService.GetValue(context.Background(), "hero.title")
	if err != nil || !found || v != "Dominate the Court" {
		t.Fatalf("GetValue = %v, %v, %v", v, found, err)
	}
}

func TestHandleContentUpdate_FalsyValue(t *testing.T) {
	setupWeb(t)
	body := `{"path":"hero.subtitle","value":""}`

	rec := httptest.NewRecorder()
	handleContentUpdate(rec, authRequest("POST", "/api/content/update", body, adminSession))
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", rec.Code)
	}

	req := httptest.NewRequest("GET", "/api/content/value?path=hero.subtitle", nil)
	rec = httptest.NewRecorder()
	handleContentValue(rec, req)
	var resp struct {
		Found bool `json:"found"`
		Value any  `json:"value"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Found || resp.Value != "" {
		t.Fatalf("resp = %+v; empty string override must round-trip", resp)
	}
}

func TestHandleContentUpdate_RejectsNonImageDataURI(t *testing.T) {
	setupWeb(t)
	before, _, err := stores.ContentService.GetValue(context.Background(), "hero.image")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}

	payload := base64.StdEncoding.EncodeToString([]byte("definitely not pixels"))
	body := `{"path":"hero.image","value":"data:text/plain;base64,` + payload + `"}`
	rec := httptest.NewRecorder()
	handleContentUpdate(rec, authRequest("POST", "/api/content/update", body, adminSession))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400: %s", rec.Code, rec.Body.String())
	}

	after, _, err := stores.ContentService.GetValue(context.Background(), "hero.image")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if after != before {
		t.Fatalf("rejected data URI still changed hero.image: %v", after)
	}
}

func TestHandleContentUpdate_AcceptsImageDataURI(t *testing.T) {
	setupWeb(t)

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG fake"))
	body := `{"path":"hero.image","value":"` + uri + `"}`
	rec := httptest.NewRecorder()
	handleContentUpdate(rec, authRequest("POST", "/api/content/update", body, adminSession))
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d, want 200: %s", rec.Code, rec.Body.String())
	}

	v, found, err := stores.ContentService.GetValue(context.Background(), "hero.image")
	if err != nil || !found || v != uri {
		t.Fatalf("GetValue = %v, %v, %v", v, found, err)
	}
}

func TestHandleContentReset(t *testing.T) {
	setupWeb(t)

	rec := httptest.NewRecorder()
	handleContentUpdate(rec, authRequest("POST", "/api/content/update", `{"path":"hero.title","value":"edited"}`, adminSession))
	if rec.Code != http.StatusOK {
		t.Fatalf("update got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleContentReset(rec, authRequest("POST", "/api/content/reset", "", adminSession))
	if rec.Code != http.StatusOK {
		t.Fatalf("reset got %d", rec.Code)
	}

	v, found, err := stores.ContentService.GetValue(context.Background(), "hero.title")
	if err != nil || !found || v != "Unlock Your Basketball Potential" {
		t.Fatalf("after reset GetValue = %v, %v, %v", v, found, err)
	}
}

// --- Tests: edit mode ---

func editToggleRequest(sess *middleware.Session) *http.Request {
	body := `{"key":"e","modifier":true}`
	req := httptest.NewRequest("POST", "/api/editmode/toggle", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tok-1"})
	if sess != nil {
		req = req.WithContext(middleware.ContextWithSession(req.Context(), *sess))
	}
	return req
}

func TestHandleEditModeToggle_Admin(t *testing.T) {
	setupWeb(t)

	rec := httptest.NewRecorder()
	handleEditModeToggle(rec, editToggleRequest(&adminSession))
	var resp struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Active {
		t.Fatal("admin chord did not activate edit mode")
	}

	// Same session toggles back off.
	rec = httptest.NewRecorder()
	handleEditModeToggle(rec, editToggleRequest(&adminSession))
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Active {
		t.Fatal("second chord did not deactivate edit mode")
	}
}

func TestHandleEditModeToggle_NonAdminSilent(t *testing.T) {
	setupWeb(t)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handleEditModeToggle(rec, editToggleRequest(&memberSession))
		if rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: got %d, want silent 200", i, rec.Code)
		}
		var resp struct {
			Active bool `json:"active"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Active {
			t.Fatalf("attempt %d: non-admin activated edit mode", i)
		}
	}
}

// A session that ages past its TTL never calls logout, so the registry must
// shed its controller on its own.
func TestEditModeRegistry_EvictsExpiredSessions(t *testing.T) {
	reg := newEditModeRegistry()

	stale := httptest.NewRequest("GET", "/", nil)
	stale.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tok-stale"})
	reg.controllerFor(stale, true)

	reg.mu.Lock()
	entry := reg.byToken["tok-stale"]
	entry.lastSeen = time.Now().Add(-middleware.SessionTTL - time.Minute)
	reg.byToken["tok-stale"] = entry
	reg.mu.Unlock()

	fresh := httptest.NewRequest("GET", "/", nil)
	fresh.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tok-fresh"})
	reg.controllerFor(fresh, true)

	reg.mu.Lock()
	_, staleAlive := reg.byToken["tok-stale"]
	_, freshAlive := reg.byToken["tok-fresh"]
	reg.mu.Unlock()
	if staleAlive {
		t.Fatal("controller for expired session was not evicted")
	}
	if !freshAlive {
		t.Fatal("live controller was evicted")
	}
}

// --- Tests: bookings ---

func seedPackage(t *testing.T) {
	t.Helper()
	err := stores.PackageStore.Save(context.Background(), pricingDomain.Package{
		ID: "standard", Name: "Standard Training", Duration: "1.5 Hours",
		Price: 30, Features: []string{"Advanced Techniques"},
	})
	if err != nil {
		t.Fatalf("seed package: %v", err)
	}
}

func TestHandleBookings_PublicPost(t *testing.T) {
	setupWeb(t)
	seedPackage(t)

	body := `{"Name":"Jordan Ellis","Email":"jordan@example.com","Phone":"555-0142","PackageID":"standard","Date":"2024-09-15","TimeSlot":"11:00 AM","Notes":""}`
	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleBookings(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var b bookingDomain.Request
	if err := json.NewDecoder(rec.Body).Decode(&b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Status != bookingDomain.StatusPending {
		t.Fatalf("status = %q", b.Status)
	}
}

func TestHandleBookings_InvalidSlotRejected(t *testing.T) {
	setupWeb(t)
	seedPackage(t)

	body := `{"Name":"Jordan","Email":"jordan@example.com","Phone":"","PackageID":"standard","Date":"2024-09-15","TimeSlot":"3:17 AM","Notes":""}`
	req := httptest.NewRequest("POST", "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handleBookings(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

func TestHandleBookings_ListRequiresAdmin(t *testing.T) {
	setupWeb(t)

	req := httptest.NewRequest("GET", "/api/bookings", nil)
	rec := httptest.NewRecorder()
	handleBookings(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleBookings(rec, authRequest("GET", "/api/bookings", "", adminSession))
	if rec.Code != http.StatusOK {
		t.Fatalf("admin got %d, want 200", rec.Code)
	}
}

func TestHandleBookingStatus_Confirm(t *testing.T) {
	setupWeb(t)
	err := stores.BookingStore.Save(context.Background(), bookingDomain.Request{
		ID: "b1", Name: "Jordan", Email: "jordan@example.com", PackageID: "standard",
		Date: "2024-09-15", TimeSlot: "11:00 AM", Status: bookingDomain.StatusPending,
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	rec := httptest.NewRecorder()
	handleBookingStatus(rec, authRequest("POST", "/api/bookings/status", `{"ID":"b1","Status":"confirmed"}`, adminSession))
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}

	b, err := stores.BookingStore.GetByID(context.Background(), "b1")
	if err != nil || b.Status != bookingDomain.StatusConfirmed {
		t.Fatalf("booking = %+v, %v", b, err)
	}
}

// --- Tests: admin CRUD ---

func TestHandleDrillsAPI_CRUD(t *testing.T) {
	setupWeb(t)

	body := `{"ID":"","Title":"Form Shooting","Category":"shooting","Difficulty":"beginner","Duration":"15 min","Description":"Close-range reps.","VideoURL":""}`
	rec := httptest.NewRecorder()
	handleDrillsAPI(rec, authRequest("POST", "/api/drills", body, adminSession))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create got %d: %s", rec.Code, rec.Body.String())
	}
	var created drillDomain.Drill
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Fatal("ID not assigned")
	}

	// Public list
	rec = httptest.NewRecorder()
	handleDrillsAPI(rec, httptest.NewRequest("GET", "/api/drills?category=shooting", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list got %d", rec.Code)
	}
	var drills []drillDomain.Drill
	if err := json.NewDecoder(rec.Body).Decode(&drills); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(drills) != 1 {
		t.Fatalf("got %d drills", len(drills))
	}

	rec = httptest.NewRecorder()
	handleDrillsAPI(rec, authRequest("DELETE", "/api/drills?id="+created.ID, "", adminSession))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete got %d", rec.Code)
	}
}

func TestHandleDrillsAPI_WriteRequiresAdmin(t *testing.T) {
	setupWeb(t)
	body := `{"ID":"","Title":"Sneaky","Category":"shooting","Difficulty":"","Duration":"","Description":"","VideoURL":""}`
	rec := httptest.NewRecorder()
	handleDrillsAPI(rec, authRequest("POST", "/api/drills", body, memberSession))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("got %d, want 403", rec.Code)
	}
}

func TestHandleDrillsAPI_InvalidCategory(t *testing.T) {
	setupWeb(t)
	body := `{"ID":"","Title":"Bad","Category":"swimming","Difficulty":"","Duration":"","Description":"","VideoURL":""}`
	rec := httptest.NewRecorder()
	handleDrillsAPI(rec, authRequest("POST", "/api/drills", body, adminSession))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
}

// --- Tests: photo upload ---

func multipartUpload(t *testing.T, contentType string, payload []byte, sess middleware.Session) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="court.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	part.Write(payload)
	mw.WriteField("Caption", "Court action")
	mw.WriteField("Category", "training")
	mw.Close()

	req := httptest.NewRequest("POST", "/api/photos/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func TestHandlePhotoUpload_Accepted(t *testing.T) {
	setupWeb(t)

	rec := httptest.NewRecorder()
	handlePhotoUpload(rec, multipartUpload(t, "image/png", []byte{0x89, 0x50, 0x4e, 0x47}, adminSession))
	if rec.Code != http.StatusCreated {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	var p photoDomain.Photo
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(p.Source, "data:image/png;base64,") {
		t.Fatalf("Source = %q", p.Source)
	}
}

func TestHandlePhotoUpload_RejectsNonImage(t *testing.T) {
	setupWeb(t)

	rec := httptest.NewRecorder()
	handlePhotoUpload(rec, multipartUpload(t, "application/pdf", []byte("%PDF-1.4"), adminSession))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}

	photos, err := stores.PhotoStore.List(context.Background(), photoListFilter(""))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(photos) != 0 {
		t.Fatal("rejected upload reached the store")
	}
}

// --- Tests: analytics page ---

func TestHandleAdminAnalytics_RequiresAdmin(t *testing.T) {
	setupWeb(t)

	rec := httptest.NewRecorder()
	handleAdminAnalytics(rec, httptest.NewRequest("GET", "/admin/analytics", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous got %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	handleAdminAnalytics(rec, authRequest("GET", "/admin/analytics", "", memberSession))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member got %d, want 403", rec.Code)
	}
}

func TestHandleAdminAnalytics_RendersReport(t *testing.T) {
	setupWeb(t)
	t.Chdir("../../..") // templates are loaded relative to the project root

	for _, b := range []bookingDomain.Request{
		{ID: "b1", Status: bookingDomain.StatusConfirmed, PackageID: "elite", TimeSlot: "8:00 AM", CreatedAt: time.Now()},
		{ID: "b2", Status: bookingDomain.StatusPending, PackageID: "elite", TimeSlot: "8:00 AM", CreatedAt: time.Now()},
	} {
		if err := stores.BookingStore.Save(context.Background(), b); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	if err := stores.PackageStore.Save(context.Background(), pricingDomain.Package{ID: "elite", Name: "Elite Training", Price: 199}); err != nil {
		t.Fatalf("Save package: %v", err)
	}

	rec := httptest.NewRecorder()
	handleAdminAnalytics(rec, authRequest("GET", "/admin/analytics", "", adminSession))
	if rec.Code != http.StatusOK {
		t.Fatalf("got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"Training Analytics", "Bookings per Week", "Slot Demand", "Elite Training"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}
