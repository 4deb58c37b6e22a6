package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"beardball/internal/adapters/http/middleware"
	"beardball/internal/application/orchestrators"
	"beardball/internal/application/projections"
	contentDomain "beardball/internal/domain/content"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON writes v as a JSON response, mapping nil slices to [].
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

const templatesDir = "internal/adapters/http/templates"

// registerRoutes attaches every page and API route to the mux.
func registerRoutes(mux *http.ServeMux) {
	// Public pages
	mux.HandleFunc("/", handleHome)
	mux.HandleFunc("/about", handleAbout)
	mux.HandleFunc("/programs", handlePrograms)
	mux.HandleFunc("/drills", handleDrills)
	mux.HandleFunc("/booking", handleBookingPage)
	mux.HandleFunc("/gallery", handleGallery)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)
	mux.HandleFunc("/admin", handleAdmin)
	mux.HandleFunc("/admin/analytics", handleAdminAnalytics)

	// Content API
	mux.HandleFunc("/api/content", handleContentDocument)
	mux.HandleFunc("/api/content/value", handleContentValue)
	mux.HandleFunc("/api/content/update", handleContentUpdate)
	mux.HandleFunc("/api/content/reset", handleContentReset)
	mux.HandleFunc("/api/editmode/toggle", handleEditModeToggle)
	mux.HandleFunc("/api/editmode", handleEditModeStatus)

	// Booking API
	mux.HandleFunc("/api/bookings", handleBookings)
	mux.HandleFunc("/api/bookings/status", handleBookingStatus)

	// Admin CRUD API
	mux.HandleFunc("/api/drills", handleDrillsAPI)
	mux.HandleFunc("/api/packages", handlePackagesAPI)
	mux.HandleFunc("/api/testimonials", handleTestimonialsAPI)
	mux.HandleFunc("/api/photos", handlePhotosAPI)
	mux.HandleFunc("/api/photos/upload", handlePhotoUpload)

	// Ops
	mux.HandleFunc("/api/perf", handlePerfSnapshot)
}

// renderTemplate renders a page inside the layout. Every page gets the
// content document so templates can resolve editable fields server-side,
// plus the session's edit-mode state for the editor toolbar.
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())
	isAdmin := middleware.IsAdmin(r.Context())

	doc, err := stores.ContentService.Document(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	editActive := false
	if isAdmin {
		editActive = editModes.controllerFor(r, isAdmin).Active()
	}

	funcMap := template.FuncMap{
		"isLoggedIn": func() bool { return loggedIn },
		"isAdmin":    func() bool { return isAdmin },
		"currentEmail": func() string {
			return sess.Email
		},
		"csrfToken":  func() string { return csrf.Token(r) },
		"editActive": func() bool { return editActive },
		// content resolves a key path against the stored document, falling
		// back to the given default. Falsy stored values win over defaults.
		"content": func(path, fallback string) string {
			if v, found := contentDomain.Resolve(doc, path); found {
				return contentDomain.String(v)
			}
			return fallback
		},
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"stars": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i
			}
			return s
		},
		"add": func(a, b int) int { return a + b },
	}

	if data == nil {
		data = map[string]any{}
	}
	data["EditActive"] = editActive
	data["IsAdmin"] = isAdmin

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleHome handles GET /
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	testimonials, err := stores.TestimonialStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	packages, err := stores.PackageStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "home.html", map[string]any{
		"Testimonials": testimonials,
		"Packages":     packages,
	})
}

// handleAbout handles GET /about
func handleAbout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderTemplate(w, r, "about.html", nil)
}

// handlePrograms handles GET /programs
func handlePrograms(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	page, err := projections.QueryBookingPage(r.Context(), projections.BookingPageDeps{
		PackageStore: stores.PackageStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "programs.html", map[string]any{
		"Packages": page.Packages,
	})
}

// handleDrills handles GET /drills
func handleDrills(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	lib, err := projections.QueryDrillLibrary(r.Context(), projections.DrillLibraryInput{
		Category: r.URL.Query().Get("category"),
	}, projections.DrillLibraryDeps{DrillStore: stores.DrillStore})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "drills.html", map[string]any{
		"Library":  lib,
		"Category": r.URL.Query().Get("category"),
	})
}

// handleBookingPage handles GET /booking
func handleBookingPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	page, err := projections.QueryBookingPage(r.Context(), projections.BookingPageDeps{
		PackageStore: stores.PackageStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "booking.html", map[string]any{
		"Packages":  page.Packages,
		"TimeSlots": page.TimeSlots,
		"CSRFToken": csrf.Token(r),
		"Submitted": r.URL.Query().Get("submitted") == "1",
	})
}

// handleGallery handles GET /gallery
func handleGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	photos, err := stores.PhotoStore.List(r.Context(), photoListFilter(r.URL.Query().Get("category")))
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "gallery.html", map[string]any{
		"Photos":   photos,
		"Category": r.URL.Query().Get("category"),
	})
}

// handleAdmin handles GET /admin
func handleAdmin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	dash, err := projections.QueryAdminDashboard(r.Context(), projections.AdminDashboardDeps{
		BookingStore: stores.BookingStore,
		DrillStore:   stores.DrillStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "admin.html", map[string]any{
		"Dashboard": dash,
		"CSRFToken": csrf.Token(r),
	})
}

// handleAdminAnalytics handles GET /admin/analytics
func handleAdminAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	report, err := projections.QueryTrainingAnalytics(r.Context(), projections.TrainingAnalyticsInput{}, projections.TrainingAnalyticsDeps{
		BookingStore: stores.BookingStore,
		PackageStore: stores.PackageStore,
		DrillStore:   stores.DrillStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "analytics.html", map[string]any{
		"Report": report,
	})
}

// handleLogin handles GET (form) and POST (authenticate) for /login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("Email"),
			Password: r.FormValue("Password"),
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		})
		if err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Error":     err.Error(),
			})
			return
		}

		token, err := sessions.Create(result.AccountID, result.Email, result.Role)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err == nil {
		editModes.drop(cookie.Value)
		sessions.Delete(cookie.Value)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// requireAdmin checks the session for admin role and returns the session.
// Returns false if the request should not proceed.
func requireAdmin(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		slog.Warn("auth_denied", "path", r.URL.Path, "reason", "no session")
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return middleware.Session{}, false
	}
	if sess.Role != "admin" {
		slog.Warn("auth_denied", "path", r.URL.Path, "account_id", sess.AccountID, "role", sess.Role, "required", "admin")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return middleware.Session{}, false
	}
	return sess, true
}

// handlePerfSnapshot handles GET /api/perf (admin only).
func handlePerfSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}
	if perfCollector == nil {
		http.Error(w, "perf collection disabled", http.StatusNotFound)
		return
	}
	since := timeNow().Add(-15 * time.Minute)
	writeJSON(w, perfCollector.Snapshot(since, 10))
}

func formRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") ||
		strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

