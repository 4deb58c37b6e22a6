package web

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	drillStore "beardball/internal/adapters/storage/drill"
	photoStore "beardball/internal/adapters/storage/photo"
	drillDomain "beardball/internal/domain/drill"
	photoDomain "beardball/internal/domain/photo"
	pricingDomain "beardball/internal/domain/pricing"
	testimonialDomain "beardball/internal/domain/testimonial"
)

func photoListFilter(category string) photoStore.ListFilter {
	return photoStore.ListFilter{Category: category}
}

// handleDrillsAPI handles GET/POST/DELETE for /api/drills.
// GET is public (the library page fetches it); writes are admin only.
func handleDrillsAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		drills, err := stores.DrillStore.List(ctx, drillStore.ListFilter{
			Category: r.URL.Query().Get("category"),
		})
		if err != nil {
			internalError(w, err)
			return
		}
		if drills == nil {
			drills = []drillDomain.Drill{}
		}
		writeJSON(w, drills)
		return
	}

	if r.Method == "POST" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input struct {
			ID          string `json:"ID"`
			Title       string `json:"Title"`
			Category    string `json:"Category"`
			Difficulty  string `json:"Difficulty"`
			Duration    string `json:"Duration"`
			Description string `json:"Description"`
			VideoURL    string `json:"VideoURL"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		d := drillDomain.Drill{
			ID:          input.ID,
			Title:       input.Title,
			Category:    input.Category,
			Difficulty:  input.Difficulty,
			Duration:    input.Duration,
			Description: input.Description,
			VideoURL:    input.VideoURL,
		}
		if d.ID == "" {
			d.ID = generateID()
		}
		if err := d.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.DrillStore.Save(ctx, d); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, d)
		return
	}

	if r.Method == "DELETE" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.DrillStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handlePackagesAPI handles GET/POST/DELETE for /api/packages.
func handlePackagesAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		packages, err := stores.PackageStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if packages == nil {
			packages = []pricingDomain.Package{}
		}
		writeJSON(w, packages)
		return
	}

	if r.Method == "POST" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input struct {
			ID            string   `json:"ID"`
			Name          string   `json:"Name"`
			Duration      string   `json:"Duration"`
			Price         int      `json:"Price"`
			OriginalPrice int      `json:"OriginalPrice"`
			Description   string   `json:"Description"`
			Features      []string `json:"Features"`
			Popular       bool     `json:"Popular"`
			SortOrder     int      `json:"SortOrder"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		p := pricingDomain.Package{
			ID:            input.ID,
			Name:          input.Name,
			Duration:      input.Duration,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Description:   input.Description,
			Features:      input.Features,
			Popular:       input.Popular,
			SortOrder:     input.SortOrder,
		}
		if p.ID == "" {
			p.ID = generateID()
		}
		if err := p.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.PackageStore.Save(ctx, p); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, p)
		return
	}

	if r.Method == "DELETE" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.PackageStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handleTestimonialsAPI handles GET/POST/DELETE for /api/testimonials.
func handleTestimonialsAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		testimonials, err := stores.TestimonialStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if testimonials == nil {
			testimonials = []testimonialDomain.Testimonial{}
		}
		writeJSON(w, testimonials)
		return
	}

	if r.Method == "POST" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input struct {
			ID       string `json:"ID"`
			Name     string `json:"Name"`
			Role     string `json:"Role"`
			Quote    string `json:"Quote"`
			Rating   int    `json:"Rating"`
			ImageURL string `json:"ImageURL"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		t := testimonialDomain.Testimonial{
			ID:       input.ID,
			Name:     input.Name,
			Role:     input.Role,
			Quote:    input.Quote,
			Rating:   input.Rating,
			ImageURL: input.ImageURL,
		}
		if t.ID == "" {
			t.ID = generateID()
		}
		if err := t.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.TestimonialStore.Save(ctx, t); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, t)
		return
	}

	if r.Method == "DELETE" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.TestimonialStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handlePhotosAPI handles GET/POST/DELETE for /api/photos. POST takes a JSON
// body with a URL source; file uploads go through /api/photos/upload.
func handlePhotosAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		photos, err := stores.PhotoStore.List(ctx, photoListFilter(r.URL.Query().Get("category")))
		if err != nil {
			internalError(w, err)
			return
		}
		if photos == nil {
			photos = []photoDomain.Photo{}
		}
		writeJSON(w, photos)
		return
	}

	if r.Method == "POST" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		var input struct {
			Source   string `json:"Source"`
			Caption  string `json:"Caption"`
			Category string `json:"Category"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		p := photoDomain.Photo{
			ID:        generateID(),
			Source:    input.Source,
			Caption:   input.Caption,
			Category:  input.Category,
			CreatedAt: timeNow(),
		}
		if err := p.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := stores.PhotoStore.Save(ctx, p); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, p)
		return
	}

	if r.Method == "DELETE" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}
		if err := stores.PhotoStore.Delete(ctx, id); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// handlePhotoUpload handles POST /api/photos/upload (admin only, multipart).
// The file is validated before anything is stored; a rejected upload leaves
// the gallery untouched. Accepted files are stored as data URIs, mirroring
// how inline image edits persist.
func handlePhotoUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	// Cap the multipart read slightly above the image ceiling so an
	// oversized upload fails with the domain error, not a broken stream.
	r.Body = http.MaxBytesReader(w, r.Body, photoDomain.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(photoDomain.MaxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if err := photoDomain.ValidateUpload(contentType, header.Size); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, photoDomain.MaxUploadBytes+1))
	if err != nil {
		internalError(w, err)
		return
	}
	if err := photoDomain.ValidateUpload(contentType, int64(len(data))); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p := photoDomain.Photo{
		ID:        generateID(),
		Source:    fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
		Caption:   r.FormValue("Caption"),
		Category:  r.FormValue("Category"),
		CreatedAt: timeNow(),
	}
	if err := p.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := stores.PhotoStore.Save(r.Context(), p); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, p)
}
