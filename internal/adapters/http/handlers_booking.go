package web

import (
	"net/http"

	bookingStore "beardball/internal/adapters/storage/booking"
	"beardball/internal/application/orchestrators"
	bookingDomain "beardball/internal/domain/booking"
)

// handleBookings handles POST (public request form) and GET (admin list)
// for /api/bookings.
func handleBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "POST" {
		input := orchestrators.CreateBookingInput{}

		if formRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Name = r.FormValue("Name")
			input.Email = r.FormValue("Email")
			input.Phone = r.FormValue("Phone")
			input.PackageID = r.FormValue("PackageID")
			input.Date = r.FormValue("Date")
			input.TimeSlot = r.FormValue("TimeSlot")
			input.Notes = r.FormValue("Notes")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		result, err := orchestrators.ExecuteCreateBooking(ctx, input, orchestrators.CreateBookingDeps{
			BookingStore: stores.BookingStore,
			PackageStore: stores.PackageStore,
			EmailSender:  emailSender,
			CoachEmail:   coachEmailAddress,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if formRequest(r) {
			http.Redirect(w, r, "/booking?submitted=1", http.StatusSeeOther)
			return
		}
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, result.Booking)
		return
	}

	if r.Method == "GET" {
		if _, ok := requireAdmin(w, r); !ok {
			return
		}
		bookings, err := stores.BookingStore.List(ctx, bookingStore.ListFilter{
			Status: r.URL.Query().Get("status"),
		})
		if err != nil {
			internalError(w, err)
			return
		}
		if bookings == nil {
			bookings = []bookingDomain.Request{}
		}
		writeJSON(w, bookings)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleBookingStatus handles POST /api/bookings/status (admin only):
// confirm, decline, or cancel a request.
func handleBookingStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var input struct {
		ID     string `json:"ID"`
		Status string `json:"Status"`
	}
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	req, err := stores.BookingStore.GetByID(r.Context(), input.ID)
	if err != nil {
		http.Error(w, "booking not found", http.StatusNotFound)
		return
	}
	req.Status = input.Status
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := stores.BookingStore.Save(r.Context(), req); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, req)
}
