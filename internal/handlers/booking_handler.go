package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MediBookLabs/clinic-scheduler/internal/audit"
	domain "github.com/MediBookLabs/clinic-scheduler/internal/domain/scheduling"
	"github.com/MediBookLabs/clinic-scheduler/internal/httperr"
	"github.com/MediBookLabs/clinic-scheduler/internal/middleware"
	ucScheduling "github.com/MediBookLabs/clinic-scheduler/internal/usecase/scheduling"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo            domain.Repository
	createBooking   *ucScheduling.CreateBooking
	getAvailability *ucScheduling.GetAvailability
	audit           *audit.Dispatcher
}

func NewBookingHandler(
	repo domain.Repository,
	createBooking *ucScheduling.CreateBooking,
	getAvailability *ucScheduling.GetAvailability,
	auditor *audit.Dispatcher,
) *BookingHandler {
	return &BookingHandler{
		repo:            repo,
		createBooking:   createBooking,
		getAvailability: getAvailability,
		audit:           auditor,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Treatment    string `json:"treatment" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Slot         string `json:"slot" binding:"required"`
	PatientName  string `json:"patientName"`
	PatientEmail string `json:"patientEmail" binding:"required,email"`
	Phone        string `json:"phone"`
}

type MarkPaidRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid booking payload")
		return
	}

	result, err := h.createBooking.Execute(c.Request.Context(), ucScheduling.CreateBookingInput{
		Treatment:    req.Treatment,
		Date:         req.Date,
		Slot:         req.Slot,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		Phone:        req.Phone,
	})
	if err != nil {
		if httperr.IsBusiness(err, domain.ErrSlotTaken) {
			httperr.Write(c, http.StatusConflict, "slot already booked")
			return
		}
		httperr.Internal(c, "failed to create booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": result.Created,
		"booking": result.Booking,
	})
}

// ======================================================
// LIST / GET
// ======================================================

// ListByPatient returns the caller's own bookings. Asking for another
// patient's email is an ownership violation.
func (h *BookingHandler) ListByPatient(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	patientEmail := c.Query("patientEmail")
	if patientEmail != callerEmail {
		httperr.Forbidden(c)
		return
	}

	bookings, err := h.repo.ListBookingsByPatient(c.Request.Context(), patientEmail)
	if err != nil {
		httperr.Internal(c, "failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid booking id")
		return
	}

	booking, err := h.repo.GetBookingByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "booking not found")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ======================================================
// MARK PAID
// ======================================================

func (h *BookingHandler) MarkPaid(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid booking id")
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "transactionId is required")
		return
	}

	booking, err := h.repo.GetBookingByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "booking not found")
		return
	}

	amount := int64(0)
	if svc, err := h.repo.GetServiceByName(c.Request.Context(), booking.Treatment); err == nil && svc.Price != nil {
		amount = toMinorUnits(*svc.Price)
	}

	if err := h.repo.MarkBookingPaid(c.Request.Context(), booking, req.TransactionID, amount); err != nil {
		httperr.Internal(c, "failed to record payment")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: callerEmail,
		Action:     "booking_paid",
		Entity:     "booking",
		EntityID:   &booking.ID,
	})

	c.JSON(http.StatusOK, booking)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Available(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "date query parameter is required")
		return
	}

	availability, err := h.getAvailability.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed to compute availability")
		return
	}

	c.JSON(http.StatusOK, availability)
}
