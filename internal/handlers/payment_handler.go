package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MediBookLabs/clinic-scheduler/internal/audit"
	"github.com/MediBookLabs/clinic-scheduler/internal/httperr"
	"github.com/MediBookLabs/clinic-scheduler/internal/middleware"
	"github.com/MediBookLabs/clinic-scheduler/internal/payments"
)

type PaymentHandler struct {
	intents payments.IntentCreator
	audit   *audit.Dispatcher
}

func NewPaymentHandler(intents payments.IntentCreator, auditor *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{intents: intents, audit: auditor}
}

// --------- Requests ---------

type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// --------- Helpers ---------

// toMinorUnits converts a major-unit price to integer cents.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// --------- Handlers ---------

// CreateIntent asks the payment provider for a checkout intent over the
// service price converted to minor units.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	callerEmail := c.MustGet(middleware.ContextUserEmail).(string)

	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "price is required")
		return
	}

	intent, err := h.intents.CreateIntent(c.Request.Context(), payments.IntentInput{
		Amount:      toMinorUnits(req.Price),
		Description: "clinic appointment",
	})
	if err != nil {
		httperr.Internal(c, "failed to create payment intent")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: callerEmail,
		Action:     "payment_intent_created",
		Entity:     "payment",
		Metadata:   gin.H{"reference": intent.Reference},
	})

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
