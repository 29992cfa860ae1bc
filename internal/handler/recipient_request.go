package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/model"
	"github.com/bloodlink/blood-donation-api/internal/repository"
)

// RecipientHandler implements the recipient-scoped request endpoints:
// creating blood requests and reviewing the acceptances they received.
type RecipientHandler struct {
	Requests    RequestStore
	Acceptances AcceptanceStore
	Profiles    ProfileStore
}

func NewRecipientHandler(r RequestStore, a AcceptanceStore, p ProfileStore) *RecipientHandler {
	return &RecipientHandler{Requests: r, Acceptances: a, Profiles: p}
}

type createRequestReq struct {
	BloodType    string `json:"blood_type"`
	UnitsNeeded  int    `json:"units_needed"`
	Urgency      string `json:"urgency"`
	PatientNotes string `json:"patient_notes,omitempty"`
}

// Create posts a new blood request. The recipient's name, hospital and
// city are copied from their profile at this moment; later profile
// edits do not touch the request. Requires a completed profile.
func (h *RecipientHandler) Create(c echo.Context) error {
	var req createRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Urgency = strings.ToUpper(strings.TrimSpace(req.Urgency))
	if !model.ValidBloodType(req.BloodType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown blood type"})
	}
	if req.UnitsNeeded <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "units_needed must be positive"})
	}
	if !model.ValidUrgency(req.Urgency) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "urgency must be LOW, MEDIUM, HIGH or CRITICAL"})
	}

	uid, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profile, err := h.Profiles.GetRecipientByUser(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusConflict, echo.Map{"error": "complete your profile first"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}

	var notes *string
	if s := strings.TrimSpace(req.PatientNotes); s != "" {
		notes = &s
	}
	br := model.BloodRequest{
		RecipientID:   uid,
		RecipientName: profile.Name,
		HospitalName:  profile.HospitalName,
		City:          profile.City,
		BloodType:     req.BloodType,
		UnitsNeeded:   req.UnitsNeeded,
		Urgency:       req.Urgency,
		PatientNotes:  notes,
	}
	if err := h.Requests.Create(ctx, &br); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create request failed"})
	}
	return c.JSON(http.StatusCreated, br)
}

// ListMine returns the caller's requests in creation order.
func (h *RecipientHandler) ListMine(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reqs, err := h.Requests.ListByRecipient(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list requests failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"requests": reqs, "count": len(reqs)})
}

// ListAcceptances returns the acceptances recorded against one of the
// caller's requests, in acceptance order. Reading acceptances of a
// request owned by someone else is forbidden.
func (h *RecipientHandler) ListAcceptances(c echo.Context) error {
	requestID := c.Param("id")
	uid, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	req, err := h.Requests.GetByID(ctx, requestID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load request failed"})
	}
	if req.RecipientID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	accs, err := h.Acceptances.ListByRequest(ctx, requestID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list acceptances failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"acceptances": accs, "count": len(accs)})
}
