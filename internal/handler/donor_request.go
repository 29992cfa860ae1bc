package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/model"
	"github.com/bloodlink/blood-donation-api/internal/queue"
	"github.com/bloodlink/blood-donation-api/internal/repository"
)

// DonorHandler implements the donor-scoped endpoints: browsing requests
// that match the donor's blood type and city, and accepting them.
// Publish, when set, is called after a committed acceptance; failures
// are ignored because the acceptance is already durable.
type DonorHandler struct {
	Requests RequestStore
	Profiles ProfileStore
	Publish  func(ctx context.Context, event queue.RequestAcceptedEvent) error
}

func NewDonorHandler(r RequestStore, p ProfileStore,
	publish func(ctx context.Context, event queue.RequestAcceptedEvent) error) *DonorHandler {
	return &DonorHandler{Requests: r, Profiles: p, Publish: publish}
}

// ListMatching returns ACTIVE requests whose blood type equals the
// donor profile's type exactly and whose city matches the donor's city
// ignoring case. Matching is deliberately exact on blood type; ABO/Rh
// compatibility is not computed. Optional `urgency` and `city` query
// parameters refine the matched set the way the dashboard filter does.
func (h *DonorHandler) ListMatching(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)

	urgency := strings.ToUpper(strings.TrimSpace(c.QueryParam("urgency")))
	if urgency != "" && !model.ValidUrgency(urgency) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown urgency"})
	}
	city := strings.TrimSpace(c.QueryParam("city"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profile, err := h.Profiles.GetDonorByUser(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusConflict, echo.Map{"error": "complete your profile first"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}

	reqs, err := h.Requests.ListMatching(ctx, profile.BloodType, profile.City)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list requests failed"})
	}
	reqs = model.RefineRequests(reqs, urgency, city)
	return c.JSON(http.StatusOK, echo.Map{"requests": reqs, "count": len(reqs)})
}

// Accept records the donor's commitment against a request. The donor's
// name and phone are copied from their profile at this moment. The same
// donor may accept the same request more than once; each call records a
// new acceptance. 404 when the request does not exist.
func (h *DonorHandler) Accept(c echo.Context) error {
	requestID := c.Param("id")
	uid, _ := c.Get("user_id").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profile, err := h.Profiles.GetDonorByUser(ctx, uid)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusConflict, echo.Map{"error": "complete your profile first"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
	}

	acc, err := h.Requests.Accept(ctx, requestID, repository.DonorSnapshot{
		ID:    uid,
		Name:  profile.Name,
		Phone: profile.Phone,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "accept failed"})
	}

	if h.Publish != nil {
		if req, rerr := h.Requests.GetByID(ctx, requestID); rerr == nil {
			_ = h.Publish(ctx, queue.RequestAcceptedEvent{
				AcceptanceID:  acc.ID,
				RequestID:     req.ID,
				RecipientID:   req.RecipientID,
				RecipientName: req.RecipientName,
				HospitalName:  req.HospitalName,
				City:          req.City,
				BloodType:     req.BloodType,
				UnitsNeeded:   req.UnitsNeeded,
				Urgency:       req.Urgency,
				DonorID:       acc.DonorID,
				DonorName:     acc.DonorName,
				DonorPhone:    acc.DonorPhone,
				AcceptedAt:    acc.AcceptedAt.Format(time.RFC3339),
			})
		}
	}

	return c.JSON(http.StatusCreated, acc)
}
