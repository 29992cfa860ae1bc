package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bloodlink/blood-donation-api/internal/model"
)

// ProfileHandler implements the role profile endpoints.  A user has at
// most one profile of the kind matching their role; saving replaces the
// whole profile and marks the account as completed.
type ProfileHandler struct {
	Profiles ProfileStore
}

func NewProfileHandler(p ProfileStore) *ProfileHandler {
	return &ProfileHandler{Profiles: p}
}

type donorProfileReq struct {
	Name             string `json:"name"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	BloodType        string `json:"blood_type"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	LastDonationDate string `json:"last_donation_date,omitempty"` // YYYY-MM-DD
	IsAvailable      bool   `json:"is_available"`
}

type recipientProfileReq struct {
	Name             string `json:"name"`
	HospitalName     string `json:"hospital_name"`
	Phone            string `json:"phone"`
	City             string `json:"city"`
	PatientCondition string `json:"patient_condition,omitempty"`
}

// PutDonor creates or replaces the calling donor's profile.
func (h *ProfileHandler) PutDonor(c echo.Context) error {
	var req donorProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.City = strings.TrimSpace(req.City)
	req.Gender = strings.ToUpper(strings.TrimSpace(req.Gender))
	if req.Name == "" || req.Phone == "" || req.City == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/phone/city required"})
	}
	if req.Age <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "age must be positive"})
	}
	if !model.ValidGender(req.Gender) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "gender must be MALE or FEMALE"})
	}
	if !model.ValidBloodType(req.BloodType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown blood type"})
	}
	var lastDonation *time.Time
	if s := strings.TrimSpace(req.LastDonationDate); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "last_donation_date must be YYYY-MM-DD"})
		}
		lastDonation = &t
	}

	uid, _ := c.Get("user_id").(string)
	p := model.DonorProfile{
		UserID:           uid,
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		BloodType:        req.BloodType,
		Phone:            req.Phone,
		City:             req.City,
		LastDonationDate: lastDonation,
		IsAvailable:      req.IsAvailable,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Profiles.SaveDonor(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save profile failed"})
	}
	return c.JSON(http.StatusOK, donorProfileResp(p))
}

// PutRecipient creates or replaces the calling recipient's profile.
func (h *ProfileHandler) PutRecipient(c echo.Context) error {
	var req recipientProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.HospitalName = strings.TrimSpace(req.HospitalName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.City = strings.TrimSpace(req.City)
	if req.Name == "" || req.HospitalName == "" || req.Phone == "" || req.City == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/hospital_name/phone/city required"})
	}
	var condition *string
	if s := strings.TrimSpace(req.PatientCondition); s != "" {
		condition = &s
	}

	uid, _ := c.Get("user_id").(string)
	p := model.RecipientProfile{
		UserID:           uid,
		Name:             req.Name,
		HospitalName:     req.HospitalName,
		Phone:            req.Phone,
		City:             req.City,
		PatientCondition: condition,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Profiles.SaveRecipient(ctx, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save profile failed"})
	}
	return c.JSON(http.StatusOK, recipientProfileResp(p))
}

// Get returns the caller's profile for their role, 404 when the
// profile has not been completed yet.
func (h *ProfileHandler) Get(c echo.Context) error {
	uid, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch role {
	case model.RoleDonor:
		p, err := h.Profiles.GetDonorByUser(ctx, uid)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not completed"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
		}
		return c.JSON(http.StatusOK, donorProfileResp(p))
	case model.RoleRecipient:
		p, err := h.Profiles.GetRecipientByUser(ctx, uid)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not completed"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load profile failed"})
		}
		return c.JSON(http.StatusOK, recipientProfileResp(p))
	}
	return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
}

func donorProfileResp(p model.DonorProfile) echo.Map {
	var lastDonation *string
	if p.LastDonationDate != nil {
		s := p.LastDonationDate.Format("2006-01-02")
		lastDonation = &s
	}
	return echo.Map{
		"id":                 p.ID,
		"user_id":            p.UserID,
		"name":               p.Name,
		"age":                p.Age,
		"gender":             p.Gender,
		"blood_type":         p.BloodType,
		"phone":              p.Phone,
		"city":               p.City,
		"last_donation_date": lastDonation,
		"is_available":       p.IsAvailable,
	}
}

func recipientProfileResp(p model.RecipientProfile) echo.Map {
	return echo.Map{
		"id":                p.ID,
		"user_id":           p.UserID,
		"name":              p.Name,
		"hospital_name":     p.HospitalName,
		"phone":             p.Phone,
		"city":              p.City,
		"patient_condition": p.PatientCondition,
	}
}
