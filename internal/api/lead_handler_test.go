package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeLeadRepo struct {
	leads []domain.Lead
}

func (r *fakeLeadRepo) Create(ctx context.Context, lead *domain.Lead) (primitive.ObjectID, error) {
	lead.ID = primitive.NewObjectID()
	lead.CreatedAt = time.Now().UTC()
	r.leads = append(r.leads, *lead)
	return lead.ID, nil
}

func (r *fakeLeadRepo) GetAll(ctx context.Context) ([]domain.Lead, error) {
	return r.leads, nil
}

func newLeadRouter(leadRepo *fakeLeadRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewLeadHandler(service.NewLeadService(leadRepo))
	router := gin.New()
	router.POST("/api/v1/leads/contact", handler.SubmitContact)
	router.POST("/api/v1/leads/join", handler.SubmitJoinNow)
	return router
}

func TestSubmitContactForm(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	router := newLeadRouter(leadRepo)

	rec := postJSON(t, router, "/api/v1/leads/contact", ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "What are your opening hours?",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.LeadTypeContact, resp.Type)
	assert.WithinDuration(t, time.Now(), resp.CreatedAt, time.Minute)
	assert.Len(t, leadRepo.leads, 1)
}

func TestSubmitContactFormValidation(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	router := newLeadRouter(leadRepo)

	// Message is required for the contact form.
	rec := postJSON(t, router, "/api/v1/leads/contact", ContactRequest{
		Name:  "Visitor",
		Email: "visitor@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, leadRepo.leads)
}

func TestSubmitJoinNowForm(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	router := newLeadRouter(leadRepo)

	rec := postJSON(t, router, "/api/v1/leads/join", JoinNowRequest{
		Name:        "Applicant",
		Email:       "applicant@example.com",
		Phone:       "+1 555 0100",
		FitnessGoal: "Weight loss",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.LeadTypeJoinNow, resp.Type)
	assert.Equal(t, "Weight loss", resp.FitnessGoal)

	// Phone is mandatory for membership applications, unlike the contact form.
	rec = postJSON(t, router, "/api/v1/leads/join", JoinNowRequest{
		Name:  "Applicant",
		Email: "applicant@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
