package service

import (
	"context"
	"errors"
	"fitzone/fitzone-api/internal/domain"
	"fitzone/fitzone-api/internal/repository"
)

// --- Error Definitions ---
var (
	ErrLeadValidation = errors.New("lead validation failed")
)

// ContactInput is a submission from the public contact form.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// JoinNowInput is a submission from the join-now form.
type JoinNowInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	DateOfBirth string
	Gender      string
	FitnessGoal string
	Message     string
}

// LeadService captures visitor form submissions. Leads are append-only;
// ListLeads exists for the admin console only.
type LeadService interface {
	SubmitContact(ctx context.Context, input ContactInput) (*domain.Lead, error)
	SubmitJoinNow(ctx context.Context, input JoinNowInput) (*domain.Lead, error)
	ListLeads(ctx context.Context) ([]domain.Lead, error)
}

// leadService implements the LeadService interface.
type leadService struct {
	leadRepo repository.LeadRepository
}

// NewLeadService creates a new instance of leadService.
func NewLeadService(leadRepo repository.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

// SubmitContact captures a contact form lead.
func (s *leadService) SubmitContact(ctx context.Context, input ContactInput) (*domain.Lead, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, ErrLeadValidation
	}

	lead := &domain.Lead{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Type:    domain.LeadTypeContact,
	}

	leadID, err := s.leadRepo.Create(ctx, lead)
	if err != nil {
		return nil, err
	}
	lead.ID = leadID
	return lead, nil
}

// SubmitJoinNow captures a join-now membership lead.
func (s *leadService) SubmitJoinNow(ctx context.Context, input JoinNowInput) (*domain.Lead, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		return nil, ErrLeadValidation
	}

	lead := &domain.Lead{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Message:     input.Message,
		Type:        domain.LeadTypeJoinNow,
		Address:     input.Address,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		FitnessGoal: input.FitnessGoal,
	}

	leadID, err := s.leadRepo.Create(ctx, lead)
	if err != nil {
		return nil, err
	}
	lead.ID = leadID
	return lead, nil
}

// ListLeads returns every captured lead, newest first.
func (s *leadService) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.leadRepo.GetAll(ctx)
}
