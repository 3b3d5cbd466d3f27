package label

import (
	"fmt"
	"time"

	"bidstar/internal/genre"
	"bidstar/internal/marketerrors"
	model "bidstar/internal/models"
	"bidstar/internal/repository"
	"bidstar/utils"
)

// LabelService defines the business logic for record label profiles.
// Labels pick any non-empty number of genres; the cap applies to artists
// only.
type LabelService struct {
	repo       repository.MarketplaceDB
	genreLimit int
	now        func() time.Time
}

// NewLabelService creates a new LabelService instance
func NewLabelService(repo repository.MarketplaceDB, genreLimit int) *LabelService {
	return &LabelService{
		repo:       repo,
		genreLimit: genreLimit,
		now:        time.Now,
	}
}

// RegisterRequest carries the label registration form fields.
type RegisterRequest struct {
	Name          string
	Email         string
	Location      string
	Description   string
	Website       string
	Established   string
	Genres        []string
	AgreedToTerms bool
}

// Register validates the registration form and creates the label.
func (s *LabelService) Register(req RegisterRequest) (model.RecordLabel, error) {
	if req.Name == "" || req.Email == "" || req.Location == "" {
		return model.RecordLabel{}, fmt.Errorf("service: %w - name, email and location are required", marketerrors.ErrMissingRequiredField)
	}
	if err := genre.ValidateCount(req.Genres, s.genreLimit); err != nil {
		return model.RecordLabel{}, fmt.Errorf("service: %w", err)
	}
	if !req.AgreedToTerms {
		return model.RecordLabel{}, fmt.Errorf("service: %w", marketerrors.ErrTermsNotAccepted)
	}

	label := model.RecordLabel{
		LabelID:     utils.GenerateID(),
		Name:        req.Name,
		Email:       req.Email,
		Description: req.Description,
		Website:     req.Website,
		Genres:      append([]string(nil), req.Genres...),
		Location:    req.Location,
		Established: req.Established,
	}

	if err := s.repo.AddLabel(label); err != nil {
		return model.RecordLabel{}, fmt.Errorf("service: failed to store label %s: %w", label.LabelID, err)
	}
	return label, nil
}

// GetLabel returns the label snapshot for the given id.
func (s *LabelService) GetLabel(labelID string) (model.RecordLabel, error) {
	if labelID == "" {
		return model.RecordLabel{}, fmt.Errorf("service: %w - empty label ID", marketerrors.ErrMissingRequiredField)
	}

	l, err := s.repo.GetLabel(labelID)
	if err != nil {
		return model.RecordLabel{}, fmt.Errorf("service: failed to get label %s: %w", labelID, err)
	}
	return l, nil
}

// ListLabels returns all registered labels.
func (s *LabelService) ListLabels() ([]model.RecordLabel, error) {
	labels, err := s.repo.ListLabels()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list labels: %w", err)
	}
	return labels, nil
}
