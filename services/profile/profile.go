package profile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	profileRepo "localserve/database/repository/profile"
	"localserve/models"

	"github.com/google/uuid"
)

// MaxImageSize bounds profile image uploads.
const MaxImageSize = 5 << 20 // 5 MB

var (
	// ErrDuplicateEmail is returned when another profile already owns the email.
	ErrDuplicateEmail = errors.New("a profile with this email already exists")
	// ErrImageTooLarge is returned for uploads over MaxImageSize.
	ErrImageTooLarge = errors.New("image exceeds the 5MB size limit")
	// ErrNotAnImage is returned for non-image uploads.
	ErrNotAnImage = errors.New("uploaded file must be an image")
)

// ProfileService manages Profile Plus documents.
type ProfileService interface {
	CreateProfile(input models.UserProfileCreate) (*models.UserProfile, error)
	GetProfile(id string) (*models.UserProfile, error)
	ListProfiles() ([]models.UserProfile, error)
	UpdateProfile(id string, update models.UserProfileUpdate) (*models.UserProfile, error)
	DeleteProfile(id string) error
	AttachImage(id string, contentType string, data []byte) (string, error)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
}

// CreateProfile inserts a new profile after checking email uniqueness. The
// check-then-insert sequence is not atomic; the repository's unique email
// index is the backstop under concurrent creates.
func (s *DefaultProfileService) CreateProfile(input models.UserProfileCreate) (*models.UserProfile, error) {
	if existing, err := s.Repo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, profileRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	now := time.Now().UTC()
	prof := &models.UserProfile{
		ID:                uuid.New().String(),
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Email:             input.Email,
		Phone:             input.Phone,
		Bio:               input.Bio,
		JobTitle:          input.JobTitle,
		Company:           input.Company,
		Industry:          input.Industry,
		YearsOfExperience: input.YearsOfExperience,
		Skills:            input.Skills,
		LinkedinURL:       input.LinkedinURL,
		TwitterURL:        input.TwitterURL,
		GithubURL:         input.GithubURL,
		WebsiteURL:        input.WebsiteURL,
		ProfileImage:      input.ProfileImage,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if prof.Skills == nil {
		prof.Skills = []string{}
	}

	if err := s.Repo.Create(prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// GetProfile fetches a profile by id.
func (s *DefaultProfileService) GetProfile(id string) (*models.UserProfile, error) {
	return s.Repo.GetByID(id)
}

// ListProfiles returns all stored profiles.
func (s *DefaultProfileService) ListProfiles() ([]models.UserProfile, error) {
	profiles, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []models.UserProfile{}
	}
	return profiles, nil
}

// UpdateProfile applies a partial update. When the email changes, uniqueness
// is re-checked against the rest of the collection.
func (s *DefaultProfileService) UpdateProfile(id string, update models.UserProfileUpdate) (*models.UserProfile, error) {
	prof, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil && *update.Email != prof.Email {
		if existing, err := s.Repo.GetByEmail(*update.Email); err == nil && existing != nil {
			return nil, ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, profileRepo.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		prof.Email = *update.Email
	}

	applyString(&prof.FirstName, update.FirstName)
	applyString(&prof.LastName, update.LastName)
	applyString(&prof.Phone, update.Phone)
	applyString(&prof.Bio, update.Bio)
	applyString(&prof.JobTitle, update.JobTitle)
	applyString(&prof.Company, update.Company)
	applyString(&prof.Industry, update.Industry)
	applyString(&prof.LinkedinURL, update.LinkedinURL)
	applyString(&prof.TwitterURL, update.TwitterURL)
	applyString(&prof.GithubURL, update.GithubURL)
	applyString(&prof.WebsiteURL, update.WebsiteURL)
	applyString(&prof.ProfileImage, update.ProfileImage)
	if update.YearsOfExperience != nil {
		prof.YearsOfExperience = update.YearsOfExperience
	}
	if update.Skills != nil {
		prof.Skills = update.Skills
	}
	prof.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(prof); err != nil {
		return nil, err
	}
	return prof, nil
}

// DeleteProfile removes a profile by id.
func (s *DefaultProfileService) DeleteProfile(id string) error {
	return s.Repo.Delete(id)
}

// AttachImage validates an uploaded image and stores it inline on the
// profile document as a base64 data string.
func (s *DefaultProfileService) AttachImage(id string, contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if len(data) > MaxImageSize {
		return "", ErrImageTooLarge
	}

	prof, err := s.Repo.GetByID(id)
	if err != nil {
		return "", err
	}

	encoded := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	prof.ProfileImage = encoded
	prof.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(prof); err != nil {
		return "", err
	}
	return encoded, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
