package profileRepo

import "localserve/models"

// ProfileRepository defines CRUD operations over the profiles collection.
// Documents are keyed by the generated id field, not the collection's _id.
type ProfileRepository interface {
	Create(profile *models.UserProfile) error
	GetByID(id string) (*models.UserProfile, error)
	GetByEmail(email string) (*models.UserProfile, error)
	GetAll() ([]models.UserProfile, error)
	Update(profile *models.UserProfile) error
	Delete(id string) error
}

// StatusRepository records client liveness checks.
type StatusRepository interface {
	Create(check *models.StatusCheck) error
	GetAll() ([]models.StatusCheck, error)
}
