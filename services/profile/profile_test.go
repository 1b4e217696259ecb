package profile

import (
	"errors"
	"strings"
	"testing"

	profileRepo "localserve/database/repository/profile"
	"localserve/models"
)

// fakeRepo is an in-memory ProfileRepository.
type fakeRepo struct {
	byID map[string]models.UserProfile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[string]models.UserProfile)}
}

func (f *fakeRepo) Create(p *models.UserProfile) error {
	f.byID[p.ID] = *p
	return nil
}

func (f *fakeRepo) GetByID(id string) (*models.UserProfile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, profileRepo.ErrNotFound
	}
	return &p, nil
}

func (f *fakeRepo) GetByEmail(email string) (*models.UserProfile, error) {
	for _, p := range f.byID {
		if p.Email == email {
			p := p
			return &p, nil
		}
	}
	return nil, profileRepo.ErrNotFound
}

func (f *fakeRepo) GetAll() ([]models.UserProfile, error) {
	out := make([]models.UserProfile, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Update(p *models.UserProfile) error {
	if _, ok := f.byID[p.ID]; !ok {
		return profileRepo.ErrNotFound
	}
	f.byID[p.ID] = *p
	return nil
}

func (f *fakeRepo) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return profileRepo.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func createInput(email string) models.UserProfileCreate {
	return models.UserProfileCreate{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
	}
}

func TestCreateProfile(t *testing.T) {
	svc := &DefaultProfileService{Repo: newFakeRepo()}

	prof, err := svc.CreateProfile(createInput("ada@example.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if prof.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if prof.CreatedAt.IsZero() || prof.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
	if prof.Skills == nil {
		t.Fatalf("skills should default to an empty list")
	}
}

func TestCreateProfile_DuplicateEmail(t *testing.T) {
	svc := &DefaultProfileService{Repo: newFakeRepo()}

	if _, err := svc.CreateProfile(createInput("ada@example.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.CreateProfile(createInput("ada@example.com"))
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUpdateProfile_EmailUniqueness(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultProfileService{Repo: repo}

	first, _ := svc.CreateProfile(createInput("first@example.com"))
	if _, err := svc.CreateProfile(createInput("second@example.com")); err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	taken := "second@example.com"
	if _, err := svc.UpdateProfile(first.ID, models.UserProfileUpdate{Email: &taken}); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// Re-submitting the profile's own email is fine.
	same := "first@example.com"
	if _, err := svc.UpdateProfile(first.ID, models.UserProfileUpdate{Email: &same}); err != nil {
		t.Fatalf("same-email update failed: %v", err)
	}
}

func TestUpdateProfile_Partial(t *testing.T) {
	svc := &DefaultProfileService{Repo: newFakeRepo()}
	prof, _ := svc.CreateProfile(createInput("ada@example.com"))

	title := "Engineer"
	updated, err := svc.UpdateProfile(prof.ID, models.UserProfileUpdate{JobTitle: &title})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.JobTitle != "Engineer" {
		t.Fatalf("job title not applied: %+v", updated)
	}
	if updated.FirstName != "Ada" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(prof.UpdatedAt) && !updated.UpdatedAt.Equal(prof.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	svc := &DefaultProfileService{Repo: newFakeRepo()}
	if _, err := svc.UpdateProfile("missing", models.UserProfileUpdate{}); !errors.Is(err, profileRepo.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAttachImage(t *testing.T) {
	svc := &DefaultProfileService{Repo: newFakeRepo()}
	prof, _ := svc.CreateProfile(createInput("ada@example.com"))

	t.Run("rejects non-images", func(t *testing.T) {
		if _, err := svc.AttachImage(prof.ID, "application/pdf", []byte("x")); !errors.Is(err, ErrNotAnImage) {
			t.Fatalf("expected ErrNotAnImage, got %v", err)
		}
	})

	t.Run("rejects oversized payloads", func(t *testing.T) {
		big := make([]byte, MaxImageSize+1)
		if _, err := svc.AttachImage(prof.ID, "image/png", big); !errors.Is(err, ErrImageTooLarge) {
			t.Fatalf("expected ErrImageTooLarge, got %v", err)
		}
	})

	t.Run("stores inline data string", func(t *testing.T) {
		encoded, err := svc.AttachImage(prof.ID, "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
		if err != nil {
			t.Fatalf("attach failed: %v", err)
		}
		if !strings.HasPrefix(encoded, "data:image/png;base64,") {
			t.Fatalf("unexpected encoding %q", encoded)
		}

		stored, err := svc.GetProfile(prof.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if stored.ProfileImage != encoded {
			t.Fatalf("image not persisted on the document")
		}
	})
}
