package models

import "time"

// UserProfile is a Profile Plus document. The id field is a generated UUID
// string, not the collection's native _id.
type UserProfile struct {
	ID string `bson:"id" json:"id"`

	// Basic information
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Bio       string `bson:"bio,omitempty" json:"bio,omitempty"`

	// Professional information
	JobTitle          string   `bson:"job_title,omitempty" json:"job_title,omitempty"`
	Company           string   `bson:"company,omitempty" json:"company,omitempty"`
	Industry          string   `bson:"industry,omitempty" json:"industry,omitempty"`
	YearsOfExperience *int     `bson:"years_of_experience,omitempty" json:"years_of_experience,omitempty"`
	Skills            []string `bson:"skills" json:"skills"`

	// Social links
	LinkedinURL string `bson:"linkedin_url,omitempty" json:"linkedin_url,omitempty"`
	TwitterURL  string `bson:"twitter_url,omitempty" json:"twitter_url,omitempty"`
	GithubURL   string `bson:"github_url,omitempty" json:"github_url,omitempty"`
	WebsiteURL  string `bson:"website_url,omitempty" json:"website_url,omitempty"`

	// Profile image, base64 encoded inline on the document.
	ProfileImage string `bson:"profile_image,omitempty" json:"profile_image,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// UserProfileCreate is the payload for creating a profile.
type UserProfileCreate struct {
	FirstName         string   `json:"first_name" binding:"required"`
	LastName          string   `json:"last_name" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	Phone             string   `json:"phone"`
	Bio               string   `json:"bio"`
	JobTitle          string   `json:"job_title"`
	Company           string   `json:"company"`
	Industry          string   `json:"industry"`
	YearsOfExperience *int     `json:"years_of_experience"`
	Skills            []string `json:"skills"`
	LinkedinURL       string   `json:"linkedin_url"`
	TwitterURL        string   `json:"twitter_url"`
	GithubURL         string   `json:"github_url"`
	WebsiteURL        string   `json:"website_url"`
	ProfileImage      string   `json:"profile_image"`
}

// UserProfileUpdate carries the fields a profile update may change.
// Nil fields are left untouched.
type UserProfileUpdate struct {
	FirstName         *string  `json:"first_name"`
	LastName          *string  `json:"last_name"`
	Email             *string  `json:"email" binding:"omitempty,email"`
	Phone             *string  `json:"phone"`
	Bio               *string  `json:"bio"`
	JobTitle          *string  `json:"job_title"`
	Company           *string  `json:"company"`
	Industry          *string  `json:"industry"`
	YearsOfExperience *int     `json:"years_of_experience"`
	Skills            []string `json:"skills"`
	LinkedinURL       *string  `json:"linkedin_url"`
	TwitterURL        *string  `json:"twitter_url"`
	GithubURL         *string  `json:"github_url"`
	WebsiteURL        *string  `json:"website_url"`
	ProfileImage      *string  `json:"profile_image"`
}

// StatusCheck is a simple liveness record written by clients.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"client_name"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}
