package domain

import "time"

const BirthDateLayout = "02.01.2006"

type Volunteer struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Group     string    `json:"group,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Handle    string    `json:"handle,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Complete reports whether every required profile field has been submitted.
func (v *Volunteer) Complete() bool {
	return v.FullName != "" && v.Group != "" && v.BirthDate != "" && v.Phone != ""
}

// ProfileInput holds one full submission of the profile flow.
type ProfileInput struct {
	FullName  string `validate:"required,max=200"`
	Group     string `validate:"required,max=100"`
	BirthDate string `validate:"required,birthdate"`
	Phone     string `validate:"required,phone"`
	Handle    string `validate:"required,handle"`
}
