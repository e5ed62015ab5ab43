package models

import "time"

type Category string

const (
	CategoryAcademic   Category = "ACADEMIC"
	CategorySports     Category = "SPORTS"
	CategoryArts       Category = "ARTS"
	CategoryTechnology Category = "TECHNOLOGY"
	CategorySocial     Category = "SOCIAL"
	CategoryOther      Category = "OTHER"
)

type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Logo        *string   `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	MemberCount int       `json:"member_count"`
	EventCount  int       `json:"event_count"`
}

type ClubInput struct {
	Name        string
	Description string
	Category    Category
	Logo        *string
}
