package model

import "time"

// Feedback is a testimonial shown on the public site. Read-only to clients;
// rows are seeded out of band.
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	PhotoURL  string    `json:"photo_url,omitempty" gorm:"size:512"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null;default:5"`
	CreatedAt time.Time `json:"created_at"`
}
