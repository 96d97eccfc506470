package domain

import "time"

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateAnnouncementInput struct {
	Title string
	Body  string
}

type UpdateAnnouncementInput struct {
	Title *string
	Body  *string
}
