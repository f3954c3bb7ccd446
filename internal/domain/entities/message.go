package entities

import "time"

// ContactMessage is a contact-form submission. Type is the free-form
// category chosen by the visitor (support, sales, ...). Append-only.
type ContactMessage struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}
