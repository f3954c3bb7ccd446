package entities

import "time"

// Review is a customer testimonial. Rating is an integer in [1,5]; the
// collection is kept newest-first so the testimonials strip can render it
// without sorting.
type Review struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}
