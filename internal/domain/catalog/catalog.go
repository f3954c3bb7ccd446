package catalog

// Static site catalogs: job listings, pricing plans and contact details.
// These mirror the published marketing content and are not persisted.

type JobListing struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

func Jobs() []JobListing {
	return []JobListing{
		{ID: "1", Title: "Frontend Developer", Department: "Tech"},
		{ID: "2", Title: "AI Engineer", Department: "Tech"},
		{ID: "3", Title: "Sales Manager", Department: "Admin"},
	}
}

// JobByID returns the listing and whether it exists.
func JobByID(id string) (JobListing, bool) {
	for _, j := range Jobs() {
		if j.ID == id {
			return j, true
		}
	}
	return JobListing{}, false
}

type PricingPlan struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func Plans() []PricingPlan {
	return []PricingPlan{
		{ID: "free", Name: "Free", Price: 0},
		{ID: "pro", Name: "Professional", Price: 29},
		{ID: "enterprise", Name: "Enterprise", Price: 99},
	}
}

func PlanByID(id string) (PricingPlan, bool) {
	for _, p := range Plans() {
		if p.ID == id {
			return p, true
		}
	}
	return PricingPlan{}, false
}

type ContactInfo struct {
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

func Contact() ContactInfo {
	return ContactInfo{
		Address:  "Taiz, Yemen",
		Phone:    "+967-735064530",
		WhatsApp: "967735064530",
		Email:    "info@thaki.ai",
	}
}
