package response

import (
	"time"

	"thaki_platform/internal/domain/entities"
)

type InterestResponse struct {
	ID           string    `json:"id"`
	ServiceName  string    `json:"serviceName"`
	CustomerName string    `json:"customerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Type         string    `json:"type"`
	Details      string    `json:"details,omitempty"`
	ProjectType  string    `json:"projectType,omitempty"`
	Budget       string    `json:"budget,omitempty"`
	Timeline     string    `json:"timeline,omitempty"`
	Date         time.Time `json:"date"`
}

func FromInterest(in entities.ServiceInterest) InterestResponse {
	return InterestResponse{
		ID:           in.ID,
		ServiceName:  in.ServiceName,
		CustomerName: in.CustomerName,
		Email:        in.Email,
		Phone:        in.Phone,
		Type:         string(in.Type),
		Details:      in.Details,
		ProjectType:  in.ProjectType,
		Budget:       in.Budget,
		Timeline:     in.Timeline,
		Date:         in.Date,
	}
}

func FromInterests(list []entities.ServiceInterest) []InterestResponse {
	out := make([]InterestResponse, 0, len(list))
	for _, in := range list {
		out = append(out, FromInterest(in))
	}
	return out
}

type ReviewResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse{ID: r.ID, Name: r.Name, Rating: r.Rating, Comment: r.Comment, Date: r.Date}
}

func FromReviews(list []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromReview(r))
	}
	return out
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	Plan          string    `json:"plan"`
	DepositorName string    `json:"depositorName"`
	Phone         string    `json:"phone,omitempty"`
	ReceiptNumber string    `json:"receiptNumber"`
	ReceiptImage  string    `json:"receiptImageBase64,omitempty"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

func FromPayment(p entities.PaymentRequest) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Plan:          p.Plan,
		DepositorName: p.DepositorName,
		Phone:         p.Phone,
		ReceiptNumber: p.ReceiptNumber,
		ReceiptImage:  p.ReceiptImage,
		Status:        string(p.Status),
		Date:          p.Date,
	}
}

func FromPayments(list []entities.PaymentRequest) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPayment(p))
	}
	return out
}

type MessageResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

func FromMessage(m entities.ContactMessage) MessageResponse {
	return MessageResponse{ID: m.ID, Name: m.Name, Email: m.Email, Type: m.Type, Message: m.Message, Date: m.Date}
}

func FromMessages(list []entities.ContactMessage) []MessageResponse {
	out := make([]MessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromMessage(m))
	}
	return out
}

type ApplicationResponse struct {
	ID            string    `json:"id"`
	JobID         string    `json:"jobId"`
	ApplicantName string    `json:"applicantName"`
	Email         string    `json:"email"`
	Position      string    `json:"position"`
	Date          time.Time `json:"date"`
}

func FromApplication(a entities.JobApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		ApplicantName: a.ApplicantName,
		Email:         a.Email,
		Position:      a.Position,
		Date:          a.Date,
	}
}

func FromApplications(list []entities.JobApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromApplication(a))
	}
	return out
}

type OrderResponse struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Symbol   string    `json:"symbol"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Date     time.Time `json:"date"`
}

func FromOrder(o entities.StockOrder) OrderResponse {
	return OrderResponse{ID: o.ID, Type: string(o.Type), Symbol: o.Symbol, Quantity: o.Quantity, Price: o.Price, Date: o.Date}
}

func FromOrders(list []entities.StockOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrder(o))
	}
	return out
}
