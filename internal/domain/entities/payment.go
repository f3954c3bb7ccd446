package entities

import "time"

// PaymentStatus represents the manual review outcome of a payment receipt.
//
// Every submitted receipt starts as pending. An admin moves it to approved
// or rejected exactly once; both are terminal and a record never leaves a
// terminal status.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Terminal reports whether no further transition is permitted from s.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}

// Resolution reports whether s is a status an admin may resolve a pending
// payment to.
func (s PaymentStatus) Resolution() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}

// PaymentRequest is a bank-transfer receipt submitted from the pricing page.
//
// Persisted JSON keys mirror the stored-state layout, so older records keep
// decoding as fields are added. ReceiptImage holds the uploaded receipt as a
// data URI.

type PaymentRequest struct {
	ID            string        `json:"id"`
	Plan          string        `json:"plan"`
	DepositorName string        `json:"depositorName"`
	Phone         string        `json:"phone"`
	ReceiptNumber string        `json:"receiptNumber"`
	ReceiptImage  string        `json:"receiptImageBase64"`
	Status        PaymentStatus `json:"status"`
	Date          time.Time     `json:"date"`
}
