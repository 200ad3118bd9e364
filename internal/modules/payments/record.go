package payments

import "time"

// Record is a row in the payment store. The store is written by the donation
// checkout flow; this service only ever reads it.
type Record struct {
	TransactionID     string    `gorm:"column:transaction_id;type:varchar(128);primaryKey"`
	Done              bool      `gorm:"column:done;not null"`
	Name              string    `gorm:"column:name;type:varchar(255)"`
	Message           string    `gorm:"column:message;type:varchar(1024)"`
	UPIID             string    `gorm:"column:upi_id;type:varchar(128)"`
	RazorpayPaymentID string    `gorm:"column:razorpay_payment_id;type:varchar(128)"`
	ToUser            string    `gorm:"column:to_user;type:varchar(128)"`
	Amount            float64   `gorm:"column:amount;not null;default:0"`
	UpdatedAt         time.Time `gorm:"column:updated_at;type:datetime(3)"`
}

func (Record) TableName() string { return "payments" }
