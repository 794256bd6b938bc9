package record_payment

// RecordPaymentRequest HTTP request model; the vehicle id comes from the URL
type RecordPaymentRequest struct {
	PaymentMode string `json:"paymentMode"`
}
