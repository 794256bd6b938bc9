package record_payment

import "context"

// PaymentService is the payment-recording contract, implemented by the
// vehicles service
type PaymentService interface {
	RecordPayment(ctx context.Context, vehicleID string, mode string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
