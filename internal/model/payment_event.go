package model

const (
	PaymentEventConfirmed = "PAYMENT_CONFIRMED"
	PaymentEventCanceled  = "PAYMENT_CANCELED"
)

// PaymentEvent 付款服務 webhook 內容，orderId 即預約 id
type PaymentEvent struct {
	EventType string           `json:"eventType"`
	Data      PaymentEventData `json:"data"`
}

type PaymentEventData struct {
	OrderID    string `json:"orderId"`
	Amount     int64  `json:"amount"`
	PaymentKey string `json:"paymentKey"`
}

// DedupKey 同一付款事件重送時得到相同的 key
func (e PaymentEvent) DedupKey() string {
	ref := e.Data.PaymentKey
	if ref == "" {
		ref = e.Data.OrderID
	}
	return e.EventType + ":" + ref
}

type WebhookResult struct {
	Success   bool   `json:"success"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Message   string `json:"message"`
}
