package dto

// AddSubscriberRequest is the body of POST /api/whatsapp/users.
type AddSubscriberRequest struct {
	PhoneNumber string `json:"phone_number"`
}
