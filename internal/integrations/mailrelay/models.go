package mailrelay

// Message письмо для отправки через relay
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// SendResponse ответ relay на успешную отправку
type SendResponse struct {
	ID string `json:"id"`
}

// ErrorResponse модель ошибки от relay
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
