package mailrelay

import "errors"

var (
	// ErrRejected возвращается, когда relay отклонил письмо (4xx)
	ErrRejected = errors.New("mailrelay client: message rejected")

	// ErrRelayUnavailable возвращается, когда relay недоступен или ответил 5xx
	ErrRelayUnavailable = errors.New("mailrelay client: relay unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailrelay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе relay
	ErrInvalidResponse = errors.New("mailrelay client: invalid response")
)
