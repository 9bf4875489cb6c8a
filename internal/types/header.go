package types

const (
	HeaderRequestID = "X-Request-ID"
)
