package response

const (
	DefaultErrorMessage = "internal server error"
	MessageRateLimited  = "rate limit exceeded"
)
