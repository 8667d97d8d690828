package errors

type ErrorInfo struct {
	category  string
	sanitized string
}
