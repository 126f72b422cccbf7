package i

// Logger writes leveled, preformatted messages.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
