package hide_contact

type Logger interface {
	Info(format string, v ...interface{})
}
