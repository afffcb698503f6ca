package get_page

type Logger interface {
	Info(format string, v ...interface{})
}
