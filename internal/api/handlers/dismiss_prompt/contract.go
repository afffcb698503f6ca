package dismiss_prompt

type Logger interface {
	Info(format string, v ...interface{})
}
