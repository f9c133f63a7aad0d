package repositories

// TaskHostRepository abstracts the CI platform running the step: it provides
// named inputs, receives outputs and decides how a failure is reported.
type TaskHostRepository interface {
	Input(name string) string
	SetOutput(name, value string) error
	SetSecret(value string)
	Info(message string)
	Warning(message string)
	SetFailed(message string)
	Failed() bool
}
