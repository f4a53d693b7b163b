package tlog

// TestingPrinter is the subset of testing.TB used to report errors.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
	Fatal(a ...any)
}
