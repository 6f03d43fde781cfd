package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DecodeError     = 3
	ExportError     = 4
)
