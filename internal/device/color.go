package device

// ANSI escape sequences used by the console output.
const (
	Reset   = "\x1b[0m"
	Red     = "\x1b[1;31m"
	Green   = "\x1b[1;32m"
	Yellow  = "\x1b[1;33m"
	Blue    = "\x1b[1;34m"
	Magenta = "\x1b[1;35m"
	Cyan    = "\x1b[1;36m"
	Gray    = "\x1b[1;90m"
)
