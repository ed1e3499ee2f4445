// export_test.go exports private functions for white-box testing.
package logger

type ErrorEntry = errorEntry

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

func (e ErrorEntry) Message() string { return e.message }

func (e ErrorEntry) Meta() map[string]any { return e.metadata }
