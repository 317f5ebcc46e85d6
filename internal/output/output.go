package output

// Format represents the output format type.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatCount
)

// Formatter is the interface for output formatters.
// Exactly one representation is produced per invocation.
type Formatter interface {
	FormatText() string
	FormatJSON() ([]byte, error)
	FormatCount() string
}

// FormatOutput formats the given Formatter based on the specified format.
func FormatOutput(f Formatter, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := f.FormatJSON()
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatCount:
		return f.FormatCount(), nil
	default:
		return f.FormatText(), nil
	}
}
