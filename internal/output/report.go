package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/finplan/internal/domain"
)

// Resolve returns the formatter for name, or an error listing what is available.
func Resolve(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport writes report in the named format to a timestamped file in dir.
// The special format "all" writes the verbose console report and the detailed CSV.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, report, dir, Extension(f.Name()))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f, err := Resolve(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, report, dir, Extension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}
