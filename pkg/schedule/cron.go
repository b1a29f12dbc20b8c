package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// cronLiteralRe matches five whitespace-separated fields made of digits, '*', ',', '-' and '/'.
var cronLiteralRe = regexp.MustCompile(`^[\d*,/-]+(\s+[\d*,/-]+){4}$`)

// isCronLiteral reports whether s has the shape of a five-field cron expression.
// Field values are not range checked.
func isCronLiteral(s string) bool {
	return cronLiteralRe.MatchString(s)
}

// Fields are the five fields of a cron expression.
type Fields struct {
	Minute     string `yaml:"minute" json:"minute"`
	Hour       string `yaml:"hour" json:"hour"`
	DayOfMonth string `yaml:"dayOfMonth" json:"dayOfMonth"`
	Month      string `yaml:"month" json:"month"`
	DayOfWeek  string `yaml:"dayOfWeek" json:"dayOfWeek"`
}

// String joins the fields into a cron expression.
func (f Fields) String() string {
	return strings.Join([]string{f.Minute, f.Hour, f.DayOfMonth, f.Month, f.DayOfWeek}, " ")
}

// Missing returns the names of the fields that are empty.
func (f Fields) Missing() []string {
	var missing []string
	for _, field := range []struct{ name, val string }{
		{"minute", f.Minute},
		{"hour", f.Hour},
		{"dayOfMonth", f.DayOfMonth},
		{"month", f.Month},
		{"dayOfWeek", f.DayOfWeek},
	} {
		if strings.TrimSpace(field.val) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func formatIntList(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
