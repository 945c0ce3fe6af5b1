package interpret

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var monthNames = []struct {
	name string
	code string
}{
	{"janeiro", "01"},
	{"fevereiro", "02"},
	{"março", "03"},
	{"abril", "04"},
	{"maio", "05"},
	{"junho", "06"},
	{"julho", "07"},
	{"agosto", "08"},
	{"setembro", "09"},
	{"outubro", "10"},
	{"novembro", "11"},
	{"dezembro", "12"},
}

var monthNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`m[eê]s\s*(\d{1,2})`),
	regexp.MustCompile(`\bmonth\s*(\d{1,2})`),
}

// MonthFromCommand scans a command for a month name or a numeric "month N" pattern,
// returning the two-digit month code used in date filters.
func MonthFromCommand(command string) (monthCode string, found bool) {
	lowered := strings.ToLower(command)

	for _, month := range monthNames {
		if strings.Contains(lowered, month.name) {
			return month.code, true
		}
	}

	for _, pattern := range monthNumberPatterns {
		if match := pattern.FindStringSubmatch(lowered); match != nil {
			month, err := strconv.Atoi(match[1])
			if err == nil && month >= 1 && month <= 12 {
				return fmt.Sprintf("%02d", month), true
			}
		}
	}

	return "", false
}
