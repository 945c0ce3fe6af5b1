package execute

import "strings"

var destructiveVerbs = []string{"DROP", "DELETE", "UPDATE"}

// CheckSafety rejects a query when it starts with a destructive verb and contains no
// WHERE token anywhere. This is a syntactic check, not a parser: a WHERE inside a
// comment or string literal satisfies it. Known limitation, kept narrow on purpose.
func CheckSafety(query string) (offendingVerb string, safe bool) {
	normalized := strings.ToUpper(strings.TrimSpace(query))

	if strings.Contains(normalized, "WHERE") {
		return "", true
	}

	for _, verb := range destructiveVerbs {
		if strings.HasPrefix(normalized, verb+" ") {
			return verb, false
		}
	}

	return "", true
}
