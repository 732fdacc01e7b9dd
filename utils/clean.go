package utils

import (
	"regexp"
	"strings"
	"unicode"
)

func CleanDirName(input string) string {
	re := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)
	cleaned := re.ReplaceAllString(input, "_")

	cleaned = strings.TrimSpace(cleaned)

	return cleaned
}

// CleanFileName keeps letters, numbers and plain spaces, everything else
// becomes an underscore.
func CleanFileName(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' {
			return r
		}
		return '_'
	}, input)
}
