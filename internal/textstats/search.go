package textstats

import (
	"fmt"
	"regexp"

	"textlab/internal/services"
)

// Search returns every non-overlapping match of pattern in text, in order of
// the match's first character. An unparseable pattern fails with an error
// tagged services.ErrPattern.
func Search(text, pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, services.Wrap(services.ErrPattern, "textstats", "search",
			fmt.Sprintf("compile pattern %q", pattern), err)
	}
	return re.FindAllString(text, -1), nil
}
