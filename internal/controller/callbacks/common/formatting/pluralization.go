package formatting

import "fmt"

// Count formats n with the singular or plural noun
func Count(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func Requests(n int) string {
	return Count(n, "request", "requests")
}

func Students(n int) string {
	return Count(n, "student", "students")
}
