// File: /utils/validators.go
package utils

import (
	"strings"
	"unicode/utf8"
)

// ValidationError describes a single rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidatePostInput checks a new post's title and content.
func ValidatePostInput(title, content string, maxLength int) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(content) == "" {
		errs = append(errs, ValidationError{Field: "content", Message: "Content is required"})
	} else if utf8.RuneCountInString(content) > maxLength {
		errs = append(errs, ValidationError{Field: "content", Message: "Content must be 280 characters or fewer"})
	}

	if utf8.RuneCountInString(title) > 255 {
		errs = append(errs, ValidationError{Field: "title", Message: "Title is too long"})
	}

	return errs
}

// ValidateCommentInput checks a new comment's content.
func ValidateCommentInput(content string, maxLength int) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(content) == "" {
		errs = append(errs, ValidationError{Field: "content", Message: "Comment cannot be empty"})
	} else if utf8.RuneCountInString(content) > maxLength {
		errs = append(errs, ValidationError{Field: "content", Message: "Comment must be 280 characters or fewer"})
	}

	return errs
}

// ValidateClubName trims and checks a club name, returning the cleaned
// name and an empty message on success.
func ValidateClubName(name string) (string, string) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" {
		return "", "Club name is required"
	}
	if utf8.RuneCountInString(cleaned) > 100 {
		return "", "Club name is too long"
	}
	return cleaned, ""
}

// ValidateUsername checks a signup username.
func ValidateUsername(username string) bool {
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	for _, r := range username {
		if !(r == '_' || r == '.' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
