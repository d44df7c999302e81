package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// TweetMaxLength is the hard cap on tweet content.
const TweetMaxLength = 280

var (
	// ObjectIDRegex validates canonical 24-character hex identifiers
	ObjectIDRegex = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)
)

// ValidateObjectID validates a document identifier
func ValidateObjectID(id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	if !ObjectIDRegex.MatchString(id) {
		return fmt.Errorf("invalid id format")
	}
	return nil
}

// ValidateTweetContent validates tweet content
func ValidateTweetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("tweet content is required")
	}
	// Characters, not bytes: a multibyte tweet at the cap is still valid.
	if utf8.RuneCountInString(content) > TweetMaxLength {
		return fmt.Errorf("tweet content cannot exceed %d characters", TweetMaxLength)
	}
	return nil
}

// ValidateCommentContent validates comment content
func ValidateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("comment text is required")
	}
	if len(content) > 2000 {
		return fmt.Errorf("comment text is too long (max 2000 characters)")
	}
	return nil
}

// ValidateVideoTitle validates a video title
func ValidateVideoTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title is too long (max 200 characters)")
	}
	return nil
}

// ValidatePlaylistName validates a playlist name
func ValidatePlaylistName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name is too long (max 100 characters)")
	}
	return nil
}
