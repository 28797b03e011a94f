package usecase

import (
	"strings"

	"go.uber.org/zap"
)

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}

// blankPatch reports whether a patch sets a required field to blank.
func blankPatch(v *string) bool {
	return v != nil && *v == ""
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func normalizeSearch(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cleanID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}
