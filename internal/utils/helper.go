package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
)

var schemeRegex = regexp.MustCompile(`^https?://`)

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func WriteJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// EmailDomain derives the email domain from the public hostname,
// stripping any http(s) scheme.
func EmailDomain(hostname string) (string, error) {
	domain := schemeRegex.ReplaceAllString(hostname, "")
	if domain == "" {
		return "", errors.New("hostname is not set")
	}
	return domain, nil
}
