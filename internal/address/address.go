package address

import "strings"

// Address is the normalized shape every processor and view works with.
// All fields are optional; a checkout stage decides which ones it requires.
type Address struct {
	Name       string
	FirstName  string
	LastName   string
	Street     string
	Additional *string
	City       string
	State      string
	PostalCode string
	Country    string
}

// comparable fields, in the order they are normalized.
var fields = []string{"street", "additional", "city", "state", "postalCode", "country"}

// Normalize lower-cases and trims every comparable field of an address.
func Normalize(a *Address) map[string]string {
	norm := make(map[string]string, len(fields))

	get := func(field string) string {
		switch field {
		case "street":
			return a.Street
		case "additional":
			if a.Additional != nil {
				return *a.Additional
			}
			return ""
		case "city":
			return a.City
		case "state":
			return a.State
		case "postalCode":
			return a.PostalCode
		case "country":
			return a.Country
		}
		return ""
	}

	for _, f := range fields {
		norm[f] = strings.ToLower(strings.TrimSpace(get(f)))
	}
	return norm
}

// Same reports whether two addresses are equal after normalization.
// A nil on either side is never equal to anything.
func Same(a, b *Address) bool {
	if a == nil || b == nil {
		return false
	}

	normA := Normalize(a)
	normB := Normalize(b)

	for _, f := range fields {
		if normA[f] != normB[f] {
			return false
		}
	}
	return true
}

// DisplayName joins the split name fields back into a single line.
func DisplayName(a *Address) string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
