// Package address converts between the single address string stored on a
// contact and the four sub-fields shown in the edit form.
package address

import (
	"regexp"
	"strings"
)

// Fields holds the editable parts of an address
type Fields struct {
	Line1   string
	Line2   string
	State   string
	Pincode string
}

var trailingDigits = regexp.MustCompile(`\d+$`)

// Parse splits an address string into its sub-fields.
//
// It assumes the shape produced by Format ("line1, line2, state pincode").
// Anything else is parsed best-effort: segments between the second and the
// last are dropped.
func Parse(address string) Fields {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var f Fields
	if len(parts) > 0 {
		f.Line1 = parts[0]
	}
	if len(parts) > 1 {
		f.Line2 = parts[1]
	}
	if len(parts) > 2 {
		last := parts[len(parts)-1]
		if pin := trailingDigits.FindString(last); pin != "" {
			f.Pincode = pin
			f.State = strings.TrimSpace(strings.TrimSuffix(last, pin))
		} else {
			f.State = last
		}
	}

	return f
}

// Format joins the sub-fields back into a single address string.
// Line1 is always included; callers validate it is non-empty.
func Format(f Fields) string {
	var b strings.Builder
	b.WriteString(f.Line1)
	if f.Line2 != "" {
		b.WriteString(", ")
		b.WriteString(f.Line2)
	}
	if f.State != "" {
		b.WriteString(", ")
		b.WriteString(f.State)
	}
	if f.Pincode != "" {
		b.WriteString(" ")
		b.WriteString(f.Pincode)
	}
	return strings.TrimSpace(b.String())
}
