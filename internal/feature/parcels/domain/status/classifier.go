// Package status derives a coarse delivery category from carrier status text.
// Everything here is pure: counts computed from stored fields are reproducible.
package status

import (
	"strings"

	"parcel_backend/internal/feature/parcels/domain/entity"
)

// Category is a mutually exclusive display bucket.
type Category string

const (
	Delivered Category = "delivered"
	Customs   Category = "customs"
	InTransit Category = "in_transit"
	Unknown   Category = "unknown"
)

// DeliveredCode is the carrier's short code for a completed delivery.
const DeliveredCode = "501"

type rule struct {
	keyword  string
	category Category
}

// rules are evaluated in order; the first keyword found wins.
var rules = []rule{
	{keyword: "delivered", category: Delivered},
	{keyword: "customs", category: Customs},
	{keyword: "transit", category: InTransit},
}

// Classify maps a status description to a Category. A nil or empty
// description is Unknown.
func Classify(description *string) Category {
	if description == nil || *description == "" {
		return Unknown
	}
	text := strings.ToLower(*description)
	for _, r := range rules {
		if strings.Contains(text, r.keyword) {
			return r.category
		}
	}
	return Unknown
}

// ClassifyParcel applies the short code first: DeliveredCode means Delivered
// whatever the description says.
func ClassifyParcel(code, description *string) Category {
	if code != nil && strings.TrimSpace(*code) == DeliveredCode {
		return Delivered
	}
	return Classify(description)
}

// Summary holds dashboard counts. The buckets partition Total.
type Summary struct {
	Total     int
	Delivered int
	Customs   int
	InTransit int
	Unknown   int
}

// Summarize counts parcels per category.
func Summarize(parcels []entity.Parcel) Summary {
	s := Summary{Total: len(parcels)}
	for _, p := range parcels {
		switch ClassifyParcel(p.Status, p.StatusDescription) {
		case Delivered:
			s.Delivered++
		case Customs:
			s.Customs++
		case InTransit:
			s.InTransit++
		default:
			s.Unknown++
		}
	}
	return s
}
