package validate

import (
	"regexp"
	"strings"

	"quickbasket/internal/domain"
)

var (
	reSKU = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reID  = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)
)

// SKU validates a catalog identifier from a path or payload.
func SKU(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSKU.MatchString(s)
}

// BasketID validates a basket identifier (opaque, uuid-shaped).
func BasketID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// ProductPayload checks a create/update body. It returns the reason a
// payload is rejected, or ok=true.
func ProductPayload(p domain.Product) (string, bool) {
	if _, ok := SKU(p.SKU); !ok {
		return "invalid sku", false
	}
	if strings.TrimSpace(p.Name) == "" {
		return "missing name", false
	}
	if p.UnitPrice < 0 {
		return "unitPrice must be non-negative", false
	}
	if (p.OfferQuantity == nil) != (p.OfferPrice == nil) {
		return "offerQuantity and offerPrice must be set together", false
	}
	if p.OfferQuantity != nil && *p.OfferQuantity < 1 {
		return "offerQuantity must be positive", false
	}
	return "", true
}
