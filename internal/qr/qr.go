// Package qr builds links to the external QR image-generation service.
// Rendering is fully delegated: the API only hands out a URL that, when
// fetched, yields a QR code for a guest's personalized invitation link.
package qr

import (
	"fmt"
	"net/url"
	"strings"
)

type Generator struct {
	serviceURL string
	publicURL  string
}

func NewGenerator(serviceURL, publicURL string) *Generator {
	return &Generator{
		serviceURL: strings.TrimRight(serviceURL, "/"),
		publicURL:  strings.TrimRight(publicURL, "/"),
	}
}

// InvitationLink is the personalized RSVP link for a guest.
func (g *Generator) InvitationLink(guestID string) string {
	return fmt.Sprintf("%s/rsvp/%s", g.publicURL, guestID)
}

// ImageURL returns the external service URL encoding the guest's
// invitation link as a QR image.
func (g *Generator) ImageURL(guestID string) string {
	params := url.Values{}
	params.Set("size", "300x300")
	params.Set("data", g.InvitationLink(guestID))
	return fmt.Sprintf("%s/?%s", g.serviceURL, params.Encode())
}
