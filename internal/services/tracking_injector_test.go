package services

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const injectorBase = "http://track.example.com/api/v1/"

func TestRewriteLinks(t *testing.T) {
	campaignID := primitive.NewObjectID()
	contactID := primitive.NewObjectID()

	t.Run("single link", func(t *testing.T) {
		html := `<a href="https://example.com/offer?x=1">Offer</a>`
		got := RewriteLinks(html, injectorBase, campaignID, contactID)

		want := fmt.Sprintf(`<a href="http://track.example.com/api/v1/track/click/%s/%s?redirect=%s">Offer</a>`,
			campaignID.Hex(), contactID.Hex(), url.QueryEscape("https://example.com/offer?x=1"))
		if got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("multiple links all rewritten", func(t *testing.T) {
		html := `<a href="https://a.example.com">A</a> <a href="https://b.example.com">B</a>`
		got := RewriteLinks(html, injectorBase, campaignID, contactID)

		if strings.Contains(got, `href="https://a.example.com"`) || strings.Contains(got, `href="https://b.example.com"`) {
			t.Errorf("original hrefs survived:\n%s", got)
		}
		if strings.Count(got, "/track/click/") != 2 {
			t.Errorf("expected 2 rewrites:\n%s", got)
		}
	})

	t.Run("empty href untouched", func(t *testing.T) {
		html := `<a href="">empty</a>`
		if got := RewriteLinks(html, injectorBase, campaignID, contactID); got != html {
			t.Errorf("empty href was rewritten: %s", got)
		}
	})

	t.Run("anchor without quoted href untouched", func(t *testing.T) {
		html := `<a href=https://example.com>bare</a><p>no links here</p>`
		if got := RewriteLinks(html, injectorBase, campaignID, contactID); got != html {
			t.Errorf("malformed anchor was rewritten: %s", got)
		}
	})

	t.Run("non-url target still encoded", func(t *testing.T) {
		html := `<a href="not a url">x</a>`
		got := RewriteLinks(html, injectorBase, campaignID, contactID)
		if !strings.Contains(got, "redirect="+url.QueryEscape("not a url")) {
			t.Errorf("target not carried through: %s", got)
		}
	})
}

func TestInjectOpenPixel(t *testing.T) {
	campaignID := primitive.NewObjectID()
	contactID := primitive.NewObjectID()
	pixelPath := fmt.Sprintf("/track/open/%s/%s", campaignID.Hex(), contactID.Hex())

	t.Run("before closing body tag", func(t *testing.T) {
		html := `<html><body><p>Hi</p></body></html>`
		got := InjectOpenPixel(html, injectorBase, campaignID, contactID)

		pixelIdx := strings.Index(got, pixelPath)
		bodyIdx := strings.Index(got, "</body>")
		if pixelIdx < 0 {
			t.Fatalf("pixel missing:\n%s", got)
		}
		if pixelIdx > bodyIdx {
			t.Errorf("pixel after </body>:\n%s", got)
		}
	})

	t.Run("uppercase closing tag", func(t *testing.T) {
		html := `<HTML><BODY><p>Hi</p></BODY></HTML>`
		got := InjectOpenPixel(html, injectorBase, campaignID, contactID)
		if strings.Index(got, pixelPath) > strings.Index(got, "</BODY>") {
			t.Errorf("pixel after </BODY>:\n%s", got)
		}
	})

	t.Run("no body tag appends", func(t *testing.T) {
		html := `<p>fragment</p>`
		got := InjectOpenPixel(html, injectorBase, campaignID, contactID)
		if !strings.HasPrefix(got, html) || !strings.Contains(got, pixelPath) {
			t.Errorf("pixel not appended:\n%s", got)
		}
	})
}
