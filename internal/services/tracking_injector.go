package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// hrefPattern matches quoted href attributes. Anchors without a quoted href
// (malformed HTML) simply don't match and are left untouched.
var hrefPattern = regexp.MustCompile(`href="([^"]*)"`)

// RewriteLinks routes every quoted href in the HTML body through the click
// tracking redirect, keyed by campaign and contact. The original target is
// carried url-encoded in the redirect query parameter; targets that are not
// well-formed URLs are still passed through encoded as-is. The rewrite never
// fails on malformed input.
func RewriteLinks(html, baseURL string, campaignID, contactID primitive.ObjectID) string {
	base := strings.TrimRight(baseURL, "/")
	return hrefPattern.ReplaceAllStringFunc(html, func(match string) string {
		target := match[len(`href="`) : len(match)-1]
		if target == "" {
			return match
		}
		return fmt.Sprintf(`href="%s/track/click/%s/%s?redirect=%s"`,
			base, campaignID.Hex(), contactID.Hex(), url.QueryEscape(target))
	})
}

// InjectOpenPixel appends the 1x1 open-tracking beacon image to the HTML body,
// before </body> when present.
func InjectOpenPixel(html, baseURL string, campaignID, contactID primitive.ObjectID) string {
	base := strings.TrimRight(baseURL, "/")
	pixel := fmt.Sprintf(`<img src="%s/track/open/%s/%s" width="1" height="1" alt="" style="display:none;"/>`,
		base, campaignID.Hex(), contactID.Hex())

	if idx := strings.LastIndex(strings.ToLower(html), "</body>"); idx >= 0 {
		return html[:idx] + pixel + html[idx:]
	}
	return html + pixel
}
