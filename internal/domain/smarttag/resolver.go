package smarttag

import (
	"context"
	"regexp"
	"time"

	"rentalquotes/internal/domain/entities"
)

// Tag shapes: {field_id="12"} (quotes optional) and {some_tag}.
var reTag = regexp.MustCompile(`\{field_id="?(\d+)"?\}|\{([a-z_]+)\}`)

// SiteContext supplies the site-level values behind the contextual tags.
type SiteContext struct {
	SiteName   string
	SiteURL    string
	AdminEmail string
}

// LocationFunc resolves an IP address to a display location. Invoking the
// {user_location} tag may therefore trigger a network call.
type LocationFunc func(ctx context.Context, ip string) string

type Resolver struct {
	site   SiteContext
	locate LocationFunc
	now    func() time.Time
}

func NewResolver(site SiteContext, locate LocationFunc) *Resolver {
	return &Resolver{site: site, locate: locate, now: time.Now}
}

// WithClock fixes the clock; used by tests for the {date} and {time} tags.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// Resolve substitutes every {field_id="N"} reference and every known
// contextual tag in template with live data from the submission. Unknown
// field ids become empty strings; unknown tag names are left untouched.
//
// Substitution is a single pass over the original template: resolved values
// are never re-scanned, so adversarial field content cannot trigger further
// expansion.
func (r *Resolver) Resolve(ctx context.Context, template string, sub entities.SubmissionContext) string {
	return reTag.ReplaceAllStringFunc(template, func(match string) string {
		m := reTag.FindStringSubmatch(match)
		if m[1] != "" {
			if f, ok := sub.Field(m[1]); ok {
				return f.Value.Flatten()
			}
			return ""
		}
		return r.contextual(ctx, m[2], match, sub)
	})
}

func (r *Resolver) contextual(ctx context.Context, name, original string, sub entities.SubmissionContext) string {
	switch name {
	case "page_title":
		return sub.PageTitle
	case "page_url":
		return sub.PageURL
	case "page_id":
		return sub.PageID
	case "date":
		return r.now().Format("02/01/2006")
	case "time":
		return r.now().Format("15:04")
	case "site_name":
		return r.site.SiteName
	case "site_url":
		return r.site.SiteURL
	case "admin_email":
		return r.site.AdminEmail
	case "user_ip":
		return sub.RemoteIP
	case "user_location":
		if r.locate == nil {
			return "Unknown"
		}
		return r.locate(ctx, sub.RemoteIP)
	case "user_id", "user_email", "user_login", "user_first_name", "user_last_name", "user_display_name":
		return userTag(name, sub.User)
	default:
		return original
	}
}

// User tags resolve to empty for anonymous submissions.
func userTag(name string, u *entities.SubmittedUser) string {
	if u == nil {
		return ""
	}
	switch name {
	case "user_id":
		return u.ID
	case "user_email":
		return u.Email
	case "user_login":
		return u.Login
	case "user_first_name":
		return u.FirstName
	case "user_last_name":
		return u.LastName
	case "user_display_name":
		return u.DisplayName
	}
	return ""
}
