package smarttag

import (
	"context"
	"testing"
	"time"

	"rentalquotes/internal/domain/entities"
)

func testSite() SiteContext {
	return SiteContext{SiteName: "Crewe Car Rentals", SiteURL: "https://crewecars.example", AdminEmail: "admin@crewecars.example"}
}

func TestResolve_FieldReferences(t *testing.T) {
	sub := entities.SubmissionContext{
		Fields: []entities.SubmissionField{
			{ID: "3", Label: "Vehicle", Value: entities.ScalarValue("BMW X5")},
			{ID: "7", Label: "Extras", Value: entities.ListValue("GPS", "Child seat")},
		},
	}
	r := NewResolver(testSite(), nil)

	t.Run("quoted and unquoted", func(t *testing.T) {
		got := r.Resolve(context.Background(), `{field_id="3"} / {field_id=3}`, sub)
		if got != "BMW X5 / BMW X5" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("list values flatten", func(t *testing.T) {
		got := r.Resolve(context.Background(), `{field_id="7"}`, sub)
		if got != "GPS, Child seat" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("unknown field id empties", func(t *testing.T) {
		got := r.Resolve(context.Background(), `x{field_id="99"}y`, sub)
		if got != "xy" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestResolve_ContextualTags(t *testing.T) {
	sub := entities.SubmissionContext{
		PageTitle: "Fleet",
		PageURL:   "https://crewecars.example/fleet",
		PageID:    "42",
		RemoteIP:  "203.0.113.9",
	}
	fixed := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	r := NewResolver(testSite(), func(_ context.Context, ip string) string {
		if ip != "203.0.113.9" {
			t.Fatalf("unexpected ip %q", ip)
		}
		return "Crewe, England, United Kingdom"
	}).WithClock(func() time.Time { return fixed })

	got := r.Resolve(context.Background(), "{site_name} | {page_title} ({page_id}) | {date} {time} | {user_ip} | {user_location}", sub)
	want := "Crewe Car Rentals | Fleet (42) | 15/06/2025 09:30 | 203.0.113.9 | Crewe, England, United Kingdom"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolve_UserTags(t *testing.T) {
	r := NewResolver(testSite(), nil)

	t.Run("anonymous resolves empty", func(t *testing.T) {
		got := r.Resolve(context.Background(), "[{user_email}]", entities.SubmissionContext{})
		if got != "[]" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("authenticated user", func(t *testing.T) {
		sub := entities.SubmissionContext{User: &entities.SubmittedUser{
			ID: "8", Email: "jo@example.com", Login: "jo", FirstName: "Jo", LastName: "Smith", DisplayName: "Jo Smith",
		}}
		got := r.Resolve(context.Background(), "{user_id} {user_login} {user_display_name}", sub)
		if got != "8 jo Jo Smith" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestResolve_NoRecursiveExpansion(t *testing.T) {
	sub := entities.SubmissionContext{
		Fields: []entities.SubmissionField{
			{ID: "1", Value: entities.ScalarValue(`{field_id="1"} {admin_email}`)},
		},
	}
	r := NewResolver(testSite(), nil)
	got := r.Resolve(context.Background(), `{field_id="1"}`, sub)
	if got != `{field_id="1"} {admin_email}` {
		t.Fatalf("resolved value was re-expanded: %q", got)
	}
}

func TestResolve_UnknownTagLeftIntact(t *testing.T) {
	r := NewResolver(testSite(), nil)
	got := r.Resolve(context.Background(), "{not_a_tag}", entities.SubmissionContext{})
	if got != "{not_a_tag}" {
		t.Fatalf("got %q", got)
	}
}
