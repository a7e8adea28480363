package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func filterFixture() []*Registration {
	return []*Registration{
		{ID: "1", UserEmail: "a@x.com", BootcampName: "Data Science", Status: StatusPending, PaymentStatus: PaymentPending},
		{ID: "2", UserEmail: "b@x.com", BootcampName: "UX/UI Design", Status: StatusApproved, PaymentStatus: PaymentCompleted},
	}
}

func ids(regs []*Registration) []string {
	res := make([]string, 0, len(regs))
	for _, r := range regs {
		res = append(res, r.ID)
	}
	return res
}

func TestFilter_SearchByEmail(t *testing.T) {
	got := RegistrationFilter{Search: "a@x", Status: FilterAll, Payment: FilterAll}.Apply(filterFixture())

	assert.Equal(t, []string{"1"}, ids(got))
}

func TestFilter_ByStatus(t *testing.T) {
	got := RegistrationFilter{Search: "", Status: "approved", Payment: FilterAll}.Apply(filterFixture())

	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_SearchByBootcampCaseInsensitive(t *testing.T) {
	got := RegistrationFilter{Search: "ux/ui"}.Apply(filterFixture())

	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilter_AllFiltersAnd(t *testing.T) {
	got := RegistrationFilter{Search: "x.com", Status: "approved", Payment: "pending"}.Apply(filterFixture())

	assert.Empty(t, got)
}

func TestFilter_EmptyIsWildcard(t *testing.T) {
	got := RegistrationFilter{}.Apply(filterFixture())

	assert.Equal(t, []string{"1", "2"}, ids(got))
}

func TestFilter_Validate(t *testing.T) {
	require.NoError(t, RegistrationFilter{Status: "all", Payment: "partial"}.Validate())
	assert.ErrorIs(t, RegistrationFilter{Status: "done"}.Validate(), ErrInvalidStatus)
	assert.ErrorIs(t, RegistrationFilter{Payment: "paid"}.Validate(), ErrInvalidPaymentStatus)
}

func genRegistration() *rapid.Generator[*Registration] {
	return rapid.Custom(func(t *rapid.T) *Registration {
		return &Registration{
			ID:            rapid.StringMatching(`[a-z0-9]{8}`).Draw(t, "id"),
			UserEmail:     rapid.StringMatching(`[a-zA-Z]{1,6}@[a-z]{1,4}\.com`).Draw(t, "email"),
			BootcampName:  rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(t, "bootcamp"),
			Status:        rapid.SampledFrom(RegistrationStatuses).Draw(t, "status"),
			PaymentStatus: rapid.SampledFrom(PaymentStatuses).Draw(t, "payment"),
		}
	})
}

func TestFilter_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		regs := rapid.SliceOfN(genRegistration(), 0, 20).Draw(t, "regs")
		f := RegistrationFilter{
			Search:  rapid.StringMatching(`[a-zA-Z@.]{0,3}`).Draw(t, "search"),
			Status:  rapid.SampledFrom([]string{"all", "pending", "approved", "rejected"}).Draw(t, "status"),
			Payment: rapid.SampledFrom([]string{"all", "pending", "partial", "completed"}).Draw(t, "payment"),
		}

		got := f.Apply(regs)

		if len(got) > len(regs) {
			t.Fatalf("filter grew the list: %d > %d", len(got), len(regs))
		}
		search := strings.ToLower(f.Search)
		for _, r := range got {
			if !strings.Contains(strings.ToLower(r.UserEmail), search) &&
				!strings.Contains(strings.ToLower(r.BootcampName), search) {
				t.Fatalf("record %s does not match search %q", r.ID, f.Search)
			}
			if f.Status != FilterAll && string(r.Status) != f.Status {
				t.Fatalf("record %s has status %s, want %s", r.ID, r.Status, f.Status)
			}
			if f.Payment != FilterAll && string(r.PaymentStatus) != f.Payment {
				t.Fatalf("record %s has payment %s, want %s", r.ID, r.PaymentStatus, f.Payment)
			}
		}

		// every record left out fails at least one filter
		kept := make(map[*Registration]bool, len(got))
		for _, r := range got {
			kept[r] = true
		}
		for _, r := range regs {
			if !kept[r] && f.Match(r) {
				t.Fatalf("record %s matches but was dropped", r.ID)
			}
		}
	})
}
