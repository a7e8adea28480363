package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEscapeField(t *testing.T) {
	assert.Equal(t, "plain", EscapeField("plain"))
	assert.Equal(t, `"a,b"`, EscapeField("a,b"))
	assert.Equal(t, `"say ""hi"""`, EscapeField(`say "hi"`))
	assert.Equal(t, "\"line\nbreak\"", EscapeField("line\nbreak"))
	assert.Equal(t, "", EscapeField(""))
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 30, 15, 0, time.UTC)

	assert.Equal(t, "registrations-2025-04-01T09-30-15Z.csv", Filename(now))
}

func TestRegistrations_HeaderAndRows(t *testing.T) {
	regs := []*domain.Registration{
		{
			ID:            "r1",
			UserEmail:     "ana@x.com",
			BootcampName:  "Data Science",
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentPartial,
			Schedule:      domain.ScheduleMorning,
			PaymentPlan:   "Mensual",
			CreatedAt:     time.Date(2025, 4, 1, 10, 0, 0, 0, time.Local),
		},
	}

	file := Registrations(regs, time.Now())
	lines := strings.Split(strings.TrimSuffix(string(file.Content), "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Email,Bootcamp,Fecha de Registro,Estado,Estado de Pago,Horario,Plan de Pago", lines[0])
	assert.Equal(t, "r1,ana@x.com,Data Science,01/04/2025 10:00:00,pending,partial,morning,Mensual", lines[1])
	assert.True(t, strings.HasPrefix(file.Name, "registrations-"))
}

func TestRegistrations_EmptyList(t *testing.T) {
	file := Registrations(nil, time.Now())

	assert.Equal(t, strings.Join(Header, ",")+"\n", string(file.Content))
}

func TestRegistrations_CommaInBootcampName(t *testing.T) {
	regs := []*domain.Registration{{ID: "r1", BootcampName: "Design, UX & UI", PaymentPlan: `Plan "A"`}}

	file := Registrations(regs, time.Now())
	records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Design, UX & UI", records[1][2])
	assert.Equal(t, `Plan "A"`, records[1][7])
}

func TestRegistrations_FieldCountProperty(t *testing.T) {
	text := rapid.StringMatching(`[a-zA-Z0-9 ,"\n@.]{0,16}`)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 10).Draw(t, "n")
		regs := make([]*domain.Registration, 0, n)
		for i := 0; i < n; i++ {
			regs = append(regs, &domain.Registration{
				ID:            text.Draw(t, "id"),
				UserEmail:     text.Draw(t, "email"),
				BootcampName:  text.Draw(t, "bootcamp"),
				Status:        rapid.SampledFrom(domain.RegistrationStatuses).Draw(t, "status"),
				PaymentStatus: rapid.SampledFrom(domain.PaymentStatuses).Draw(t, "payment"),
				Schedule:      rapid.SampledFrom(domain.ScheduleKeys).Draw(t, "schedule"),
				PaymentPlan:   text.Draw(t, "plan"),
			})
		}

		file := Registrations(regs, time.Now())
		records, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
		if err != nil {
			t.Fatalf("export is not valid csv: %v", err)
		}
		if len(records) != n+1 {
			t.Fatalf("got %d records, want %d", len(records), n+1)
		}
		for i, rec := range records {
			if len(rec) != len(Header) {
				t.Fatalf("record %d has %d fields, want %d", i, len(rec), len(Header))
			}
		}
		for i, r := range regs {
			if records[i+1][2] != r.BootcampName {
				t.Fatalf("bootcamp name changed: %q != %q", records[i+1][2], r.BootcampName)
			}
		}
	})
}
