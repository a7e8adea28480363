// Package export renders registrations as CSV files for the admin panel.
package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

const ContentType = "text/csv; charset=utf-8"

var Header = []string{
	"ID",
	"Email",
	"Bootcamp",
	"Fecha de Registro",
	"Estado",
	"Estado de Pago",
	"Horario",
	"Plan de Pago",
}

const dateLayout = "02/01/2006 15:04:05"

// File is a rendered export ready to be served as an attachment.
type File struct {
	Name    string
	Content []byte
}

// Filename builds "registrations-<ISO timestamp>.csv". Colons are kept out
// of the name since some file systems reject them.
func Filename(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15-04-05Z")
	return fmt.Sprintf("registrations-%s.csv", stamp)
}

// EscapeField quotes a value when it carries a comma, a quote or a line
// break, doubling inner quotes as RFC 4180 requires.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Row returns the export columns for a single registration.
func Row(r *domain.Registration) []string {
	return []string{
		r.ID,
		r.UserEmail,
		r.BootcampName,
		r.CreatedAt.Local().Format(dateLayout),
		string(r.Status),
		string(r.PaymentStatus),
		string(r.Schedule),
		r.PaymentPlan,
	}
}

// Registrations renders the header and one line per registration, in the
// order given.
func Registrations(regs []*domain.Registration, now time.Time) File {
	var buf bytes.Buffer
	writeLine(&buf, Header)
	for _, r := range regs {
		writeLine(&buf, Row(r))
	}

	return File{Name: Filename(now), Content: buf.Bytes()}
}

func writeLine(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(EscapeField(f))
	}
	buf.WriteByte('\n')
}
