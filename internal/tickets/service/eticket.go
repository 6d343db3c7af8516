package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"turismo/pkg/model"
	"turismo/pkg/sanitizer"

	"github.com/phpdave11/gofpdf"
)

func buildETicketPDF(row Row) (*Document, error) {
	t := row.Ticket

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Pasajero       : %s", safe(clienteName(row.Cliente), "-")),
		fmt.Sprintf("DNI            : %s", safe(clienteDni(row.Cliente), "-")),
		fmt.Sprintf("Teléfono       : %s", safe(clientePhone(row.Cliente), "-")),
		fmt.Sprintf("Ruta           : %s -> %s", safe(vueloOrigin(row.Vuelo), "-"), safe(vueloDestiny(row.Vuelo), "-")),
		fmt.Sprintf("Aerolínea      : %s", safe(vueloAeroLine(row.Vuelo), "-")),
		fmt.Sprintf("Salida         : %s", safe(dateTime(t.DepartureDate), "-")),
		fmt.Sprintf("Llegada        : %s", safe(dateTime(t.ArrivalDate), "-")),
		fmt.Sprintf("Tour           : %s", safe(tourName(row.Tour), "-")),
		fmt.Sprintf("Fecha de compra: %s", safe(dateOnly(t.DatePurchase), "-")),
		fmt.Sprintf("Código         : TCK-%s", safeFilenamePart(t.ID)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Total: "+formatPrice(t.Price)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr("Este e-ticket es válido para un pasajero. Preséntelo al momento del embarque."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("ETICKET_%s_%s.pdf", safeFilenamePart(t.ID), safeFilenamePart(clienteName(row.Cliente)))
	return &Document{Filename: filename, Data: buf.Bytes()}, nil
}

func clienteName(c *model.Cliente) string {
	if c == nil {
		return ""
	}
	return sanitizer.NormalizeName(c.FullName)
}

func clienteDni(c *model.Cliente) string {
	if c == nil {
		return ""
	}
	return c.Dni
}

func clientePhone(c *model.Cliente) string {
	if c == nil {
		return ""
	}
	return sanitizer.NormalizePhone(c.PhoneNumber)
}

func vueloOrigin(v *model.Vuelo) string {
	if v == nil {
		return ""
	}
	return sanitizer.NormalizeName(v.OriginName)
}

func vueloDestiny(v *model.Vuelo) string {
	if v == nil {
		return ""
	}
	return sanitizer.NormalizeName(v.DestinyName)
}

func vueloAeroLine(v *model.Vuelo) string {
	if v == nil {
		return ""
	}
	return v.AeroLine
}

func tourName(t *model.Tour) string {
	if t == nil {
		return ""
	}
	return sanitizer.NormalizeName(t.NameTour)
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func dateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = strings.Map(func(r rune) rune {
		if r > 127 {
			return '_'
		}
		return r
	}, replacer.Replace(s))
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

func formatPrice(v *float64) string {
	if v == nil {
		return "S/ 0.00"
	}
	return fmt.Sprintf("S/ %.2f", *v)
}
