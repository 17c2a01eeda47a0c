package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
)

// DefaultHotelName is printed in reports unless configured otherwise.
const DefaultHotelName = "Secrets Playa Blanca Costa Mujeres"

// Locale is the locale of every human-facing date and number.
var Locale = language.MustParse("es-MX")

// Document is the exported report. Field names are part of the file format.
type Document struct {
	Title       string               `json:"titulo"`
	Hotel       string               `json:"hotel"`
	GeneratedAt string               `json:"fechaGeneracion"`
	Period      DocumentPeriod       `json:"periodo"`
	Stats       DocumentStats        `json:"estadisticas"`
	Records     []models.WasteRecord `json:"registros"`
}

type DocumentPeriod struct {
	Kind  string `json:"tipo"`
	Start string `json:"fechaInicio"`
	End   string `json:"fechaFin"`
}

type DocumentStats struct {
	Count     int    `json:"totalRegistros"`
	Total     string `json:"pesoTotal"`
	Average   string `json:"pesoPromedio"`
	Types     int    `json:"tiposResiduos"`
	Locations int    `json:"ubicaciones"`
}

// NewDocument builds the export document of rep.
func NewDocument(hotel string, rep Report, generatedAt time.Time) Document {
	if hotel == "" {
		hotel = DefaultHotelName
	}
	records := rep.Records
	if records == nil {
		records = []models.WasteRecord{}
	}

	return Document{
		Title:       fmt.Sprintf("Reporte %s de Residuos Sólidos", rep.Filter.Period.Label()),
		Hotel:       hotel,
		GeneratedAt: FormatDateTime(generatedAt),
		Period: DocumentPeriod{
			Kind:  rep.Filter.Period.Label(),
			Start: FormatDate(rep.Range.Start),
			End:   FormatDate(rep.Range.End),
		},
		Stats: DocumentStats{
			Count:     rep.Stats.Count,
			Total:     kg(rep.Stats.Total),
			Average:   kg(rep.Stats.Average),
			Types:     rep.Stats.Types,
			Locations: rep.Stats.Locations,
		},
		Records: records,
	}
}

// Marshal encodes the document with two-space indentation. HTML characters
// are not escaped.
func (d Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Filename is the export file name of a report over r.
func Filename(p Period, r DateRange) string {
	return fmt.Sprintf("reporte-%s-%s-%s.json", p, r.StartISO(), r.EndISO())
}

// FormatDate renders a date the es-MX way: day/month/year without padding.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// FormatDateTime renders a timestamp as "d/m/yyyy, HH:MM:SS".
func FormatDateTime(t time.Time) string {
	return fmt.Sprintf("%s, %02d:%02d:%02d", FormatDate(t), t.Hour(), t.Minute(), t.Second())
}

// FormatRecordDate renders a stored YYYY-MM-DD date with FormatDate and
// returns the input unchanged when it does not parse.
func FormatRecordDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return FormatDate(t)
}

// FormatKg renders a weight for display with locale grouping, e.g.
// "1,250.50 kg".
func FormatKg(v float64) string {
	return message.NewPrinter(Locale).Sprintf("%.2f kg", v)
}

// kg is the fixed, ungrouped weight format of the export file.
func kg(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + " kg"
}
