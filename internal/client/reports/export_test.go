package reports

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/wastetrack/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "5/6/2024", FormatDate(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31/12/2023", FormatDate(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "5/6/2024, 09:03:07", FormatDateTime(time.Date(2024, 6, 5, 9, 3, 7, 0, time.UTC)))
	assert.Equal(t, "15/6/2024", FormatRecordDate("2024-06-15"))
	assert.Equal(t, "ayer", FormatRecordDate("ayer"))
}

func TestFormatKg(t *testing.T) {
	assert.Equal(t, "5.50 kg", FormatKg(5.5))
	assert.Equal(t, "0.00 kg", FormatKg(0))
}

func TestFilename(t *testing.T) {
	r, err := RangeFor(PeriodMonthly, june15, "", "")
	require.NoError(t, err)
	assert.Equal(t, "reporte-monthly-2024-06-01-2024-06-30.json", Filename(PeriodMonthly, r))
}

func TestNewDocument(t *testing.T) {
	rep, err := Run(fixture(), Filter{Period: PeriodMonthly}, june15)
	require.NoError(t, err)

	doc := NewDocument("", rep, june15)
	assert.Equal(t, "Reporte Mensual de Residuos Sólidos", doc.Title)
	assert.Equal(t, DefaultHotelName, doc.Hotel)
	assert.Equal(t, "15/6/2024, 16:20:05", doc.GeneratedAt)
	assert.Equal(t, DocumentPeriod{Kind: "Mensual", Start: "1/6/2024", End: "30/6/2024"}, doc.Period)
	assert.Equal(t, DocumentStats{Count: 4, Total: "7.00 kg", Average: "1.75 kg", Types: 3, Locations: 2}, doc.Stats)
	assert.Len(t, doc.Records, 4)
}

func TestDocument_MarshalShape(t *testing.T) {
	rep, err := Run([]models.WasteRecord{
		rec("1", "Vidrio", "Bares", 5.5, "2024-06-15", "10:00"),
	}, Filter{Period: PeriodDaily}, june15)
	require.NoError(t, err)

	data, err := NewDocument("Hotel <Test>", rep, june15).Marshal()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "{\n  \"titulo\": \"Reporte Diario de Residuos Sólidos\",\n")
	assert.Contains(t, s, `"hotel": "Hotel <Test>"`)
	assert.NotContains(t, s, "notes")

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	for _, k := range []string{"titulo", "hotel", "fechaGeneracion", "periodo", "estadisticas", "registros"} {
		assert.Contains(t, generic, k)
	}
	periodo := generic["periodo"].(map[string]any)
	assert.Equal(t, "15/6/2024", periodo["fechaInicio"])
	stats := generic["estadisticas"].(map[string]any)
	assert.Equal(t, "5.50 kg", stats["pesoTotal"])
	assert.EqualValues(t, 1, stats["totalRegistros"])
}

func TestDocument_EmptyRecordsIsArray(t *testing.T) {
	rep, err := Run(nil, Filter{}, june15)
	require.NoError(t, err)

	data, err := NewDocument("", rep, june15).Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"registros": []`)
	assert.Contains(t, string(data), `"pesoPromedio": "0.00 kg"`)
}
