package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSizes(t *testing.T) {
	assert.Len(t, DeskWasteTypes, 15)
	assert.Len(t, DeskLocations, 38)
	assert.Len(t, TabletWasteTypes, 15)
	assert.Len(t, TabletAreas, 38)
}

func TestTabletIDsAreUnique(t *testing.T) {
	for _, table := range [][]Entry{TabletWasteTypes, TabletAreas} {
		seen := map[string]bool{}
		for _, e := range table {
			require.False(t, seen[e.ID], "duplicate id %q", e.ID)
			seen[e.ID] = true
		}
	}
}

func TestOnlyCoffeeIsSpecial(t *testing.T) {
	var special []string
	for _, e := range TabletWasteTypes {
		if e.Special {
			special = append(special, e.ID)
		}
	}
	assert.Equal(t, []string{"cafe-composta"}, special)
}

func TestAreaName(t *testing.T) {
	assert.Equal(t, "Room Service/IRD", AreaName("room-service"))
	assert.Equal(t, "Áreas públicas", AreaName("areas-publicas"))
	assert.Equal(t, "azotea", AreaName("azotea"), "unknown ids pass through")
}

func TestTabletType(t *testing.T) {
	e, ok := TabletType("lata-conserva")
	require.True(t, ok)
	assert.Equal(t, "Lata de conserva o latón", e.Name)

	_, ok = TabletType("electronicos")
	assert.False(t, ok)
}

func TestTypeOrder(t *testing.T) {
	assert.Equal(t, 0, TypeOrder("Orgánicos"))
	assert.Equal(t, 6, TypeOrder("Vidrio"))
	assert.Equal(t, len(TabletWasteTypes), TypeOrder("Electrónicos"))
}

func TestDrift_CurrentTablesAgree(t *testing.T) {
	assert.Empty(t, Drift())
}

func TestDiff_ReportsBothSides(t *testing.T) {
	got := diff(TableWasteTypes, []string{"Pet", "Vidrio"}, []string{"Vidrio", "Plásticos PET"})
	assert.Equal(t, []Difference{
		{Table: TableWasteTypes, Label: "Pet", OnlyIn: FormDesk},
		{Table: TableWasteTypes, Label: "Plásticos PET", OnlyIn: FormTablet},
	}, got)
}

func TestUnknown(t *testing.T) {
	got := Unknown([]string{"Vidrio", "Papel y Cartón", "Bares", "Papel y Cartón", "Playa"})
	assert.Equal(t, []string{"Papel y Cartón", "Playa"}, got)
	assert.Subset(t, RetiredTabletLabels, got)
}

func TestRetired(t *testing.T) {
	got := Retired([]string{"Playa", "Unicel", "Vidrio", "Playa", "Papel y Cartón"})
	assert.Equal(t, []string{"Playa", "Papel y Cartón"}, got)
	assert.Empty(t, Retired([]string{"Vidrio", "Unicel"}))
}
