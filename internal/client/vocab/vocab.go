// Package vocab holds the fixed waste-type and location vocabularies of the
// two capture forms.
//
// The desk and tablet tables are maintained separately and are allowed to
// drift apart; Drift lists the differences instead of reconciling them.
package vocab

// Entry is an item of a tablet vocabulary.
type Entry struct {
	ID   string
	Name string
	// Special marks entries the tablet form highlights (coffee for compost).
	Special bool
}

// DeskWasteTypes are the waste-type labels offered by the desk form.
var DeskWasteTypes = []string{
	"Orgánicos",
	"Orgánicos (naranja/limón)",
	"Inorgánicos - no valorizables",
	"Pet",
	"Plástico duro",
	"Emplaye",
	"Vidrio",
	"Aluminio",
	"Cartón",
	"Papel",
	"Lata de conserva o latón",
	"Tetrapak",
	"Textiles",
	"Chatarra",
	"Café para composta",
}

// DeskLocations are the hotel locations offered by the desk form.
var DeskLocations = []string{
	"Áreas públicas",
	"Albercas",
	"Almacén",
	"Ama de llaves",
	"Audio visual",
	"Banquetes",
	"Bares",
	"Bodas",
	"Carpintería",
	"Cocina central",
	"Coco Café",
	"Comedor empleados",
	"Comisariato",
	"Edificios",
	"Entretenimiento",
	"Especialidades",
	"Eventos/Banquetes",
	"Jardinería",
	"Lavandería",
	"Limpieza de playa",
	"Mantenimiento",
	"Market",
	"Minibares/Servibar",
	"Oceana",
	"Oficinas",
	"Poblado",
	"Proveedores",
	"RH",
	"Room Service/IRD",
	"Seaside Grill",
	"Seguridad",
	"Sommelier",
	"Spa",
	"Steward",
	"Tiendas",
	"Tiendita colegas",
	"UVC",
	"Chatos",
}

// TabletWasteTypes are the selectable tiles of the tablet form, in display
// order. Records store Name.
var TabletWasteTypes = []Entry{
	{ID: "organicos", Name: "Orgánicos"},
	{ID: "organicos-citricos", Name: "Orgánicos (naranja/limón)"},
	{ID: "inorganicos", Name: "Inorgánicos - no valorizables"},
	{ID: "pet", Name: "Pet"},
	{ID: "plastico-duro", Name: "Plástico duro"},
	{ID: "emplaye", Name: "Emplaye"},
	{ID: "vidrio", Name: "Vidrio"},
	{ID: "aluminio", Name: "Aluminio"},
	{ID: "carton", Name: "Cartón"},
	{ID: "papel", Name: "Papel"},
	{ID: "lata-conserva", Name: "Lata de conserva o latón"},
	{ID: "tetrapak", Name: "Tetrapak"},
	{ID: "textiles", Name: "Textiles"},
	{ID: "chatarra", Name: "Chatarra"},
	{ID: "cafe-composta", Name: "Café para composta", Special: true},
}

// TabletAreas are the hotel areas of the tablet form. Records store Name.
var TabletAreas = []Entry{
	{ID: "areas-publicas", Name: "Áreas públicas"},
	{ID: "albercas", Name: "Albercas"},
	{ID: "almacen", Name: "Almacén"},
	{ID: "ama-llaves", Name: "Ama de llaves"},
	{ID: "audio-visual", Name: "Audio visual"},
	{ID: "banquetes", Name: "Banquetes"},
	{ID: "bares", Name: "Bares"},
	{ID: "bodas", Name: "Bodas"},
	{ID: "carpinteria", Name: "Carpintería"},
	{ID: "cocina-central", Name: "Cocina central"},
	{ID: "coco-cafe", Name: "Coco Café"},
	{ID: "comedor-empleados", Name: "Comedor empleados"},
	{ID: "comisariato", Name: "Comisariato"},
	{ID: "edificios", Name: "Edificios"},
	{ID: "entretenimiento", Name: "Entretenimiento"},
	{ID: "especialidades", Name: "Especialidades"},
	{ID: "eventos-banquetes", Name: "Eventos/Banquetes"},
	{ID: "jardineria", Name: "Jardinería"},
	{ID: "lavanderia", Name: "Lavandería"},
	{ID: "limpieza-playa", Name: "Limpieza de playa"},
	{ID: "mantenimiento", Name: "Mantenimiento"},
	{ID: "market", Name: "Market"},
	{ID: "minibares", Name: "Minibares/Servibar"},
	{ID: "oceana", Name: "Oceana"},
	{ID: "oficinas", Name: "Oficinas"},
	{ID: "poblado", Name: "Poblado"},
	{ID: "proveedores", Name: "Proveedores"},
	{ID: "rh", Name: "RH"},
	{ID: "room-service", Name: "Room Service/IRD"},
	{ID: "seaside-grill", Name: "Seaside Grill"},
	{ID: "seguridad", Name: "Seguridad"},
	{ID: "sommelier", Name: "Sommelier"},
	{ID: "spa", Name: "Spa"},
	{ID: "steward", Name: "Steward"},
	{ID: "tiendas", Name: "Tiendas"},
	{ID: "tiendita-colegas", Name: "Tiendita colegas"},
	{ID: "uvc", Name: "UVC"},
	{ID: "chatos", Name: "Chatos"},
}

// RetiredTabletLabels are labels an earlier tablet layout wrote into records
// (e.g. "Plásticos PET", "Papel y Cartón", "Bar Principal"). They are not
// offered any more but may still appear in stored data.
var RetiredTabletLabels = []string{
	"Plásticos PET",
	"Papel y Cartón",
	"Latón",
	"Electrónicos",
	"Bar Principal",
	"Cocina",
	"Recepción",
	"Restaurante",
	"Piscina",
	"Playa",
	"Habitaciones",
	"Jardines",
}

// TabletType returns the tablet waste type with the given id.
func TabletType(id string) (Entry, bool) {
	return find(TabletWasteTypes, id)
}

// AreaName resolves a tablet area id to its display name. Unknown ids are
// returned verbatim.
func AreaName(id string) string {
	if e, ok := find(TabletAreas, id); ok {
		return e.Name
	}
	return id
}

// TypeOrder returns the position of a waste-type name in the tablet table,
// or len(TabletWasteTypes) when the name is not listed.
func TypeOrder(name string) int {
	for i, e := range TabletWasteTypes {
		if e.Name == name {
			return i
		}
	}
	return len(TabletWasteTypes)
}

func find(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}
