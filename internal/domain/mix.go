package domain

// Field names for the eight mix-design quantities. They match the training
// dataset column names recorded in the model metadata: masses in kg/m³,
// age in days.
const (
	FieldCement           = "Cemento_kg_m3"
	FieldSlag             = "Escoria_Alto_Horno_kg_m3"
	FieldFlyAsh           = "Ceniza_Volante_kg_m3"
	FieldWater            = "Agua_kg_m3"
	FieldSuperplasticizer = "Superplastificante_kg_m3"
	FieldCoarseAggregate  = "Agregado_Grueso_kg_m3"
	FieldFineAggregate    = "Agregado_Fino_kg_m3"
	FieldAge              = "Edad_dias"
)

// MixDesign describes one concrete batch: the seven ingredient quantities
// plus the curing age at which strength is evaluated.
type MixDesign struct {
	Cement           float64
	Slag             float64
	FlyAsh           float64
	Water            float64
	Superplasticizer float64
	CoarseAggregate  float64
	FineAggregate    float64
	AgeDays          float64
}

// Value returns the quantity for a metadata field name. The second return
// is false for field names the mix does not carry, which the validator
// reports as a missing required variable.
func (m MixDesign) Value(field string) (float64, bool) {
	switch field {
	case FieldCement:
		return m.Cement, true
	case FieldSlag:
		return m.Slag, true
	case FieldFlyAsh:
		return m.FlyAsh, true
	case FieldWater:
		return m.Water, true
	case FieldSuperplasticizer:
		return m.Superplasticizer, true
	case FieldCoarseAggregate:
		return m.CoarseAggregate, true
	case FieldFineAggregate:
		return m.FineAggregate, true
	case FieldAge:
		return m.AgeDays, true
	}
	return 0, false
}

// SetValue assigns the quantity for a metadata field name. Returns false
// for unknown field names.
func (m *MixDesign) SetValue(field string, v float64) bool {
	switch field {
	case FieldCement:
		m.Cement = v
	case FieldSlag:
		m.Slag = v
	case FieldFlyAsh:
		m.FlyAsh = v
	case FieldWater:
		m.Water = v
	case FieldSuperplasticizer:
		m.Superplasticizer = v
	case FieldCoarseAggregate:
		m.CoarseAggregate = v
	case FieldFineAggregate:
		m.FineAggregate = v
	case FieldAge:
		m.AgeDays = v
	default:
		return false
	}
	return true
}

// displayNames maps technical field names to the labels shown in tables
// and forms.
var displayNames = map[string]string{
	FieldCement:           "Cemento",
	FieldSlag:             "Escoria de Alto Horno",
	FieldFlyAsh:           "Ceniza Volante",
	FieldWater:            "Agua",
	FieldSuperplasticizer: "Superplastificante",
	FieldCoarseAggregate:  "Agregado Grueso",
	FieldFineAggregate:    "Agregado Fino",
	FieldAge:              "Edad de Curado",
}

// DisplayName returns the human label for a technical field name, falling
// back to the technical name itself.
func DisplayName(field string) string {
	if n, ok := displayNames[field]; ok {
		return n
	}
	return field
}

// Unit returns the measurement unit for a field.
func Unit(field string) string {
	if field == FieldAge {
		return "días"
	}
	return "kg/m³"
}
