package viewmodel

// FieldId identifies an observable view-model field
type FieldId uint8

const (
	FieldHealth FieldId = iota
	FieldMaxHealth
	FieldLevel
	FieldPlayerName
	FieldHealthPercentage
	FieldFormattedHealthText
	FieldIsAlive
)

// Fields lists every observable field
var Fields = []FieldId{
	FieldHealth,
	FieldMaxHealth,
	FieldLevel,
	FieldPlayerName,
	FieldHealthPercentage,
	FieldFormattedHealthText,
	FieldIsAlive,
}

// computed fields re-signalled when a stored field changes
var dependents = map[FieldId][]FieldId{
	FieldHealth:    {FieldHealthPercentage, FieldFormattedHealthText, FieldIsAlive},
	FieldMaxHealth: {FieldHealthPercentage, FieldFormattedHealthText},
}

// String returns the string representation of FieldId
func (f FieldId) String() string {
	switch f {
	case FieldHealth:
		return "health"
	case FieldMaxHealth:
		return "maxHealth"
	case FieldLevel:
		return "level"
	case FieldPlayerName:
		return "playerName"
	case FieldHealthPercentage:
		return "healthPercentage"
	case FieldFormattedHealthText:
		return "formattedHealthText"
	case FieldIsAlive:
		return "isAlive"
	default:
		return "unknown"
	}
}

// IsComputed returns true if the field has no storage of its own
func (f FieldId) IsComputed() bool {
	return f == FieldHealthPercentage || f == FieldFormattedHealthText || f == FieldIsAlive
}

// Dependents returns the computed fields that change whenever f changes
func (f FieldId) Dependents() []FieldId {
	return append([]FieldId(nil), dependents[f]...)
}
