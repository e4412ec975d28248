package types

// Measurement units for recipe ingredient quantities.
const (
	UnitGram       = "g"
	UnitKilogram   = "kg"
	UnitMilliliter = "ml"
	UnitLiter      = "l"
	UnitDeciliter  = "dl"
	UnitPiece      = "pcs"
)

// validUnits is the set of recognized unit values.
var validUnits = map[string]bool{
	UnitGram:       true,
	UnitKilogram:   true,
	UnitMilliliter: true,
	UnitLiter:      true,
	UnitDeciliter:  true,
	UnitPiece:      true,
}

// ValidUnit reports whether unit is one of the recognized unit values.
func ValidUnit(unit string) bool {
	return validUnits[unit]
}
