package tables

// ModelVariant is a closed tag identifying a CMS risk-adjustment model
// family. It selects which reference tables load and which interaction
// table runs (spec.md §3).
type ModelVariant string

const (
	V22      ModelVariant = "V22"
	V24      ModelVariant = "V24"
	V28      ModelVariant = "V28"
	ESRDV21  ModelVariant = "ESRD_V21"
	ESRDV24  ModelVariant = "ESRD_V24"
	RxHCCV08 ModelVariant = "RxHCC_V08"
)

// KnownVariants lists every ModelVariant this module understands. A
// variant outside this set is a ConfigurationError.
var KnownVariants = map[ModelVariant]bool{
	V22:      true,
	V24:      true,
	V28:      true,
	ESRDV21:  true,
	ESRDV24:  true,
	RxHCCV08: true,
}

// IsESRD reports whether v is one of the ESRD model families, which
// carry the graft-month sub-segments described in spec.md §4.5.
func (v ModelVariant) IsESRD() bool {
	return v == ESRDV21 || v == ESRDV24
}

// IsRxHCC reports whether v is the prescription-drug HCC model.
func (v ModelVariant) IsRxHCC() bool {
	return v == RxHCCV08
}
