package types

import "strings"

// Variant identifies the flavour of an EDF recording.
type Variant int

const (
	// VariantEDF is a plain EDF recording.
	VariantEDF Variant = iota
	// VariantEDFPlusContinuous is an EDF+ recording with contiguous data records.
	VariantEDFPlusContinuous
	// VariantEDFPlusDiscontinuous is an EDF+ recording whose data records may
	// contain gaps.
	VariantEDFPlusDiscontinuous
)

// String returns the reserved-field marker for the variant.
func (v Variant) String() string {
	switch v {
	case VariantEDFPlusContinuous:
		return "EDF+C"
	case VariantEDFPlusDiscontinuous:
		return "EDF+D"
	default:
		return "EDF"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Extensions returns common file extensions for this variant.
func (v Variant) Extensions() []string {
	switch v {
	case VariantEDF:
		return []string{".edf", ".rec"}
	case VariantEDFPlusContinuous, VariantEDFPlusDiscontinuous:
		return []string{".edf"}
	default:
		return nil
	}
}

// DetectVariant classifies a recording from its reserved header field.
//
// EDF+ writers place "EDF+C" or "EDF+D" at the start of the field. Anything
// else is treated as plain EDF. The annotation signals that EDF+ adds are
// not interpreted.
func DetectVariant(reserved string) Variant {
	switch {
	case strings.HasPrefix(reserved, "EDF+C"):
		return VariantEDFPlusContinuous
	case strings.HasPrefix(reserved, "EDF+D"):
		return VariantEDFPlusDiscontinuous
	default:
		return VariantEDF
	}
}
