package edfmeta

import (
	"github.com/simonhull/edfmeta/internal/types"
)

// Header is an alias to types.Header.
// Re-exporting from internal/types to maintain public API.
type Header = types.Header

// File is an alias to types.File.
type File = types.File

// Variant is an alias to types.Variant.
type Variant = types.Variant

// Re-export all variant constants.
const (
	VariantEDF                  = types.VariantEDF
	VariantEDFPlusContinuous    = types.VariantEDFPlusContinuous
	VariantEDFPlusDiscontinuous = types.VariantEDFPlusDiscontinuous
)

// HeaderSize is the width in bytes of the fixed header prefix.
const HeaderSize = types.HeaderSize
