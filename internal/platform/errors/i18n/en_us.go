package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeWorldInvalidWidth  = "WORLD_INVALID_WIDTH"
	CodeWorldInvalidHeight = "WORLD_INVALID_HEIGHT"
	CodeWorldXOutOfRange   = "WORLD_X_OUT_OF_RANGE"
	CodeWorldYOutOfRange   = "WORLD_Y_OUT_OF_RANGE"
	CodeCellNameMissing    = "CELL_NAME_MISSING"
	CodeCellNameBlank      = "CELL_NAME_BLANK"
)

var enUSCatalog = &Catalog{
	locale: BaseLocale,
	messages: map[Code]string{
		// World errors
		CodeWorldInvalidWidth:  "World width must be between 1 and {{.Max}}, got {{.Value}}",
		CodeWorldInvalidHeight: "World height must be between 1 and {{.Max}}, got {{.Value}}",

		// Coordinate errors
		CodeWorldXOutOfRange: "Coordinate x={{.Value}} is outside the grid (0..{{.Limit}})",
		CodeWorldYOutOfRange: "Coordinate y={{.Value}} is outside the grid (0..{{.Limit}})",

		// Cell errors
		CodeCellNameMissing: "Cell name is required",
		CodeCellNameBlank:   "Cell name cannot be blank",
	},
}
