package db

import "hermannm.dev/enumnames"

// VisualizationKind is a hint attached to a query, steering both result shaping and
// final rendering. VisualizationNone means the result is shown as a plain table.
type VisualizationKind uint8

const (
	VisualizationNone VisualizationKind = iota
	VisualizationPie
	VisualizationBar
	VisualizationLine
)

var visualizationKindNames = enumnames.NewMap(map[VisualizationKind]string{
	VisualizationNone: "NONE",
	VisualizationPie:  "PIE",
	VisualizationBar:  "BAR",
	VisualizationLine: "LINE",
})

func (kind VisualizationKind) IsValid() bool {
	return visualizationKindNames.ContainsEnumValue(kind)
}

func (kind VisualizationKind) String() string {
	return visualizationKindNames.GetNameOrFallback(kind, "INVALID_VISUALIZATION_KIND")
}

func (kind VisualizationKind) MarshalJSON() ([]byte, error) {
	return visualizationKindNames.MarshalToNameJSON(kind)
}

func (kind *VisualizationKind) UnmarshalJSON(bytes []byte) error {
	return visualizationKindNames.UnmarshalFromNameJSON(bytes, kind)
}
