// Package model defines the core domain models used throughout the application.
package model

// RankLast is the sort rank assigned to levels that declare no order.
// It is larger than any plausible declared rank, so unranked levels sort last.
const RankLast = 1<<31 - 1

// Level represents one stage of the cognitive taxonomy.
type Level struct {
	ID              string
	Name            string
	ShortDefinition string
	Guardrails      string
	Color           string
	Prompts         []string
	Rank            int
}

// DefaultLevelColor is used for levels outside the fixed palette.
const DefaultLevelColor = "#999999"

// levelPalette maps canonical Bloom level identifiers to display colors.
var levelPalette = map[string]string{
	"remember":   "#4ECDC4",
	"understand": "#45B7D1",
	"apply":      "#96CEB4",
	"analyse":    "#FFE66D",
	"analyze":    "#FFE66D",
	"evaluate":   "#FF9F43",
	"create":     "#FF6B6B",
}

// ColorForLevel returns the palette color for a level identifier, or the
// neutral default when the identifier is not in the palette.
func ColorForLevel(id string) string {
	if c, ok := levelPalette[id]; ok {
		return c
	}
	return DefaultLevelColor
}
