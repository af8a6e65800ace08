// Package pdf renders the site assessment document report using maroto/v2.
package pdf

import "github.com/johnfercher/maroto/v2/pkg/props"

// Theme holds the style configuration for a document build. It is passed
// into each generator rather than living in process-wide state, so
// concurrent builds with different themes stay safe.
type Theme struct {
	SectionTitle *props.Color // section headings
	Primary      *props.Color // body text
	Secondary    *props.Color // footer and muted text
	LabelFill    *props.Color // label cell background
	CountsFill   *props.Color // counts table background
	ScopeFill    *props.Color // cleaning scope table background
	GalleryFill  *props.Color // gallery heading background
	GridLine     *props.Color // table borders

	TitleSize   float64
	LabelSize   float64
	BodySize    float64
	FooterSize  float64
	GalleryRowH float64
}

// DefaultTheme mirrors the established report palette.
func DefaultTheme() Theme {
	return Theme{
		SectionTitle: &props.Color{Red: 18, Green: 84, Blue: 53},
		Primary:      &props.Color{Red: 33, Green: 33, Blue: 33},
		Secondary:    &props.Color{Red: 102, Green: 102, Blue: 102},
		LabelFill:    &props.Color{Red: 242, Green: 242, Blue: 242},
		CountsFill:   &props.Color{Red: 211, Green: 229, Blue: 211},
		ScopeFill:    &props.Color{Red: 249, Green: 249, Blue: 249},
		GalleryFill:  &props.Color{Red: 239, Green: 239, Blue: 239},
		GridLine:     &props.Color{Red: 204, Green: 204, Blue: 204},

		TitleSize:   14,
		LabelSize:   10,
		BodySize:    10,
		FooterSize:  8,
		GalleryRowH: 60,
	}
}
