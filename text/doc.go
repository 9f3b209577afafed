// Package text measures and outlines label text for ternary plots.
//
// The pipeline follows a separation of concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific size and resolution
//
// Shaping (kerning, ligatures) uses go-text/typesetting's HarfBuzz port;
// metrics and glyph outlines come from golang.org/x/image/font/sfnt.
//
// # Example usage
//
//	source, err := text.NewFontSource(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	face := source.Face(10, text.WithDPI(ax.DPI()))
//	layout := ax.Layout(face)
//
// Face implements ternary.TextMeasurer, so a layout computed with it places
// axis labels clear of the measured tick labels.
package text
