// Package atlas builds text.Font atlases from TrueType and OpenType fonts.
//
// [Load] parses the font with go-text/typesetting, rasterizes the selected
// codepoints with golang.org/x/image/vector and packs the bitmaps on
// shelves into one power-of-two image. Two modes exist: [ModeDefault]
// stores antialiased coverage, [ModeSDF] stores a signed distance field
// that stays sharp when the text is scaled up in 3D.
//
// Glyph metrics follow the usual bitmap-font convention: OffsetX is the
// left bearing and OffsetY the distance from the top of the line to the
// top of the bitmap, both in pixels at the base size.
//
//	res, err := atlas.Load(ttf, atlas.SDFConfig())
//	if err != nil {
//	    return err
//	}
//	font, err := res.Upload(drawer.TextureCreator())
package atlas
