// Package app holds the state of the interactive glyph3d demo: an
// orbiting camera, four point lights, the font selection and the cube
// layout animation.
//
// A State is driven by input events (see Bind), advanced once per frame
// by Update, and turned into geometry by Frame. Controls that were GUI
// widgets in the original demo are keyboard shortcuts and setters here.
//
//	Left/Right  orbit around the up axis
//	Up/Down     orbit over the top
//	W R G B     toggle lights 0 to 3
//	A           toggle ambient light
//	L           switch between layout A and layout B
//	D           toggle the dynamic (orbiting) mode
//	F           next frame rate choice
//	X           toggle glyph bounds
//	Space       hold to draw the caption with the SDF font
//	wheel       caption font size
//	Enter       finish
package app
