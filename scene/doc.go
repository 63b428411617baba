// Package scene describes one frame of 3D text and curves and turns it
// into a render.DrawList.
//
// A Frame is built either in code with a Builder or from a small script
// language evaluated by Evaluate:
//
//	// label above the sphere
//	text "SPHERE" at (0, -5, 22) size 32 spacing 5 font sdf center backface;
//	bezier (0,0,0) (0,-15,0) (22,-15,0) (22,0,0) segments 24 color lightgray;
//	bspline [(0,0,0), (1,2,0), (3,3,0), (4,0,0)] color #ff8000;
//	cube at (0, 0, 0) size 2 color lightgray;
//	sphere at (22, 0, 0) radius 2;
//	grid 20 spacing 10;
//
// Statements end with a semicolon. Line comments start with //.
// Text statements reference fonts by name; the caller supplies the font
// table. A font registered as "sdf" is drawn with the distance-field
// shader unless the statement says otherwise.
package scene
