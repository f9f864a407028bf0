package core

// Color is a logical foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette for the ocean scene.
const (
	ColorDefault Color = iota
	ColorWater         // Background tint (drawn as blank)
	ColorCoral         // Obstacle bodies
	ColorCoralCap      // Obstacle caps facing the gap
	ColorSand          // Seabed / ground line
	ColorDolphin       // Actor
	ColorBubble        // Flap bubbles
	ColorHUD           // Score and best score
	ColorOverlay       // Start hint and game-over box
	ColorDim           // Help line
)
