package render

import "image"

const (
	PromptLine1 = "Enter the rotation axis vector (comma-separated):"
	PromptLine2 = "(e.g., '1,0,0' for [1, 0, 0]):"

	// BoxPadding insets the text inside the box.
	BoxPadding = 5

	boxMinWidth = 200
	boxHeight   = 40
)

var (
	promptPos1 = image.Pt(50, 200)
	promptPos2 = image.Pt(50, 230)
	boxOrigin  = image.Pt(250, 300)
	errorPos   = image.Pt(50, 360)
)

// BoxRect sizes the text box to fit textWidth pixels of text.
func BoxRect(textWidth int) image.Rectangle {
	w := max(boxMinWidth, textWidth+2*BoxPadding)
	return image.Rectangle{Min: boxOrigin, Max: boxOrigin.Add(image.Pt(w, boxHeight))}
}
