package scroll

// Document models the scrollable page the camera path is laid over. The
// window is the viewport; Height is the total document length in pixels.
type Document struct {
	Height         float64
	ViewportHeight float64
	ScrollY        float64
}

// NewDocument creates a document of the given height viewed through a
// viewport of viewportHeight pixels.
func NewDocument(height, viewportHeight float64) *Document {
	return &Document{Height: height, ViewportHeight: viewportHeight}
}

// MaxScroll returns the largest reachable offset.
func (d *Document) MaxScroll() float64 {
	return max(d.Height-d.ViewportHeight, 0)
}

// ScrollBy moves the offset by delta pixels, staying inside the document.
func (d *Document) ScrollBy(delta float64) {
	d.ScrollTo(d.ScrollY + delta)
}

// ScrollTo jumps to y, staying inside the document.
func (d *Document) ScrollTo(y float64) {
	d.ScrollY = min(max(y, 0), d.MaxScroll())
}

// PageDown scrolls one viewport forward.
func (d *Document) PageDown() {
	d.ScrollBy(d.ViewportHeight)
}

// PageUp scrolls one viewport back.
func (d *Document) PageUp() {
	d.ScrollBy(-d.ViewportHeight)
}

// Home jumps to the top.
func (d *Document) Home() {
	d.ScrollTo(0)
}

// End jumps to the bottom.
func (d *Document) End() {
	d.ScrollTo(d.MaxScroll())
}

// Resize updates the viewport height. The offset keeps its pixel value but
// is pulled back inside the new range.
func (d *Document) Resize(viewportHeight float64) {
	d.ViewportHeight = viewportHeight
	d.ScrollTo(d.ScrollY)
}

// Progress returns ScrollY over the scrollable range, or 0 when the
// document fits in the viewport.
func (d *Document) Progress() float64 {
	return Ratio(d.ScrollY, d.Height, d.ViewportHeight)
}

// Ratio converts a raw scroll offset to progress. The result is not
// clamped; offsets past the end give values above 1.
func Ratio(scrollY, documentHeight, viewportHeight float64) float64 {
	maxScroll := documentHeight - viewportHeight
	if maxScroll <= 0 {
		return 0
	}
	return scrollY / maxScroll
}
