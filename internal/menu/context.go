package menu

// Context is a throwaway radial menu spawned at a world point while the
// trigger is held. Its items are fixed at construction; on trigger release
// the hovered action (if any) fires and the instance is discarded.
type Context struct {
	*Radial
}

// NewContext builds a context menu at point, facing the viewer.
func NewContext(items []Item, point, viewerPos [3]float32) *Context {
	c := &Context{Radial: NewRadial(items)}
	c.Face(point, viewerPos)
	return c
}

// Release fires the hovered wedge's action, if any. The caller drops the
// menu afterwards; a Context is never reused.
func (c *Context) Release() {
	c.Select()
	c.Visible = false
}
