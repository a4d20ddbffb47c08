package widget

// Control is a pressable button inside a widget.
type Control struct {
	Label    string
	Danger   bool
	Disabled bool
	// OnPress runs when the control is pressed while enabled.
	OnPress func() error
}

// Press triggers the control. Disabled or unbound controls do nothing.
func (c *Control) Press() error {
	if c == nil || c.Disabled || c.OnPress == nil {
		return nil
	}
	return c.OnPress()
}
