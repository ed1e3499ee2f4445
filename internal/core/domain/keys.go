package domain

// Key is a named keyboard key understood by the Keyboard port.
type Key string

// Keys sent by the automation flow.
const (
	KeyDown      Key = "down"
	KeyUp        Key = "up"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeySpace     Key = "space"
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyShift     Key = "shift"
	KeyCtrl      Key = "ctrl"
	KeyAlt       Key = "alt"
	KeyF         Key = "f"
	KeyA         Key = "a"
)
