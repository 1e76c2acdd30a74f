package editor

// Control bytes dispatched by the editor read loop.
const (
	keyCtrlA     = 0x01
	keyCtrlB     = 0x02
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyCtrlE     = 0x05
	keyCtrlF     = 0x06
	keyCtrlH     = 0x08
	keyTab       = 0x09
	keyLF        = 0x0a
	keyCtrlK     = 0x0b
	keyCtrlL     = 0x0c
	keyCR        = 0x0d
	keyCtrlU     = 0x15
	keyCtrlW     = 0x17
	keyEscape    = 0x1b
	keyBackspace = 0x7f
)

// Escape-sequence keycodes for the ESC [ n ~ family.
const (
	codeHome    = 1
	codeDelete  = 3
	codeEnd     = 4
	codeHomeVar = 15
	codeEndVar  = 17
)
