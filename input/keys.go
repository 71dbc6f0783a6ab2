// Package input names the keys the garden viewer reacts to. Values are the
// GLFW key codes so a Key converts directly to glfw.Key.
package input

import "strconv"

// Key is a keyboard key code.
type Key int

const (
	KeyA      Key = 65
	KeyD      Key = 68
	KeyE      Key = 69
	KeyO      Key = 79
	KeyP      Key = 80
	KeyQ      Key = 81
	KeyS      Key = 83
	KeyW      Key = 87
	KeyEscape Key = 256
)

var keyNames = map[Key]string{
	KeyA:      "A",
	KeyD:      "D",
	KeyE:      "E",
	KeyO:      "O",
	KeyP:      "P",
	KeyQ:      "Q",
	KeyS:      "S",
	KeyW:      "W",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}
