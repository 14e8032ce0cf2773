package event

import "fmt"

// keyNames labels the named key constants, prefix stripped. Lookup in
// the other direction backs KeyByName for config files and CLI flags.
var keyNames = map[Key]string{
	KeyEscape: "Escape",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4",
	KeyF5: "F5", KeyF6: "F6", KeyF7: "F7", KeyF8: "F8",
	KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16",
	KeyF17: "F17", KeyF18: "F18", KeyF19: "F19", KeyF20: "F20",
	KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyBackquote: "Backquote",
	Key1:         "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
	KeyMinus: "Minus", KeyEquals: "Equals", KeyBackspace: "Backspace",
	KeyTab: "Tab", KeyCapsLock: "CapsLock",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E",
	KeyF: "F", KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J",
	KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N", KeyO: "O",
	KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T",
	KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y",
	KeyZ: "Z",

	KeyOpenBracket: "OpenBracket", KeyCloseBracket: "CloseBracket",
	KeyBackSlash: "BackSlash", KeySemicolon: "Semicolon",
	KeyQuote: "Quote", KeyEnter: "Enter", KeyComma: "Comma",
	KeyPeriod: "Period", KeySlash: "Slash", KeySpace: "Space",

	KeyPrintScreen: "PrintScreen", KeyScrollLock: "ScrollLock",
	KeyPause: "Pause", KeyLesserGreater: "LesserGreater",

	KeyInsert: "Insert", KeyDelete: "Delete", KeyHome: "Home",
	KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",

	KeyUp: "Up", KeyLeft: "Left", KeyClear: "Clear",
	KeyRight: "Right", KeyDown: "Down",

	KeyNumLock: "NumLock", KeyNumPadDivide: "NumPadDivide",
	KeyNumPadMultiply: "NumPadMultiply", KeyNumPadSubtract: "NumPadSubtract",
	KeyNumPadEquals: "NumPadEquals", KeyNumPadAdd: "NumPadAdd",
	KeyNumPadEnter: "NumPadEnter", KeyNumPadSeparator: "NumPadSeparator",

	KeyNumPad1: "NumPad1", KeyNumPad2: "NumPad2", KeyNumPad3: "NumPad3",
	KeyNumPad4: "NumPad4", KeyNumPad5: "NumPad5", KeyNumPad6: "NumPad6",
	KeyNumPad7: "NumPad7", KeyNumPad8: "NumPad8", KeyNumPad9: "NumPad9",
	KeyNumPad0: "NumPad0",

	KeyNumPadEnd: "NumPadEnd", KeyNumPadDown: "NumPadDown",
	KeyNumPadPageDown: "NumPadPageDown", KeyNumPadLeft: "NumPadLeft",
	KeyNumPadClear: "NumPadClear", KeyNumPadRight: "NumPadRight",
	KeyNumPadHome: "NumPadHome", KeyNumPadUp: "NumPadUp",
	KeyNumPadPageUp: "NumPadPageUp", KeyNumPadInsert: "NumPadInsert",
	KeyNumPadDelete: "NumPadDelete", KeyNumPadComma: "NumPadComma",

	KeyLeftShift: "LeftShift", KeyRightShift: "RightShift",
	KeyLeftControl: "LeftControl", KeyRightControl: "RightControl",
	KeyLeftAlt: "LeftAlt", KeyRightAlt: "RightAlt",
	KeyLeftMeta: "LeftMeta", KeyRightMeta: "RightMeta",
	KeyContextMenu: "ContextMenu",

	KeyPower: "Power", KeySleep: "Sleep", KeyWake: "Wake",

	KeyMediaPlay: "MediaPlay", KeyMediaStop: "MediaStop",
	KeyMediaPrevious: "MediaPrevious", KeyMediaNext: "MediaNext",
	KeyMediaSelect: "MediaSelect", KeyMediaEject: "MediaEject",
	KeyVolumeMute: "VolumeMute", KeyVolumeUp: "VolumeUp",
	KeyVolumeDown: "VolumeDown",

	KeyAppMail: "AppMail", KeyAppCalculator: "AppCalculator",
	KeyAppMusic: "AppMusic", KeyAppPictures: "AppPictures",

	KeyBrowserSearch: "BrowserSearch", KeyBrowserHome: "BrowserHome",
	KeyBrowserBack: "BrowserBack", KeyBrowserForward: "BrowserForward",
	KeyBrowserStop: "BrowserStop", KeyBrowserRefresh: "BrowserRefresh",
	KeyBrowserFavorites: "BrowserFavorites",

	KeyKatakana: "Katakana", KeyUnderscore: "Underscore",
	KeyFurigana: "Furigana", KeyKanji: "Kanji",
	KeyHiragana: "Hiragana", KeyYen: "Yen",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// String returns the key's conventional name, or the raw code for keys
// without a named constant.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(0x%04X)", uint16(k))
}

// KeyByName resolves a conventional key name, e.g. "Escape" or "F1".
func KeyByName(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// String returns the button's conventional name.
func (b Button) String() string {
	switch b {
	case NoButton:
		return "NoButton"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case ButtonExtra1:
		return "Extra1"
	case ButtonExtra2:
		return "Extra2"
	default:
		return fmt.Sprintf("Button(%d)", uint16(b))
	}
}
