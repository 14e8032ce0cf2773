package event

// Key identifies a physical key position, labeled per an English layout.
// The numeric values are the native engine's virtual key codes; values
// without a named constant round-trip through decode/encode untouched, so
// keys this table does not know about are still usable.
type Key uint16

const (
	KeyUndefined Key = 0x0000

	KeyEscape Key = 0x0001

	KeyF1  Key = 0x003B
	KeyF2  Key = 0x003C
	KeyF3  Key = 0x003D
	KeyF4  Key = 0x003E
	KeyF5  Key = 0x003F
	KeyF6  Key = 0x0040
	KeyF7  Key = 0x0041
	KeyF8  Key = 0x0042
	KeyF9  Key = 0x0043
	KeyF10 Key = 0x0044
	KeyF11 Key = 0x0057
	KeyF12 Key = 0x0058
	KeyF13 Key = 0x005B
	KeyF14 Key = 0x005C
	KeyF15 Key = 0x005D
	KeyF16 Key = 0x0063
	KeyF17 Key = 0x0064
	KeyF18 Key = 0x0065
	KeyF19 Key = 0x0066
	KeyF20 Key = 0x0067
	KeyF21 Key = 0x0068
	KeyF22 Key = 0x0069
	KeyF23 Key = 0x006A
	KeyF24 Key = 0x006B

	KeyBackquote Key = 0x0029
	Key1         Key = 0x0002
	Key2         Key = 0x0003
	Key3         Key = 0x0004
	Key4         Key = 0x0005
	Key5         Key = 0x0006
	Key6         Key = 0x0007
	Key7         Key = 0x0008
	Key8         Key = 0x0009
	Key9         Key = 0x000A
	Key0         Key = 0x000B
	KeyMinus     Key = 0x000C
	KeyEquals    Key = 0x000D
	KeyBackspace Key = 0x000E

	KeyTab      Key = 0x000F
	KeyCapsLock Key = 0x003A

	KeyA Key = 0x001E
	KeyB Key = 0x0030
	KeyC Key = 0x002E
	KeyD Key = 0x0020
	KeyE Key = 0x0012
	KeyF Key = 0x0021
	KeyG Key = 0x0022
	KeyH Key = 0x0023
	KeyI Key = 0x0017
	KeyJ Key = 0x0024
	KeyK Key = 0x0025
	KeyL Key = 0x0026
	KeyM Key = 0x0032
	KeyN Key = 0x0031
	KeyO Key = 0x0018
	KeyP Key = 0x0019
	KeyQ Key = 0x0010
	KeyR Key = 0x0013
	KeyS Key = 0x001F
	KeyT Key = 0x0014
	KeyU Key = 0x0016
	KeyV Key = 0x002F
	KeyW Key = 0x0011
	KeyX Key = 0x002D
	KeyY Key = 0x0015
	KeyZ Key = 0x002C

	KeyOpenBracket  Key = 0x001A
	KeyCloseBracket Key = 0x001B
	KeyBackSlash    Key = 0x002B
	KeySemicolon    Key = 0x0027
	KeyQuote        Key = 0x0028
	KeyEnter        Key = 0x001C
	KeyComma        Key = 0x0033
	KeyPeriod       Key = 0x0034
	KeySlash        Key = 0x0035
	KeySpace        Key = 0x0039

	KeyPrintScreen   Key = 0x0E37
	KeyScrollLock    Key = 0x0046
	KeyPause         Key = 0x0E45
	KeyLesserGreater Key = 0x0E46

	KeyInsert   Key = 0x0E52
	KeyDelete   Key = 0x0E53
	KeyHome     Key = 0x0E47
	KeyEnd      Key = 0x0E4F
	KeyPageUp   Key = 0x0E49
	KeyPageDown Key = 0x0E51

	KeyUp    Key = 0xE048
	KeyLeft  Key = 0xE04B
	KeyClear Key = 0xE04C
	KeyRight Key = 0xE04D
	KeyDown  Key = 0xE050

	KeyNumLock         Key = 0x0045
	KeyNumPadDivide    Key = 0x0E35
	KeyNumPadMultiply  Key = 0x0037
	KeyNumPadSubtract  Key = 0x004A
	KeyNumPadEquals    Key = 0x0E0D
	KeyNumPadAdd       Key = 0x004E
	KeyNumPadEnter     Key = 0x0E1C
	KeyNumPadSeparator Key = 0x0053

	KeyNumPad1 Key = 0x004F
	KeyNumPad2 Key = 0x0050
	KeyNumPad3 Key = 0x0051
	KeyNumPad4 Key = 0x004B
	KeyNumPad5 Key = 0x004C
	KeyNumPad6 Key = 0x004D
	KeyNumPad7 Key = 0x0047
	KeyNumPad8 Key = 0x0048
	KeyNumPad9 Key = 0x0049
	KeyNumPad0 Key = 0x0052

	KeyNumPadEnd      Key = 0xEE00 | KeyNumPad1
	KeyNumPadDown     Key = 0xEE00 | KeyNumPad2
	KeyNumPadPageDown Key = 0xEE00 | KeyNumPad3
	KeyNumPadLeft     Key = 0xEE00 | KeyNumPad4
	KeyNumPadClear    Key = 0xEE00 | KeyNumPad5
	KeyNumPadRight    Key = 0xEE00 | KeyNumPad6
	KeyNumPadHome     Key = 0xEE00 | KeyNumPad7
	KeyNumPadUp       Key = 0xEE00 | KeyNumPad8
	KeyNumPadPageUp   Key = 0xEE00 | KeyNumPad9
	KeyNumPadInsert   Key = 0xEE00 | KeyNumPad0
	KeyNumPadDelete   Key = 0xEE00 | 0x0053
	KeyNumPadComma    Key = 0x0E33

	KeyLeftShift    Key = 0x002A
	KeyRightShift   Key = 0x0036
	KeyLeftControl  Key = 0x001D
	KeyRightControl Key = 0x0E1D
	KeyLeftAlt      Key = 0x0038
	KeyRightAlt     Key = 0x0E38
	KeyLeftMeta     Key = 0x0E5B
	KeyRightMeta    Key = 0x0E5C
	KeyContextMenu  Key = 0x0E5D

	KeyPower Key = 0xE05E
	KeySleep Key = 0xE05F
	KeyWake  Key = 0xE063

	KeyMediaPlay     Key = 0xE022
	KeyMediaStop     Key = 0xE024
	KeyMediaPrevious Key = 0xE010
	KeyMediaNext     Key = 0xE019
	KeyMediaSelect   Key = 0xE06D
	KeyMediaEject    Key = 0xE02C
	KeyVolumeMute    Key = 0xE020
	KeyVolumeUp      Key = 0xE030
	KeyVolumeDown    Key = 0xE02E

	KeyAppMail       Key = 0xE06C
	KeyAppCalculator Key = 0xE021
	KeyAppMusic      Key = 0xE03C
	KeyAppPictures   Key = 0xE064

	KeyBrowserSearch    Key = 0xE065
	KeyBrowserHome      Key = 0xE032
	KeyBrowserBack      Key = 0xE06A
	KeyBrowserForward   Key = 0xE069
	KeyBrowserStop      Key = 0xE068
	KeyBrowserRefresh   Key = 0xE067
	KeyBrowserFavorites Key = 0xE066

	KeyKatakana   Key = 0x0070
	KeyUnderscore Key = 0x0073
	KeyFurigana   Key = 0x0077
	KeyKanji      Key = 0x0079
	KeyHiragana   Key = 0x007B
	KeyYen        Key = 0x007D
)

// Button identifies a mouse button.
type Button uint16

const (
	NoButton     Button = 0
	ButtonLeft   Button = 1
	ButtonRight  Button = 2
	ButtonMiddle Button = 3
	ButtonExtra1 Button = 4
	ButtonExtra2 Button = 5
)

// ScrollKind distinguishes scroll granularities, as reported by the OS.
type ScrollKind uint8

const (
	ScrollUnit  ScrollKind = 1
	ScrollBlock ScrollKind = 2
)

// ScrollDirection is the axis of a wheel event.
type ScrollDirection uint8

const (
	ScrollVertical   ScrollDirection = 3
	ScrollHorizontal ScrollDirection = 4
)

// Mask tags an event as part of a simultaneous key/button combination,
// such as the Ctrl in Ctrl-C. The side-specific constants are single
// bits; the generic Shift/Control/Meta/Alt masks cover either side. The
// values match the native engine's modifier mask bits, so conversion to
// and from wire records is the identity.
type Mask uint16

const (
	MaskNone Mask = 0

	MaskLeftShift    Mask = 1 << 0
	MaskLeftControl  Mask = 1 << 1
	MaskLeftMeta     Mask = 1 << 2
	MaskLeftAlt      Mask = 1 << 3
	MaskRightShift   Mask = 1 << 4
	MaskRightControl Mask = 1 << 5
	MaskRightMeta    Mask = 1 << 6
	MaskRightAlt     Mask = 1 << 7

	MaskLeftMouseButton   Mask = 1 << 8
	MaskRightMouseButton  Mask = 1 << 9
	MaskMiddleMouseButton Mask = 1 << 10
	MaskExtraMouseButton1 Mask = 1 << 11
	MaskExtraMouseButton2 Mask = 1 << 12

	MaskNumLock    Mask = 1 << 13
	MaskCapsLock   Mask = 1 << 14
	MaskScrollLock Mask = 1 << 15

	MaskShift   = MaskLeftShift | MaskRightShift
	MaskControl = MaskLeftControl | MaskRightControl
	MaskMeta    = MaskLeftMeta | MaskRightMeta
	MaskAlt     = MaskLeftAlt | MaskRightAlt
)

// AllKeys returns the named key constants. Used by filtered hooks to
// build complement sets for "none of these keys" matching.
func AllKeys() []Key {
	return []Key{
		KeyEscape,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9,
		KeyF10, KeyF11, KeyF12, KeyF13, KeyF14, KeyF15, KeyF16, KeyF17,
		KeyF18, KeyF19, KeyF20, KeyF21, KeyF22, KeyF23, KeyF24,
		KeyBackquote,
		Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0,
		KeyMinus, KeyEquals, KeyBackspace, KeyTab, KeyCapsLock,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ,
		KeyK, KeyL, KeyM, KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT,
		KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		KeyOpenBracket, KeyCloseBracket, KeyBackSlash, KeySemicolon,
		KeyQuote, KeyEnter, KeyComma, KeyPeriod, KeySlash, KeySpace,
		KeyPrintScreen, KeyScrollLock, KeyPause, KeyLesserGreater,
		KeyInsert, KeyDelete, KeyHome, KeyEnd, KeyPageUp, KeyPageDown,
		KeyUp, KeyLeft, KeyClear, KeyRight, KeyDown,
		KeyNumLock, KeyNumPadDivide, KeyNumPadMultiply, KeyNumPadSubtract,
		KeyNumPadEquals, KeyNumPadAdd, KeyNumPadEnter, KeyNumPadSeparator,
		KeyNumPad1, KeyNumPad2, KeyNumPad3, KeyNumPad4, KeyNumPad5,
		KeyNumPad6, KeyNumPad7, KeyNumPad8, KeyNumPad9, KeyNumPad0,
		KeyNumPadEnd, KeyNumPadDown, KeyNumPadPageDown, KeyNumPadLeft,
		KeyNumPadClear, KeyNumPadRight, KeyNumPadHome, KeyNumPadUp,
		KeyNumPadPageUp, KeyNumPadInsert, KeyNumPadDelete, KeyNumPadComma,
		KeyLeftShift, KeyRightShift, KeyLeftControl, KeyRightControl,
		KeyLeftAlt, KeyRightAlt, KeyLeftMeta, KeyRightMeta,
		KeyContextMenu, KeyPower, KeySleep, KeyWake,
		KeyMediaPlay, KeyMediaStop, KeyMediaPrevious, KeyMediaNext,
		KeyMediaSelect, KeyMediaEject, KeyVolumeMute, KeyVolumeUp,
		KeyVolumeDown, KeyAppMail, KeyAppCalculator, KeyAppMusic,
		KeyAppPictures, KeyBrowserSearch, KeyBrowserHome, KeyBrowserBack,
		KeyBrowserForward, KeyBrowserStop, KeyBrowserRefresh,
		KeyBrowserFavorites, KeyKatakana, KeyUnderscore, KeyFurigana,
		KeyKanji, KeyHiragana, KeyYen,
	}
}

// AllButtons returns the named button constants, excluding NoButton.
func AllButtons() []Button {
	return []Button{ButtonLeft, ButtonRight, ButtonMiddle, ButtonExtra1, ButtonExtra2}
}
