package native

import "fmt"

// Status is a raw engine status code, as returned by Run and Stop.
type Status uint32

const (
	StatusSuccess Status = 0x00
	StatusFailure Status = 0x01

	StatusOutOfMemory Status = 0x02

	// X11 installation failures (Linux).
	StatusXOpenDisplay         Status = 0x20
	StatusXRecordNotFound      Status = 0x21
	StatusXRecordAllocRange    Status = 0x22
	StatusXRecordCreateContext Status = 0x23
	StatusXRecordEnableContext Status = 0x24
	StatusXRecordGetContext    Status = 0x25

	// Windows installation failures.
	StatusSetWindowsHookEx Status = 0x30
	StatusGetModuleHandle  Status = 0x31

	// macOS installation failures.
	StatusAXAPIDisabled       Status = 0x40
	StatusCreateEventPort     Status = 0x41
	StatusCreateRunLoopSource Status = 0x42
	StatusGetRunLoop          Status = 0x43
	StatusCreateObserver      Status = 0x44
)

// Code classifies engine errors into a closed set.
type Code int

const (
	CodeUnknown Code = iota
	CodeOutOfMemory
	CodeXOpenDisplay
	CodeXRecordNotFound
	CodeXRecordAllocRange
	CodeXRecordCreateContext
	CodeXRecordEnableContext
	CodeXRecordGetContext
	CodeSetWindowsHookEx
	CodeGetModuleHandle
	CodeAXAPIDisabled
	CodeCreateEventPort
	CodeCreateRunLoopSource
	CodeGetRunLoop
	CodeCreateObserver
)

var codeMessages = map[Code]string{
	CodeUnknown:              "encountered unknown error",
	CodeOutOfMemory:          "failed to allocate memory",
	CodeXOpenDisplay:         "failed to open X11 display",
	CodeXRecordNotFound:      "unable to locate XRecord extension",
	CodeXRecordAllocRange:    "unable to allocate XRecord range",
	CodeXRecordCreateContext: "unable to allocate XRecord context",
	CodeXRecordEnableContext: "failed to enable XRecord context",
	CodeXRecordGetContext:    "could not retrieve XRecord context",
	CodeSetWindowsHookEx:     "failed to register native windows hook",
	CodeGetModuleHandle:      "failed to retrieve handle for native windows hook",
	CodeAXAPIDisabled:        "failed to enable access for assistive devices",
	CodeCreateEventPort:      "failed to create apple event port",
	CodeCreateRunLoopSource:  "failed to create apple run loop source",
	CodeGetRunLoop:           "failed to acquire apple run loop",
	CodeCreateObserver:       "failed to create apple run loop observer",
}

// Error is the typed error surfaced from engine entry points. The
// unknown code additionally carries context and, at join boundaries, the
// payload of a captured panic so callers can re-raise it.
type Error struct {
	Code    Code
	Context string

	// Panic is the recovered panic value when the error was produced at
	// a goroutine join boundary, nil otherwise.
	Panic any
}

func (e *Error) Error() string {
	msg := codeMessages[e.Code]
	if msg == "" {
		msg = codeMessages[CodeUnknown]
	}
	if e.Context != "" {
		return fmt.Sprintf("native: %s: %s", msg, e.Context)
	}
	return "native: " + msg
}

var statusCodes = map[Status]Code{
	StatusOutOfMemory:          CodeOutOfMemory,
	StatusXOpenDisplay:         CodeXOpenDisplay,
	StatusXRecordNotFound:      CodeXRecordNotFound,
	StatusXRecordAllocRange:    CodeXRecordAllocRange,
	StatusXRecordCreateContext: CodeXRecordCreateContext,
	StatusXRecordEnableContext: CodeXRecordEnableContext,
	StatusXRecordGetContext:    CodeXRecordGetContext,
	StatusSetWindowsHookEx:     CodeSetWindowsHookEx,
	StatusGetModuleHandle:      CodeGetModuleHandle,
	StatusAXAPIDisabled:        CodeAXAPIDisabled,
	StatusCreateEventPort:      CodeCreateEventPort,
	StatusCreateRunLoopSource:  CodeCreateRunLoopSource,
	StatusGetRunLoop:           CodeGetRunLoop,
	StatusCreateObserver:       CodeCreateObserver,
}

// StatusError maps an engine status to a typed error, or nil for
// StatusSuccess. Unmapped statuses become the unknown code with the raw
// value as context.
func StatusError(status Status) error {
	if status == StatusSuccess {
		return nil
	}
	if code, ok := statusCodes[status]; ok {
		return &Error{Code: code}
	}
	return &Error{Code: CodeUnknown, Context: fmt.Sprintf("status 0x%02X", uint32(status))}
}

// PanicError wraps a recovered panic value as the unknown engine error.
// Callers that want to continue the panic can re-raise Error.Panic.
func PanicError(v any) *Error {
	ctx := "no panic info"
	if s, ok := v.(string); ok {
		ctx = s
	} else if err, ok := v.(error); ok {
		ctx = err.Error()
	}
	return &Error{Code: CodeUnknown, Context: ctx, Panic: v}
}
