package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip New/Wrap 호출 지점이 0번째 프레임이 되도록 건너뛸 깊이입니다.
// (runtime.Callers, captureStack, New/Wrap 계열 함수)
const defaultCallerSkip = 3

// maxStackFrames 에러 하나당 수집할 최대 프레임 수입니다.
const maxStackFrames = 5

// StackFrame 단일 호출 스택 정보입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	frames := make([]StackFrame, 0, n)
	callersFrames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
