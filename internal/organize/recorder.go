package organize

// Recorder receives the human-readable progress lines the engines emit.
// The session log implements it; callers may pass nil to discard them.
//
//go:generate mockgen -source=recorder.go -destination=mocks/recorder.go -package=mocks
type Recorder interface {
	Eventf(format string, args ...any)
}

type nopRecorder struct{}

func (nopRecorder) Eventf(string, ...any) {}
