package service

// BusinessRecorder receives business events for metrics
type BusinessRecorder interface {
	IncrementEventCreated()
	IncrementEventJoined()
	IncrementFavoriteAdded()
	RecordAuthAttempt(method, result string)
}

type noopRecorder struct{}

func (noopRecorder) IncrementEventCreated()           {}
func (noopRecorder) IncrementEventJoined()            {}
func (noopRecorder) IncrementFavoriteAdded()          {}
func (noopRecorder) RecordAuthAttempt(string, string) {}

func recorderOrNoop(r BusinessRecorder) BusinessRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
