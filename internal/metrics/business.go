package metrics

// IncrementEventCreated increments the event creation counter
func (m *Metrics) IncrementEventCreated() {
	m.safeExecute("IncrementEventCreated", func() {
		m.EventCreatedTotal.Inc()
	})
}

// IncrementEventJoined increments the successful join counter
func (m *Metrics) IncrementEventJoined() {
	m.safeExecute("IncrementEventJoined", func() {
		m.EventJoinedTotal.Inc()
	})
}

// IncrementFavoriteAdded increments the favorite counter
func (m *Metrics) IncrementFavoriteAdded() {
	m.safeExecute("IncrementFavoriteAdded", func() {
		m.FavoriteAddedTotal.Inc()
	})
}

// RecordAuthAttempt counts an authentication attempt. method is login,
// signup or exchange; result is success or failure.
func (m *Metrics) RecordAuthAttempt(method, result string) {
	m.safeExecute("RecordAuthAttempt", func() {
		m.AuthAttemptsTotal.WithLabelValues(method, result).Inc()
	})
}

// Snapshot is a point-in-time count of the main tables
type Snapshot struct {
	Accounts       int64
	Events         int64
	UpcomingEvents int64
	Participants   int64
	Favorites      int64
}

// SetSnapshot publishes table counts as gauges
func (m *Metrics) SetSnapshot(s Snapshot) {
	m.safeExecute("SetSnapshot", func() {
		m.AccountsTotal.Set(float64(s.Accounts))
		m.EventsTotal.Set(float64(s.Events))
		m.UpcomingEventsTotal.Set(float64(s.UpcomingEvents))
		m.ParticipantsTotal.Set(float64(s.Participants))
		m.FavoritesTotal.Set(float64(s.Favorites))
	})
}
