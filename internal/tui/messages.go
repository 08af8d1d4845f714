package tui

import "github.com/MKhiriev/vedicas-garden/models"

type greetedMsg struct {
	guruID string
	err    error
}

type replyMsg struct {
	guruID      string
	suggestions models.Suggestions
	err         error
}

type acceptedMsg struct {
	status string
	err    error
}

type wateredMsg struct {
	count int
	err   error
}

type restartedMsg struct {
	guruID string
	err    error
}

type syncDoneMsg struct {
	ok bool
}
