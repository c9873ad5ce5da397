package models

import (
	"math"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseLoading    Phase = "loading"
	PhaseEmpty      Phase = "empty"
	PhaseInProgress Phase = "in_progress"
	PhaseCompleted  Phase = "completed"
	PhaseError      Phase = "error"
)

// Terminal reports whether the phase only leaves through a fresh load.
func (p Phase) Terminal() bool {
	return p == PhaseEmpty || p == PhaseCompleted || p == PhaseError
}

type SessionStats struct {
	Correct int
	Total   int
}

// Accuracy is the rounded percentage of correct answers, 0 when nothing was answered.
func (s SessionStats) Accuracy() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
}

type SessionState struct {
	SessionID uuid.UUID
	Phase     Phase
	Index     int
	Total     int
	Revealed  bool
	InFlight  bool
	Stats     SessionStats
	Err       string
}

type View struct {
	Item            VocabularyItem
	Index           int
	Total           int
	Revealed        bool
	ProgressPercent float64
}

type Summary struct {
	Correct         int
	Total           int
	AccuracyPercent int
}
