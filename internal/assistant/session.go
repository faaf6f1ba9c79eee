package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"DharmaSearch/be/internal/extractor"
	"DharmaSearch/be/internal/search"
)

type State int

const (
	StateIdle State = iota
	StateCapturing
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// TranscriptEvent is one interim transcription of the current utterance.
type TranscriptEvent struct {
	Text string
}

// CaptureSource is the voice-to-text boundary. Capture starts one utterance;
// the channel carries interim transcripts and closes on end-of-utterance or
// when ctx is cancelled. One utterance per activation, no continuous mode.
type CaptureSource interface {
	Capture(ctx context.Context) (<-chan TranscriptEvent, error)
}

type FailureCategory int

const (
	FailureInput FailureCategory = iota
	FailureExtraction
	FailureSearch
)

// Failure is the user-facing account of a failed submission. Raw transport
// errors never cross this boundary.
type Failure struct {
	Category FailureCategory `json:"category"`
	Message  string          `json:"message"`
}

var (
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrCaptureInProgress  = errors.New("voice capture is active")
	ErrCaptureUnavailable = errors.New("voice capture is not available")
)

const doneListeningAck = 2 * time.Second

// Session is the per-user query lifecycle: Idle, Capturing (voice), Submitting,
// Succeeded, Failed. The transcript consumer is the only writer to the question
// buffer besides SetQuestion, and the contract is last write wins.
type Session struct {
	service Service
	capture CaptureSource

	mu            sync.Mutex
	state         State
	question      string
	results       []DisplayRecord
	failure       *Failure
	doneListening bool
	ackSeq        int
	ackDelay      time.Duration
	cancelCapture context.CancelFunc
	captureDone   chan struct{}
}

func NewSession(service Service, capture CaptureSource) *Session {
	return &Session{
		service:  service,
		capture:  capture,
		state:    StateIdle,
		ackDelay: doneListeningAck,
	}
}

// Snapshot is the session state the presentation layer renders from.
type Snapshot struct {
	State         State           `json:"state"`
	Question      string          `json:"question"`
	Results       []DisplayRecord `json:"results,omitempty"`
	Failure       *Failure        `json:"failure,omitempty"`
	DoneListening bool            `json:"done_listening"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		State:         s.state,
		Question:      s.question,
		Failure:       s.failure,
		DoneListening: s.doneListening,
	}
	if s.results != nil {
		snap.Results = append([]DisplayRecord(nil), s.results...)
	}
	return snap
}

// SetQuestion overwrites the question buffer, e.g. on typed edits.
func (s *Session) SetQuestion(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.question = text
}

// StartCapture begins one voice utterance. Interim transcripts overwrite the
// question buffer until the source signals end-of-utterance or StopCapture is
// called.
func (s *Session) StartCapture(ctx context.Context) error {
	s.mu.Lock()
	if s.capture == nil {
		s.mu.Unlock()
		return ErrCaptureUnavailable
	}
	if s.state != StateIdle {
		state := s.state
		s.mu.Unlock()
		if state == StateSubmitting {
			return ErrSubmissionInFlight
		}
		return ErrCaptureInProgress
	}
	// Claim the capturing state before the (possibly slow) source call so a
	// concurrent StartCapture cannot double-enter.
	s.state = StateCapturing
	s.question = ""
	s.mu.Unlock()

	captureCtx, cancel := context.WithCancel(ctx)
	events, err := s.capture.Capture(captureCtx)
	if err != nil {
		cancel()
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		return err
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.cancelCapture = cancel
	s.captureDone = done
	s.mu.Unlock()

	go s.consumeTranscripts(events, done)
	return nil
}

// StopCapture cancels the active utterance and waits for the transcript
// consumer to drain, so the question buffer deterministically holds the last
// transcribed value when this returns. No-op outside Capturing.
func (s *Session) StopCapture() {
	s.mu.Lock()
	cancel := s.cancelCapture
	done := s.captureDone
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Submit runs the guided pipeline on the current question. Refused while a
// submission is in flight; a blank question makes no upstream call and leaves
// the session in Idle. Re-submission from Succeeded or Failed is allowed.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting:
		s.mu.Unlock()
		return ErrSubmissionInFlight
	case StateCapturing:
		s.mu.Unlock()
		return ErrCaptureInProgress
	}

	question := strings.TrimSpace(s.question)
	if question == "" {
		s.mu.Unlock()
		return &InputError{Reason: "question is empty"}
	}

	s.state = StateSubmitting
	s.results = nil
	s.failure = nil
	s.mu.Unlock()

	results, err := s.service.Query(ctx, question)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.failure = classifyFailure(err)
		return err
	}
	s.state = StateSucceeded
	s.results = results
	return nil
}

// Dismiss closes the results or error view and returns to Idle.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSucceeded || s.state == StateFailed {
		s.state = StateIdle
		s.results = nil
		s.failure = nil
	}
}

// -----------------Private Helper Functions-----------------

func (s *Session) consumeTranscripts(events <-chan TranscriptEvent, done chan struct{}) {
	defer close(done)
	for event := range events {
		s.mu.Lock()
		if s.state == StateCapturing {
			s.question = event.Text
		}
		s.mu.Unlock()
	}

	s.mu.Lock()
	if s.state == StateCapturing {
		s.state = StateIdle
	}
	s.cancelCapture = nil
	s.captureDone = nil
	s.doneListening = true
	s.ackSeq++
	seq := s.ackSeq
	delay := s.ackDelay
	s.mu.Unlock()

	// "Done listening" is a transient cue, cleared unless a newer capture has
	// ended since.
	time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.ackSeq == seq {
			s.doneListening = false
		}
		s.mu.Unlock()
	})
}

func classifyFailure(err error) *Failure {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return &Failure{Category: FailureInput, Message: "Please enter a question."}
	}

	var extractionErr *extractor.ExtractionError
	if errors.As(err, &extractionErr) {
		switch extractionErr.Kind {
		case extractor.KindMalformed, extractor.KindNoPhrases:
			return &Failure{
				Category: FailureExtraction,
				Message:  "We could not understand your question. Try rephrasing it.",
			}
		default:
			return &Failure{
				Category: FailureExtraction,
				Message:  "We could not process your question right now. Please try again.",
			}
		}
	}

	var searchErr *search.SearchError
	if errors.As(err, &searchErr) {
		return &Failure{Category: FailureSearch, Message: "Search is currently unavailable. Please try again later."}
	}

	return &Failure{Category: FailureSearch, Message: "Something went wrong. Please try again."}
}
