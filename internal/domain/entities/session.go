package entities

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/feisong354/AIImageTools/internal/domain/tools"
	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// ErrGenerationInFlight blocks a second submission while one is running.
var ErrGenerationInFlight = errors.New("a generation is already in flight for this session")

type SessionID string

type SessionState string

const (
	StateIdle       SessionState = "idle"
	StateValidating SessionState = "validating"
	StateReady      SessionState = "ready"
	StateGenerating SessionState = "generating"
	StateSucceeded  SessionState = "succeeded"
	StateFailed     SessionState = "failed"
)

// ToolSession holds one tool view's transient state: the uploaded slot
// images, the latest result, and a single user-facing error message.
// The error message and a stored result are mutually exclusive, and a
// session is never left in StateGenerating once the request finishes.
type ToolSession struct {
	mu sync.Mutex

	id           SessionID
	tool         tools.ToolID
	images       map[tools.Slot]*valueobjects.ImageData
	state        SessionState
	errorMessage string
	result       *GenerationResult
	createdAt    time.Time
	updatedAt    time.Time
}

func NewToolSession(tool tools.ToolID) *ToolSession {
	now := time.Now()
	return &ToolSession{
		id:        SessionID(uuid.NewString()),
		tool:      tool,
		images:    make(map[tools.Slot]*valueobjects.ImageData),
		state:     StateIdle,
		createdAt: now,
		updatedAt: now,
	}
}

func (s *ToolSession) ID() SessionID {
	return s.id
}

func (s *ToolSession) Tool() tools.ToolID {
	return s.tool
}

// AttachImage validates a selected file into a slot. Acceptance replaces
// the slot wholesale and clears any prior error and result; rejection
// clears the slot and records the error, leaving everything else as it
// was.
func (s *ToolSession) AttachImage(slot tools.Slot, data []byte, declaredMimeType, fileName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateValidating
	s.touch()

	image, err := valueobjects.NewUploadedImage(data, declaredMimeType, fileName)
	if err != nil {
		delete(s.images, slot)
		s.errorMessage = fmt.Sprintf("unsupported file for %s: please choose a JPEG, PNG, or WebP image", slot)
		s.state = StateFailed
		return err
	}

	s.images[slot] = image
	s.errorMessage = ""
	s.result = nil
	s.state = StateReady
	return nil
}

// ClearImage drops a slot, e.g. when the user removes an optional logo.
func (s *ToolSession) ClearImage(slot tools.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.images, slot)
	if len(s.images) == 0 {
		s.state = StateIdle
	} else {
		s.state = StateReady
	}
	s.touch()
}

func (s *ToolSession) Image(slot tools.Slot) (*valueobjects.ImageData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	image, ok := s.images[slot]
	return image, ok
}

// Images returns a snapshot of the current slot contents.
func (s *ToolSession) Images() map[tools.Slot]*valueobjects.ImageData {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[tools.Slot]*valueobjects.ImageData, len(s.images))
	for slot, image := range s.images {
		snapshot[slot] = image
	}
	return snapshot
}

// BeginGeneration moves the session into StateGenerating, clearing the
// previous result and error. Only one generation may be in flight.
func (s *ToolSession) BeginGeneration() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateGenerating {
		return ErrGenerationInFlight
	}

	s.result = nil
	s.errorMessage = ""
	s.state = StateGenerating
	s.touch()
	return nil
}

func (s *ToolSession) CompleteGeneration(result *GenerationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = result
	s.errorMessage = ""
	s.state = StateSucceeded
	s.touch()
}

func (s *ToolSession) FailGeneration(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = nil
	s.errorMessage = message
	s.state = StateFailed
	s.touch()
}

func (s *ToolSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *ToolSession) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMessage
}

func (s *ToolSession) Result() (*GenerationResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.result != nil
}

func (s *ToolSession) CreatedAt() time.Time {
	return s.createdAt
}

func (s *ToolSession) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

func (s *ToolSession) touch() {
	s.updatedAt = time.Now()
}
