package entities

import (
	"errors"
	"testing"

	"github.com/feisong354/AIImageTools/internal/domain/tools"
	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

func attachValid(t *testing.T, s *ToolSession, slot tools.Slot) {
	t.Helper()
	if err := s.AttachImage(slot, []byte{0x01, 0x02}, "image/png", "input.png"); err != nil {
		t.Fatalf("AttachImage() error = %v", err)
	}
}

func completedResult(t *testing.T) *GenerationResult {
	t.Helper()
	image, err := valueobjects.NewImageData([]byte{0xAA}, "image/png")
	if err != nil {
		t.Fatalf("NewImageData() error = %v", err)
	}
	result, err := NewGenerationResult([]*valueobjects.ImageData{image}, "done")
	if err != nil {
		t.Fatalf("NewGenerationResult() error = %v", err)
	}
	return result
}

func TestNewToolSession(t *testing.T) {
	session := NewToolSession(tools.Beauty)

	if session.State() != StateIdle {
		t.Errorf("State() = %v, want %v", session.State(), StateIdle)
	}
	if session.ID() == "" {
		t.Error("ID() should not be empty")
	}
	if session.Tool() != tools.Beauty {
		t.Errorf("Tool() = %v, want %v", session.Tool(), tools.Beauty)
	}
}

func TestToolSession_AttachImage(t *testing.T) {
	t.Run("accepted upload moves the session to ready", func(t *testing.T) {
		session := NewToolSession(tools.Beauty)
		attachValid(t, session, tools.SlotPortrait)

		if session.State() != StateReady {
			t.Errorf("State() = %v, want %v", session.State(), StateReady)
		}
		if _, ok := session.Image(tools.SlotPortrait); !ok {
			t.Error("expected portrait slot to be filled")
		}
		if session.ErrorMessage() != "" {
			t.Errorf("ErrorMessage() = %q, want empty", session.ErrorMessage())
		}
	})

	t.Run("accepted upload clears prior error and result", func(t *testing.T) {
		session := NewToolSession(tools.Beauty)
		attachValid(t, session, tools.SlotPortrait)
		session.CompleteGeneration(completedResult(t))
		session.FailGeneration("boom")

		attachValid(t, session, tools.SlotPortrait)

		if session.ErrorMessage() != "" {
			t.Errorf("ErrorMessage() = %q, want empty", session.ErrorMessage())
		}
		if _, ok := session.Result(); ok {
			t.Error("expected prior result to be cleared")
		}
	})

	t.Run("rejected upload clears the slot and sets the error", func(t *testing.T) {
		session := NewToolSession(tools.Beauty)
		attachValid(t, session, tools.SlotPortrait)

		err := session.AttachImage(tools.SlotPortrait, []byte{0x01}, "image/gif", "anim.gif")
		if !errors.Is(err, valueobjects.ErrUnsupportedImageType) {
			t.Fatalf("AttachImage() error = %v, want ErrUnsupportedImageType", err)
		}

		if session.State() != StateFailed {
			t.Errorf("State() = %v, want %v", session.State(), StateFailed)
		}
		if _, ok := session.Image(tools.SlotPortrait); ok {
			t.Error("expected rejected slot to be cleared")
		}
		if session.ErrorMessage() == "" {
			t.Error("expected a user-facing error message")
		}
	})

	t.Run("rejection leaves other slots untouched", func(t *testing.T) {
		session := NewToolSession(tools.IDPhoto)
		attachValid(t, session, tools.SlotPortrait)

		_ = session.AttachImage(tools.SlotBackground, []byte{0x01}, "image/tiff", "scan.tiff")

		if _, ok := session.Image(tools.SlotPortrait); !ok {
			t.Error("portrait slot should survive a rejection of another slot")
		}
	})
}

func TestToolSession_GenerationLifecycle(t *testing.T) {
	t.Run("begin clears previous outcome and blocks resubmission", func(t *testing.T) {
		session := NewToolSession(tools.Beauty)
		attachValid(t, session, tools.SlotPortrait)
		session.CompleteGeneration(completedResult(t))

		if err := session.BeginGeneration(); err != nil {
			t.Fatalf("BeginGeneration() error = %v", err)
		}
		if session.State() != StateGenerating {
			t.Errorf("State() = %v, want %v", session.State(), StateGenerating)
		}
		if _, ok := session.Result(); ok {
			t.Error("expected result to be cleared when a new request starts")
		}

		if err := session.BeginGeneration(); !errors.Is(err, ErrGenerationInFlight) {
			t.Errorf("second BeginGeneration() error = %v, want ErrGenerationInFlight", err)
		}
	})

	t.Run("success stores the result and clears the error", func(t *testing.T) {
		session := NewToolSession(tools.Beauty)
		attachValid(t, session, tools.SlotPortrait)
		_ = session.BeginGeneration()

		session.CompleteGeneration(completedResult(t))

		if session.State() != StateSucceeded {
			t.Errorf("State() = %v, want %v", session.State(), StateSucceeded)
		}
		result, ok := session.Result()
		if !ok {
			t.Fatal("expected a stored result")
		}
		if result.ImageCount() != 1 {
			t.Errorf("ImageCount() = %d, want 1", result.ImageCount())
		}
		if session.ErrorMessage() != "" {
			t.Errorf("ErrorMessage() = %q, want empty", session.ErrorMessage())
		}
	})

	t.Run("failure stores the message and no result", func(t *testing.T) {
		session := NewToolSession(tools.Beauty)
		attachValid(t, session, tools.SlotPortrait)
		_ = session.BeginGeneration()

		session.FailGeneration("no image returned")

		if session.State() != StateFailed {
			t.Errorf("State() = %v, want %v", session.State(), StateFailed)
		}
		if _, ok := session.Result(); ok {
			t.Error("a failed generation must not keep a result")
		}
		if session.ErrorMessage() != "no image returned" {
			t.Errorf("ErrorMessage() = %q, want %q", session.ErrorMessage(), "no image returned")
		}
	})

	t.Run("failed state is not sticky", func(t *testing.T) {
		session := NewToolSession(tools.Beauty)
		attachValid(t, session, tools.SlotPortrait)
		_ = session.BeginGeneration()
		session.FailGeneration("boom")

		attachValid(t, session, tools.SlotPortrait)
		if session.State() != StateReady {
			t.Errorf("State() = %v, want %v", session.State(), StateReady)
		}

		if err := session.BeginGeneration(); err != nil {
			t.Errorf("BeginGeneration() after failure error = %v", err)
		}
	})
}

func TestToolSession_ClearImage(t *testing.T) {
	session := NewToolSession(tools.IDPhoto)
	attachValid(t, session, tools.SlotPortrait)
	attachValid(t, session, tools.SlotBackground)

	session.ClearImage(tools.SlotBackground)
	if _, ok := session.Image(tools.SlotBackground); ok {
		t.Error("expected background slot to be cleared")
	}
	if session.State() != StateReady {
		t.Errorf("State() = %v, want %v", session.State(), StateReady)
	}

	session.ClearImage(tools.SlotPortrait)
	if session.State() != StateIdle {
		t.Errorf("State() = %v, want %v after clearing all slots", session.State(), StateIdle)
	}
}
