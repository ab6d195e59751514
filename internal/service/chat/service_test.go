package chat_test

import (
	"context"
	"errors"
	"testing"

	model "github.com/ugochukwu16henry/foundationprototype/internal/model/chat"
	chat "github.com/ugochukwu16henry/foundationprototype/internal/service/chat"
)

func TestServiceGetSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}

	if got.ID != session.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, session.ID)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestServiceCreateSessionLogsGreeting(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx, "welcome")
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(transcript) != 1 {
		t.Fatalf("expected greeting turn, got %d messages", len(transcript))
	}
	if transcript[0].Sender != model.SenderBot || transcript[0].Content != "welcome" {
		t.Fatalf("unexpected greeting turn: %+v", transcript[0])
	}
}

func TestServiceSaveMessage(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "")

	saved, err := svc.SaveMessage(ctx, model.Message{SessionID: session.ID, Sender: model.SenderUser, Content: "hi"})
	if err != nil {
		t.Fatalf("SaveMessage err: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp, got %+v", saved)
	}

	if _, err := svc.SaveMessage(ctx, model.Message{SessionID: session.ID, Sender: "admin", Content: "x"}); !errors.Is(err, chat.ErrInvalidSender) {
		t.Fatalf("expected ErrInvalidSender, got %v", err)
	}
	if _, err := svc.SaveMessage(ctx, model.Message{SessionID: "missing", Sender: model.SenderUser}); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	transcript, _ := svc.LoadTranscript(ctx, session.ID)
	if len(transcript) != 1 || transcript[0].Content != "hi" {
		t.Fatalf("unexpected transcript: %+v", transcript)
	}
}

func TestServiceDeleteSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx, "welcome")
	if err := svc.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession err: %v", err)
	}
	if _, err := svc.LoadTranscript(ctx, session.ID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected transcript gone, got %v", err)
	}
	if err := svc.DeleteSession(ctx, session.ID); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second delete, got %v", err)
	}
}
