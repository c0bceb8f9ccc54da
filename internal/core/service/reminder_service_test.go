package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
)

type reminderServiceFixture struct {
	clients   *stubClientRepo
	reminders *stubReminderRepo
	svc       *ReminderService
}

func newReminderServiceFixture() *reminderServiceFixture {
	f := &reminderServiceFixture{
		clients:   newStubClientRepo(),
		reminders: newStubReminderRepo(),
	}
	f.svc = NewReminderService(f.reminders, f.clients, zerolog.Nop())
	return f
}

func TestReminderService_Create(t *testing.T) {
	f := newReminderServiceFixture()
	ctx := context.Background()
	client, _ := f.clients.Create(ctx, &domain.Client{OwnerID: owner.ID, Name: "ACME"})

	remindAt := time.Now().Add(48 * time.Hour)
	reminder, err := f.svc.Create(ctx, owner, ports.CreateReminderInput{
		ClientID: client.ID,
		Message:  "call about renewal",
		RemindAt: remindAt,
		Type:     domain.ReminderEmail,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if reminder.Completed {
		t.Fatalf("new reminders must start pending")
	}
	if reminder.ClientName != "ACME" {
		t.Fatalf("expected snapshotted name, got %q", reminder.ClientName)
	}
	if !reminder.RemindAt.Equal(remindAt.UTC()) {
		t.Fatalf("remind_at not preserved: %v", reminder.RemindAt)
	}
}

func TestReminderService_Create_ForeignClientForbidden(t *testing.T) {
	f := newReminderServiceFixture()
	ctx := context.Background()
	client, _ := f.clients.Create(ctx, &domain.Client{OwnerID: stranger.ID, Name: "Theirs"})

	_, err := f.svc.Create(ctx, owner, ports.CreateReminderInput{
		ClientID: client.ID,
		Message:  "x",
		RemindAt: time.Now(),
		Type:     domain.ReminderMeeting,
	})
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestReminderService_List_SortedByRemindAt(t *testing.T) {
	f := newReminderServiceFixture()
	ctx := context.Background()
	client, _ := f.clients.Create(ctx, &domain.Client{OwnerID: owner.ID, Name: "ACME"})

	base := time.Now().UTC()
	for _, offset := range []time.Duration{72 * time.Hour, 24 * time.Hour, 48 * time.Hour} {
		_, err := f.svc.Create(ctx, owner, ports.CreateReminderInput{
			ClientID: client.ID,
			Message:  "m",
			RemindAt: base.Add(offset),
			Type:     domain.ReminderFollowUp,
		})
		if err != nil {
			t.Fatalf("seed reminder: %v", err)
		}
	}

	listed, err := f.svc.List(ctx, owner)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 reminders, got %d", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].RemindAt.Before(listed[i-1].RemindAt) {
			t.Fatalf("reminders out of order at %d: %v before %v", i, listed[i].RemindAt, listed[i-1].RemindAt)
		}
	}
}

func TestReminderService_SetCompleted(t *testing.T) {
	f := newReminderServiceFixture()
	ctx := context.Background()
	client, _ := f.clients.Create(ctx, &domain.Client{OwnerID: owner.ID, Name: "ACME"})
	reminder, _ := f.svc.Create(ctx, owner, ports.CreateReminderInput{
		ClientID: client.ID, Message: "m", RemindAt: time.Now(), Type: domain.ReminderWhatsapp,
	})

	done, err := f.svc.SetCompleted(ctx, owner, reminder.ID, true)
	if err != nil {
		t.Fatalf("SetCompleted returned error: %v", err)
	}
	if !done.Completed {
		t.Fatalf("expected completed true")
	}

	undone, err := f.svc.SetCompleted(ctx, owner, reminder.ID, false)
	if err != nil {
		t.Fatalf("SetCompleted returned error: %v", err)
	}
	if undone.Completed {
		t.Fatalf("expected completed false after toggle back")
	}
}

func TestReminderService_SetCompleted_Forbidden(t *testing.T) {
	f := newReminderServiceFixture()
	ctx := context.Background()
	client, _ := f.clients.Create(ctx, &domain.Client{OwnerID: owner.ID, Name: "ACME"})
	reminder, _ := f.svc.Create(ctx, owner, ports.CreateReminderInput{
		ClientID: client.ID, Message: "m", RemindAt: time.Now(), Type: domain.ReminderEmail,
	})

	if _, err := f.svc.SetCompleted(ctx, stranger, reminder.ID, true); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestReminderService_Delete_NotFound(t *testing.T) {
	f := newReminderServiceFixture()

	if err := f.svc.Delete(context.Background(), admin, "missing"); err != domain.ErrReminderNotFound {
		t.Fatalf("expected ErrReminderNotFound, got %v", err)
	}
}
