package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/unitutor/internal/app/models"
	"github.com/yigit/unitutor/internal/app/models/dto"
	"github.com/yigit/unitutor/internal/pkg/apperrors"
)

func newInstructionFixture() (InstructionService, *memSessionRepo, *memUserRepo, *countingRecorder) {
	sessions := &memSessionRepo{}
	users := &memUserRepo{users: []*models.User{
		{ID: 5, Name: "Ana", Email: "ana@student.hr"},
		{ID: 2, Name: "Ivana", Email: "ivana@fer.hr", Subjects: strPtr("algebra")},
	}}
	rec := &countingRecorder{}
	return NewInstructionService(sessions, users, rec, zerolog.Nop()), sessions, users, rec
}

var sessionTime = time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

func TestScheduleSessionStoresRequestedStatus(t *testing.T) {
	svc, sessions, _, rec := newInstructionFixture()

	err := svc.ScheduleSession(context.Background(), "ana@student.hr", &dto.ScheduleSessionRequest{Date: sessionTime, ProfessorID: 2})
	if err != nil {
		t.Fatalf("ScheduleSession: %v", err)
	}

	if len(sessions.sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(sessions.sessions))
	}
	s := sessions.sessions[0]
	if s.StudentID != 5 || s.ProfessorID != 2 || s.Status != models.StatusRequested || !s.DateTime.Equal(sessionTime) {
		t.Fatalf("unexpected session %+v", s)
	}
	if rec.sessions != 1 {
		t.Fatalf("expected one recorded session, got %d", rec.sessions)
	}
}

func TestScheduleSessionUnknownStudent(t *testing.T) {
	svc, sessions, _, _ := newInstructionFixture()

	err := svc.ScheduleSession(context.Background(), "ghost@student.hr", &dto.ScheduleSessionRequest{Date: sessionTime, ProfessorID: 2})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	if errors.Is(err, apperrors.ErrPersistence) {
		t.Fatal("unknown student must not surface as a persistence error")
	}
	if len(sessions.sessions) != 0 {
		t.Fatal("no session should be stored")
	}
}

func TestScheduleSessionWithoutEmail(t *testing.T) {
	svc, sessions, _, _ := newInstructionFixture()

	err := svc.ScheduleSession(context.Background(), "", &dto.ScheduleSessionRequest{Date: sessionTime, ProfessorID: 2})
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatal("no session should be stored")
	}

	// The body is still validated before the student lookup
	err = svc.ScheduleSession(context.Background(), "", &dto.ScheduleSessionRequest{Date: sessionTime})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestScheduleSessionNormalizesToUTC(t *testing.T) {
	svc, sessions, _, _ := newInstructionFixture()
	zagreb := time.FixedZone("CEST", 2*60*60)
	submitted := time.Date(2024, 5, 10, 16, 0, 0, 1500, zagreb)

	if err := svc.ScheduleSession(context.Background(), "ana@student.hr", &dto.ScheduleSessionRequest{Date: submitted, ProfessorID: 2}); err != nil {
		t.Fatalf("ScheduleSession: %v", err)
	}

	stored := sessions.sessions[0].DateTime
	if stored.Location() != time.UTC {
		t.Fatalf("stored location = %v", stored.Location())
	}
	if want := time.Date(2024, 5, 10, 14, 0, 0, 1000, time.UTC); !stored.Equal(want) {
		t.Fatalf("stored = %v, want %v", stored, want)
	}
}

func TestScheduleSessionDuplicatesBothSucceed(t *testing.T) {
	svc, sessions, _, _ := newInstructionFixture()
	req := &dto.ScheduleSessionRequest{Date: sessionTime, ProfessorID: 2}

	for i := 0; i < 2; i++ {
		if err := svc.ScheduleSession(context.Background(), "ana@student.hr", req); err != nil {
			t.Fatalf("ScheduleSession #%d: %v", i+1, err)
		}
	}
	if len(sessions.sessions) != 2 {
		t.Fatalf("expected two sessions, got %d", len(sessions.sessions))
	}
	if sessions.sessions[0].ID == sessions.sessions[1].ID {
		t.Fatal("sessions should have distinct ids")
	}
}

func TestScheduleSessionPersistenceFailure(t *testing.T) {
	svc, sessions, _, rec := newInstructionFixture()
	sessions.createErr = apperrors.ErrPersistence

	err := svc.ScheduleSession(context.Background(), "ana@student.hr", &dto.ScheduleSessionRequest{Date: sessionTime, ProfessorID: 2})
	if !errors.Is(err, apperrors.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if rec.sessions != 0 {
		t.Fatal("failed request must not be counted")
	}
}

func TestScheduleSessionMissingFields(t *testing.T) {
	svc, _, _, _ := newInstructionFixture()

	cases := []*dto.ScheduleSessionRequest{
		{ProfessorID: 2},
		{Date: sessionTime},
		nil,
	}
	for _, req := range cases {
		if err := svc.ScheduleSession(context.Background(), "ana@student.hr", req); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("ScheduleSession(%+v) = %v, want ErrValidationFailed", req, err)
		}
	}
}

func TestListSessions(t *testing.T) {
	svc, sessions, _, _ := newInstructionFixture()

	empty, err := svc.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if !empty.Success || empty.InstructionSessions == nil || len(empty.InstructionSessions) != 0 {
		t.Fatalf("expected success with empty list, got %#v", empty)
	}

	sessions.sessions = []*models.InstructionSession{
		{ID: 1, DateTime: sessionTime, ProfessorID: 2, StudentID: 5, Status: models.StatusRequested},
	}
	resp, err := svc.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	want := dto.InstructionSessionResponse{DateTime: sessionTime, ProfessorID: 2}
	if len(resp.InstructionSessions) != 1 || resp.InstructionSessions[0] != want {
		t.Fatalf("unexpected sessions %+v", resp.InstructionSessions)
	}
}
