package dto

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/unitutor/internal/app/models"
)

func TestHandleValidationErrorListsMissingFields(t *testing.T) {
	err := binding.Validator.ValidateStruct(&CreateSubjectRequest{Title: "Algebra"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	detail := HandleValidationError(err)
	if detail.Code != ErrorCodeValidationFailed {
		t.Fatalf("code = %s", detail.Code)
	}
	fields, ok := detail.Details.([]ErrorDetail)
	if !ok {
		t.Fatalf("details type = %T", detail.Details)
	}
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(fields))
	}
	got := []string{fields[0].Field, fields[1].Field}
	if got[0] != "url" || got[1] != "description" {
		t.Fatalf("fields = %v", got)
	}
	if fields[0].Message != "url is required" {
		t.Fatalf("message = %q", fields[0].Message)
	}
}

func TestHandleValidationErrorUsesJSONFieldNames(t *testing.T) {
	err := binding.Validator.ValidateStruct(&ScheduleSessionRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := HandleValidationError(err).Details.([]ErrorDetail)
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(fields))
	}
	if fields[0].Field != "date" || fields[0].Message != "date is required" {
		t.Fatalf("first field = %+v", fields[0])
	}
	if fields[1].Field != "professorId" || fields[1].Message != "professorId is required" {
		t.Fatalf("second field = %+v", fields[1])
	}
}

func TestJSONFieldNameFallsBackToGoName(t *testing.T) {
	type sample struct {
		Tagged   string `json:"tagged,omitempty"`
		Skipped  string `json:"-"`
		Untagged string
	}
	typ := reflect.TypeOf(sample{})
	want := []string{"tagged", "Skipped", "Untagged"}
	for i, name := range want {
		if got := JSONFieldName(typ.Field(i)); got != name {
			t.Errorf("field %d: got %q, want %q", i, got, name)
		}
	}
}

func TestHandleValidationErrorMalformedJSON(t *testing.T) {
	var req ScheduleSessionRequest
	err := json.Unmarshal([]byte(`{"date":`), &req)

	detail := HandleValidationError(err)
	if detail.Code != ErrorCodeValidationFailed {
		t.Fatalf("code = %s", detail.Code)
	}
	if detail.Message == "" {
		t.Fatal("expected a message")
	}
}

func TestHandleValidationErrorTypeMismatch(t *testing.T) {
	var req ScheduleSessionRequest
	err := json.Unmarshal([]byte(`{"professorId":"two"}`), &req)

	detail := HandleValidationError(err)
	if detail.Message != "Invalid field type" {
		t.Fatalf("message = %q", detail.Message)
	}
	if detail.Field != "professorId" {
		t.Fatalf("field = %q", detail.Field)
	}
}

func TestHandleValidationErrorUnknown(t *testing.T) {
	detail := HandleValidationError(errors.New("weird"))
	if detail.Message != "Invalid request format" || detail.Details != "weird" {
		t.Fatalf("unexpected detail %+v", detail)
	}
}

func TestNewErrorResponseMirrorsMessage(t *testing.T) {
	resp := NewErrorResponse(NewErrorDetail(ErrorCodeResourceNotFound, "Subject not found."))
	if resp.Success || resp.Message != "Subject not found." {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestProfessorResponseJSONShape(t *testing.T) {
	subjects := "algebra,physics"
	count := 3
	body, err := json.Marshal(NewProfessorResponse(&models.User{
		ID: 2, Name: "Ivana", Surname: "Horvat", Email: "ivana@fer.hr",
		ProfilePicture: "p.png", Subjects: &subjects, InstructionsCount: &count,
		Password: "hash",
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(body)
	for _, want := range []string{`"_id":2`, `"profilePictureUrl":"p.png"`, `"instructionsCount":3`, `"subjects":"algebra,physics"`} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %s in %s", want, text)
		}
	}
	if strings.Contains(text, "hash") {
		t.Fatal("password hash must never be serialized")
	}
}

func TestInstructionSessionResponseOmitsStudentAndStatus(t *testing.T) {
	when := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	body, err := json.Marshal(NewInstructionSessionResponse(&models.InstructionSession{
		ID: 9, DateTime: when, ProfessorID: 2, StudentID: 5, Status: models.StatusRequested,
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(body) != `{"dateTime":"2024-05-10T14:00:00Z","professorId":2}` {
		t.Fatalf("unexpected JSON %s", body)
	}
}
