package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"classtrack/internal/queue"
)

// MsgSubmission is the queue message type carrying a submission batch.
const MsgSubmission = "attendance.submission"

var (
	// ErrEmptyBatch rejects a submission with nothing in it.
	ErrEmptyBatch = errors.New("empty submission batch")
	// ErrIncompleteMark rejects a submission row missing its identifiers.
	ErrIncompleteMark = errors.New("submission requires lecture, student and faculty ids")
)

// Service coordinates attendance reads and routes submissions to the worker.
type Service struct {
	repo *Repository
	q    queue.Queue
}

// NewService creates a service backed by a repository and a queue.
func NewService(repo *Repository, q queue.Queue) *Service {
	return &Service{repo: repo, q: q}
}

// StudentSummary computes the overall aggregate, and the per-subject
// breakdown when bySubject is set, from a fresh read of the student's
// records.
func (s *Service) StudentSummary(ctx context.Context, studentID string, bySubject bool) (Summary, []SubjectSummary, error) {
	records, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return Summary{}, nil, err
	}
	if !bySubject {
		return Summarize(records), nil, nil
	}
	overall, subjects := SummarizeBySubject(records)
	return overall, subjects, nil
}

// TakenOn reports whether attendance was already recorded for the lecture on
// the given date. Advisory: callers use it to show "already taken" state,
// the persistence key is what actually prevents duplicates.
func (s *Service) TakenOn(ctx context.Context, lectureID string, date time.Time) (bool, error) {
	return s.repo.ExistsOn(ctx, lectureID, date)
}

// Submit validates a batch and hands it to the worker via the queue. Marks
// default to the current time when the caller sends none.
func (s *Service) Submit(ctx context.Context, subs []Submission) error {
	if len(subs) == 0 {
		return ErrEmptyBatch
	}
	now := time.Now().UTC()
	for i := range subs {
		if subs[i].LectureID == "" || subs[i].StudentID == "" || subs[i].FacultyID == "" {
			return ErrIncompleteMark
		}
		if subs[i].MarkedAt.IsZero() {
			subs[i].MarkedAt = now
		}
	}
	body, err := json.Marshal(subs)
	if err != nil {
		return err
	}
	return s.q.Publish(ctx, queue.Message{Type: MsgSubmission, Body: body})
}

// Persist writes a batch straight to storage. The worker calls this after
// decoding a queue message.
func (s *Service) Persist(ctx context.Context, subs []Submission) error {
	return s.repo.UpsertBatch(ctx, subs)
}
