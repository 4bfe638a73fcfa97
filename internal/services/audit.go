package services

import (
	"log"
	"sync"

	"prepai/interview-api/internal/models"
	"prepai/interview-api/internal/repositories"
)

// AuditRecorder persists the append-only audit trail off the request path.
// Writes are fire-and-forget: the state machine never reads them back, so
// failures are logged and never surfaced to the caller.
type AuditRecorder interface {
	Start()
	Stop()
	RecordInterviewStart(interviewID string, profile models.Profile, questions []models.Question, questionIDs []string)
	RecordAnswer(questionRecordID, studentAnswer string, score models.Score)
}

type auditJob func()

type auditRecorder struct {
	resumeRepo    repositories.ResumeRepository
	interviewRepo repositories.InterviewRepository
	jobs          chan auditJob
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

func NewAuditRecorder(
	resumeRepo repositories.ResumeRepository,
	interviewRepo repositories.InterviewRepository,
	concurrency int,
) AuditRecorder {
	return &auditRecorder{
		resumeRepo:    resumeRepo,
		interviewRepo: interviewRepo,
		jobs:          make(chan auditJob, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
	}
}

// Start implements AuditRecorder.
func (a *auditRecorder) Start() {
	log.Printf("🚀 Starting audit recorder with %d workers\n", a.concurrency)

	for i := 0; i < a.concurrency; i++ {
		a.wg.Add(1)
		go a.processJobs(i + 1)
	}
}

// Stop implements AuditRecorder. Writes queued before Stop are still
// executed; records arriving afterwards are dropped.
func (a *auditRecorder) Stop() {
	log.Println("🛑 Stopping audit recorder...")
	close(a.stopChan)
	a.wg.Wait()
	log.Println("✅ Audit recorder stopped")
}

// RecordInterviewStart implements AuditRecorder. It persists the resume
// profile, the interview row, and one question row per generated question
// using the record ids assigned at session start.
func (a *auditRecorder) RecordInterviewStart(interviewID string, profile models.Profile, questions []models.Question, questionIDs []string) {
	a.enqueue(func() {
		resumeID, err := a.resumeRepo.Save(profile)
		if err != nil {
			log.Printf("⚠️  Audit: failed to save resume for interview %s: %v\n", interviewID, err)
			return
		}

		if err := a.interviewRepo.Create(interviewID, resumeID); err != nil {
			log.Printf("⚠️  Audit: failed to create interview %s: %v\n", interviewID, err)
			return
		}

		for i, q := range questions {
			if err := a.interviewRepo.SaveQuestion(questionIDs[i], interviewID, q.Question); err != nil {
				log.Printf("⚠️  Audit: failed to save question %d for interview %s: %v\n", i, interviewID, err)
			}
		}
	})
}

// RecordAnswer implements AuditRecorder. The answer row references the true
// per-question record id.
func (a *auditRecorder) RecordAnswer(questionRecordID, studentAnswer string, score models.Score) {
	a.enqueue(func() {
		if _, err := a.interviewRepo.SaveAnswer(questionRecordID, studentAnswer, score); err != nil {
			log.Printf("⚠️  Audit: failed to save answer for question %s: %v\n", questionRecordID, err)
		}
	})
}

func (a *auditRecorder) enqueue(job auditJob) {
	select {
	case a.jobs <- job:
	case <-a.stopChan:
		log.Println("⚠️  Audit recorder stopped, dropping record")
	}
}

func (a *auditRecorder) processJobs(workerID int) {
	defer a.wg.Done()

	for {
		select {
		case <-a.stopChan:
			a.drainJobs()
			log.Printf("👷 Audit worker #%d stopped\n", workerID)
			return
		case job := <-a.jobs:
			job()
		}
	}
}

// drainJobs runs whatever is still buffered so Stop does not lose writes
// that were queued before shutdown.
func (a *auditRecorder) drainJobs() {
	for {
		select {
		case job := <-a.jobs:
			job()
		default:
			return
		}
	}
}
