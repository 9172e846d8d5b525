package pipeline

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// JobStatus represents the state of a cloud job. The running states mirror
// the stages of the tag cloud pipeline.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusParsing     JobStatus = "parsing"
	StatusTokenizing  JobStatus = "tokenizing"
	StatusAggregating JobStatus = "aggregating"
	StatusSelecting   JobStatus = "selecting"
	StatusSizing      JobStatus = "sizing"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
)

// FailureKind says why a job failed so clients can decide whether to retry
// with a different term count.
type FailureKind string

const (
	FailureNone        FailureKind = ""
	FailureRead        FailureKind = "read_failure"
	FailureInvalidN    FailureKind = "invalid_n"
	FailureUnsupported FailureKind = "unsupported"
	FailureQueueFull   FailureKind = "queue_full"
	FailureCancelled   FailureKind = "cancelled"
)

var stageStatus = map[tagcloud.Stage]JobStatus{
	tagcloud.StageTokenizing:  StatusTokenizing,
	tagcloud.StageAggregating: StatusAggregating,
	tagcloud.StageSelecting:   StatusSelecting,
	tagcloud.StageSizeMapping: StatusSizing,
}

// Job tracks the state of a single cloud generation.
type Job struct {
	mu sync.Mutex

	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Filename string    `json:"filename"`
	Title    string    `json:"title"`
	Terms    int       `json:"n"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	failure  FailureKind
	errMsg   string
	distinct int
	result   *tagcloud.Cloud
}

// NewJob creates a queued job for an uploaded file.
func NewJob(filename, title string, n int, data []byte) *Job {
	now := time.Now()
	return &Job{
		ID:          uuid.NewString(),
		Status:      StatusQueued,
		Filename:    filename,
		Title:       title,
		Terms:       n,
		ContentHash: ContentHashHex(data),
		CreatedAt:   now,
		UpdatedAt:   now,
		fileData:    data,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Len returns the number of tracked jobs.
func (s *JobStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.updatedAt()) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// SetStage maps a pipeline stage onto the job status. Stages without a
// running status are ignored.
func (j *Job) SetStage(stage tagcloud.Stage) {
	if status, ok := stageStatus[stage]; ok {
		j.SetStatus(status)
	}
}

// Fail marks the job failed and drops its upload.
func (j *Job) Fail(kind FailureKind, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusFailed
	j.failure = kind
	j.errMsg = err.Error()
	var inv *tagcloud.InvalidNError
	if errors.As(err, &inv) {
		j.distinct = inv.Distinct
	}
	j.fileData = nil
	j.UpdatedAt = time.Now()
}

// Complete stores the finished cloud and drops the upload.
func (j *Job) Complete(cloud *tagcloud.Cloud) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusCompleted
	j.result = cloud
	j.distinct = 0
	j.fileData = nil
	j.UpdatedAt = time.Now()
}

// Result returns the finished cloud, or nil while the job is not completed.
func (j *Job) Result() *tagcloud.Cloud {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

func (j *Job) updatedAt() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.UpdatedAt
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID            string      `json:"job_id"`
	Status        JobStatus   `json:"status"`
	Filename      string      `json:"filename"`
	Title         string      `json:"title"`
	Terms         int         `json:"n"`
	ContentHash   string      `json:"content_hash"`
	Failure       FailureKind `json:"failure,omitempty"`
	Error         string      `json:"error,omitempty"`
	DistinctWords int         `json:"distinct_words,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return JobSnapshot{
		ID:            j.ID,
		Status:        j.Status,
		Filename:      j.Filename,
		Title:         j.Title,
		Terms:         j.Terms,
		ContentHash:   j.ContentHash,
		Failure:       j.failure,
		Error:         j.errMsg,
		DistinctWords: j.distinct,
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
