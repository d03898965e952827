package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func postJob(t *testing.T, s *Server, config JobConfig) Job {
	t.Helper()

	body, _ := json.Marshal(config)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(body))
	w := httptest.NewRecorder()

	s.handleCreateJob(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var job Job
	if err := json.NewDecoder(w.Body).Decode(&job); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return job
}

func TestServer_CreateJob(t *testing.T) {
	s := NewServer(":8080")

	job := postJob(t, s, JobConfig{N: 12, Restarts: 2, Seed: 42})

	if job.ID == "" {
		t.Error("Job ID should not be empty")
	}
	// State should be pending or running (since worker starts immediately)
	if job.State != StatePending && job.State != StateRunning {
		t.Errorf("Expected pending or running state, got %s", job.State)
	}
	if job.Config.Strategy != StrategyRandom {
		t.Errorf("Expected default strategy %q, got %q", StrategyRandom, job.Config.Strategy)
	}
	if job.Config.Restarts != 2 {
		t.Errorf("Expected 2 restarts, got %d", job.Config.Restarts)
	}
}

func TestServer_CreateJobValidation(t *testing.T) {
	s := NewServer(":8080")

	cases := []struct {
		name string
		body string
	}{
		{"MissingN", `{"restarts": 5}`},
		{"NegativeN", `{"n": -4}`},
		{"NegativeRestarts", `{"n": 10, "restarts": -1}`},
		{"NegativeIters", `{"n": 10, "strategy": "relaxed", "iters": -5}`},
		{"NegativePop", `{"n": 10, "strategy": "relaxed", "pop": -2}`},
		{"BadStrategy", `{"n": 10, "strategy": "tabu"}`},
		{"BadJSON", `{"n": `},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			s.handleCreateJob(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestServer_ListJobs(t *testing.T) {
	s := NewServer(":8080")

	s.jobManager.CreateJob(JobConfig{N: 10})
	s.jobManager.CreateJob(JobConfig{N: 12})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	w := httptest.NewRecorder()

	s.handleListJobs(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var jobs []Job
	if err := json.NewDecoder(w.Body).Decode(&jobs); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("Expected 2 jobs, got %d", len(jobs))
	}
}

func TestServer_JobStatus(t *testing.T) {
	s := NewServer(":8080")
	job := s.jobManager.CreateJob(JobConfig{N: 10, Restarts: 2})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+job.ID+"/status", nil)
	w := httptest.NewRecorder()
	s.handleJobsWithID(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/jobs/missing/status", nil)
	w = httptest.NewRecorder()
	s.handleJobsWithID(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestServer_BestRequiresCompletion(t *testing.T) {
	s := NewServer(":8080")
	job := s.jobManager.CreateJob(JobConfig{N: 10, Restarts: 2})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+job.ID+"/best", nil)
	w := httptest.NewRecorder()
	s.handleJobsWithID(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409 before completion, got %d", w.Code)
	}
}

func TestServer_BestAfterCompletion(t *testing.T) {
	s := NewServer(":8080")

	job := postJob(t, s, JobConfig{N: 12, Restarts: 2, Seed: 42})

	// Poll through the status and list handlers while the worker runs;
	// both encode job snapshots, so they are safe against the worker's
	// per-trial updates.
	deadline := time.Now().Add(10 * time.Second)
	for {
		sw := httptest.NewRecorder()
		s.handleJobsWithID(sw, httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+job.ID+"/status", nil))
		if sw.Code != http.StatusOK {
			t.Fatalf("Status request failed with %d", sw.Code)
		}
		s.handleListJobs(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))

		var got Job
		if err := json.NewDecoder(sw.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode status: %v", err)
		}
		if got.State == StateCompleted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Job did not complete in time, state %s", got.State)
		}
		time.Sleep(10 * time.Millisecond)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+job.ID+"/best", nil)
	w := httptest.NewRecorder()
	s.handleJobsWithID(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var best struct {
		Sequence string `json:"sequence"`
		Cost     int    `json:"cost"`
	}
	if err := json.NewDecoder(w.Body).Decode(&best); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(best.Sequence) != 12 {
		t.Errorf("Expected sequence of length 12, got %q", best.Sequence)
	}
	if best.Cost < 0 {
		t.Errorf("Cost must be non-negative, got %d", best.Cost)
	}
}

func TestServer_Index(t *testing.T) {
	s := NewServer(":8080")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.handleIndex(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %s", ct)
	}

	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	w = httptest.NewRecorder()
	s.handleIndex(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
