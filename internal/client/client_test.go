package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jmehdipour/jobs-api/internal/access"
	"github.com/jmehdipour/jobs-api/internal/config"
	httpSrv "github.com/jmehdipour/jobs-api/internal/http"
	"github.com/jmehdipour/jobs-api/internal/repository"
	"go.uber.org/zap"
)

func newAPI(t *testing.T) *Client {
	t.Helper()
	jobs := repository.NewMemoryJobsRepository()
	err := repository.SeedJobs(context.Background(), jobs, []config.SeedJob{
		{Name: "First Job", Salary: 50000},
		{Name: "Second Job", Salary: 70000},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	ts := httptest.NewServer(httpSrv.NewServer(jobs, access.NewDefaultGate(), zap.NewNop()))
	t.Cleanup(ts.Close)

	return New(ts.URL+"/", time.Second)
}

func TestClient_CreateGetList(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	j, err := c.CreateJob(ctx, access.DefaultAPIKey, "QA", 1000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if j.ID != 3 || j.Name != "QA" || j.Salary != 1000 {
		t.Fatalf("unexpected job %+v", j)
	}

	got, err := c.GetJob(ctx, access.DefaultAPIKey, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != j {
		t.Fatalf("expected %+v, got %+v", j, got)
	}

	list, err := c.ListJobs(ctx, access.DefaultAPIKey)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(list))
	}
}

func TestClient_StatusErrors(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	_, err := c.ListJobs(ctx, "wrong_key")
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 StatusError, got %v", err)
	}
	if !strings.Contains(se.Detail, "Invalid API Key") {
		t.Fatalf("unexpected detail %q", se.Detail)
	}

	_, err = c.GetJob(ctx, access.DefaultAPIKey, 42)
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Fatalf("expected 404 StatusError, got %v", err)
	}
	if !strings.Contains(se.Detail, "Job ID 42") {
		t.Fatalf("unexpected detail %q", se.Detail)
	}
}

func TestClient_Probe(t *testing.T) {
	c := newAPI(t)

	var out bytes.Buffer
	steps, err := c.Probe(context.Background(), &out, access.DefaultAPIKey, "wrong_key", 7)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}

	// 3 fixed checks + 4 successful throttle requests + the first 429
	wantStatus := []int{401, 401, 200, 200, 200, 200, 200, 429}
	if len(steps) != len(wantStatus) {
		t.Fatalf("expected %d steps, got %d:\n%s", len(wantStatus), len(steps), out.String())
	}
	for i, st := range steps {
		if st.Status != wantStatus[i] {
			t.Errorf("step %d (%s): status %d, want %d", i, st.Name, st.Status, wantStatus[i])
		}
	}
	if !strings.Contains(out.String(), "throttle request 5: status 429") {
		t.Fatalf("expected throttling at request 5, got:\n%s", out.String())
	}
}
