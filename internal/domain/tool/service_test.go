package tool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeToolRepo struct {
	tools        map[string]*Tool
	created      []*Tool
	statsUpdates map[string]Stats
	getErr       error
	updateErr    error
	listFilter   ListFilter
}

func newFakeToolRepo(tools ...*Tool) *fakeToolRepo {
	repo := &fakeToolRepo{
		tools:        make(map[string]*Tool),
		statsUpdates: make(map[string]Stats),
	}
	for _, t := range tools {
		repo.tools[t.ID] = t
	}
	return repo
}

func (r *fakeToolRepo) Create(_ context.Context, t *Tool) error {
	r.created = append(r.created, t)
	r.tools[t.ID] = t
	return nil
}

func (r *fakeToolRepo) GetByID(_ context.Context, id string) (*Tool, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	t, ok := r.tools[id]
	if !ok {
		return nil, ErrToolNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeToolRepo) List(_ context.Context, filter ListFilter) ([]Tool, int64, error) {
	r.listFilter = filter
	out := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (r *fakeToolRepo) UpdateStats(_ context.Context, id string, stats Stats) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.statsUpdates[id] = stats
	if t, ok := r.tools[id]; ok {
		t.Stats = stats
	}
	return nil
}

type fakeExecutionRepo struct {
	records   []*ExecutionRecord
	count     int64
	createErr error
}

func (r *fakeExecutionRepo) Create(_ context.Context, rec *ExecutionRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeExecutionRepo) CountSince(_ context.Context, _, _ string, _ time.Time) (int64, error) {
	return r.count, nil
}

type fakeProjectRepo struct {
	owned bool
	err   error
}

func (r *fakeProjectRepo) ExistsForCreator(_ context.Context, _, _ string) (bool, error) {
	return r.owned, r.err
}

type fakeInvoker struct {
	output map[string]any
	err    error
	calls  int
}

func (i *fakeInvoker) Invoke(_ context.Context, _, _ string, _ map[string]any) (map[string]any, error) {
	i.calls++
	return i.output, i.err
}

func activeTool() *Tool {
	return &Tool{
		ID:          "tool-1",
		ProjectID:   "proj-1",
		CreatorID:   "user-1",
		ToolName:    "Sermon Outliner",
		APIEndpoint: "https://tools.example.com/outline",
		RateLimit:   100,
		Status:      StatusActive,
		Stats:       Stats{TotalExecutions: 0, SuccessRate: 1.0},
	}
}

func newTestService(tools *fakeToolRepo, execs *fakeExecutionRepo, projects *fakeProjectRepo, invoker *fakeInvoker) *Service {
	svc := NewService(tools, execs, projects, invoker, zerolog.Nop())
	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	calls := 0
	// Each reading advances 100ms so elapsed times are deterministic.
	svc.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 100 * time.Millisecond)
	}
	svc.limiter.now = svc.now
	return svc
}

func TestService_Register(t *testing.T) {
	registration := Registration{
		ProjectID:        "proj-1",
		ToolName:         "Sermon Outliner",
		RateLimit:        50,
		RequiresApproval: true,
	}

	t.Run("unowned project is rejected", func(t *testing.T) {
		tools := newFakeToolRepo()
		svc := newTestService(tools, &fakeExecutionRepo{}, &fakeProjectRepo{owned: false}, &fakeInvoker{})

		_, err := svc.Register(context.Background(), registration, "user-2")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Errorf("Register() = %v, want ErrProjectNotFound", err)
		}
		if len(tools.created) != 0 {
			t.Errorf("created %d tools after rejected registration, want 0", len(tools.created))
		}
	})

	t.Run("approval required starts pending", func(t *testing.T) {
		tools := newFakeToolRepo()
		svc := newTestService(tools, &fakeExecutionRepo{}, &fakeProjectRepo{owned: true}, &fakeInvoker{})

		created, err := svc.Register(context.Background(), registration, "user-1")
		if err != nil {
			t.Fatalf("Register() = %v, want nil", err)
		}
		if created.Status != StatusPendingApproval {
			t.Errorf("Status = %v, want pending_approval", created.Status)
		}
		if created.ID == "" {
			t.Error("Register() must assign an id")
		}
		if created.Stats.TotalExecutions != 0 || created.Stats.SuccessRate != 1.0 {
			t.Errorf("seed stats = %+v, want zero executions at rate 1.0", created.Stats)
		}
	})

	t.Run("no approval starts active", func(t *testing.T) {
		reg := registration
		reg.RequiresApproval = false
		svc := newTestService(newFakeToolRepo(), &fakeExecutionRepo{}, &fakeProjectRepo{owned: true}, &fakeInvoker{})

		created, err := svc.Register(context.Background(), reg, "user-1")
		if err != nil {
			t.Fatalf("Register() = %v, want nil", err)
		}
		if created.Status != StatusActive {
			t.Errorf("Status = %v, want active", created.Status)
		}
	})
}

func TestService_Execute_Success(t *testing.T) {
	tools := newFakeToolRepo(activeTool())
	execs := &fakeExecutionRepo{}
	invoker := &fakeInvoker{output: map[string]any{"outline": "three points"}}
	svc := newTestService(tools, execs, &fakeProjectRepo{}, invoker)

	result := svc.Execute(context.Background(), "tool-1", "user-9", map[string]any{"passage": "John 3:16"})

	if !result.Success {
		t.Fatalf("Execute() failed: %s", result.ErrorMessage)
	}
	if result.OutputData["outline"] != "three points" {
		t.Errorf("OutputData = %v, want invoker output", result.OutputData)
	}
	if result.ExecutionTimeMS <= 0 {
		t.Errorf("ExecutionTimeMS = %v, want positive", result.ExecutionTimeMS)
	}

	stats, ok := tools.statsUpdates["tool-1"]
	if !ok {
		t.Fatal("success must fold into tool stats")
	}
	if stats.TotalExecutions != 1 || stats.SuccessRate != 1.0 {
		t.Errorf("stats after success = %+v, want one execution at rate 1.0", stats)
	}

	if len(execs.records) != 1 {
		t.Fatalf("wrote %d execution records, want 1", len(execs.records))
	}
	rec := execs.records[0]
	if rec.ToolID != "tool-1" || rec.UserID != "user-9" || !rec.Success {
		t.Errorf("execution record = %+v, want successful tool-1/user-9 row", rec)
	}
}

func TestService_Execute_ToolNotFound(t *testing.T) {
	tools := newFakeToolRepo()
	execs := &fakeExecutionRepo{}
	svc := newTestService(tools, execs, &fakeProjectRepo{}, &fakeInvoker{})

	result := svc.Execute(context.Background(), "missing", "user-9", nil)

	if result.Success {
		t.Fatal("Execute() must fail for an unknown tool")
	}
	if !errors.Is(result.Err, ErrToolNotFound) {
		t.Errorf("Err = %v, want ErrToolNotFound", result.Err)
	}
	if len(execs.records) != 0 {
		t.Errorf("failed executions must not write execution rows, got %d", len(execs.records))
	}
}

func TestService_Execute_InactiveTool(t *testing.T) {
	pending := activeTool()
	pending.Status = StatusPendingApproval
	tools := newFakeToolRepo(pending)
	invoker := &fakeInvoker{}
	svc := newTestService(tools, &fakeExecutionRepo{}, &fakeProjectRepo{}, invoker)

	result := svc.Execute(context.Background(), "tool-1", "user-9", nil)

	if result.Success {
		t.Fatal("Execute() must fail for a non-active tool")
	}
	if !errors.Is(result.Err, ErrToolNotActive) {
		t.Errorf("Err = %v, want ErrToolNotActive", result.Err)
	}
	if invoker.calls != 0 {
		t.Errorf("invoker called %d times for inactive tool, want 0", invoker.calls)
	}
}

func TestService_Execute_RateLimited(t *testing.T) {
	tools := newFakeToolRepo(activeTool())
	execs := &fakeExecutionRepo{count: 100}
	invoker := &fakeInvoker{}
	svc := newTestService(tools, execs, &fakeProjectRepo{}, invoker)

	result := svc.Execute(context.Background(), "tool-1", "user-9", nil)

	if result.Success {
		t.Fatal("Execute() must fail at the hourly quota")
	}
	if !errors.Is(result.Err, ErrRateLimited) {
		t.Errorf("Err = %v, want ErrRateLimited", result.Err)
	}
	if invoker.calls != 0 {
		t.Errorf("invoker called %d times for limited user, want 0", invoker.calls)
	}
	if len(execs.records) != 0 {
		t.Errorf("rejected executions must not write execution rows, got %d", len(execs.records))
	}
}

func TestService_Execute_InvocationFailure(t *testing.T) {
	tools := newFakeToolRepo(activeTool())
	execs := &fakeExecutionRepo{}
	invoker := &fakeInvoker{err: errors.New("503 from tool endpoint")}
	svc := newTestService(tools, execs, &fakeProjectRepo{}, invoker)

	result := svc.Execute(context.Background(), "tool-1", "user-9", map[string]any{"q": "x"})

	if result.Success {
		t.Fatal("Execute() must report endpoint failures")
	}
	if result.ErrorMessage != "503 from tool endpoint" {
		t.Errorf("ErrorMessage = %q, want the endpoint error", result.ErrorMessage)
	}
	if len(result.OutputData) != 0 {
		t.Errorf("OutputData = %v, want empty map", result.OutputData)
	}

	stats, ok := tools.statsUpdates["tool-1"]
	if !ok {
		t.Fatal("failures must still fold into tool stats")
	}
	if stats.TotalExecutions != 1 || stats.SuccessRate != 0 {
		t.Errorf("stats after failure = %+v, want one execution at rate 0", stats)
	}

	// Failed calls stay out of the execution log, so they never count
	// against the user's hourly quota.
	if len(execs.records) != 0 {
		t.Errorf("wrote %d execution records for a failure, want 0", len(execs.records))
	}
}

func TestService_Execute_SurvivesStatsWriteFailure(t *testing.T) {
	tools := newFakeToolRepo(activeTool())
	tools.updateErr = errors.New("deadlock detected")
	execs := &fakeExecutionRepo{}
	invoker := &fakeInvoker{output: map[string]any{"ok": true}}
	svc := newTestService(tools, execs, &fakeProjectRepo{}, invoker)

	result := svc.Execute(context.Background(), "tool-1", "user-9", nil)

	if !result.Success {
		t.Errorf("stats write failure must not fail the execution: %s", result.ErrorMessage)
	}
}

func TestService_List_Defaults(t *testing.T) {
	tools := newFakeToolRepo(activeTool())
	svc := newTestService(tools, &fakeExecutionRepo{}, &fakeProjectRepo{}, &fakeInvoker{})

	tests := []struct {
		name        string
		filter      ListFilter
		wantStatus  Status
		wantPage    int
		wantPerPage int
	}{
		{name: "zero filter", filter: ListFilter{}, wantStatus: StatusActive, wantPage: 1, wantPerPage: 20},
		{name: "negative page", filter: ListFilter{Page: -2, PerPage: 10}, wantStatus: StatusActive, wantPage: 1, wantPerPage: 10},
		{name: "per page clamped", filter: ListFilter{Page: 2, PerPage: 500}, wantStatus: StatusActive, wantPage: 2, wantPerPage: 100},
		{name: "explicit status kept", filter: ListFilter{Status: StatusPendingApproval}, wantStatus: StatusPendingApproval, wantPage: 1, wantPerPage: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.List(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("List() = %v, want nil", err)
			}
			if tools.listFilter.Status != tt.wantStatus {
				t.Errorf("queried status = %v, want %v", tools.listFilter.Status, tt.wantStatus)
			}
			if result.Page != tt.wantPage || result.PerPage != tt.wantPerPage {
				t.Errorf("page/per_page = %d/%d, want %d/%d", result.Page, result.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}
