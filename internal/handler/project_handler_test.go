package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"callsheet/internal/model"
	"callsheet/internal/service"
	"callsheet/internal/store"
)

type nopSnapshots struct{}

func (nopSnapshots) Save(ctx context.Context, p *model.ProductionProject) error { return nil }
func (nopSnapshots) Delete(ctx context.Context, id string) error               { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(routingKey string, payload any) error { return nil }

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*gin.Engine, *service.ProjectService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewProjectStore()
	projects := service.NewProjectService(st, nopSnapshots{}, nopPublisher{}, zap.NewNop()).
		WithClock(func() time.Time { return testNow })
	stats := service.NewStatsService(st, nil, zap.NewNop()).
		WithClock(func() time.Time { return testNow })

	projectHandler := NewProjectHandler(projects)
	statsHandler := NewStatsHandler(stats)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", 1) })
	r.POST("/projects", projectHandler.CreateProject)
	r.GET("/projects/:id", projectHandler.GetProject)
	r.POST("/projects/:id/expenses", projectHandler.AddExpense)
	r.PUT("/projects/:id/expenses/:expenseID", projectHandler.UpdateExpense)
	r.GET("/projects/:id/stats", statsHandler.GetStats)
	r.GET("/projects/:id/milestones", projectHandler.ListMilestones)

	return r, projects
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProjectLifecycleOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/projects", `{"title":"Harbor Lights"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body)
	}
	var created model.ProductionProject
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	w = doJSON(t, r, http.MethodPost, "/projects/"+created.ID+"/expenses", `{"amount":400,"status":"approved","category":"travel"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add expense status = %d, body = %s", w.Code, w.Body)
	}

	w = doJSON(t, r, http.MethodGet, "/projects/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var got model.ProductionProject
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Budget.Expenses) != 1 {
		t.Fatalf("expenses = %+v", got.Budget.Expenses)
	}
}

func TestGetStatsOverHTTP(t *testing.T) {
	r, projects := newTestRouter(t)
	p, err := projects.CreateProject(context.Background(), 1, "Harbor Lights", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := projects.SetTotalBudget(context.Background(), p.ID, 1000, "EUR"); err != nil {
		t.Fatal(err)
	}
	if _, err := projects.AddExpense(context.Background(), p.ID, model.Expense{Amount: 250, Status: model.ExpenseStatusApproved}); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodGet, "/projects/"+p.ID+"/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d, body = %s", w.Code, w.Body)
	}
	var stats model.ProductionStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Budget.PercentageUsed != 25 {
		t.Errorf("PercentageUsed = %v, want 25", stats.Budget.PercentageUsed)
	}

	w = doJSON(t, r, http.MethodGet, "/projects/ghost/stats", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing project status = %d, want 404", w.Code)
	}
}

func TestListMilestones_ResolvesAssignees(t *testing.T) {
	r, projects := newTestRouter(t)
	p, _ := projects.CreateProject(context.Background(), 1, "Harbor Lights", "")
	member, _ := projects.AddTeamMember(context.Background(), p.ID, model.TeamMember{Name: "Ana", Department: "Camera"})
	if _, err := projects.AddMilestone(context.Background(), p.ID, model.Milestone{
		Title:       "Picture lock",
		DueDate:     testNow.AddDate(0, 1, 0),
		AssigneeIDs: []string{member.ID, "ghost"},
	}); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodGet, "/projects/"+p.ID+"/milestones", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Milestones []struct {
			AssigneeNames []string `json:"assignee_names"`
		} `json:"milestones"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Milestones) != 1 {
		t.Fatalf("milestones = %+v", resp.Milestones)
	}
	names := resp.Milestones[0].AssigneeNames
	if len(names) != 2 || names[0] != "Ana" || names[1] != "unknown:ghost" {
		t.Errorf("assignee names = %v", names)
	}
}
