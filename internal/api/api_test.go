package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/media-code-now/launchcheck-pro/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ChecklistTemplate{},
		&models.ChecklistItemTemplate{},
		&models.ChecklistInstance{},
		&models.ChecklistItemInstance{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func testRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	return NewRouter(db, nil), db
}

// seedTemplate inserts an active template with n items.
func seedTemplate(t *testing.T, db *gorm.DB, name, typ string, n int) *models.ChecklistTemplate {
	t.Helper()
	tmpl := models.ChecklistTemplate{
		ID:       models.NewID(),
		Name:     name,
		Type:     typ,
		IsActive: true,
	}
	for i := 0; i < n; i++ {
		tmpl.Items = append(tmpl.Items, models.ChecklistItemTemplate{
			ID:       models.NewID(),
			Category: "Technical",
			Title:    fmt.Sprintf("%s task %d", name, i+1),
			Priority: models.PriorityMedium,
			Order:    i + 1,
			IsActive: true,
		})
	}
	if err := db.Create(&tmpl).Error; err != nil {
		t.Fatalf("create template %q: %v", name, err)
	}
	return &tmpl
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func TestHealthz(t *testing.T) {
	router, _ := testRouter(t)
	w, body := doJSON(t, router, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
}

func TestCreateProject(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 3)

	w, body := doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{
		"name":       "Acme Relaunch",
		"clientName": "ACME",
		"launchDate": "2026-10-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if body["success"] != true {
		t.Error("success = false, want true")
	}

	project, ok := body["project"].(map[string]interface{})
	if !ok {
		t.Fatalf("project field missing in %v", body)
	}
	if project["name"] != "Acme Relaunch" {
		t.Errorf("project name = %v, want Acme Relaunch", project["name"])
	}
	if project["totalTasks"] != float64(3) {
		t.Errorf("totalTasks = %v, want 3", project["totalTasks"])
	}
	if project["progress"] != float64(0) {
		t.Errorf("progress = %v, want 0", project["progress"])
	}
}

func TestCreateProject_MissingName(t *testing.T) {
	router, _ := testRouter(t)
	w, body := doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["success"] != false {
		t.Error("success = true, want false")
	}
	if body["error"] == nil {
		t.Error("error field missing")
	}
}

func TestCreateProject_BadLaunchDate(t *testing.T) {
	router, _ := testRouter(t)
	w, _ := doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{
		"name":       "Site",
		"launchDate": "next tuesday",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListProjects(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 2)
	doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "One"})
	doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Two"})

	w, body := doJSON(t, router, http.MethodGet, "/api/projects", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	projects, ok := body["projects"].([]interface{})
	if !ok || len(projects) != 2 {
		t.Fatalf("projects = %v, want 2 entries", body["projects"])
	}
	first := projects[0].(map[string]interface{})
	if first["totalTasks"] != float64(2) {
		t.Errorf("totalTasks = %v, want 2", first["totalTasks"])
	}
}

func TestGetProject(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 2)
	_, created := doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Site"})
	id := created["project"].(map[string]interface{})["id"].(string)

	w, body := doJSON(t, router, http.MethodGet, "/api/projects/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := body["data"].(map[string]interface{})
	instances, ok := data["checklistInstances"].([]interface{})
	if !ok || len(instances) != 1 {
		t.Fatalf("checklistInstances = %v, want 1 entry", data["checklistInstances"])
	}
	inst := instances[0].(map[string]interface{})
	items := inst["items"].([]interface{})
	if len(items) != 2 {
		t.Errorf("item count = %d, want 2", len(items))
	}
}

func TestGetProject_NotFound(t *testing.T) {
	router, _ := testRouter(t)
	w, body := doJSON(t, router, http.MethodGet, "/api/projects/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["success"] != false {
		t.Error("success = true, want false")
	}
}

func TestUpdateProject(t *testing.T) {
	router, _ := testRouter(t)
	_, created := doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Site"})
	id := created["project"].(map[string]interface{})["id"].(string)

	w, body := doJSON(t, router, http.MethodPut, "/api/projects/"+id, map[string]string{
		"status": models.ProjectLive,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	data := body["data"].(map[string]interface{})
	if data["status"] != models.ProjectLive {
		t.Errorf("status = %v, want %q", data["status"], models.ProjectLive)
	}
}

func TestUpdateProject_InvalidStatus(t *testing.T) {
	router, _ := testRouter(t)
	_, created := doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Site"})
	id := created["project"].(map[string]interface{})["id"].(string)

	w, _ := doJSON(t, router, http.MethodPut, "/api/projects/"+id, map[string]string{"status": "SHIPPED"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteProject(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 2)
	_, created := doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Site"})
	id := created["project"].(map[string]interface{})["id"].(string)

	w, _ := doJSON(t, router, http.MethodDelete, "/api/projects/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", w.Code)
	}

	w, _ = doJSON(t, router, http.MethodGet, "/api/projects/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
}

func TestGetItem(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 1)
	doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Site"})

	var item models.ChecklistItemInstance
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}

	w, body := doJSON(t, router, http.MethodGet, "/api/checklist-items/"+item.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := body["data"].(map[string]interface{})
	if data["status"] != models.StatusNotStarted {
		t.Errorf("status = %v, want %q", data["status"], models.StatusNotStarted)
	}
	if data["templateItem"] == nil {
		t.Error("templateItem not included")
	}
}

func TestUpdateItem_Toggle(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 1)
	doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Site"})

	var item models.ChecklistItemInstance
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}

	w, body := doJSON(t, router, http.MethodPut, "/api/checklist-items/"+item.ID, map[string]string{
		"status": models.StatusDone,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	data := body["data"].(map[string]interface{})
	if data["status"] != models.StatusDone {
		t.Errorf("status = %v, want %q", data["status"], models.StatusDone)
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "marked as done") {
		t.Errorf("message = %q, want to mention marked as done", msg)
	}
}

func TestUpdateItem_EmptyBody(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 1)
	doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Site"})

	var item models.ChecklistItemInstance
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}

	w, _ := doJSON(t, router, http.MethodPut, "/api/checklist-items/"+item.ID, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateItem_InvalidStatus(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 1)
	doJSON(t, router, http.MethodPost, "/api/projects/create", map[string]string{"name": "Site"})

	var item models.ChecklistItemInstance
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load item: %v", err)
	}

	w, _ := doJSON(t, router, http.MethodPut, "/api/checklist-items/"+item.ID, map[string]string{
		"status": "FINISHED",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	router, _ := testRouter(t)
	w, _ := doJSON(t, router, http.MethodPut, "/api/checklist-items/nope", map[string]string{
		"status": models.StatusDone,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestListTemplates(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 3)
	seedTemplate(t, db, "Post", models.TemplatePostLaunch, 2)

	w, body := doJSON(t, router, http.MethodGet, "/api/templates", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	summary := body["summary"].(map[string]interface{})
	if summary["totalTemplates"] != float64(2) {
		t.Errorf("totalTemplates = %v, want 2", summary["totalTemplates"])
	}
	if summary["totalItems"] != float64(5) {
		t.Errorf("totalItems = %v, want 5", summary["totalItems"])
	}
}

func TestCreateTemplate_Conflict(t *testing.T) {
	router, _ := testRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/templates/create", map[string]string{
		"name": "QA", "type": "PRE_LAUNCH",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("first create status = %d, want 200", w.Code)
	}

	w, body := doJSON(t, router, http.MethodPost, "/api/templates/create", map[string]string{
		"name": "QA", "type": "PRE_LAUNCH",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate create status = %d, want 409", w.Code)
	}
	errMsg, _ := body["error"].(string)
	if !strings.Contains(errMsg, "already exists") {
		t.Errorf("error = %q, want to mention already exists", errMsg)
	}
}

func TestCreateSampleProject(t *testing.T) {
	router, db := testRouter(t)
	seedTemplate(t, db, "Pre", models.TemplatePreLaunch, 2)

	w, body := doJSON(t, router, http.MethodPost, "/api/sample-project", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	id, _ := body["projectId"].(string)
	if id == "" {
		t.Fatal("projectId missing")
	}

	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		t.Fatalf("load sample project: %v", err)
	}
	if project.Name != "Sample Website Launch" || project.ClientName != "ACME Corp" {
		t.Errorf("sample project = %q / %q", project.Name, project.ClientName)
	}
	if project.LaunchDate == nil {
		t.Error("sample project has no launch date")
	}
}

func TestStart_NilDB(t *testing.T) {
	err := Start(context.Background(), StartOpts{DB: nil})
	if err == nil {
		t.Fatal("expected error for nil db")
	}
	if !strings.Contains(err.Error(), "db is required") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "db is required")
	}
}
