package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkaraoglu/ir-scheduler/internal/model"
	appointmentService "github.com/hkaraoglu/ir-scheduler/internal/service/appointment"
	catalogService "github.com/hkaraoglu/ir-scheduler/internal/service/catalog"
)

type stubProcedureRepo struct {
	procs []*model.ProcedureType
}

func (r *stubProcedureRepo) InsertIfAbsent(_ context.Context, proc *model.ProcedureType) (bool, error) {
	proc.ID = int64(len(r.procs) + 1)
	cp := *proc
	r.procs = append(r.procs, &cp)
	return true, nil
}

func (r *stubProcedureRepo) ListActive(_ context.Context) ([]model.ProcedureType, error) {
	var out []model.ProcedureType
	for _, p := range r.procs {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProcedureRepo) GetByName(_ context.Context, name string) (*model.ProcedureType, error) {
	for _, p := range r.procs {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubProcedureRepo) GetByID(_ context.Context, id int64) (*model.ProcedureType, error) {
	for _, p := range r.procs {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

type stubAppointmentRepo struct {
	rows   map[int64]*model.Appointment
	nextID int64
}

func (r *stubAppointmentRepo) Create(_ context.Context, apt *model.Appointment) error {
	r.nextID++
	apt.ID = r.nextID
	cp := *apt
	r.rows[apt.ID] = &cp
	return nil
}

func (r *stubAppointmentRepo) Get(_ context.Context, id int64) (*model.Appointment, error) {
	apt, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *apt
	return &cp, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, apt *model.Appointment) (bool, error) {
	if _, ok := r.rows[apt.ID]; !ok {
		return false, nil
	}
	cp := *apt
	r.rows[apt.ID] = &cp
	return true, nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}

func (r *stubAppointmentRepo) ListForDay(_ context.Context, day string) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, apt := range r.rows {
		if apt.ScheduledDay == day {
			cp := *apt
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubAppointmentRepo) SearchByPatient(_ context.Context, fragment string) ([]*model.Appointment, error) {
	needle := strings.ToLower(fragment)
	var out []*model.Appointment
	for _, apt := range r.rows {
		if strings.Contains(strings.ToLower(apt.PatientName), needle) {
			cp := *apt
			out = append(out, &cp)
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	procRepo := &stubProcedureRepo{}
	catalogSvc := catalogService.NewService(procRepo)
	require.NoError(t, catalogSvc.Seed(context.Background(), []model.SeedProcedure{{
		Name:               "Biliyer Drenaj (PTK)",
		Category:           model.CategoryFluoroscopy,
		DefaultDurationMin: 45,
		Checklist:          model.Checklist{"INR/Plt", "Antibiyotik"},
	}}))

	repo := &stubAppointmentRepo{rows: make(map[int64]*model.Appointment)}
	svc := appointmentService.NewService(repo, catalogSvc, 30)

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createBody() map[string]interface{} {
	return map[string]interface{}{
		"patient_name":      "Ali Veli",
		"procedure_type_id": 1,
		"scheduled_day":     "2026-09-15",
		"checked_items":     []string{"INR/Plt"},
	}
}

func TestCreateAndGetAppointment(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/appointments", createBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Status string            `json:"status"`
		Data   model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "success", created.Status)
	assert.Equal(t, 45, created.Data.DurationMin)
	assert.Equal(t, model.ChecklistState{"INR/Plt": true, "Antibiyotik": false}, created.Data.ChecklistState)

	w = doRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/appointments/%d", created.Data.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetMissingAppointmentReturns404(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/appointments/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateValidationReturns400(t *testing.T) {
	engine := newTestRouter(t)

	body := createBody()
	body["patient_name"] = "  "
	w := doRequest(t, engine, http.MethodPost, "/api/v1/appointments", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Field   string `json:"field"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "patient name required", resp.Message)
	assert.Equal(t, "patient_name", resp.Field)
}

func TestDeleteReportsWhetherRowExisted(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/appointments", createBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data model.Appointment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/v1/appointments/%d", created.Data.ID)

	w = doRequest(t, engine, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)

	w = doRequest(t, engine, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":false`)
}

func TestDayScheduleEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/appointments", createBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/appointments/day?date=2026-09-15", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data model.DaySchedule `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-15", resp.Data.Day)
	assert.Len(t, resp.Data.Appointments, 1)
	assert.Equal(t, 45, resp.Data.TotalDurationMin)
}

func TestDayScheduleRejectsBadDate(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodGet, "/api/v1/appointments/day?date=2024-13-40", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	engine := newTestRouter(t)

	w := doRequest(t, engine, http.MethodPost, "/api/v1/appointments", createBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/appointments/search?q=ali", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ali Veli")

	// Empty fragment is opt-out.
	w = doRequest(t, engine, http.MethodGet, "/api/v1/appointments/search", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Ali Veli")
}
