package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"clinicdesk/controllers"
	"clinicdesk/models"
	"clinicdesk/routes"
	"clinicdesk/state"
	"clinicdesk/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "clinic.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Doctor{}, &models.Patient{}, &models.Appointment{}))

	st := store.New(db)
	snapshot := state.New()
	require.NoError(t, snapshot.Load(st))
	controllers.Setup(st, snapshot)

	app := fiber.New()
	routes.SetupDoctorRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupDashboardRoutes(app)
	routes.SetupBackupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestDoctorLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/doctors/", `{"id":"d1","name":"Dr. Adams","specialty":"cardiology","active":true}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Duplicate id is rejected.
	resp = doJSON(t, app, "POST", "/doctors/", `{"id":"d1","name":"Dr. Clone"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/doctors/d1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	doctor := decode[models.Doctor](t, resp)
	assert.Equal(t, "Dr. Adams", doctor.Name)

	// Put is an unconditional upsert on the same id.
	resp = doJSON(t, app, "PUT", "/doctors/d1", `{"name":"Dr. Brown","specialty":"dermatology"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, "GET", "/doctors/d1", "")
	doctor = decode[models.Doctor](t, resp)
	assert.Equal(t, "Dr. Brown", doctor.Name)

	resp = doJSON(t, app, "DELETE", "/doctors/d1", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, "GET", "/doctors/d1", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDoctorGeneratedID(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/doctors/", `{"name":"Dr. Adams"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	doctor := decode[models.Doctor](t, resp)
	assert.NotEmpty(t, doctor.ID)
}

func TestPatientDuplicatePhone(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/patients/", `{"id":"p1","name":"Ana","phone":"555-0101","age":34}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/patients/", `{"id":"p2","name":"Ben","phone":"555-0101","age":41}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// The failed add must not leak into the snapshot.
	resp = doJSON(t, app, "GET", "/patients/", "")
	patients := decode[[]models.Patient](t, resp)
	assert.Len(t, patients, 1)
}

func TestPatientUpdateToTakenPhone(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/patients/", `{"id":"p1","name":"Ana","phone":"555-0101"}`)
	doJSON(t, app, "POST", "/patients/", `{"id":"p2","name":"Ben","phone":"555-0202"}`)

	resp := doJSON(t, app, "PUT", "/patients/p2", `{"name":"Ben","phone":"555-0101"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/patients/p2", "")
	patient := decode[models.Patient](t, resp)
	assert.Equal(t, "555-0202", patient.Phone)
}

func TestAppointmentStatusValidation(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/appointments/", `{"id":"a1","date":"2026-09-01","time":"09:00","status":"parked"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/appointments/", `{"id":"a1","date":"2026-09-01","time":"09:00"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	appointment := decode[models.Appointment](t, resp)
	assert.Equal(t, models.StatusPending, appointment.Status)
}

func TestAppointmentIndexFilters(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/appointments/", `{"id":"a1","date":"2026-09-01","time":"09:00","doctor_id":"d1","patient_id":"p1"}`)
	doJSON(t, app, "POST", "/appointments/", `{"id":"a2","date":"2026-09-02","time":"09:00","doctor_id":"d2","patient_id":"p1"}`)

	resp := doJSON(t, app, "GET", "/appointments/?doctor_id=d1", "")
	assert.Len(t, decode[[]models.Appointment](t, resp), 1)

	resp = doJSON(t, app, "GET", "/appointments/?patient_id=p1", "")
	assert.Len(t, decode[[]models.Appointment](t, resp), 2)

	resp = doJSON(t, app, "GET", "/appointments/?date=2026-09-02", "")
	assert.Len(t, decode[[]models.Appointment](t, resp), 1)
}

func TestBackupRoundTripOverHTTP(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/doctors/", `{"id":"d1","name":"Dr. Adams"}`)
	doJSON(t, app, "POST", "/patients/", `{"id":"p1","name":"Ana","phone":"555-0101"}`)
	doJSON(t, app, "POST", "/appointments/", `{"id":"a1","date":"2026-09-01","time":"09:00"}`)

	resp := doJSON(t, app, "GET", "/backup/export", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	bundle := decode[models.Backup](t, resp)
	assert.Equal(t, models.BackupVersion, bundle.Version)

	raw, err := json.Marshal(bundle)
	require.NoError(t, err)
	resp = doJSON(t, app, "POST", "/backup/import", string(raw))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/doctors/", "")
	assert.Len(t, decode[[]models.Doctor](t, resp), 1)
	resp = doJSON(t, app, "GET", "/patients/", "")
	assert.Len(t, decode[[]models.Patient](t, resp), 1)
	resp = doJSON(t, app, "GET", "/appointments/", "")
	assert.Len(t, decode[[]models.Appointment](t, resp), 1)
}

func TestBackupMirrorMissing(t *testing.T) {
	app := newTestApp(t)

	// No Redis client is configured in tests, so no mirror exists.
	resp := doJSON(t, app, "GET", "/backup/mirror", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBackupImportRejectsUnknownVersion(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/backup/import", `{"doctors":[],"patients":[],"appointments":[],"version":99}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSaveState(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/doctors/", `{"id":"d1","name":"Dr. Adams"}`)
	doJSON(t, app, "POST", "/patients/", `{"id":"p1","name":"Ana","phone":"555-0101"}`)

	resp := doJSON(t, app, "POST", "/state/save", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	counts := decode[map[string]int](t, resp)
	assert.Equal(t, 1, counts["doctors"])
	assert.Equal(t, 1, counts["patients"])
	assert.Equal(t, 0, counts["appointments"])
}

func TestDashboardOverview(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/doctors/", `{"id":"d1","name":"Dr. Adams","active":true}`)
	doJSON(t, app, "POST", "/patients/", `{"id":"p1","name":"Ana","phone":"555-0101"}`)

	resp := doJSON(t, app, "GET", "/dashboard/overview", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	overview := decode[state.Overview](t, resp)
	assert.Equal(t, 1, overview.TotalDoctors)
	assert.Equal(t, 1, overview.ActiveDoctors)
	assert.Equal(t, 1, overview.TotalPatients)
	assert.Equal(t, 0, overview.TotalAppointments)
}

func TestDashboardCharts(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/appointments/", `{"id":"a1","date":"2026-09-01","time":"09:00","status":"confirmed"}`)

	resp := doJSON(t, app, "GET", "/dashboard/charts", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	charts := decode[map[string][]state.ChartPoint](t, resp)
	assert.Len(t, charts["weekly"], 7)
	assert.Len(t, charts["statuses"], 4)
}

func TestSettingsEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/settings/", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	settings := decode[models.Settings](t, resp)
	assert.Equal(t, "light", settings.Theme)

	resp = doJSON(t, app, "PUT", "/settings/", `{"theme":"neon","notifications_enabled":true}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/settings/", `{"theme":"dark","notifications_enabled":false}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, "GET", "/settings/", "")
	settings = decode[models.Settings](t, resp)
	assert.Equal(t, "dark", settings.Theme)
	assert.False(t, settings.NotificationsEnabled)
}

func TestNotificationsEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/notifications/", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]models.Notification](t, resp))

	n := controllers.State.AddNotification("test reminder")
	resp = doJSON(t, app, "GET", "/notifications/", "")
	notifications := decode[[]models.Notification](t, resp)
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].Read)

	resp = doJSON(t, app, "PATCH", "/notifications/"+n.ID+"/read", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, "PATCH", "/notifications/missing/read", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
