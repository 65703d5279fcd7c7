package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/asharma-dev/lpg-booking-backend/internal/database"
	"github.com/asharma-dev/lpg-booking-backend/internal/middleware"
	"github.com/asharma-dev/lpg-booking-backend/internal/services"
	"github.com/asharma-dev/lpg-booking-backend/internal/store"
	"github.com/asharma-dev/lpg-booking-backend/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return store.New(db)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	s := newTestStore(t)
	hub := services.NewHub()
	go hub.Run()

	r := gin.New()
	api := r.Group("/api")

	api.GET("/users", GetUser(s))
	api.GET("/users/check", CheckUser(s))
	api.POST("/users", CreateUser(s))

	api.GET("/bookings", GetBookings(s))
	api.GET("/bookings/single", GetBooking(s))
	api.POST("/bookings", CreateBooking(s))
	api.PUT("/bookings/:id", UpdateBooking(s))

	api.GET("/payments", QueryPayments(s))
	api.POST("/payments", CreatePayment(s))
	api.PUT("/payments/:id", UpdatePayment(s))

	api.POST("/feedback", CreateFeedback(s))
	api.POST("/deliveryIssues", CreateDeliveryIssue(s))
	api.POST("/sosAlerts", CreateSOSAlert(s, hub))
	api.POST("/sms", SendSMS())

	api.POST("/admin/login", AdminLogin())
	admin := api.Group("/admin", middleware.AdminAuth())
	admin.GET("/users", ListUsers(s))
	admin.GET("/bookings", ListBookings(s))
	admin.GET("/sosAlerts", ListSOSAlerts(s))
	api.GET("/view-database", middleware.AdminAuth(), ViewDatabase(s))

	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func validUserBody() map[string]interface{} {
	return map[string]interface{}{
		"consumerNo": "C1",
		"name":       "Asha Verma",
		"email":      "asha@example.com",
		"marital":    "Married",
		"mobile":     "9876543210",
		"gender":     "Female",
		"related":    "Spouse",
		"pin":        "560001",
	}
}

func validBookingBody() map[string]interface{} {
	return map[string]interface{}{
		"id":           "B1",
		"consumerNo":   "C1",
		"mobile":       "9876543210",
		"cylinderType": "14.2kg",
		"quantity":     2,
		"deliveryDate": "2024-01-01",
	}
}

func TestCreateAndFetchUser(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/api/users", validUserBody())
	if w.Code != 201 {
		t.Fatalf("create user: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, "GET", "/api/users?consumerNo=C1&mobile=9876543210", nil)
	if w.Code != 200 {
		t.Fatalf("fetch user: %d", w.Code)
	}
	user, ok := decode(t, w)["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("no user in response: %s", w.Body.String())
	}
	if user["name"] != "Asha Verma" || user["pin"] != "560001" {
		t.Errorf("round trip mismatch: %v", user)
	}
	if user["status"] != "Approved" {
		t.Errorf("status = %v, want default Approved", user["status"])
	}
}

func TestDuplicateUserConflict(t *testing.T) {
	r := setupRouter(t)

	if w := doJSON(r, "POST", "/api/users", validUserBody()); w.Code != 201 {
		t.Fatalf("first create: %d", w.Code)
	}
	if w := doJSON(r, "POST", "/api/users", validUserBody()); w.Code != 409 {
		t.Errorf("duplicate create: %d, want 409", w.Code)
	}
}

func TestCheckUserNoMatchIsNull(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "GET", "/api/users/check?email=x@example.com&mobile=0000000000", nil)
	if w.Code != 200 {
		t.Fatalf("check: %d", w.Code)
	}
	if v, present := decode(t, w)["user"]; !present || v != nil {
		t.Errorf("user = %v, want explicit null", v)
	}
}

func TestBookingScenario(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/api/bookings", validBookingBody())
	if w.Code != 201 {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, "GET", "/api/bookings?consumerNo=C1", nil)
	if w.Code != 200 {
		t.Fatalf("list bookings: %d", w.Code)
	}
	bookings := decode(t, w)["bookings"].([]interface{})
	if len(bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(bookings))
	}
	b := bookings[0].(map[string]interface{})
	if b["status"] != "Pending" {
		t.Errorf("status = %v, want Pending", b["status"])
	}
	if b["quantity"].(float64) != 2 {
		t.Errorf("quantity = %v", b["quantity"])
	}

	w = doJSON(r, "GET", "/api/bookings/single?bookingId=B1&consumerNo=C1", nil)
	booking := decode(t, w)["booking"].(map[string]interface{})
	if booking["id"] != "B1" {
		t.Errorf("single lookup = %v", booking)
	}
}

func TestBookingValidationRejected(t *testing.T) {
	r := setupRouter(t)

	body := validBookingBody()
	body["quantity"] = 9
	if w := doJSON(r, "POST", "/api/bookings", body); w.Code != 400 {
		t.Errorf("quantity 9: %d, want 400", w.Code)
	}

	body = validBookingBody()
	body["cylinderType"] = "25kg"
	if w := doJSON(r, "POST", "/api/bookings", body); w.Code != 400 {
		t.Errorf("cylinderType 25kg: %d, want 400", w.Code)
	}

	body = validBookingBody()
	body["mobile"] = "12345"
	if w := doJSON(r, "POST", "/api/bookings", body); w.Code != 400 {
		t.Errorf("short mobile: %d, want 400", w.Code)
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	r := setupRouter(t)

	if w := doJSON(r, "POST", "/api/bookings", validBookingBody()); w.Code != 201 {
		t.Fatal("create failed")
	}

	w := doJSON(r, "PUT", "/api/bookings/B1", map[string]interface{}{"status": "Confirmed"})
	if w.Code != 200 {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	if decode(t, w)["message"] != "Booking updated" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	w = doJSON(r, "PUT", "/api/bookings/missing", map[string]interface{}{"status": "Confirmed"})
	if w.Code != 404 {
		t.Errorf("update of missing id: %d, want 404", w.Code)
	}

	w = doJSON(r, "PUT", "/api/bookings/B1", map[string]interface{}{"status": "Shipped"})
	if w.Code != 400 {
		t.Errorf("bogus status accepted: %d, want 400", w.Code)
	}
}

func TestPaymentsQueryAndCreate(t *testing.T) {
	r := setupRouter(t)

	// Query before any payment exists, via the legacy POST body form.
	w := doJSON(r, "POST", "/api/payments", map[string]interface{}{"bookingIds": []string{"B1"}})
	if w.Code != 200 {
		t.Fatalf("query: %d %s", w.Code, w.Body.String())
	}
	if payments := decode(t, w)["payments"].([]interface{}); len(payments) != 0 {
		t.Fatalf("got %d payments, want 0", len(payments))
	}

	w = doJSON(r, "POST", "/api/payments", map[string]interface{}{
		"id":          "P1",
		"bookingId":   "B1",
		"amount":      950.0,
		"method":      "UPI",
		"paymentDate": "2024-01-02",
	})
	if w.Code != 201 {
		t.Fatalf("create payment: %d %s", w.Code, w.Body.String())
	}

	// The explicit query route sees the new payment.
	w = doJSON(r, "GET", "/api/payments?bookingIds=B1,B2", nil)
	payments := decode(t, w)["payments"].([]interface{})
	if len(payments) != 1 {
		t.Fatalf("got %d payments, want 1", len(payments))
	}
	p := payments[0].(map[string]interface{})
	if p["reference"] != "N/A" || p["status"] != "Completed" {
		t.Errorf("defaults not applied: %v", p)
	}
}

func TestRecordsAndSMS(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/api/feedback", map[string]interface{}{
		"id": "F1", "consumerNo": "C1", "category": "Service Quality", "comment": "Good",
	})
	if w.Code != 201 {
		t.Errorf("feedback: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, "POST", "/api/deliveryIssues", map[string]interface{}{
		"id": "D1", "bookingId": "B1", "consumerNo": "C1", "description": "Leaking valve",
	})
	if w.Code != 201 {
		t.Errorf("delivery issue: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, "POST", "/api/sosAlerts", map[string]interface{}{
		"id": "S1", "consumerNo": "C1", "mobile": "9876543210",
	})
	if w.Code != 201 {
		t.Errorf("sos alert: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, "POST", "/api/sms", map[string]interface{}{
		"mobile": "9876543210", "message": "Your cylinder is on the way",
	})
	if w.Code != 200 || decode(t, w)["message"] != "SMS sent" {
		t.Errorf("sms: %d %s", w.Code, w.Body.String())
	}
}

func TestAdminLoginAndDatabaseView(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, "POST", "/api/admin/login", map[string]interface{}{
		"username": "admin", "password": "wrong",
	})
	if w.Code != 200 {
		t.Fatalf("bad login must stay 200: %d", w.Code)
	}
	if decode(t, w)["success"] != false {
		t.Error("bad credentials reported success")
	}

	w = doJSON(r, "POST", "/api/admin/login", map[string]interface{}{
		"username": "admin", "password": "admin123",
	})
	body := decode(t, w)
	if body["success"] != true {
		t.Fatalf("login failed: %s", w.Body.String())
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("no token issued")
	}

	if w := doJSON(r, "GET", "/api/view-database", nil); w.Code != 401 {
		t.Errorf("unauthenticated view: %d, want 401", w.Code)
	}

	w = doJSON(r, "GET", "/api/view-database", nil, "Authorization", "Bearer "+token)
	if w.Code != 200 {
		t.Fatalf("view: %d %s", w.Code, w.Body.String())
	}
	db, ok := decode(t, w)["database"].(map[string]interface{})
	if !ok {
		t.Fatalf("no database key: %s", w.Body.String())
	}
	for _, name := range []string{"users", "bookings", "payments", "feedback", "deliveryIssues", "sosAlerts"} {
		if _, present := db[name]; !present {
			t.Errorf("collection %q missing", name)
		}
	}

	w = doJSON(r, "GET", "/api/admin/users", nil, "Authorization", "Bearer "+token)
	if w.Code != 200 {
		t.Errorf("admin users listing: %d", w.Code)
	}
}

func TestSOSAlertReachesAdminFeed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	s := newTestStore(t)
	hub := services.NewHub()
	go hub.Run()

	r := gin.New()
	r.POST("/api/sosAlerts", CreateSOSAlert(s, hub))
	r.GET("/api/admin/feed", middleware.AdminAuth(), AdminFeed(hub))

	srv := httptest.NewServer(r)
	defer srv.Close()

	token, err := utils.GenerateAdminToken("admin")
	if err != nil {
		t.Fatal(err)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/admin/feed?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial feed: %v", err)
	}
	defer conn.Close()

	// Registration with the hub is asynchronous; wait for it before posting.
	deadline := time.Now().Add(2 * time.Second)
	for hub.GetConnectedClients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("feed client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	body := bytes.NewBufferString(`{"id":"S1","consumerNo":"C1","mobile":"9876543210"}`)
	resp, err := http.Post(srv.URL+"/api/sosAlerts", "application/json", body)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 201 {
		t.Fatalf("create SOS alert: %d", resp.StatusCode)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read feed event: %v", err)
	}

	var event struct {
		Type string                 `json:"type"`
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(message, &event); err != nil {
		t.Fatalf("decode feed event %q: %v", message, err)
	}
	if event.Type != "sos_alert" {
		t.Errorf("event type = %q, want sos_alert", event.Type)
	}
	if event.Data["id"] != "S1" || event.Data["consumerNo"] != "C1" {
		t.Errorf("event data = %v", event.Data)
	}
	if event.Data["status"] != "Sent" {
		t.Errorf("event status = %v, want default Sent", event.Data["status"])
	}
}

func TestExportDatabaseWritesLocalSnapshot(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXPORT_DIR", dir)
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	if err := services.InitExport(); err != nil {
		t.Fatalf("init export: %v", err)
	}

	s := newTestStore(t)
	r := gin.New()
	r.POST("/api/bookings", CreateBooking(s))
	r.POST("/api/admin/export", ExportDatabase(s))

	if w := doJSON(r, "POST", "/api/bookings", validBookingBody()); w.Code != 201 {
		t.Fatalf("create booking: %d %s", w.Code, w.Body.String())
	}

	w := doJSON(r, "POST", "/api/admin/export", nil)
	if w.Code != 200 {
		t.Fatalf("export: %d %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	location, _ := body["location"].(string)
	if location == "" {
		t.Fatalf("no snapshot location in %s", w.Body.String())
	}
	if !strings.HasPrefix(location, dir) {
		t.Errorf("snapshot %q not under export dir %q", location, dir)
	}
	if filepath.Ext(location) != ".json" {
		t.Errorf("snapshot %q is not a .json file", location)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var snapshot struct {
		Database map[string]json.RawMessage `json:"database"`
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	for _, name := range []string{"users", "bookings", "payments", "feedback", "deliveryIssues", "sosAlerts"} {
		if _, ok := snapshot.Database[name]; !ok {
			t.Errorf("collection %q missing from snapshot", name)
		}
	}

	var bookings []map[string]interface{}
	if err := json.Unmarshal(snapshot.Database["bookings"], &bookings); err != nil {
		t.Fatal(err)
	}
	if len(bookings) != 1 || bookings[0]["id"] != "B1" {
		t.Errorf("snapshot bookings = %v, want the B1 booking", bookings)
	}
}
