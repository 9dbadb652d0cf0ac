package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"yukmarkazi/internal/ads"
	"yukmarkazi/internal/models"
	"yukmarkazi/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDay = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.DriverProfile{},
		&models.Cargo{},
		&models.CargoReview{},
		&models.Advertisement{},
		&models.ContactMessage{},
	))

	return db, routes.SetupRouter(db, ads.FixedClock{Date: testDay})
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, phone, email string) {
	t.Helper()
	w := doJSON(r, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":        "Test User",
		"phoneNumber": phone,
		"email":       email,
		"password":    "secret123",
	})
	require.Equal(t, 201, w.Code, w.Body.String())
}

func login(t *testing.T, r *gin.Engine, phone string) string {
	t.Helper()
	w := doJSON(r, "POST", "/api/auth/login", "", map[string]string{
		"phoneNumber": phone,
		"password":    "secret123",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func staffLogin(t *testing.T, db *gorm.DB, r *gin.Engine, phone, email string) string {
	t.Helper()
	register(t, r, phone, email)
	require.NoError(t, db.Model(&models.User{}).
		Where("phone_number = ?", phone).
		Update("is_staff", true).Error)
	return login(t, r, phone)
}

func TestRegisterAndLogin(t *testing.T) {
	_, r := setupTest(t)

	register(t, r, "+998901234567", "user@example.com")
	token := login(t, r, "+998901234567")
	assert.NotEmpty(t, token)

	w := doJSON(r, "POST", "/api/auth/login", "", map[string]string{
		"phoneNumber": "+998901234567",
		"password":    "wrongpass",
	})
	assert.Equal(t, 401, w.Code)
}

func TestRegisterRejectsBadPhone(t *testing.T) {
	_, r := setupTest(t)

	w := doJSON(r, "POST", "/api/auth/register", "", map[string]interface{}{
		"name":        "Test User",
		"phoneNumber": "12345",
		"email":       "user@example.com",
		"password":    "secret123",
	})
	assert.Equal(t, 400, w.Code)
}

func TestRegisterCreatesDriverProfile(t *testing.T) {
	db, r := setupTest(t)

	register(t, r, "+998901234567", "user@example.com")

	var count int64
	db.Model(&models.DriverProfile{}).Count(&count)
	assert.Equal(t, int64(1), count)

	token := login(t, r, "+998901234567")
	w := doJSON(r, "GET", "/api/profile", token, nil)
	assert.Equal(t, 200, w.Code)
}

func TestCargoRequiresAuth(t *testing.T) {
	_, r := setupTest(t)

	w := doJSON(r, "GET", "/api/cargos", "", nil)
	assert.Equal(t, 401, w.Code)
}

func createCargo(t *testing.T, r *gin.Engine, token string) uint {
	t.Helper()
	w := doJSON(r, "POST", "/api/cargos", token, map[string]interface{}{
		"name":        "Cement",
		"weight":      2000,
		"origin":      "Tashkent",
		"destination": "Samarkand",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var cargo models.Cargo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cargo))
	return cargo.ID
}

func TestCargoClaimFlow(t *testing.T) {
	_, r := setupTest(t)

	register(t, r, "+998901111111", "customer@example.com")
	register(t, r, "+998902222222", "driver@example.com")
	register(t, r, "+998903333333", "driver2@example.com")

	customerToken := login(t, r, "+998901111111")
	driverToken := login(t, r, "+998902222222")
	secondDriverToken := login(t, r, "+998903333333")

	cargoID := createCargo(t, r, customerToken)

	// Driver claims the cargo; status flips to EnRoute.
	w := doJSON(r, "PUT", fmt.Sprintf("/api/cargos/%d", cargoID), driverToken, map[string]interface{}{})
	require.Equal(t, 200, w.Code, w.Body.String())

	var claimed models.Cargo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &claimed))
	assert.Equal(t, models.CargoStatusEnRoute, claimed.Status)
	require.NotNil(t, claimed.DriverID)

	// A second driver gets neither the claim nor the ownership branch.
	w = doJSON(r, "PUT", fmt.Sprintf("/api/cargos/%d", cargoID), secondDriverToken, map[string]interface{}{})
	assert.Equal(t, 403, w.Code)
}

func TestCargoClaimConflict(t *testing.T) {
	db, r := setupTest(t)

	register(t, r, "+998901111111", "customer@example.com")
	register(t, r, "+998902222222", "driver@example.com")
	register(t, r, "+998903333333", "rival@example.com")

	customerToken := login(t, r, "+998901111111")
	driverToken := login(t, r, "+998902222222")

	cargoID := createCargo(t, r, customerToken)

	var rivalUser models.User
	require.NoError(t, db.Where("phone_number = ?", "+998903333333").First(&rivalUser).Error)
	var rival models.DriverProfile
	require.NoError(t, db.Where("user_id = ?", rivalUser.ID).First(&rival).Error)

	// The rival's claim lands between the handler's load of the cargo and
	// its guarded assignment write.
	fired := false
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("rival_claim", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "cargos" {
			return
		}
		fired = true
		db.Exec("UPDATE cargos SET driver_id = ?, status = ? WHERE id = ?",
			rival.ID, models.CargoStatusEnRoute, cargoID)
	}))
	defer db.Callback().Query().Remove("rival_claim")

	w := doJSON(r, "PUT", fmt.Sprintf("/api/cargos/%d", cargoID), driverToken, map[string]interface{}{})
	assert.Equal(t, 409, w.Code, w.Body.String())

	// The rival keeps the cargo.
	var stored models.Cargo
	require.NoError(t, db.First(&stored, cargoID).Error)
	require.NotNil(t, stored.DriverID)
	assert.Equal(t, rival.ID, *stored.DriverID)
}

func TestCargoOwnerEdit(t *testing.T) {
	_, r := setupTest(t)

	register(t, r, "+998901111111", "customer@example.com")
	register(t, r, "+998902222222", "driver@example.com")

	customerToken := login(t, r, "+998901111111")
	driverToken := login(t, r, "+998902222222")

	cargoID := createCargo(t, r, customerToken)

	// Claim first so the customer's PUT lands in the ownership branch.
	w := doJSON(r, "PUT", fmt.Sprintf("/api/cargos/%d", cargoID), driverToken, map[string]interface{}{})
	require.Equal(t, 200, w.Code)

	w = doJSON(r, "PUT", fmt.Sprintf("/api/cargos/%d", cargoID), customerToken, map[string]interface{}{
		"name":  "Bricks",
		"price": 1500000,
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var edited models.Cargo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &edited))
	assert.Equal(t, "Bricks", edited.Name)

	// Unknown fields are rejected, not silently applied.
	w = doJSON(r, "PUT", fmt.Sprintf("/api/cargos/%d", cargoID), customerToken, map[string]interface{}{
		"driverId": 99,
	})
	assert.Equal(t, 400, w.Code)

	// A non-owner cannot edit a claimed cargo.
	w = doJSON(r, "PUT", fmt.Sprintf("/api/cargos/%d", cargoID), driverToken, map[string]interface{}{
		"name": "Stolen",
	})
	assert.Equal(t, 403, w.Code)
}

func TestCargoDeleteOwnerOnly(t *testing.T) {
	_, r := setupTest(t)

	register(t, r, "+998901111111", "customer@example.com")
	register(t, r, "+998902222222", "other@example.com")

	customerToken := login(t, r, "+998901111111")
	otherToken := login(t, r, "+998902222222")

	cargoID := createCargo(t, r, customerToken)

	w := doJSON(r, "DELETE", fmt.Sprintf("/api/cargos/%d", cargoID), otherToken, nil)
	assert.Equal(t, 403, w.Code)

	w = doJSON(r, "DELETE", fmt.Sprintf("/api/cargos/%d", cargoID), customerToken, nil)
	assert.Equal(t, 204, w.Code)

	w = doJSON(r, "DELETE", fmt.Sprintf("/api/cargos/%d", cargoID), customerToken, nil)
	assert.Equal(t, 404, w.Code)
}

func TestReviewValidation(t *testing.T) {
	_, r := setupTest(t)

	register(t, r, "+998901111111", "customer@example.com")
	token := login(t, r, "+998901111111")
	cargoID := createCargo(t, r, token)

	w := doJSON(r, "POST", "/api/reviews", token, map[string]interface{}{
		"cargoId": cargoID,
		"comment": "Great driver",
		"stars":   6,
	})
	assert.Equal(t, 400, w.Code)

	w = doJSON(r, "POST", "/api/reviews", token, map[string]interface{}{
		"cargoId": cargoID,
		"comment": "Great driver",
		"stars":   5,
	})
	assert.Equal(t, 201, w.Code, w.Body.String())

	w = doJSON(r, "POST", "/api/reviews", token, map[string]interface{}{
		"cargoId": 9999,
		"comment": "Ghost cargo",
		"stars":   1,
	})
	assert.Equal(t, 404, w.Code)
}

func TestContactMessageIntake(t *testing.T) {
	db, r := setupTest(t)

	w := doJSON(r, "POST", "/api/contact", "", map[string]string{
		"name":        "Aziz",
		"email":       "aziz@example.com",
		"phoneNumber": "+998901234567",
		"subject":     "Question",
		"message":     "How do I post a cargo?",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var message models.ContactMessage
	require.NoError(t, db.First(&message).Error)
	assert.Equal(t, models.ContactStatusNew, message.Status)

	staffToken := staffLogin(t, db, r, "+998909999999", "admin@example.com")

	w = doJSON(r, "PUT", fmt.Sprintf("/api/admin/contact-messages/%d", message.ID), staffToken, map[string]string{
		"status": "Read",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	require.NoError(t, db.First(&message, message.ID).Error)
	assert.Equal(t, models.ContactStatusRead, message.Status)
}

func TestAdRequestDefaults(t *testing.T) {
	db, r := setupTest(t)

	w := doJSON(r, "POST", "/api/ad-request", "", map[string]interface{}{
		"companyName":  "Yuk Trans",
		"adType":       "Native",
		"durationDays": 7,
		"phoneNumber":  "+998901234567",
		"description":  "Cargo transport services",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var ad models.Advertisement
	require.NoError(t, db.First(&ad).Error)
	assert.Equal(t, models.AdStatusUnderReview, ad.Status)
	assert.False(t, ad.IsActive)
	assert.Nil(t, ad.StartDate)

	w = doJSON(r, "POST", "/api/ad-request", "", map[string]interface{}{
		"companyName":  "Yuk Trans",
		"adType":       "Banner",
		"durationDays": 7,
		"phoneNumber":  "+998901234567",
		"description":  "Bad type",
	})
	assert.Equal(t, 400, w.Code)

	w = doJSON(r, "POST", "/api/ad-request", "", map[string]interface{}{
		"companyName":  "Yuk Trans",
		"adType":       "Native",
		"durationDays": 5,
		"phoneNumber":  "+998901234567",
		"description":  "Bad duration",
	})
	assert.Equal(t, 400, w.Code)
}

func TestAdvertisementApprovalFlow(t *testing.T) {
	db, r := setupTest(t)

	w := doJSON(r, "POST", "/api/ad-request", "", map[string]interface{}{
		"companyName":  "Yuk Trans",
		"adType":       "Native",
		"durationDays": 7,
		"phoneNumber":  "+998901234567",
		"description":  "Cargo transport services",
	})
	require.Equal(t, 201, w.Code)

	var ad models.Advertisement
	require.NoError(t, db.First(&ad).Error)

	staffToken := staffLogin(t, db, r, "+998909999999", "admin@example.com")

	// Activate and approve; the window is scheduled from the fixed clock.
	w = doJSON(r, "PUT", fmt.Sprintf("/api/admin/advertisements/%d", ad.ID), staffToken, map[string]interface{}{
		"isActive": true,
		"status":   "Approved",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	require.NoError(t, db.First(&ad, ad.ID).Error)
	assert.Equal(t, models.AdStatusApproved, ad.Status)
	require.NotNil(t, ad.StartDate)
	assert.True(t, ad.StartDate.Equal(testDay), "start date should be the approval day")
	assert.True(t, ad.EndDate.Equal(testDay.AddDate(0, 0, 7)), "end date should be start + duration")

	// Still hidden from the public listing: no media file yet.
	w = doJSON(r, "GET", "/api/advertisements", "", nil)
	require.Equal(t, 200, w.Code)
	var listing []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing, 0)

	require.NoError(t, db.Model(&ad).Update("media_file", "advertisements/banner.png").Error)

	w = doJSON(r, "GET", "/api/advertisements", "", nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing, 1)
	assert.Equal(t, "Yuk Trans", listing[0]["companyName"])

	w = doJSON(r, "GET", "/api/advertisements/Native", "", nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing, 1)

	w = doJSON(r, "GET", "/api/advertisements/Boost", "", nil)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing, 0)
}

func TestAdvertisementApprovalConflict(t *testing.T) {
	db, r := setupTest(t)

	w := doJSON(r, "POST", "/api/ad-request", "", map[string]interface{}{
		"companyName":  "Yuk Trans",
		"adType":       "Native",
		"durationDays": 7,
		"phoneNumber":  "+998901234567",
		"description":  "Cargo transport services",
	})
	require.Equal(t, 201, w.Code)

	var ad models.Advertisement
	require.NoError(t, db.First(&ad).Error)

	staffToken := staffLogin(t, db, r, "+998909999999", "admin@example.com")

	// A second admin's approval lands between this request's load of the ad
	// and its scheduling write. The window it set must survive.
	rivalDay := testDay.AddDate(0, 0, 1)
	rivalEnd := rivalDay.AddDate(0, 0, 7)
	fired := false
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("rival_approval", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "advertisements" {
			return
		}
		fired = true
		db.Exec("UPDATE advertisements SET status = ?, is_active = ?, start_date = ?, end_date = ? WHERE id = ?",
			models.AdStatusApproved, true, rivalDay, rivalEnd, ad.ID)
	}))
	defer db.Callback().Query().Remove("rival_approval")

	w = doJSON(r, "PUT", fmt.Sprintf("/api/admin/advertisements/%d", ad.ID), staffToken, map[string]interface{}{
		"isActive": true,
		"status":   "Approved",
	})
	assert.Equal(t, 409, w.Code, w.Body.String())

	require.NoError(t, db.First(&ad, ad.ID).Error)
	require.NotNil(t, ad.StartDate)
	assert.True(t, ad.StartDate.Equal(rivalDay), "the first admin's window must stand")
	assert.True(t, ad.EndDate.Equal(rivalEnd))
}

func TestAdminBulkActions(t *testing.T) {
	db, r := setupTest(t)

	for i := 0; i < 2; i++ {
		w := doJSON(r, "POST", "/api/ad-request", "", map[string]interface{}{
			"companyName":  fmt.Sprintf("Company %d", i),
			"adType":       "Boost",
			"durationDays": 3,
			"phoneNumber":  "+998901234567",
			"description":  "Ad",
		})
		require.Equal(t, 201, w.Code)
	}

	staffToken := staffLogin(t, db, r, "+998909999999", "admin@example.com")

	var ids []uint
	require.NoError(t, db.Model(&models.Advertisement{}).Pluck("id", &ids).Error)
	require.Len(t, ids, 2)

	w := doJSON(r, "POST", "/api/admin/advertisements/bulk", staffToken, map[string]interface{}{
		"action": "approve",
		"ids":    append(ids, 9999),
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var resp struct {
		Updated int                      `json:"updated"`
		Failed  []map[string]interface{} `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Updated)
	assert.Len(t, resp.Failed, 1)

	var count int64
	db.Model(&models.Advertisement{}).Where("status = ?", models.AdStatusApproved).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestAdminRequiresStaff(t *testing.T) {
	_, r := setupTest(t)

	register(t, r, "+998901111111", "user@example.com")
	token := login(t, r, "+998901111111")

	w := doJSON(r, "GET", "/api/admin/advertisements", token, nil)
	assert.Equal(t, 403, w.Code)

	w = doJSON(r, "GET", "/api/admin/advertisements", "", nil)
	assert.Equal(t, 401, w.Code)
}
