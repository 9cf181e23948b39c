package integration

import (
	"net/http"
	"testing"

	"cofre/internal/models"
	"cofre/internal/services"
)

func TestAdminFlow_AccessControl(t *testing.T) {
	app := setupApp(t)
	adminToken, _, _ := app.registerUser(t, adminEmail, "password123")
	userToken, _, userID := app.registerUser(t, "member@test.com", "password123")

	rec := app.request("GET", "/api/v1/admin/users", "", userToken)
	mustStatus(t, rec, http.StatusForbidden)

	rec = app.request("GET", "/api/v1/admin/users", "", adminToken)
	mustStatus(t, rec, http.StatusOK)
	listing := parseJSON(t, rec)
	stats := listing["stats"].(map[string]interface{})
	if stats["total"] != float64(2) || stats["admins"] != float64(1) {
		t.Errorf("unexpected stats %v", stats)
	}

	// Promotion takes effect on the member's existing token.
	rec = app.request("PATCH", "/api/v1/admin/users/"+userID+"/role", `{"role":"admin"}`, adminToken)
	mustStatus(t, rec, http.StatusOK)
	rec = app.request("GET", "/api/v1/admin/dashboard", "", userToken)
	mustStatus(t, rec, http.StatusOK)

	rec = app.request("PATCH", "/api/v1/admin/users/"+userID+"/role", `{"role":"user"}`, adminToken)
	mustStatus(t, rec, http.StatusOK)
	rec = app.request("GET", "/api/v1/admin/dashboard", "", userToken)
	mustStatus(t, rec, http.StatusForbidden)
}

func TestAdminFlow_ToggleActive(t *testing.T) {
	app := setupApp(t)
	adminToken, _, adminID := app.registerUser(t, adminEmail, "password123")
	userToken, _, userID := app.registerUser(t, "toggle@test.com", "password123")

	rec := app.request("PATCH", "/api/v1/admin/users/"+adminID+"/toggle-active", "", adminToken)
	mustStatus(t, rec, http.StatusBadRequest)
	if code := errorCode(t, rec); code != "SELF_ACTION_FORBIDDEN" {
		t.Errorf("expected SELF_ACTION_FORBIDDEN, got %v", code)
	}

	rec = app.request("PATCH", "/api/v1/admin/users/"+userID+"/toggle-active", "", adminToken)
	mustStatus(t, rec, http.StatusOK)
	if active := parseJSON(t, rec)["user"].(map[string]interface{})["is_active"]; active != false {
		t.Errorf("expected user deactivated, got %v", active)
	}

	// A token issued before deactivation stops working at once.
	rec = app.request("GET", "/api/v1/profile", "", userToken)
	mustStatus(t, rec, http.StatusForbidden)
	if code := errorCode(t, rec); code != "ACCOUNT_DISABLED" {
		t.Errorf("expected ACCOUNT_DISABLED for the old token, got %v", code)
	}

	rec = app.request("POST", "/api/v1/auth/login", `{"email":"toggle@test.com","password":"password123"}`, "")
	mustStatus(t, rec, http.StatusForbidden)
	if code := errorCode(t, rec); code != "ACCOUNT_DISABLED" {
		t.Errorf("expected ACCOUNT_DISABLED, got %v", code)
	}

	rec = app.request("PATCH", "/api/v1/admin/users/"+userID+"/toggle-active", "", adminToken)
	mustStatus(t, rec, http.StatusOK)
	app.loginUser(t, "toggle@test.com", "password123")
	mustStatus(t, app.request("GET", "/api/v1/profile", "", userToken), http.StatusOK)

	var logs int64
	app.DB.Model(&models.AuditLog{}).Where("action = ?", services.AuditToggleActive).Count(&logs)
	if logs != 2 {
		t.Errorf("expected 2 audit entries, got %d", logs)
	}
}

func TestAdminFlow_DeleteUserCascades(t *testing.T) {
	app := setupApp(t)
	adminToken, _, _ := app.registerUser(t, adminEmail, "password123")
	userToken, _, userID := app.registerUser(t, "gone@test.com", "password123")

	app.createExpense(t, userToken,
		`{"date":"2024-02-10","description":"Course","amount":60000,"category":"Education","payment_method":"Credit card","emotion":"Motivated","installments":6}`)
	mustStatus(t, app.request("PUT", "/api/v1/monthly-income", `{"period":"2024-02","amount":100000}`, userToken), http.StatusOK)

	rec := app.request("DELETE", "/api/v1/admin/users/"+userID, "", adminToken)
	mustStatus(t, rec, http.StatusOK)

	var expenses, incomes int64
	app.DB.Model(&models.Expense{}).Where("user_id = ?", userID).Count(&expenses)
	app.DB.Model(&models.MonthlyIncome{}).Unscoped().Where("user_id = ?", userID).Count(&incomes)
	if expenses != 0 || incomes != 0 {
		t.Errorf("expected owned rows removed, got %d expenses and %d monthly incomes", expenses, incomes)
	}

	rec = app.request("DELETE", "/api/v1/admin/users/"+userID, "", adminToken)
	mustStatus(t, rec, http.StatusNotFound)
	if code := errorCode(t, rec); code != "USER_NOT_FOUND" {
		t.Errorf("expected USER_NOT_FOUND, got %v", code)
	}
}
