package integration

import (
	"net/http"
	"testing"
)

func TestDashboardFlow_MonthlyReports(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "dashboard@test.com", "password123")

	app.createExpense(t, token,
		`{"date":"2024-03-02","description":"Rent","amount":200000,"category":"Housing","payment_method":"Pix","emotion":"Calm","essential":true}`)
	app.createExpense(t, token,
		`{"date":"2024-03-15","description":"Dinner","amount":"R$ 100,00","category":"Food","payment_method":"Credit card","emotion":"Anxious"}`)
	mustStatus(t, app.request("POST", "/api/v1/incomes",
		`{"date":"2024-03-05","description":"Salary","amount":500000,"income_type":"Salary"}`, token), http.StatusCreated)

	rec := app.request("GET", "/api/v1/dashboard/summary?period=2024-03", "", token)
	mustStatus(t, rec, http.StatusOK)
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total"] != float64(210000) || summary["essential"] != float64(200000) || summary["card_total"] != float64(10000) {
		t.Errorf("unexpected summary %v", summary)
	}
	if n := len(summary["by_category"].([]interface{})); n != 2 {
		t.Errorf("expected 2 categories, got %d", n)
	}

	rec = app.request("GET", "/api/v1/dashboard/indicators?month=3&year=2024", "", token)
	mustStatus(t, rec, http.StatusOK)
	ind := parseJSON(t, rec)["indicators"].(map[string]interface{})
	if ind["balance"] != float64(290000) || ind["positive"] != true {
		t.Errorf("unexpected indicators %v", ind)
	}

	// 42% spent leaves a 58% surplus.
	rec = app.request("GET", "/api/v1/dashboard/health?period=2024-03", "", token)
	health := parseJSON(t, rec)["health"].(map[string]interface{})
	if health["status"] != "excellent" {
		t.Errorf("expected excellent health, got %v", health)
	}

	rec = app.request("GET", "/api/v1/dashboard/annual?year=2024", "", token)
	mustStatus(t, rec, http.StatusOK)
	annual := parseJSON(t, rec)["annual"].(map[string]interface{})
	months := annual["months"].([]interface{})
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	march := months[2].(map[string]interface{})
	if march["income"] != float64(500000) || march["expenses"] != float64(210000) {
		t.Errorf("unexpected March overview %v", march)
	}
	if annual["balance"] != float64(290000) {
		t.Errorf("unexpected annual balance %v", annual["balance"])
	}
}

func TestDashboardFlow_HealthFallsBackToDeclaredIncome(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "declared@test.com", "password123")

	rec := app.request("GET", "/api/v1/dashboard/health?period=2024-05", "", token)
	if status := parseJSON(t, rec)["health"].(map[string]interface{})["status"]; status != "no_data" {
		t.Errorf("expected no_data without income, got %v", status)
	}

	mustStatus(t, app.request("PUT", "/api/v1/monthly-income",
		`{"period":"2024-05","amount":"R$ 1.000,00"}`, token), http.StatusOK)
	app.createExpense(t, token,
		`{"date":"2024-05-20","description":"Trip","amount":120000,"category":"Travel","payment_method":"Pix","emotion":"Excited"}`)

	rec = app.request("GET", "/api/v1/dashboard/health?period=2024-05", "", token)
	health := parseJSON(t, rec)["health"].(map[string]interface{})
	if health["status"] != "critical" || health["income"] != float64(100000) {
		t.Errorf("expected critical health on declared income, got %v", health)
	}
}

func TestDashboardFlow_InvalidPeriods(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "periods@test.com", "password123")

	for _, path := range []string{
		"/api/v1/dashboard/summary?period=2024-13",
		"/api/v1/dashboard/health?month=0&year=2024",
		"/api/v1/dashboard/annual?year=-1",
	} {
		rec := app.request("GET", path, "", token)
		mustStatus(t, rec, http.StatusBadRequest)
		if code := errorCode(t, rec); code != "INVALID_PERIOD" {
			t.Errorf("%s: expected INVALID_PERIOD, got %v", path, code)
		}
	}
}

func TestPlanningFlow_GoalsAndReflections(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "planning@test.com", "password123")

	rec := app.request("POST", "/api/v1/goals",
		`{"name":"Emergency fund","target_amount":"R$ 10.000,00","achieved_amount":250000}`, token)
	mustStatus(t, rec, http.StatusCreated)
	goal := parseJSON(t, rec)["goal"].(map[string]interface{})
	if goal["progress"] != float64(25) {
		t.Errorf("expected 25%% progress, got %v", goal["progress"])
	}
	goalID := goal["id"].(string)

	rec = app.request("PUT", "/api/v1/goals/"+goalID, `{"achieved_amount":1000000}`, token)
	mustStatus(t, rec, http.StatusOK)
	if p := parseJSON(t, rec)["goal"].(map[string]interface{})["progress"]; p != float64(100) {
		t.Errorf("expected 100%% progress, got %v", p)
	}

	// Saving a reflection twice for one month updates it in place.
	mustStatus(t, app.request("PUT", "/api/v1/reflections",
		`{"period":"2024-04","money_feeling":"tight","emotional_score":4}`, token), http.StatusOK)
	rec = app.request("PUT", "/api/v1/reflections",
		`{"period":"2024-04","money_feeling":"better","emotional_score":7}`, token)
	mustStatus(t, rec, http.StatusOK)
	reflectionID := parseJSON(t, rec)["reflection"].(map[string]interface{})["id"].(string)

	rec = app.request("GET", "/api/v1/reflections", "", token)
	reflections := parseJSON(t, rec)["reflections"].([]interface{})
	if len(reflections) != 1 {
		t.Fatalf("expected 1 reflection, got %d", len(reflections))
	}
	if reflections[0].(map[string]interface{})["money_feeling"] != "better" {
		t.Errorf("expected the updated reflection, got %v", reflections[0])
	}

	rec = app.request("GET", "/api/v1/reflections/2024-04", "", token)
	mustStatus(t, rec, http.StatusOK)

	mustStatus(t, app.request("DELETE", "/api/v1/reflections/id/"+reflectionID, "", token), http.StatusOK)
	rec = app.request("GET", "/api/v1/reflections/2024-04", "", token)
	mustStatus(t, rec, http.StatusNotFound)
	if code := errorCode(t, rec); code != "REFLECTION_NOT_FOUND" {
		t.Errorf("expected REFLECTION_NOT_FOUND, got %v", code)
	}

	// A new reflection for the deleted month can be saved again.
	mustStatus(t, app.request("PUT", "/api/v1/reflections",
		`{"period":"2024-04","money_feeling":"fresh start"}`, token), http.StatusOK)
}

func TestPlanningFlow_MonthlyIncome(t *testing.T) {
	app := setupApp(t)
	token, _, _ := app.registerUser(t, "monthly@test.com", "password123")

	// An undeclared month reads as zero.
	rec := app.request("GET", "/api/v1/monthly-income?period=2024-01", "", token)
	mustStatus(t, rec, http.StatusOK)
	if amount := parseJSON(t, rec)["monthly_income"].(map[string]interface{})["amount"]; amount != float64(0) {
		t.Errorf("expected zero amount, got %v", amount)
	}

	for _, body := range []string{
		`{"period":"2024-01","amount":300000}`,
		`{"period":"2024-01","amount":350000,"description":"raise"}`,
		`{"period":"2024-02","amount":350000}`,
	} {
		mustStatus(t, app.request("PUT", "/api/v1/monthly-income", body, token), http.StatusOK)
	}

	rec = app.request("GET", "/api/v1/monthly-income?period=2024-01", "", token)
	mustStatus(t, rec, http.StatusOK)
	if amount := parseJSON(t, rec)["monthly_income"].(map[string]interface{})["amount"]; amount != float64(350000) {
		t.Errorf("expected the upserted amount, got %v", amount)
	}

	rec = app.request("GET", "/api/v1/monthly-income/year?year=2024", "", token)
	if n := len(parseJSON(t, rec)["monthly_incomes"].([]interface{})); n != 2 {
		t.Errorf("expected 2 months declared, got %d", n)
	}
}
