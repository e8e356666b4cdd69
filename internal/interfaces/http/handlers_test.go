package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/internal/application/simulation"
	"github.com/jhoicas/comex-api/internal/infrastructure/pdf"
	"github.com/jhoicas/comex-api/internal/infrastructure/xmlmemo"
	apphttp "github.com/jhoicas/comex-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/comex-api/pkg/jwt"
)

const airBody = `{
	"product": "Sensor industrial",
	"quantity": 100,
	"gross_weight_kg": 10,
	"volume_m3": 1,
	"unit_price_usd": "10",
	"freight_usd": "100",
	"insurance_percent": 1,
	"exchange_rate": "5.30",
	"rates": {"ii": 10, "ipi": 5, "pis": 2.1, "cofins": 9.65, "icms": 18},
	"expenses": [{"kind": "siscomex", "amount": "154.23"}, {"kind": "broker", "amount": "845.77"}]
}`

const drawbackBody = `{
	"act_number": "20260001234",
	"modality": "restitution",
	"authorized_quantity": 1000,
	"authorized_value": 50000,
	"start_date": "2026-01-01",
	"end_date": "2026-12-31",
	"current_date": "2026-10-31",
	"imported_quantity": 400,
	"imported_value": 20000,
	"exported_quantity": 200,
	"taxes": [
		{"id": "II", "amount": 100}, {"id": "IPI", "amount": 50}, {"id": "PIS", "amount": 20},
		{"id": "COFINS", "amount": 20}, {"id": "ICMS", "amount": 10}
	]
}`

func newAPI(secret string, rateLimit int) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Simulation:         simulation.NewUseCase(nil),
		PDF:                pdf.NewMarotoPDFGenerator("test"),
		XML:                xmlmemo.NewRenderer(),
		JWTSecret:          secret,
		RateLimitPerMinute: rateLimit,
	})
	return app
}

func post(t *testing.T, app *fiber.App, path, body, auth string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e
}

func TestSimulationsAir_JSON(t *testing.T) {
	app := newAPI("", 0)
	resp := post(t, app, "/api/simulations/air", airBody, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res dto.CostResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "5888.30", res.CustomsValue.StringFixed(2))
	assert.Equal(t, "10357.15", res.TotalCost.StringFixed(2))
	assert.NotEmpty(t, res.CalculationID)
}

func TestSimulationsAir_Idempotente(t *testing.T) {
	app := newAPI("", 0)
	r1 := post(t, app, "/api/simulations/air", airBody, "")
	b1, _ := io.ReadAll(r1.Body)
	r1.Body.Close()
	r2 := post(t, app, "/api/simulations/air", airBody, "")
	b2, _ := io.ReadAll(r2.Body)
	r2.Body.Close()
	assert.Equal(t, b1, b2, "mismas entradas, mismos bytes")
}

func TestSimulationsAir_PDFyXML(t *testing.T) {
	app := newAPI("", 0)

	resp := post(t, app, "/api/simulations/air/pdf", airBody, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Calculation-Id"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp = post(t, app, "/api/simulations/air/xml", airBody, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	require.NoError(t, xmlmemo.Verify(body))
}

func TestSimulations_CuerpoInvalido_400(t *testing.T) {
	app := newAPI("", 0)
	resp := post(t, app, "/api/simulations/sea", `{"quantity": `, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, dto.CodeInvalidBody, decodeError(t, resp).Code)
}

func TestSimulations_AlicuotaInvalida_422(t *testing.T) {
	app := newAPI("", 0)
	resp := post(t, app, "/api/simulations/simplified",
		`{"purchase_usd": 100, "exchange_rate": 5.3, "ii_percent": 60, "icms_percent": 100}`, "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, dto.CodeInvalidRate, decodeError(t, resp).Code)
}

func TestDrawbackEvaluate(t *testing.T) {
	app := newAPI("", 0)
	resp := post(t, app, "/api/drawback/evaluate", drawbackBody, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res dto.DrawbackResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "150.00", res.BenefitedAmount.StringFixed(2))
	assert.Equal(t, "50.00", res.NotBenefitedAmount.StringFixed(2))
	assert.Equal(t, 61, res.DaysRemaining)
	assert.Equal(t, "Regular", res.Status)
}

func TestDrawbackEvaluate_ModalidadDesconocida_422(t *testing.T) {
	app := newAPI("", 0)
	body := bytes.Replace([]byte(drawbackBody), []byte(`"restitution"`), []byte(`"generico"`), 1)
	resp := post(t, app, "/api/drawback/evaluate", string(body), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, dto.CodeUnknownModality, decodeError(t, resp).Code)
}

func TestDrawbackEvaluate_FechasInvertidas_422(t *testing.T) {
	app := newAPI("", 0)
	body := bytes.Replace([]byte(drawbackBody), []byte(`"2026-12-31"`), []byte(`"2025-12-31"`), 1)
	resp := post(t, app, "/api/drawback/evaluate", string(body), "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, dto.CodeInvalidDateRange, decodeError(t, resp).Code)
}

func TestDrawbackEvaluate_PDF(t *testing.T) {
	app := newAPI("", 0)
	resp := post(t, app, "/api/drawback/evaluate/pdf", drawbackBody, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestDrawbackRules(t *testing.T) {
	app := newAPI("", 0)
	resp := doGet(t, app, "/api/drawback/rules", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res dto.RulesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, []string{"II", "IPI"}, res.Rules["restitution"])
	assert.Len(t, res.Rules, 3)
}

func TestRouter_ConJWT(t *testing.T) {
	app := newAPI(testJWTSecret, 0)

	resp := doGet(t, app, "/api/drawback/rules", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doGet(t, app, "/api/drawback/rules", tokenForRole(t, pkgjwt.RoleAnalyst))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_LimiteDeSolicitudes(t *testing.T) {
	app := newAPI("", 2)
	for i := 0; i < 2; i++ {
		resp := doGet(t, app, "/api/drawback/rules", "")
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := doGet(t, app, "/api/drawback/rules", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
