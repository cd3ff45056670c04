package http

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/paging"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withActor(ctx echo.Context, role string) {
	ctx.Request().Header.Set("X-Actor-Id", uuid.NewString())
	ctx.Request().Header.Set("X-Actor-Role", role)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) Error {
	t.Helper()

	var body Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestActorFrom_ValidHeaders(t *testing.T) {
	ctx, _ := newTestContext(t, http.MethodPost, "/api/v1/orders", "")
	id := uuid.NewString()
	ctx.Request().Header.Set("X-Actor-Id", id)
	ctx.Request().Header.Set("X-Actor-Role", "Agent")

	actor, err := actorFrom(ctx)

	require.NoError(t, err)
	assert.Equal(t, id, actor.ID().String())
	assert.Equal(t, "Agent", actor.Role().String())
}

func TestActorFrom_MissingOrInvalidHeaders(t *testing.T) {
	tests := []struct {
		name string
		id   string
		role string
	}{
		{name: "no headers at all", id: "", role: ""},
		{name: "garbage actor id", id: "not-a-uuid", role: "Admin"},
		{name: "unknown role", id: uuid.NewString(), role: "Janitor"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx, _ := newTestContext(t, http.MethodPost, "/api/v1/orders", "")
			if test.id != "" {
				ctx.Request().Header.Set("X-Actor-Id", test.id)
			}
			if test.role != "" {
				ctx.Request().Header.Set("X-Actor-Role", test.role)
			}

			_, err := actorFrom(ctx)

			assert.Error(t, err)
		})
	}
}

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "not found maps to 404",
			err:      errs.NewObjectNotFoundError("order", kernel.NewUUID()),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "already exists maps to 409",
			err:      errs.NewObjectAlreadyExistsError("order", kernel.NewUUID()),
			wantCode: http.StatusConflict,
		},
		{
			name:     "insufficient stock maps to 409",
			err:      errs.NewInsufficientStockError(uuid.NewString(), uuid.NewString(), 10),
			wantCode: http.StatusConflict,
		},
		{
			name:     "forbidden maps to 403",
			err:      errs.NewForbiddenError("dispatch orders", "Agent"),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "invalid value maps to 400",
			err:      errs.NewValueIsInvalidError("quantity"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "required value maps to 400",
			err:      errs.NewValueIsRequiredError("lines"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "anything else maps to 500",
			err:      assert.AnError,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, http.MethodGet, "/", "")

			require.NoError(t, writeError(ctx, test.err))

			assert.Equal(t, test.wantCode, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, test.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteError_HidesInternalMessage(t *testing.T) {
	ctx, rec := newTestContext(t, http.MethodGet, "/", "")

	require.NoError(t, writeError(ctx, errs.NewTransactionFailedError("create order", assert.AnError)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, body.Message, "create order")
}

func TestCreateOrder_RejectsBadInputBeforeHandling(t *testing.T) {
	server := &Server{}

	t.Run("missing actor headers", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/orders", "{}")

		require.NoError(t, server.CreateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/orders", "{not json")
		withActor(ctx, "Agent")

		require.NoError(t, server.CreateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request body", decodeError(t, rec).Message)
	})

	t.Run("garbage order id", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/orders", `{"id":"nope"}`)
		withActor(ctx, "Agent")

		require.NoError(t, server.CreateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("forward initial status", func(t *testing.T) {
		body := `{` +
			`"id":"` + uuid.NewString() + `",` +
			`"retailerId":"` + uuid.NewString() + `",` +
			`"areaId":"` + uuid.NewString() + `",` +
			`"dealerId":"` + uuid.NewString() + `",` +
			`"agentId":"` + uuid.NewString() + `",` +
			`"lines":[{"productId":"` + uuid.NewString() + `","quantity":12}],` +
			`"initialStatus":"Dispatched"}`
		ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/orders", body)
		withActor(ctx, "Agent")

		require.NoError(t, server.CreateOrder(ctx))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "status")
	})
}

func TestUpdateOrderLine_RejectsBadPathParams(t *testing.T) {
	server := &Server{}

	ctx, rec := newTestContext(t, http.MethodPut, "/", `{"quantity":12}`)
	withActor(ctx, "Packer")
	ctx.SetParamNames("orderId", "productId")
	ctx.SetParamValues("not-a-uuid", uuid.NewString())

	require.NoError(t, server.UpdateOrderLine(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordPackOut_RejectsUnknownMode(t *testing.T) {
	server := &Server{}

	body := `{
		"warehouseId": "` + uuid.NewString() + `",
		"productId": "` + uuid.NewString() + `",
		"deliveryStaffId": "` + uuid.NewString() + `",
		"dealerId": "` + uuid.NewString() + `",
		"day": "2026-09-01",
		"outQuantity": 48,
		"mode": "Overwrite"
	}`
	ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/allocations/pack-out", body)
	withActor(ctx, "Packer")

	require.NoError(t, server.RecordPackOut(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "mode")
}

func TestGetCollectionWorklist_RejectsMalformedDay(t *testing.T) {
	server := &Server{}

	ctx, rec := newTestContext(t, http.MethodGet, "/api/v1/collections/worklist?day=01-09-2026", "")

	require.NoError(t, server.GetCollectionWorklist(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterRoutes_AllRoutesPresent(t *testing.T) {
	e := echo.New()
	(&Server{}).RegisterRoutes(e)

	registered := make(map[string]struct{})
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = struct{}{}
	}

	want := []string{
		"POST /api/v1/orders",
		"POST /api/v1/orders/ready",
		"POST /api/v1/orders/dispatch",
		"GET /api/v1/orders",
		"PUT /api/v1/orders/:orderId/lines/:productId",
		"POST /api/v1/orders/:orderId/cancel",
		"POST /api/v1/orders/:orderId/deliver",
		"POST /api/v1/orders/:orderId/continue",
		"POST /api/v1/stock/pickups",
		"GET /api/v1/stock/levels",
		"POST /api/v1/allocations/pack-out",
		"POST /api/v1/allocations/return",
		"POST /api/v1/care/requests",
		"POST /api/v1/care/requests/:ticketId/resolve",
		"GET /api/v1/collections/worklist",
	}
	for _, route := range want {
		assert.Contains(t, registered, route)
	}
}

func TestPagingMetaResponse_CarriesFullDocumentCount(t *testing.T) {
	meta := paging.Meta{Page: 2, Limit: 50, TotalPage: 3, TotalDoc: int64(math.MaxInt32) + 1}

	resp := pagingMetaResponse{
		Page:      meta.Page,
		Limit:     meta.Limit,
		TotalPage: meta.TotalPage,
		TotalDoc:  meta.TotalDoc,
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"totalDoc":2147483648`)
}
