package expense_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sharda-hr/internal/expense"
	expenseerrors "sharda-hr/internal/expense/errors"
	expenseMock "sharda-hr/internal/expense/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

type handlerCtx struct {
	companyID  string
	employeeID string
	readAll    bool
}

func newRequest(hc handlerCtx, method, target, body string, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set("company_id", hc.companyID)
	c.Set("employee_id", hc.employeeID)
	c.Set("has_read_all", hc.readAll)
	return c, w
}

func TestExpenseHandler_Create(t *testing.T) {
	hc := handlerCtx{companyID: uuid.NewString(), employeeID: uuid.NewString()}
	body := `{"title":"Client visit","items":[{"category":"TRAVEL","date":"2025-05-02","amount":125000}]}`

	t.Run("defaults to the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := expenseMock.NewMockService(ctrl)
		h := expense.NewHandler(svc)

		svc.EXPECT().
			Create(gomock.Any(), hc.companyID, hc.employeeID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, req expense.CreateClaimRequest) (expense.ClaimResponse, error) {
				assert.Equal(t, hc.employeeID, req.EmployeeID)
				return expense.ClaimResponse{ID: uuid.NewString(), EmployeeID: req.EmployeeID, Status: expense.StatusDraft}, nil
			})

		c, w := newRequest(hc, http.MethodPost, "/expenses", body, nil)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Ok)
	})

	t.Run("filing for someone else needs read_all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := expenseMock.NewMockService(ctrl)
		h := expense.NewHandler(svc)

		other := `{"employee_id":"` + uuid.NewString() + `","title":"x","items":[{"category":"FOOD","date":"2025-05-02","amount":100}]}`
		c, w := newRequest(hc, http.MethodPost, "/expenses", other, nil)
		h.Create(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("items are required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := expenseMock.NewMockService(ctrl)
		h := expense.NewHandler(svc)

		c, w := newRequest(hc, http.MethodPost, "/expenses", `{"title":"x","items":[]}`, nil)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestExpenseHandler_Submit(t *testing.T) {
	hc := handlerCtx{companyID: uuid.NewString(), employeeID: uuid.NewString()}
	id := uuid.NewString()
	params := gin.Params{{Key: "id", Value: id}}

	t.Run("limit violations are returned as details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := expenseMock.NewMockService(ctrl)
		h := expense.NewHandler(svc)

		svc.EXPECT().GetByID(gomock.Any(), hc.companyID, id).
			Return(expense.ClaimResponse{ID: id, EmployeeID: hc.employeeID}, nil)
		svc.EXPECT().Submit(gomock.Any(), hc.companyID, id).
			Return(expense.ClaimResponse{}, expenseerrors.ErrCategoryLimitExceeded.WithDetails([]expense.LimitViolation{
				{Category: expense.CategoryFood, Limit: 300000, Claimed: 350000},
			}))

		c, w := newRequest(hc, http.MethodPost, "/expenses/"+id+"/submit", "", params)
		h.Submit(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		require.NotNil(t, env.Error)
		assert.Contains(t, string(env.Error.Details), `"category":"FOOD"`)
	})

	t.Run("someone else's claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := expenseMock.NewMockService(ctrl)
		h := expense.NewHandler(svc)

		svc.EXPECT().GetByID(gomock.Any(), hc.companyID, id).
			Return(expense.ClaimResponse{ID: id, EmployeeID: uuid.NewString()}, nil)

		c, w := newRequest(hc, http.MethodPost, "/expenses/"+id+"/submit", "", params)
		h.Submit(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestExpenseHandler_Reject(t *testing.T) {
	hc := handlerCtx{companyID: uuid.NewString(), employeeID: uuid.NewString(), readAll: true}
	id := uuid.NewString()
	params := gin.Params{{Key: "id", Value: id}}

	t.Run("reason is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := expenseMock.NewMockService(ctrl)
		h := expense.NewHandler(svc)

		c, w := newRequest(hc, http.MethodPost, "/expenses/"+id+"/reject", `{}`, params)
		h.Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := expenseMock.NewMockService(ctrl)
		h := expense.NewHandler(svc)

		svc.EXPECT().Reject(gomock.Any(), hc.companyID, hc.employeeID, id, "missing receipt").
			Return(expense.ClaimResponse{ID: id, Status: expense.StatusRejected}, nil)

		c, w := newRequest(hc, http.MethodPost, "/expenses/"+id+"/reject", `{"reason":"missing receipt"}`, params)
		h.Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestExpenseHandler_GetAll_PinsToSelf(t *testing.T) {
	hc := handlerCtx{companyID: uuid.NewString(), employeeID: uuid.NewString()}
	ctrl := gomock.NewController(t)
	svc := expenseMock.NewMockService(ctrl)
	h := expense.NewHandler(svc)

	svc.EXPECT().
		GetAll(gomock.Any(), hc.companyID, expense.ListFilter{EmployeeID: hc.employeeID, Status: "APPROVED"}).
		Return([]expense.ClaimResponse{}, nil)

	c, w := newRequest(hc, http.MethodGet, "/expenses?employee_id="+uuid.NewString()+"&status=APPROVED", "", nil)
	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
