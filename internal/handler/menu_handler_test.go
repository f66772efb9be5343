package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolovaya/canteen-api/internal/service"
	"github.com/stolovaya/canteen-api/internal/store"
)

func newMenuHandler() *MenuHandler {
	return NewMenuHandler(service.NewMenuService(store.NewMenuStore(), nil))
}

func TestMenuHandlerDayKnown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newMenuHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/menu/Понедельник", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "day", Value: "Понедельник"}}

	handler.Day(c)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["breakfast"], "Каша")
	assert.Contains(t, body["lunch"], "Суп")
}

func TestMenuHandlerDayUnknownIsEmptyObject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newMenuHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/menu/Monday", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "day", Value: "Monday"}}

	handler.Day(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestMenuHandlerAddThenDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	menu := store.NewMenuStore()
	handler := NewMenuHandler(service.NewMenuService(menu, nil))

	payload, _ := json.Marshal(service.DishRequest{Day: "Вторник", Meal: "lunch", Dish: "Компот"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/menu/add", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Add(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Добавлено"}`, w.Body.String())

	day, ok := menu.Day("Вторник")
	require.True(t, ok)
	assert.Contains(t, day.Lunch, "Компот")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	req, _ = http.NewRequest(http.MethodPost, "/menu/delete", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Delete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Удалено"}`, w.Body.String())

	day, ok = menu.Day("Вторник")
	require.True(t, ok)
	assert.NotContains(t, day.Lunch, "Компот")
}

func TestMenuHandlerAddUnknownSlot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newMenuHandler()

	payload, _ := json.Marshal(service.DishRequest{Day: "Воскресенье", Meal: "lunch", Dish: "Суп"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/menu/add", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Add(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error":"Неизвестный день или приём пищи"}`, w.Body.String())
}

func TestMenuHandlerAddMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newMenuHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/menu/add", bytes.NewBufferString(`{"day":"Среда"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Add(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"error":"Обязательны: day, meal и dish"}`, w.Body.String())
}
