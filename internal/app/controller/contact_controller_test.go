package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContactControllerTest(t *testing.T) (*ContactController, *gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	contactService := service.NewContactService(repository.NewContactRepository(testDB))
	contactController := NewContactController(contactService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return contactController, router, testDB
}

func TestContactController_SubmitContact_Success(t *testing.T) {
	controller, router, _ := setupContactControllerTest(t)

	router.POST("/contact", controller.SubmitContact)

	payload, err := json.Marshal(map[string]interface{}{
		"name":    "Ravi Kumar",
		"email":   "ravi@example.com",
		"phone":   "+911112223334",
		"message": "Is the oak table in stock?",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	contact := response["contact"].(map[string]interface{})
	assert.Equal(t, string(model.ContactStatusNew), contact["status"])
}

func TestContactController_SubmitContact_InvalidEmail(t *testing.T) {
	controller, router, testDB := setupContactControllerTest(t)

	router.POST("/contact", controller.SubmitContact)

	payload, err := json.Marshal(map[string]interface{}{
		"name":    "Ravi Kumar",
		"email":   "not-an-email",
		"message": "Hello",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, testDB.Model(&model.Contact{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestContactController_SubmitContact_MissingMessage(t *testing.T) {
	controller, router, _ := setupContactControllerTest(t)

	router.POST("/contact", controller.SubmitContact)

	payload, err := json.Marshal(map[string]interface{}{
		"name":  "Ravi Kumar",
		"email": "ravi@example.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactController_ReplyContact(t *testing.T) {
	controller, router, testDB := setupContactControllerTest(t)

	admin := &model.Admin{
		Email:        "admin@example.com",
		PasswordHash: "hash",
		Name:         "Store Admin",
		Role:         model.RoleSuperAdmin,
	}
	require.NoError(t, testDB.Create(admin).Error)

	contact := &model.Contact{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Message: "Is the oak table in stock?",
		Status:  model.ContactStatusNew,
	}
	require.NoError(t, testDB.Create(contact).Error)

	router.PUT("/contact/:id/reply", func(c *gin.Context) {
		c.Set(middleware.AdminIDKey, admin.ID)
		controller.ReplyContact(c)
	})

	payload, err := json.Marshal(map[string]interface{}{
		"reply": "Yes, it ships within a week.",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/contact/1/reply", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored model.Contact
	require.NoError(t, testDB.First(&stored, contact.ID).Error)
	assert.Equal(t, model.ContactStatusReplied, stored.Status)
	assert.Equal(t, "Yes, it ships within a week.", stored.Reply)
	assert.NotNil(t, stored.RepliedAt)
	require.NotNil(t, stored.RepliedByID)
	assert.Equal(t, admin.ID, *stored.RepliedByID)
}

func TestContactController_UpdateContactStatus_Invalid(t *testing.T) {
	controller, router, testDB := setupContactControllerTest(t)

	contact := &model.Contact{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Message: "Hello",
		Status:  model.ContactStatusNew,
	}
	require.NoError(t, testDB.Create(contact).Error)

	router.PUT("/contact/:id/status", controller.UpdateContactStatus)

	// "replied" is reserved for the reply endpoint
	for _, status := range []string{"archived", "replied"} {
		payload, err := json.Marshal(map[string]interface{}{"status": status})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPut, "/contact/1/status", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var stored model.Contact
	require.NoError(t, testDB.First(&stored, contact.ID).Error)
	assert.Equal(t, model.ContactStatusNew, stored.Status)
}

func TestContactController_ListContacts_FilterByStatus(t *testing.T) {
	controller, router, testDB := setupContactControllerTest(t)

	contacts := []*model.Contact{
		{Name: "A", Email: "a@example.com", Message: "m", Status: model.ContactStatusNew},
		{Name: "B", Email: "b@example.com", Message: "m", Status: model.ContactStatusReplied},
	}
	for _, contact := range contacts {
		require.NoError(t, testDB.Create(contact).Error)
	}

	router.GET("/contact", controller.ListContacts)

	req := httptest.NewRequest(http.MethodGet, "/contact?status=replied", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	list := response["contacts"].([]interface{})
	require.Len(t, list, 1)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "b@example.com", first["email"])
}
