package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baraholka/baraholka-backend/internal/domain"
	"github.com/baraholka/baraholka-backend/internal/handler"
	"github.com/baraholka/baraholka-backend/internal/migration"
	"github.com/baraholka/baraholka-backend/internal/repository"
	"github.com/baraholka/baraholka-backend/internal/routes"
	"github.com/baraholka/baraholka-backend/internal/service"
	"github.com/baraholka/baraholka-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// APISuite drives the whole HTTP surface against an in-memory database
type APISuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine

	aliceToken string
	bobToken   string
	carolToken string
	aliceID    uint64
	bobID      uint64
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	s.Require().NoError(err)
	s.db = db
	s.Require().NoError(migration.Run(db))

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("adcategory", domain.ValidAdCategory)
		_ = v.RegisterValidation("adcondition", domain.ValidAdCondition)
	}

	jwtManager := jwt.NewManager("test-secret-key-for-integration-tests", 60)

	memberRepo := repository.NewMemberRepository(db)
	adRepo := repository.NewAdRepository(db)
	threadRepo := repository.NewThreadRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	guard := service.NewAccessGuard()
	authSvc := service.NewAuthService(memberRepo, jwtManager)
	memberSvc := service.NewMemberService(memberRepo, nil)
	adSvc := service.NewAdService(adRepo, guard, nil)
	chatSvc := service.NewChatService(threadRepo, messageRepo, memberRepo, adRepo, guard)

	s.router = gin.New()
	routes.Setup(s.router,
		handler.NewAuthHandler(authSvc),
		handler.NewMemberHandler(memberSvc),
		handler.NewAdHandler(adSvc),
		handler.NewChatHandler(chatSvc),
		jwtManager,
	)

	s.aliceID, s.aliceToken = s.registerAndLogin("alice@example.com", "Alice")
	s.bobID, s.bobToken = s.registerAndLogin("bob@example.com", "Bob")
	_, s.carolToken = s.registerAndLogin("carol@example.com", "Carol")
}

// --- Helpers ---

func (s *APISuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *APISuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (s *APISuite) data(w *httptest.ResponseRecorder) map[string]any {
	return s.decode(w)["data"].(map[string]any)
}

func (s *APISuite) registerAndLogin(email, name string) (uint64, string) {
	w := s.request(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "password123",
		"name":     name,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	id := uint64(s.data(w)["id"].(float64))

	w = s.request(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": "password123",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	return id, s.data(w)["token"].(string)
}

// --- Auth ---

func (s *APISuite) TestRegister_DuplicateEmailConflicts() {
	w := s.request(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
		"name":     "Imposter",
	})
	assert.Equal(s.T(), http.StatusConflict, w.Code)
}

func (s *APISuite) TestLogin_BadPassword() {
	w := s.request(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APISuite) TestLogin_UnknownEmailSameStatus() {
	w := s.request(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "password123",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// --- Members ---

func (s *APISuite) TestGetMe_RequiresAuth() {
	w := s.request(http.MethodGet, "/api/members/me", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}

func (s *APISuite) TestGetMe() {
	w := s.request(http.MethodGet, "/api/members/me", s.aliceToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	data := s.data(w)
	assert.Equal(s.T(), "alice@example.com", data["email"])
	assert.Equal(s.T(), "Alice", data["name"])
}

func (s *APISuite) TestPublicProfile_HidesEmail() {
	w := s.request(http.MethodGet, fmt.Sprintf("/api/members/%d", s.bobID), "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	data := s.data(w)
	assert.Equal(s.T(), "Bob", data["name"])
	_, hasEmail := data["email"]
	assert.False(s.T(), hasEmail)
}

func (s *APISuite) TestUpdateMe() {
	w := s.request(http.MethodPut, "/api/members/me", s.carolToken, map[string]string{
		"name":  "Carol Updated",
		"about": "selling old bikes",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	data := s.data(w)
	assert.Equal(s.T(), "Carol Updated", data["name"])
	assert.Equal(s.T(), "selling old bikes", data["about"])
}

// --- Ads ---

func (s *APISuite) createAd(token, title string) uint64 {
	w := s.request(http.MethodPost, "/api/ads", token, map[string]any{
		"title":       title,
		"description": "test description",
		"price":       1500.50,
		"category":    "auto",
		"phone":       "+7-900-000-00-00",
		"condition":   "used",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return uint64(s.data(w)["id"].(float64))
}

func (s *APISuite) TestAds_CRUDAndOwnership() {
	adID := s.createAd(s.aliceToken, "Old sedan")

	// Anyone can read
	w := s.request(http.MethodGet, fmt.Sprintf("/api/ads/%d", adID), "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	data := s.data(w)
	assert.Equal(s.T(), "Old sedan", data["title"])
	author := data["author"].(map[string]any)
	assert.Equal(s.T(), float64(s.aliceID), author["id"])

	// Non-owner cannot update
	update := map[string]any{
		"title":       "Hijacked",
		"description": "x",
		"price":       1.0,
		"category":    "auto",
		"phone":       "0",
		"condition":   "used",
	}
	w = s.request(http.MethodPut, fmt.Sprintf("/api/ads/%d", adID), s.bobToken, update)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	// Owner can update
	update["title"] = "Old sedan, price drop"
	w = s.request(http.MethodPut, fmt.Sprintf("/api/ads/%d", adID), s.aliceToken, update)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	assert.Equal(s.T(), "Old sedan, price drop", s.data(w)["title"])

	// Non-owner cannot delete
	w = s.request(http.MethodDelete, fmt.Sprintf("/api/ads/%d", adID), s.bobToken, nil)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	// Owner deletes
	w = s.request(http.MethodDelete, fmt.Sprintf("/api/ads/%d", adID), s.aliceToken, nil)
	assert.Equal(s.T(), http.StatusNoContent, w.Code)

	w = s.request(http.MethodGet, fmt.Sprintf("/api/ads/%d", adID), "", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APISuite) TestAds_ListFilters() {
	s.createAd(s.bobToken, "Garage near center")
	s.createAd(s.bobToken, "Winter tires")

	w := s.request(http.MethodGet, "/api/ads?q=Garage", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	resp := s.decode(w)
	items := resp["data"].([]any)
	s.Require().Len(items, 1)
	assert.Equal(s.T(), "Garage near center", items[0].(map[string]any)["title"])

	w = s.request(http.MethodGet, "/api/ads?category=realty", "", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	assert.Empty(s.T(), s.decode(w)["data"])
}

func (s *APISuite) TestAds_InvalidCategoryRejected() {
	w := s.request(http.MethodPost, "/api/ads", s.aliceToken, map[string]any{
		"title":       "Mystery",
		"description": "x",
		"price":       1.0,
		"category":    "boats",
		"phone":       "0",
		"condition":   "used",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// --- Chat ---

func (s *APISuite) TestChat_FullConversationFlow() {
	// Alice opens a thread toward Bob
	w := s.request(http.MethodPost, "/api/chat/threads", s.aliceToken, map[string]any{
		"recipient_id": s.bobID,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	threadID := uint64(s.data(w)["id"].(float64))

	// Bob opening toward Alice lands on the same thread
	w = s.request(http.MethodPost, "/api/chat/threads", s.bobToken, map[string]any{
		"recipient_id": s.aliceID,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	assert.Equal(s.T(), threadID, uint64(s.data(w)["id"].(float64)))

	// Alice sends "hi"; it starts unread
	w = s.request(http.MethodPost, fmt.Sprintf("/api/chat/threads/%d/messages", threadID), s.aliceToken, map[string]string{
		"text": "hi",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	msg := s.data(w)
	assert.Equal(s.T(), "hi", msg["text"])
	assert.Equal(s.T(), false, msg["is_read"])
	messageID := uint64(msg["id"].(float64))

	// Bob reads the log and sees it
	w = s.request(http.MethodGet, fmt.Sprintf("/api/chat/threads/%d/messages", threadID), s.bobToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	log := s.decode(w)["data"].([]any)
	s.Require().Len(log, 1)
	assert.Equal(s.T(), "hi", log[0].(map[string]any)["text"])

	// Carol is not a participant
	w = s.request(http.MethodGet, fmt.Sprintf("/api/chat/threads/%d/messages", threadID), s.carolToken, nil)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	// Alice cannot mark her own message as read
	w = s.request(http.MethodPost, fmt.Sprintf("/api/chat/messages/%d/read", messageID), s.aliceToken, nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	// Bob can
	w = s.request(http.MethodPost, fmt.Sprintf("/api/chat/messages/%d/read", messageID), s.bobToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, fmt.Sprintf("/api/chat/threads/%d/messages", threadID), s.aliceToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	log = s.decode(w)["data"].([]any)
	assert.Equal(s.T(), true, log[0].(map[string]any)["is_read"])

	// The thread shows up in both participants' lists
	w = s.request(http.MethodGet, "/api/chat/threads", s.bobToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	threads := s.decode(w)["data"].([]any)
	assert.NotEmpty(s.T(), threads)
}

func (s *APISuite) TestChat_AdScopedThreadIsSeparate() {
	adID := s.createAd(s.bobToken, "Ad with its own thread")

	w := s.request(http.MethodPost, "/api/chat/threads", s.aliceToken, map[string]any{
		"recipient_id": s.bobID,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	plainID := uint64(s.data(w)["id"].(float64))

	w = s.request(http.MethodPost, "/api/chat/threads", s.aliceToken, map[string]any{
		"recipient_id": s.bobID,
		"ad_id":        adID,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	adThreadID := uint64(s.data(w)["id"].(float64))
	assert.NotEqual(s.T(), plainID, adThreadID)

	// Repeating the ad-scoped call is idempotent
	w = s.request(http.MethodPost, "/api/chat/threads", s.aliceToken, map[string]any{
		"recipient_id": s.bobID,
		"ad_id":        adID,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	assert.Equal(s.T(), adThreadID, uint64(s.data(w)["id"].(float64)))
}

func (s *APISuite) TestChat_SelfThreadRejected() {
	w := s.request(http.MethodPost, "/api/chat/threads", s.aliceToken, map[string]any{
		"recipient_id": s.aliceID,
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APISuite) TestChat_UnknownRecipient() {
	w := s.request(http.MethodPost, "/api/chat/threads", s.aliceToken, map[string]any{
		"recipient_id": 999999,
	})
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *APISuite) TestChat_BlankMessageRejected() {
	w := s.request(http.MethodPost, "/api/chat/threads", s.aliceToken, map[string]any{
		"recipient_id": s.bobID,
	})
	s.Require().Equal(http.StatusCreated, w.Code)
	threadID := uint64(s.data(w)["id"].(float64))

	w = s.request(http.MethodPost, fmt.Sprintf("/api/chat/threads/%d/messages", threadID), s.aliceToken, map[string]string{
		"text": "   ",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func (s *APISuite) TestChat_RequiresAuth() {
	w := s.request(http.MethodGet, "/api/chat/threads", "", nil)
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
}
