package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-hub-backend/internal/api/handlers"
	"student-hub-backend/internal/auth"
	apperrors "student-hub-backend/internal/errors"
	"student-hub-backend/internal/mocks"
	"student-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// EngagementHandlerTestSuite defines the test suite for EngagementHandler
type EngagementHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEngagementSv *mocks.MockEngagementServiceInterface
	handler          *handlers.EngagementHandler
	router           *gin.Engine
	claims           *auth.AuthClaims
}

func (suite *EngagementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEngagementSv = mocks.NewMockEngagementServiceInterface(suite.ctrl)
	suite.handler = handlers.NewEngagementHandler(suite.mockEngagementSv)
	suite.claims = &auth.AuthClaims{UserID: "auth0|actor", DisplayName: "Alice Chen"}

	suite.router = gin.New()
	authed := suite.router.Group("", fakeAuth(suite.claims))
	authed.GET("/users/me/saved", suite.handler.GetSaved)
	authed.PUT("/users/me/saved/:id", suite.handler.SaveActivity)
	authed.DELETE("/users/me/saved/:id", suite.handler.UnsaveActivity)
	authed.DELETE("/users/me/saved", suite.handler.ClearSaved)
	authed.GET("/users/me/recent", suite.handler.GetRecent)
	authed.PUT("/users/me/recent/:id", suite.handler.RecordView)
	authed.DELETE("/users/me/recent", suite.handler.ClearRecent)
}

func (suite *EngagementHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EngagementHandlerTestSuite) TestGetSaved_Success() {
	resp := &service.ActivityListResponse{
		Activities: []service.ActivityResponse{
			{ID: uuid.New(), Title: "Campus Robotics Club", OwnerDisplayName: "Dana Kim"},
		},
		Total: 1,
	}
	suite.mockEngagementSv.EXPECT().GetSaved(gomock.Any(), "auth0|actor").Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/me/saved", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ActivityListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, got.Total)
	assert.Equal(suite.T(), "Campus Robotics Club", got.Activities[0].Title)
}

func (suite *EngagementHandlerTestSuite) TestGetSaved_ServiceError() {
	suite.mockEngagementSv.EXPECT().GetSaved(gomock.Any(), "auth0|actor").Return(nil, errors.New("db failure"))

	req := httptest.NewRequest(http.MethodGet, "/users/me/saved", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestSaveActivity_Success() {
	id := uuid.New()
	suite.mockEngagementSv.EXPECT().Save(gomock.Any(), "auth0|actor", id).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/users/me/saved/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestSaveActivity_InvalidID() {
	req := httptest.NewRequest(http.MethodPut, "/users/me/saved/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid activity ID")
}

func (suite *EngagementHandlerTestSuite) TestSaveActivity_ActivityGone() {
	id := uuid.New()
	suite.mockEngagementSv.EXPECT().Save(gomock.Any(), "auth0|actor", id).Return(apperrors.ErrActivityNotFound)

	req := httptest.NewRequest(http.MethodPut, "/users/me/saved/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestSaveActivity_AlreadySaved() {
	id := uuid.New()
	suite.mockEngagementSv.EXPECT().Save(gomock.Any(), "auth0|actor", id).Return(apperrors.ErrActivitySaved)

	req := httptest.NewRequest(http.MethodPut, "/users/me/saved/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestUnsaveActivity_Success() {
	id := uuid.New()
	suite.mockEngagementSv.EXPECT().Unsave(gomock.Any(), "auth0|actor", id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/me/saved/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestUnsaveActivity_NotSaved() {
	id := uuid.New()
	suite.mockEngagementSv.EXPECT().Unsave(gomock.Any(), "auth0|actor", id).Return(apperrors.ErrSavedNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/users/me/saved/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestClearSaved_Success() {
	suite.mockEngagementSv.EXPECT().ClearSaved(gomock.Any(), "auth0|actor").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/me/saved", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestGetRecent_Success() {
	resp := &service.ActivityListResponse{
		Activities: []service.ActivityResponse{
			{ID: uuid.New(), Title: "Hackathon Team"},
			{ID: uuid.New(), Title: "Chess Society"},
		},
		Total: 2,
	}
	suite.mockEngagementSv.EXPECT().GetRecent(gomock.Any(), "auth0|actor").Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/me/recent", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ActivityListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, got.Total)
	assert.Equal(suite.T(), "Hackathon Team", got.Activities[0].Title)
}

func (suite *EngagementHandlerTestSuite) TestRecordView_Success() {
	id := uuid.New()
	suite.mockEngagementSv.EXPECT().RecordView(gomock.Any(), "auth0|actor", id).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/users/me/recent/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestRecordView_ActivityGone() {
	id := uuid.New()
	suite.mockEngagementSv.EXPECT().RecordView(gomock.Any(), "auth0|actor", id).Return(apperrors.ErrActivityNotFound)

	req := httptest.NewRequest(http.MethodPut, "/users/me/recent/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestClearRecent_Success() {
	suite.mockEngagementSv.EXPECT().ClearRecent(gomock.Any(), "auth0|actor").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/me/recent", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *EngagementHandlerTestSuite) TestGetSaved_NoClaims() {
	router := gin.New()
	router.GET("/users/me/saved", suite.handler.GetSaved)

	req := httptest.NewRequest(http.MethodGet, "/users/me/saved", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func TestEngagementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EngagementHandlerTestSuite))
}
