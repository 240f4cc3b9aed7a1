package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
	"github.com/Xalpha19/chaitravm/mocks"
)

const contactBody = `{
	"firstName": "Jane",
	"lastName": "Doe",
	"email": "jane@example.com",
	"subject": "Security Review",
	"message": "` + "xxxxxxxxxxxxxxxxxxxxxxxxx" + `",
	"verificationToken": "tok123"
}`

type HTTPServerSuite struct {
	suite.Suite
	intakeService *mocks.IntakeService
	blogService   *mocks.BlogService
	server        *HTTPServer
}

func TestHTTPServer(t *testing.T) {
	suite.Run(t, new(HTTPServerSuite))
}

func (suite *HTTPServerSuite) SetupTest() {
	suite.intakeService = &mocks.IntakeService{}
	suite.blogService = &mocks.BlogService{}
	suite.server = NewHTTPServer(suite.intakeService, suite.blogService)
}

func (suite *HTTPServerSuite) TearDownTest() {
	suite.intakeService.AssertExpectations(suite.T())
	suite.blogService.AssertExpectations(suite.T())
}

func (suite *HTTPServerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	suite.server.Echo().ServeHTTP(rec, req)
	return rec
}

func (suite *HTTPServerSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `"status":"ok"`)
}

func (suite *HTTPServerSuite) TestContact_PreflightAllowed() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/contact", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusNoContent, rec.Code)
	assert.Equal(suite.T(), "*", rec.Header().Get("Access-Control-Allow-Origin"))
	suite.intakeService.AssertNumberOfCalls(suite.T(), "Process", 0)
}

func (suite *HTTPServerSuite) TestContact_MethodNotAllowed() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/contact", nil)
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusMethodNotAllowed, rec.Code)
	suite.intakeService.AssertNumberOfCalls(suite.T(), "Process", 0)
}

func (suite *HTTPServerSuite) TestContact_Accepted() {
	submissionID := uuid.New()

	suite.intakeService.EXPECT().Process(mock.Anything, mock.MatchedBy(func(p domain.SubmissionPayload) bool {
		return p.Email == "jane@example.com" && p.VerificationToken == "tok123"
	}), mock.MatchedBy(func(m domain.RequestMeta) bool {
		return m.SourceIP == "203.0.113.7" && m.UserAgent == "test-agent"
	})).Return(domain.IntakeResult{
		Status:       domain.IntakeAccepted,
		SubmissionID: submissionID,
		Message:      "Form submitted successfully and emails sent",
	}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(contactBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "test-agent")
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `"success":true`)
	assert.Contains(suite.T(), rec.Body.String(), submissionID.String())
}

func (suite *HTTPServerSuite) TestContact_AcceptedWithEmailWarning_StillSuccess() {
	suite.intakeService.EXPECT().Process(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.IntakeResult{
			Status:       domain.IntakeAcceptedEmailWarning,
			SubmissionID: uuid.New(),
			Message:      "Form submitted successfully, but there was an issue sending confirmation emails",
		}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(contactBody))
	req.Header.Set("Content-Type", "application/json")
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `"success":true`)
}

func (suite *HTTPServerSuite) TestContact_Rejected() {
	suite.intakeService.EXPECT().Process(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.IntakeResult{
			Status:  domain.IntakeRejected,
			Message: "Security verification failed",
		}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(contactBody))
	req.Header.Set("Content-Type", "application/json")
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `"error":"Security verification failed"`)
}

func (suite *HTTPServerSuite) TestContact_ServerError() {
	suite.intakeService.EXPECT().Process(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.IntakeResult{
			Status:  domain.IntakeServerError,
			Message: "Failed to save submission",
		}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(contactBody))
	req.Header.Set("Content-Type", "application/json")
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusInternalServerError, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), `"error":"Failed to save submission"`)
}

func (suite *HTTPServerSuite) TestContact_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	suite.intakeService.AssertNumberOfCalls(suite.T(), "Process", 0)
}

func (suite *HTTPServerSuite) TestContact_MissingToken() {
	body := `{"firstName":"Jane","lastName":"Doe","email":"jane@example.com","subject":"Hi there","message":"xxxxxxxxxxxxxxxxxxxxxxxxx"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	suite.intakeService.AssertNumberOfCalls(suite.T(), "Process", 0)
}

func (suite *HTTPServerSuite) TestContact_UnknownSourceIP() {
	suite.intakeService.EXPECT().Process(mock.Anything, mock.Anything, mock.MatchedBy(func(m domain.RequestMeta) bool {
		return m.SourceIP == "unknown"
	})).Return(domain.IntakeResult{
		Status:       domain.IntakeAccepted,
		SubmissionID: uuid.New(),
		Message:      "Form submitted successfully and emails sent",
	}).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(contactBody))
	req.Header.Set("Content-Type", "application/json")
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *HTTPServerSuite) TestPosts_OK() {
	suite.blogService.EXPECT().LatestPosts(mock.Anything, 2).Return([]domain.BlogPost{
		{ID: 1, Title: "Post One"},
		{ID: 2, Title: "Post Two"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?count=2", nil)
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "Post One")
}

func (suite *HTTPServerSuite) TestPosts_InvalidCount() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?count=999", nil)
	rec := suite.do(req)

	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
	suite.blogService.AssertNumberOfCalls(suite.T(), "LatestPosts", 0)
}
