package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonContentType = "application/json; charset=utf-8"

// HTTPTestSuite wraps a bare gin engine that handler tests mount routes on
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest puts gin in test mode and returns an empty router
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	return &HTTPTestSuite{Router: gin.New()}
}

// MakeRequest sends body encoded as JSON. A nil body sends no body at all.
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	if body == nil {
		return suite.serve(method, url, "", nil, nil)
	}
	encoded, _ := json.Marshal(body)
	return suite.serve(method, url, "application/json", bytes.NewReader(encoded), nil)
}

// MakeMultipartRequest uploads content as a single file field, like a browser form post
func (suite *HTTPTestSuite) MakeMultipartRequest(method, url, field, filename string, content []byte, headers map[string]string) *httptest.ResponseRecorder {
	form := &bytes.Buffer{}
	writer := multipart.NewWriter(form)
	part, _ := writer.CreateFormFile(field, filename)
	_, _ = part.Write(content)
	_ = writer.Close()

	return suite.serve(method, url, writer.FormDataContentType(), form, headers)
}

// MakeRawRequest sends body bytes unchanged with the given content type
func (suite *HTTPTestSuite) MakeRawRequest(method, url, contentType string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	return suite.serve(method, url, contentType, bytes.NewReader(body), headers)
}

func (suite *HTTPTestSuite) serve(method, url, contentType string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)
	return recorder
}

// AssertJSONResponse checks status and content type, then decodes the body into target when given
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	t.Helper()
	AssertSuccessResponse(t, recorder, expectedStatus)

	if target != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), target))
	}
}

// AssertErrorResponse checks status and that the error field contains expectedMessage
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse))

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// AssertSuccessResponse checks status and the JSON content type
func AssertSuccessResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, jsonContentType, recorder.Header().Get("Content-Type"))
}
