package middleware

import (
	"encoding/json"
	"net/http/httptest"
)

func unmarshalBody(rec *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}
