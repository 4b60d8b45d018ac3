package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// Caps request bodies read by DecodeJSON
const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	WriteJSONResponse(w, statusCode, resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSON reads a JSON body into dst. An empty body leaves dst untouched
// when allowEmpty is set.
func DecodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	if r.Body == nil {
		if allowEmpty {
			return nil
		}
		return errors.New("empty body")
	}
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errors.New("reading body error: " + err.Error())
	}
	if len(data) == 0 {
		if allowEmpty {
			return nil
		}
		return errors.New("empty body")
	}
	return sonic.ConfigDefault.Unmarshal(data, dst)
}
