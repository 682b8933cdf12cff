package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/mortgagekit-api/internal/models"
)

// DefaultMaxBodyBytes caps request bodies of the calculation endpoints
const DefaultMaxBodyBytes int64 = 4096

// BindError is a request body that could not be read or decoded
type BindError struct {
	Err error
}

func (e *BindError) Error() string {
	return e.Err.Error()
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// BindNestedOrFlat attempts to bind the request body to obj.
// It first checks if the body contains a nested object with the given key (e.g. {"loan": {...}}).
// If so, it binds that nested object to obj.
// If not, or if the key is missing, it binds the entire body to obj (e.g. {...}).
// Bodies larger than maxBytes are rejected.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}, maxBytes int64) error {
	if c.Request.Body == nil {
		return &BindError{Err: errors.New("request body is required")}
	}

	bodyBytes, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &BindError{Err: fmt.Errorf("request body exceeds %d bytes", maxBytes)}
		}
		return &BindError{Err: fmt.Errorf("read request body: %w", err)}
	}
	// Restore body for subsequent reads
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return &BindError{Err: errors.New("request body is required")}
	}

	// 1. Nested structure { "key": { ... } }
	var nestedMap map[string]json.RawMessage
	if err := json.Unmarshal(bodyBytes, &nestedMap); err == nil {
		if val, ok := nestedMap[key]; ok {
			if err := json.Unmarshal(val, obj); err != nil {
				return &BindError{Err: err}
			}
			return nil
		}
	}

	// 2. Flat structure { ... }
	if err := json.Unmarshal(bodyBytes, obj); err != nil {
		return &BindError{Err: err}
	}
	return nil
}

// BindLoanInput decodes a LoanInput from either {"loan": {...}} or a flat body
func BindLoanInput(c *gin.Context, maxBytes int64) (models.LoanInput, error) {
	var in models.LoanInput
	err := BindNestedOrFlat(c, "loan", &in, maxBytes)
	return in, err
}
