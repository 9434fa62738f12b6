package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client with the transport defaults every call to
// the hosted backend shares. It embeds *resty.Client so the full resty API
// stays available on the wrapper.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient pre-configured for the backend REST
// API: JSON in both directions and a short retry budget for transient
// transport failures. Non-2xx responses are not retried; the adapter maps
// them to sentinel errors instead.
//
// Each call returns an independent client with its own connection pool and
// state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil
		})

	return &HTTPClient{Client: client}
}
