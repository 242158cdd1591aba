package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vh-vahan/eventhubs-scope/eventhubs/cloud"
)

// IsNotFound reports whether err is a management answer for a resource that
// does not exist. Falls back to message sniffing for errors that lost their
// type through wrapping.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *cloud.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "404") {
		return true
	}
	return false
}

// IsThrottled reports whether err is a management answer rejecting the call
// because the subscription's request budget is exhausted.
func IsThrottled(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *cloud.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
