package net

import (
	"net/http"

	perr "leadrouter/internal/platform/errors"
)

// HTTPStatus is the transport-side status mapping, 200 for nil
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
