package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidPageID:   http.StatusBadRequest,
	ErrSessionRequired: http.StatusUnauthorized,
	ErrTooManyRequests: http.StatusTooManyRequests,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrPageNotFound:            http.StatusNotFound,
	service.ErrUnknownAction:           http.StatusBadRequest,
	service.ErrDraftNotFound:           http.StatusNotFound,
	service.ErrDraftInvalid:            http.StatusNotFound,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	store.ErrPageNotFound: http.StatusNotFound,
	store.ErrUserNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrStagingIO:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors are
// never echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
