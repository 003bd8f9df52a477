package httpx

import (
	"net/http"

	apperrors "github.com/stackfall/workdesk/internal/errors"
)

// WriteAppError maps an application error to an HTTP response. Credential
// failures all surface as one undifferentiated 401 so the endpoints cannot
// be used as an oracle; only backend unavailability is worth paging over.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	switch code {
	case apperrors.ErrCodeNotFound:
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: string(code), Err: err})
	case apperrors.ErrCodeValidation, apperrors.ErrCodeForeignKey:
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: string(code), Err: err})
	case apperrors.ErrCodeConflict:
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: string(code), Err: err})
	case apperrors.ErrCodeCredentialInvalid, apperrors.ErrCodeMalformedSession:
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "invalid_credentials", Err: err})
	case apperrors.ErrCodeBackendUnavailable:
		WriteError(w, ErrorParams{Code: http.StatusServiceUnavailable, ErrCode: string(code), Err: err})
	case apperrors.ErrCodeTimeout:
		WriteError(w, ErrorParams{Code: http.StatusGatewayTimeout, ErrCode: string(code), Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal", Err: err})
	}
}
