package handlers

import (
	"net/http"

	"inkwell/pkg/common"
	apperrors "inkwell/pkg/errors"
)

// respondAppError maps an application error to its HTTP shape. Unknown
// errors become opaque 500s.
func respondAppError(w http.ResponseWriter, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		common.RespondError(w, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
		return
	}
	common.RespondError(w, http.StatusInternalServerError, string(apperrors.ErrorTypeInternal), "internal error")
}
