package render

import (
	"encoding/json"
	"errors"
	"net/http"

	"anchor/core"

	"github.com/twitchtv/twirp"
)

// H generic json body
type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(v)
}

// Error render an error, mapping core error codes and twirp errors to
// http statuses
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := int(core.ErrUnknown)

	if twerr, ok := err.(twirp.Error); ok {
		status = twirp.ServerHTTPStatusFromErrorCode(twerr.Code())
	}

	var ec core.ErrorCode
	if errors.As(err, &ec) {
		code = int(ec)
		status = statusOf(ec)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(H{"code": code, "msg": err.Error()})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.InvalidArgumentError("request", err.Error()))
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.NotFoundError(err.Error()))
}

func statusOf(code core.ErrorCode) int {
	switch code {
	case core.ErrInvalidAmount, core.ErrAssetNotApproved, core.ErrInsufficientBalance:
		return http.StatusBadRequest
	case core.ErrHealthFactorBroken, core.ErrHealthFactorNotImproved, core.ErrHealthFactorOk:
		return http.StatusConflict
	case core.ErrTransferFailed, core.ErrMintFailed, core.ErrStalePrice,
		core.ErrOracleUnreachable, core.ErrInvalidPrice:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
