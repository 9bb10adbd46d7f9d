package dunecorex

import (
	"errors"

	"github.com/dunequery/dunecorex/duneapix"
	"github.com/dunequery/dunecorex/dunehttpx"
)

var (
	ErrMissingAPIKey = errors.New("dune api key is required")
)

var (
	ErrInvalidArgument    = duneapix.ErrInvalidArgument
	ErrUnexpectedResponse = duneapix.ErrUnexpectedResponse
	ErrServerError        = duneapix.ErrServerError
	ErrConnectError       = dunehttpx.ErrConnectError
)

type APIError = duneapix.Error
