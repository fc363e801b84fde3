/*
Copyright © 2024 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package lptrace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrTimeout is returned by DecodeResponse for an empty or null body,
// which is how a timed out solver call is handed over.
var ErrTimeout = errors.New("solver request timed out")

// TransportError is an error body sent back by the solver service.
type TransportError struct {
	Code    int
	Status  string
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("solver returned %d %s: %s", e.Code, e.Status, e.Message)
}

// ServerSide reports whether the solver failed on its own, as opposed to
// rejecting the submitted program.
func (e *TransportError) ServerSide() bool {
	return e.Code == http.StatusInternalServerError
}

// Err returns a *TransportError when the response carries an error
// message and no usable feasibility, nil otherwise.
func (r *SimplexResponse) Err() error {
	if r.Message == "" || r.Feasibility != FeasibilityUnknown {
		return nil
	}

	return &TransportError{
		Code:    r.Code,
		Status:  r.Status,
		Message: r.Message,
	}
}

// EncodeProgram serializes a program into the solver's request body.
func EncodeProgram(lp *LinearProgram) ([]byte, error) {
	if err := lp.Validate(); err != nil {
		return nil, errors.Wrap(err, "encoding linear program")
	}

	data, err := json.Marshal(lp)
	if err != nil {
		return nil, errors.Wrap(err, "encoding linear program")
	}

	return data, nil
}

// DecodeResponse deserializes a solver response body. Transport errors
// carried inside the body are not reported here, see SimplexResponse.Err.
func DecodeResponse(data []byte) (*SimplexResponse, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrTimeout
	}

	resp := &SimplexResponse{Feasibility: FeasibilityUnknown}
	if err := json.Unmarshal(trimmed, resp); err != nil {
		return nil, errors.Wrap(err, "decoding simplex response")
	}

	return resp, nil
}
