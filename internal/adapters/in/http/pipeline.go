package http

import (
	"fmt"

	"diner/internal/core/domain/model/dish"
	"diner/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// problem is a client-facing failure: an HTTP status code plus a
// human-readable message. Stages halt a pipeline by returning one.
type problem struct {
	status  int
	message string
}

func (p *problem) Error() string {
	return p.message
}

// newProblem builds a problem with a formatted message.
func newProblem(status int, format string, args ...any) *problem {
	return &problem{status: status, message: fmt.Sprintf(format, args...)}
}

// requestContext carries one request through its pipeline. It holds the
// decoded body and acts as the side-channel that passes a looked-up record
// from the lookup stage to later stages and the terminal handler.
type requestContext struct {
	echoCtx echo.Context

	// decoded request bodies (set by the bind stages)
	dishBody  *dishPayload
	orderBody *orderPayload

	// looked-up records (set by the lookup stages)
	dish  *dish.Dish
	order *order.Order
}

// stage is one step of a request pipeline. A stage either returns nil to
// fall through to the next stage, or an error to halt the chain. Stages may
// populate the request context for consumption by later stages; no stage
// observes a later stage's effects.
type stage func(rc *requestContext) error

// pipeline composes stages into an echo handler. Stages run strictly in
// declared order and the first failure short-circuits into the error
// translator. The last stage is the terminal handler and writes the
// success response.
func (s *Server) pipeline(stages ...stage) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := &requestContext{echoCtx: c}
		for _, run := range stages {
			if err := run(rc); err != nil {
				return renderFailure(c, err)
			}
		}
		return nil
	}
}
