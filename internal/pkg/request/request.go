package request

import (
	"errors"
	"io"
	"strconv"

	"starblog/internal/pkg/response"
	"starblog/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const msgNoBody = "You need to specify the request body as json object"

// IDRequest is the body of the lookup and delete routes.
type IDRequest struct {
	ID int64 `json:"id" validate:"required"`
}

// RenameRequest is the body of the edit routes; only name can change.
type RenameRequest struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// BindJSON decodes the body into dst and runs presence checks. The returned
// error is an *response.APIError naming the first missing field, using
// messages[field] when present.
func BindJSON(c *gin.Context, dst any, messages map[string]string) error {
	if c.Request.Body == nil {
		return response.BadRequest(msgNoBody)
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return response.BadRequest(msgNoBody)
		}
		return response.BadRequest("Invalid JSON body: " + err.Error())
	}

	if field := validator.FirstMissing(dst); field != "" {
		return response.BadRequest(MissingMessage(field, messages))
	}
	return nil
}

func MissingMessage(field string, messages map[string]string) string {
	if msg, ok := messages[field]; ok {
		return msg
	}
	return "You need to specify the " + field
}

// PathID parses a positive integer path parameter.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.BadRequest("Invalid " + name)
	}
	return id, nil
}
