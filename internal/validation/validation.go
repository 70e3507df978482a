package validation

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PayloadKey is the context key a route validator stores the parsed
// request body under for the controller.
const PayloadKey = "payload"

var validate = validator.New(validator.WithRequiredStructEnabled())

func abortBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Bad Request",
		"message": message,
	})
	c.Abort()
}

// checkStruct validates the payload and, on failure, aborts with every
// violation message joined by period-space. messages maps
// "{StructField}.{tag}" to the human-readable text for that rule.
func checkStruct(c *gin.Context, payload interface{}, messages map[string]string) bool {
	err := validate.Struct(payload)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		abortBadRequest(c, "Invalid request data.")
		return false
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
			msgs = append(msgs, msg)
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.StructField()))
		}
	}
	abortBadRequest(c, strings.Join(msgs, ". ")+".")
	return false
}

// IDParam ensures a path parameter is a positive integer and stores the
// parsed value in the context under the parameter name.
func IDParam(name, label string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := strconv.ParseUint(c.Param(name), 10, 32)
		if err != nil || v == 0 {
			abortBadRequest(c, fmt.Sprintf("%s must be a positive integer.", label))
			return
		}
		c.Set(name, uint(v))
		c.Next()
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
