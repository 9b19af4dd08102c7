package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetBodyFields returns a slice with the field names of the resource
// passed in. Only names of fields which are set in the body are
// contained in that slice. This is used for PATCH requests so that
// gorm only updates the fields the client actually sent.
//
// This function reads and copies the request body, it must always
// be called before any of gin's c.*Bind methods.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	// Copy the body to be able to use it multiple times
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse the body into a map to have all fields available
	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, ErrInvalidBody
	}

	var bodyFields []any

	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)

		jsonTag, ok := field.Tag.Lookup("json")
		if !ok {
			continue
		}

		// Strip options like ",omitempty" from the tag
		for j, r := range jsonTag {
			if r == ',' {
				jsonTag = jsonTag[:j]
				break
			}
		}

		if _, ok := mapBody[jsonTag]; ok {
			bodyFields = append(bodyFields, field.Name)
		}
	}

	return bodyFields, nil
}
