package server

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

// QueryValues collects the request's query parameters into url.Values so
// they can be fed to a schema decoder.
func QueryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}

// NewFilterDecoder builds the decoder used for filter structs. Unknown
// keys are ignored so clients can send extra parameters without breaking.
func NewFilterDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// DecodeError turns a schema decoding failure into a message naming the
// offending field.
func DecodeError(err error) error {
	if multi, ok := err.(schema.MultiError); ok {
		for field, fieldErr := range multi {
			if conv, ok := fieldErr.(schema.ConversionError); ok {
				return fmt.Errorf("invalid value for %s: expected %s", field, conv.Type)
			}
			return fmt.Errorf("invalid value for %s", field)
		}
	}
	return err
}
