// file: internals/helpers/validator.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct menjalankan validator/v10 dan memetakan error per-field
// ke bentuk map untuk JsonValidationError.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	out := map[string][]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], "failed on rule: "+fe.Tag())
	}
	return out
}
