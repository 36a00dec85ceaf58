package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// New returns a configured validator with the objectid tag registered.
// The tag accepts any well-formed 24-character hex object id; it does not
// check that the referenced document exists.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	must(v.RegisterValidation("objectid", func(fl validatorv10.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
