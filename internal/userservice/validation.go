package userservice

import (
	"github.com/hueyvil/inkpost/internal/common"
)

// Only presence is validated here. In particular the email address is not
// checked against any format, so "not-an-email" registers fine.
func validateName(v *common.Validator, name string) {
	v.Check(name != "", "name", "must be provided")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
