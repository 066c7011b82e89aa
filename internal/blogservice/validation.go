package blogservice

import (
	"github.com/hueyvil/inkpost/internal/common"
)

func validatePostForm(v *common.Validator, title, subtitle, imgURL, body string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(subtitle != "", "subtitle", "must be provided")
	v.Check(imgURL != "", "img_url", "must be provided")
	if imgURL != "" {
		v.Check(v.CheckURL(imgURL), "img_url", "must be a valid URL")
	}
	v.Check(body != "", "body", "must be provided")
}

func validateCommentText(v *common.Validator, text string) {
	v.Check(text != "", "comment_text", "must be provided")
}

// ValidateCommentText lets the comment handler validate the submitted form
// before deciding whether the submitter is allowed to post it.
func ValidateCommentText(text string) error {
	v := common.NewValidator()
	validateCommentText(v, text)
	if !v.Valid() {
		return v.ValidationError()
	}
	return nil
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
