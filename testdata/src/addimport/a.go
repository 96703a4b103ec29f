package addimport

import (
	"android/content"

	"github.com/datlag/tolgee/common"
)

var app content.Context

func greeting() string {
	return common.GetStringKey(app, "greeting")
}
