package interfaces

import (
	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

type Display interface {
	ShowResult(result *model.PostResult)
	ShowPayload(payload []byte)
}
