package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/slackpost/pkg/domain"
	"github.com/m-mizutani/slackpost/pkg/domain/model"
)

func TestNewAttachment(t *testing.T) {
	t.Run("Fallback defaults to title and text", func(t *testing.T) {
		atc, err := model.NewAttachment("Deploy", "v1.2.3 is live", model.ColorGood)
		gt.NoError(t, err)
		gt.Equal(t, atc.Fallback, "Deploy - v1.2.3 is live")
		gt.Equal(t, atc.Title, "Deploy")
		gt.Equal(t, atc.Text, "v1.2.3 is live")
		gt.Equal(t, atc.Color, model.ColorGood)
	})

	t.Run("Explicit fallback wins", func(t *testing.T) {
		atc, err := model.NewAttachment("Deploy", "v1.2.3 is live", model.ColorGood,
			model.WithFallback("deploy finished"),
		)
		gt.NoError(t, err)
		gt.Equal(t, atc.Fallback, "deploy finished")
	})

	t.Run("Options set optional fields", func(t *testing.T) {
		atc, err := model.NewAttachment("CI failed", "tests broke on main", model.ColorDanger,
			model.WithTitleLink("https://example.com/runs/42"),
			model.WithPretext("heads up"),
		)
		gt.NoError(t, err)
		gt.Equal(t, atc.TitleLink, "https://example.com/runs/42")
		gt.Equal(t, atc.Pretext, "heads up")
	})

	t.Run("Unset optional keys absent from JSON", func(t *testing.T) {
		atc, err := model.NewAttachment("Deploy", "v1.2.3 is live", model.ColorWarning)
		gt.NoError(t, err)

		raw, err := json.Marshal(atc)
		gt.NoError(t, err)

		body := string(raw)
		gt.False(t, strings.Contains(body, "title_link"))
		gt.False(t, strings.Contains(body, "pretext"))
		gt.False(t, strings.Contains(body, "fields"))
		gt.True(t, strings.Contains(body, `"fallback":"Deploy - v1.2.3 is live"`))
		gt.True(t, strings.Contains(body, `"color":"warning"`))
	})

	t.Run("Fields keep their order", func(t *testing.T) {
		atc, err := model.NewAttachment("Deploy", "v1.2.3 is live", model.ColorGood,
			model.WithField("Environment", "production", true),
			model.WithField("Revision", "abc1234", true),
			model.WithField("Duration", "4m12s", false),
		)
		gt.NoError(t, err)
		gt.Equal(t, len(atc.Fields), 3)
		gt.Equal(t, atc.Fields[0].Title, "Environment")
		gt.Equal(t, atc.Fields[1].Title, "Revision")
		gt.Equal(t, atc.Fields[2].Title, "Duration")
		gt.False(t, atc.Fields[2].Short)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name  string
			title string
			text  string
			color model.Color
		}{
			{name: "empty title", title: "", text: "body", color: model.ColorGood},
			{name: "empty text", title: "title", text: "", color: model.ColorGood},
			{name: "bogus color", title: "title", text: "body", color: model.Color("bogus")},
			{name: "empty color", title: "title", text: "body", color: model.Color("")},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.NewAttachment(tc.title, tc.text, tc.color)
				gt.Error(t, err)
				gt.True(t, domain.ErrInvalidArgument.Is(err))
			})
		}
	})
}

func TestColorValidate(t *testing.T) {
	t.Run("Accepted colors", func(t *testing.T) {
		for _, color := range []model.Color{model.ColorGood, model.ColorWarning, model.ColorDanger} {
			gt.NoError(t, color.Validate())
		}
	})

	t.Run("Hex colors are rejected", func(t *testing.T) {
		err := model.Color("#36a64f").Validate()
		gt.Error(t, err)
		gt.True(t, domain.ErrInvalidArgument.Is(err))
	})
}
