package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dannyyo/checklist-go/pkg/checklist"
	"github.com/dannyyo/checklist-go/pkg/checklist/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configPath, variant, templatePath = "", string(checklist.VariantTemplate), ""
		questionsOutput, pretty = "", false
	})
}

func TestLoadOptions_Static(t *testing.T) {
	resetFlags(t)
	variant = string(checklist.VariantStatic)

	opts, err := loadOptions()
	require.NoError(t, err)
	assert.Equal(t, checklist.VariantStatic, opts.Variant)
	assert.Equal(t, 8, opts.Answers.StartRow)
}

func TestLoadOptions_UnknownVariant(t *testing.T) {
	resetFlags(t)
	variant = "paper"

	_, err := loadOptions()
	assert.ErrorIs(t, err, checklist.ErrUnknownVariant)
}

func TestLoadOptions_TemplateOverride(t *testing.T) {
	resetFlags(t)
	templatePath = "/srv/plantilla.xlsx"

	opts, err := loadOptions()
	require.NoError(t, err)
	assert.Equal(t, "/srv/plantilla.xlsx", opts.Template)
}

func TestRunQuestions_Static(t *testing.T) {
	resetFlags(t)
	variant = string(checklist.VariantStatic)

	var buf bytes.Buffer
	questionsCmd.SetOut(&buf)
	t.Cleanup(func() { questionsCmd.SetOut(nil) })

	require.NoError(t, runQuestions(questionsCmd, nil))

	var list output.QuestionList
	require.NoError(t, json.Unmarshal(buf.Bytes(), &list))
	assert.Equal(t, "static", list.Source)
	assert.Equal(t, len(checklist.StaticOptions().StaticQuestions), list.Count)
	assert.Equal(t, 0, list.Questions[0].Index)
}
