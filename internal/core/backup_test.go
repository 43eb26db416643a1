package core

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/inovacc/studyplan/internal/model"
	"github.com/inovacc/studyplan/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	app, _ := setupTestApp(t)

	_, err := app.AddClass(math0900())
	require.NoError(t, err)
	_, err = app.AddTodo("flashcards")
	require.NoError(t, err)
	_, err = app.SetStudyMinutes(fixedNow, 90)
	require.NoError(t, err)

	data, err := app.Export()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{"classes", "todos", "studyLog", "goal", "dark", "exportDate"} {
		assert.Contains(t, doc, key)
	}

	assert.JSONEq(t, `{"2024-03-04":90}`, string(doc["studyLog"]))
	assert.JSONEq(t, `120`, string(doc["goal"]))
	assert.True(t, strings.HasPrefix(string(data), "{\n  "), "export should be indented")
}

func TestExportImport_RoundTrip(t *testing.T) {
	src, _ := setupTestApp(t)

	c, err := src.AddClass(math0900())
	require.NoError(t, err)
	require.NoError(t, src.SetGoal(75))
	require.NoError(t, src.SetDark(true))

	data, err := src.Export()
	require.NoError(t, err)

	dst, kv := setupTestApp(t)

	res, err := dst.Import(data)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Classes)
	assert.ElementsMatch(t, []string{"classes", "todos", "studyLog", "goal", "dark"}, res.Applied)

	assert.Equal(t, []model.ClassEntry{c}, dst.Classes())
	assert.Equal(t, model.Settings{Goal: 75, Dark: true}, dst.Settings())

	raw, err := kv.Get(store.KeyClasses)
	require.NoError(t, err)
	assert.Contains(t, string(raw), c.ID)
}

func TestImport_PartialKeepsAbsentFields(t *testing.T) {
	app, _ := setupTestApp(t)

	todo, err := app.AddTodo("keep me")
	require.NoError(t, err)
	_, err = app.AddClass(math0900())
	require.NoError(t, err)

	res, err := app.Import([]byte(`{"classes":[],"studyLog":{"2024-03-01":2000}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"classes", "studyLog"}, res.Applied)

	assert.Empty(t, app.Classes())
	assert.Equal(t, []model.TodoItem{todo}, app.Todos())
	assert.Equal(t, 1440, app.StudyLog()["2024-03-01"], "imported minutes are clamped")
	assert.Equal(t, model.DefaultGoalMinutes, app.Settings().Goal)
}

func TestImport_MalformedAppliesNothing(t *testing.T) {
	app, _ := setupTestApp(t)

	_, err := app.AddTodo("keep me")
	require.NoError(t, err)

	_, err = app.Import([]byte(`{"todos": [`))
	require.Error(t, err)
	assert.Len(t, app.Todos(), 1)

	_, err = app.Import([]byte(`{"todos": "nope"}`))
	require.Error(t, err)
	assert.Len(t, app.Todos(), 1)
}

func TestImport_AssignsMissingIDs(t *testing.T) {
	app, _ := setupTestApp(t)

	_, err := app.Import([]byte(`{"todos":[{"text":"no id","done":true}]}`))
	require.NoError(t, err)

	require.Len(t, app.Todos(), 1)
	assert.NotEmpty(t, app.Todos()[0].ID)
	assert.True(t, app.Todos()[0].Done)
}

func TestImport_BadGoalSkipped(t *testing.T) {
	app, _ := setupTestApp(t)

	res, err := app.Import([]byte(`{"goal":0,"dark":true}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"dark"}, res.Applied)
	assert.Equal(t, model.DefaultGoalMinutes, app.Settings().Goal)
	assert.True(t, app.Settings().Dark)
}

func TestSealUnseal(t *testing.T) {
	plain := []byte(`{"goal":90}`)

	armored, err := Seal(plain, "correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(armored, "STUDYPLAN:"))
	assert.True(t, IsSealed([]byte(armored+"\n")))
	assert.False(t, IsSealed(plain))

	out, err := Unseal([]byte(armored), "correct horse")
	require.NoError(t, err)
	assert.Equal(t, plain, out)

	_, err = Unseal([]byte(armored), "wrong horse")
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = Unseal(plain, "correct horse")
	assert.ErrorIs(t, err, ErrInvalidArmor)

	_, err = Unseal([]byte("STUDYPLAN:abc"), "correct horse")
	assert.ErrorIs(t, err, ErrInvalidArmor)

	_, err = Seal(plain, "short")
	assert.Error(t, err)
}
