package templates_test

import (
	"fmt"
	"testing"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/disnet/flint-note-sub011/pkg/templates"
	"github.com/disnet/flint-note-sub011/pkg/testutil"
	"github.com/disnet/flint-note-sub011/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// typeCall records one CreateNoteType invocation
type typeCall struct {
	name              string
	purpose           string
	agentInstructions []string
	schema            *types.MetadataSchema
}

// noteCall records one CreateNote invocation
type noteCall struct {
	noteType              string
	title                 string
	content               string
	metadata              map[string]interface{}
	enforceRequiredFields bool
}

// fakeStores implements both store interfaces and records every call in
// arrival order, so phase ordering is observable
type fakeStores struct {
	order     []string
	typeCalls []typeCall
	noteCalls []noteCall
	failTypes map[string]error
	failNotes map[string]error
	nextID    int
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		failTypes: map[string]error{},
		failNotes: map[string]error{},
	}
}

func (f *fakeStores) CreateNoteType(name, purpose string, agentInstructions []string, schema *types.MetadataSchema) error {
	f.order = append(f.order, "type:"+name)
	f.typeCalls = append(f.typeCalls, typeCall{name, purpose, agentInstructions, schema})
	if err, ok := f.failTypes[name]; ok {
		return err
	}
	return nil
}

func (f *fakeStores) CreateNote(noteType, title, content string, metadata map[string]interface{}, enforceRequiredFields bool) (types.CreatedNote, error) {
	f.order = append(f.order, "note:"+title)
	f.noteCalls = append(f.noteCalls, noteCall{noteType, title, content, metadata, enforceRequiredFields})
	if err, ok := f.failNotes[title]; ok {
		return types.CreatedNote{}, err
	}
	f.nextID++
	return types.CreatedNote{ID: fmt.Sprintf("note-%d", f.nextID)}, nil
}

func TestApplyTemplate(t *testing.T) {
	fsys, _ := setupFullTemplate(t)
	stores := newFakeStores()

	result, err := templates.ApplyTemplate("/templates", "starter", fsys, stores, stores, templates.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.NoteTypesCreated)
	assert.Equal(t, 3, result.NotesCreated)
	assert.Empty(t, result.Errors)

	// welcome.md matches the template's initialNote
	var welcomeID string
	for i, call := range stores.noteCalls {
		if call.title == "Welcome" {
			welcomeID = fmt.Sprintf("note-%d", i+1)
		}
	}
	require.NotEmpty(t, welcomeID)
	assert.Equal(t, welcomeID, result.InitialNoteID)
}

func TestApplyTemplatePhaseOrdering(t *testing.T) {
	fsys, _ := setupFullTemplate(t)
	stores := newFakeStores()

	_, err := templates.ApplyTemplate("/templates", "starter", fsys, stores, stores, templates.LoadOptions{})
	require.NoError(t, err)

	// Every note type call must come before the first note call
	firstNote := -1
	lastType := -1
	for i, op := range stores.order {
		switch {
		case firstNote == -1 && op[:5] == "note:":
			firstNote = i
		case op[:5] == "type:":
			lastType = i
		}
	}
	require.NotEqual(t, -1, firstNote)
	require.NotEqual(t, -1, lastType)
	assert.Less(t, lastType, firstNote, "all note types must be created before any note")
}

func TestApplyTemplateCollaboratorArguments(t *testing.T) {
	fsys, _ := setupFullTemplate(t)
	stores := newFakeStores()

	_, err := templates.ApplyTemplate("/templates", "starter", fsys, stores, stores, templates.LoadOptions{})
	require.NoError(t, err)

	require.Len(t, stores.typeCalls, 2)
	daily := stores.typeCalls[0]
	assert.Equal(t, "daily", daily.name)
	assert.Equal(t, "Daily journal entries", daily.purpose)
	assert.Equal(t, []string{"Keep entries short", "Always date the entry"}, daily.agentInstructions)
	require.NotNil(t, daily.schema)
	assert.Len(t, daily.schema.Fields, 2)

	// A type without a schema passes nil through
	reading := stores.typeCalls[1]
	assert.Equal(t, "reading", reading.name)
	assert.Nil(t, reading.schema)

	// Starter notes carry empty metadata and never enforce required
	// fields, even when their type's schema marks fields required
	require.Len(t, stores.noteCalls, 3)
	for _, call := range stores.noteCalls {
		assert.NotNil(t, call.metadata)
		assert.Empty(t, call.metadata)
		assert.False(t, call.enforceRequiredFields)
	}
}

func TestApplyTemplatePartialNoteFailure(t *testing.T) {
	fsys, _ := setupFullTemplate(t)
	stores := newFakeStores()
	stores.failNotes["Monday"] = errors.New(errors.ErrNoteExists, "note already exists")

	result, err := templates.ApplyTemplate("/templates", "starter", fsys, stores, stores, templates.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.NotesCreated)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to create note Monday:")

	// All three notes were still attempted
	assert.Len(t, stores.noteCalls, 3)
}

func TestApplyTemplateTypeFailureDoesNotBlockNotes(t *testing.T) {
	fsys, _ := setupFullTemplate(t)
	stores := newFakeStores()
	stores.failTypes["daily"] = errors.New(errors.ErrNoteTypeExists, "duplicate note type")

	result, err := templates.ApplyTemplate("/templates", "starter", fsys, stores, stores, templates.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.NoteTypesCreated)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Failed to create note type daily:")

	// Phase B still runs in full despite the Phase A failure
	assert.Equal(t, 3, result.NotesCreated)
	assert.Len(t, stores.noteCalls, 3)
}

func TestApplyTemplateInitialNoteFailed(t *testing.T) {
	fsys, _ := setupFullTemplate(t)
	stores := newFakeStores()
	stores.failNotes["Welcome"] = errors.New(errors.ErrNoteInvalid, "rejected")

	result, err := templates.ApplyTemplate("/templates", "starter", fsys, stores, stores, templates.LoadOptions{})
	require.NoError(t, err)

	// The initial note never got created, so no ID is reported
	assert.Empty(t, result.InitialNoteID)
	assert.Equal(t, 2, result.NotesCreated)
}

func TestApplyTemplateUnmatchedInitialNote(t *testing.T) {
	fsys := testutil.NewTestFS()
	tt := testutil.SetupTestTemplate(t, fsys, "/templates", "starter")
	tt.AddMetadata(t, "name: Starter\ndescription: d\ninitialNote: missing.md\n")
	tt.AddNote(t, "present.md", "# Present")
	stores := newFakeStores()

	result, err := templates.ApplyTemplate("/templates", "starter", fsys, stores, stores, templates.LoadOptions{})
	require.NoError(t, err)

	// An initialNote that matches no bundled note stays silently absent
	assert.Equal(t, 1, result.NotesCreated)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.InitialNoteID)
}

func TestApplyTemplateLoadFailurePropagates(t *testing.T) {
	fsys := testutil.NewTestFS()
	stores := newFakeStores()

	_, err := templates.ApplyTemplate("/templates", "missing", fsys, stores, stores, templates.LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
	assert.Empty(t, stores.order)
}

func TestApplyTemplateEmptyTemplate(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.SetupMinimalTemplate(t, fsys, "/templates", "bare")
	stores := newFakeStores()

	result, err := templates.ApplyTemplate("/templates", "bare", fsys, stores, stores, templates.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.NoteTypesCreated)
	assert.Equal(t, 0, result.NotesCreated)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.InitialNoteID)
}
