// TEST TYPE: Unit Test
// PURPOSE: Error construction, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/disnet/flint-note-sub011/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrTemplateNotFound, "template does not exist")

	assert.Equal(t, errors.ErrTemplateNotFound, err.Code)
	assert.Equal(t, "template does not exist", err.Message)
	assert.NotNil(t, err.Details, "details map should be ready for WithDetail")
	assert.Equal(t, "[TEMPLATE_NOT_FOUND] template does not exist", err.Error())
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrNoteTypeUnknown, "note type %q not defined in vault %s", "daily", "work")

	assert.Equal(t, `note type "daily" not defined in vault work`, err.Message)
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")

	err := errors.Wrap(cause, errors.ErrFileAccess, "cannot read registry")
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrFileAccess, err.Code)
	assert.Equal(t, "[FILE_ACCESS] cannot read registry: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, errors.Wrap(nil, errors.ErrFileAccess, "ignored"))
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("no such file")

	err := errors.Wrapf(cause, errors.ErrTemplateNotFound, "failed to load template %q", "daily-journal")
	assert.Equal(t, `failed to load template "daily-journal"`, err.Message)
	assert.Same(t, cause, stderrors.Unwrap(err))

	assert.Nil(t, errors.Wrapf(nil, errors.ErrTemplateNotFound, "ignored"))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrNoteExists, "note already exists").
		WithDetail("noteType", "daily").
		WithDetail("filename", "monday.md")

	assert.Equal(t, "daily", err.Details["noteType"])
	assert.Equal(t, "monday.md", err.Details["filename"])
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrSchemaInvalid, "schema rejected").WithDetails(map[string]interface{}{
		"field": "status",
		"type":  "select",
	})

	assert.Len(t, err.Details, 2)
	assert.Equal(t, "select", err.Details["type"])
}

func TestIsErrorCode(t *testing.T) {
	notFound := errors.New(errors.ErrTemplateNotFound, "missing")

	assert.True(t, errors.IsErrorCode(notFound, errors.ErrTemplateNotFound))
	assert.False(t, errors.IsErrorCode(notFound, errors.ErrNoteExists))

	// The code is still found through fmt.Errorf wrapping
	wrapped := fmt.Errorf("loading config: %w", errors.New(errors.ErrConfigParse, "bad yaml"))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrConfigParse))

	// Plain errors never match, not even ErrUnknown
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrUnknown))
}

func TestErrorsIsMatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrVaultExists, "vault work is already registered")
	b := errors.New(errors.ErrVaultExists, "different message")

	assert.ErrorIs(t, a, b)
}

func TestGetErrorCode(t *testing.T) {
	vaultErr := errors.New(errors.ErrVaultNotFound, "no vault")

	assert.Equal(t, errors.ErrVaultNotFound, errors.GetErrorCode(vaultErr))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}
